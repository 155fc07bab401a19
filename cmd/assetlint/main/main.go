package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/assetlint/cmd/assetlint"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is the common case
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := assetlint.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if code := assetlint.HandleError(rootCmd, err, os.Stderr); code != 0 {
		os.Exit(code)
	}
}
