package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/assetlint/cmd/assetlint"
)

func main() {
	rootCmd := assetlint.NewRootCmd()

	if err := doc.GenMan(rootCmd, assetlint.ManHeader("1"), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
