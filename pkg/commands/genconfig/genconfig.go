package genconfig

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/assetlint/pkg/config"
	"github.com/arthur-debert/assetlint/pkg/errors"
	"github.com/arthur-debert/assetlint/pkg/logging"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
)

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	// Dir receives the project config when Write is set
	Dir    string
	Write  bool
	Format config.Format
	// FileSystem defaults to the OS filesystem addressed by absolute paths
	FileSystem filesystem.FullFileSystem
}

// GenConfigResult holds the generated content and any file written
type GenConfigResult struct {
	ConfigContent string
	FilesWritten  []string
}

// NewOSFileSystem returns the filesystem GenConfig writes to by default
func NewOSFileSystem() filesystem.FullFileSystem {
	return synthfs.NewPathAwareFileSystem(filesystem.NewOSFileSystem("/"), "/").WithAbsolutePaths()
}

// GenConfig renders the default configuration and optionally writes it as
// the project config of Dir. An existing file is never overwritten.
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	format := opts.Format
	if format == "" {
		format = config.FormatTOML
	}
	content, err := config.GenerateConfigContent(format)
	if err != nil {
		return nil, err
	}

	result := &GenConfigResult{
		ConfigContent: string(content),
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = NewOSFileSystem()
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return result, errors.Wrapf(err, errors.ErrInvalidInput, "invalid directory %s", opts.Dir)
	}

	targetPath := filepath.Join(dir, format.FileName())
	if _, err := fs.Stat(targetPath); err == nil {
		return result, errors.Newf(errors.ErrAlreadyExists, "config file already exists: %s", targetPath).
			WithDetail("path", targetPath)
	}

	sfs := synthfs.New()
	var ops []synthfs.Operation
	if _, err := fs.Stat(dir); err != nil {
		ops = append(ops, sfs.CreateDirWithID("mkdir_config_dir", dir, 0755))
	}
	ops = append(ops, sfs.CreateFileWithID("write_config", targetPath, content, 0644))

	options := synthfs.DefaultPipelineOptions()
	options.RollbackOnError = true

	logger.Debug().
		Int("operationCount", len(ops)).
		Str("path", targetPath).
		Msg("Writing config file")

	if _, err := synthfs.RunWithOptions(context.Background(), fs, options, ops...); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to write config to %s", targetPath).
			WithDetail("path", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, targetPath)
	return result, nil
}
