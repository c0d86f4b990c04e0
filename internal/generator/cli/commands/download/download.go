package download

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mimesis-go/mimesis/internal/generator/cli/commands"
	"github.com/mimesis-go/mimesis/internal/generator/cli/options"
	"github.com/mimesis-go/mimesis/internal/generator/cli/render"
	"github.com/mimesis-go/mimesis/internal/generator/cli/utils"
	images "github.com/mimesis-go/mimesis/internal/generator/download"
	"github.com/mimesis-go/mimesis/internal/generator/models"
)

const urlPrompt = "Enter image url"

// downloadOptions type is used to describe 'download-image' command options.
type downloadOptions struct {
	renderer render.Renderer
	fs       afero.Fs
	config   *models.DownloadConfig
	url      string
	dir      string
}

// NewDownloadImageCommand creates 'download-image' command for CLI.
func NewDownloadImageCommand(cliOpts *options.CliOptions) *cobra.Command {
	opts := &downloadOptions{}

	cmd := &cobra.Command{
		Use:                   "download-image [FLAGS] [URL]",
		Short:                 "Downloads image by url, for example one made by 'binaryfile.image_placeholder'",
		Args:                  commands.RequiresMaxArgs(1),
		DisableFlagsInUseLine: true,
		PreRun: func(_ *cobra.Command, _ []string) {
			opts.renderer = cliOpts.Renderer()
			opts.fs = cliOpts.Fs()
			opts.config = &cliOpts.AppConfig().DownloadConfig
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error

			opts.url, err = commands.ArgOrInput(cmd.Context(), opts.renderer, args, urlPrompt, utils.ValidateURL())
			if err != nil {
				return errors.WithMessage(err, "failed to get image url")
			}

			return runDownload(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.SetOut(cliOpts.Out())

	cmd.Flags().StringVarP(
		&opts.dir,
		commands.DownloadDirFlag,
		commands.DownloadDirShortFlag,
		commands.DownloadDirDefaultValue,
		commands.DownloadDirUsage,
	)

	return cmd
}

// runDownload executes an `download-image` command.
func runDownload(ctx context.Context, out io.Writer, opts *downloadOptions) error {
	var (
		path string
		err  error
	)

	opts.renderer.WithSpinner("Downloading "+opts.url, func() {
		path, err = images.NewDownloader(opts.fs, opts.config).Download(ctx, opts.url, opts.dir)
	})

	if err != nil {
		return err
	}

	slog.Debug("image downloaded", slog.String("url", opts.url), slog.String("path", path))

	_, _ = fmt.Fprintln(out, path)

	return nil
}
