package serve

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mimesis-go/mimesis/internal/generator/cli/commands"
	"github.com/mimesis-go/mimesis/internal/generator/cli/options"
	"github.com/mimesis-go/mimesis/internal/generator/models"
	"github.com/mimesis-go/mimesis/internal/generator/usecase"
)

const shutdownTimeout = 5 * time.Second

// serveOptions type is used to describe 'serve' command options.
type serveOptions struct {
	useCase       usecase.UseCase
	metrics       http.Handler
	fs            afero.Fs
	listenAddress string
	readTimeout   time.Duration
	writeTimeout  time.Duration
	idleTimeout   time.Duration
	maxRows       uint64
}

// NewServeCommand creates 'serve' command for CLI.
func NewServeCommand(cliOpts *options.CliOptions) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:                   "serve [FLAGS]",
		Short:                 "Runs HTTP API for generator",
		Args:                  commands.NoArgs,
		DisableFlagsInUseLine: true,
		PreRun: func(_ *cobra.Command, _ []string) {
			opts.useCase = cliOpts.UseCase()
			opts.fs = cliOpts.Fs()

			if m := cliOpts.Metrics(); m != nil {
				opts.metrics = m.Handler()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			slog.Info("generator started", slog.String("version", cliOpts.Version()))

			configureOptions(opts, cliOpts.AppConfig().HTTPConfig)

			err := runServe(cmd.Context(), opts)
			if err != nil {
				return errors.WithMessagef(err, "failed to serve http server")
			}

			slog.Info("generator finished")

			return nil
		},
	}

	cmd.SetOut(cliOpts.Out())

	setupFlags(cmd.Flags(), opts)

	return cmd
}

// setupFlags sets flags for 'serve' command and bind them to serveOptions fields.
func setupFlags(flags *pflag.FlagSet, opts *serveOptions) {
	flags.StringVarP(
		&opts.listenAddress,
		commands.HTTPListenAddressFlag,
		commands.HTTPListenAddressShortFlag,
		commands.HTTPListenAddressDefaultValue,
		commands.HTTPListenAddressUsage,
	)

	flags.DurationVarP(
		&opts.readTimeout,
		commands.HTTPReadTimeoutFlag,
		commands.HTTPReadTimeoutShortFlag,
		commands.HTTPReadTimeoutDefaultValue,
		commands.HTTPReadTimeoutUsage,
	)

	flags.DurationVarP(
		&opts.writeTimeout,
		commands.HTTPWriteTimeoutFlag,
		commands.HTTPWriteTimeoutShortFlag,
		commands.HTTPWriteTimeoutDefaultValue,
		commands.HTTPWriteTimeoutUsage,
	)

	flags.DurationVarP(
		&opts.idleTimeout,
		commands.HTTPIdleTimeoutFlag,
		commands.HTTPIdleTimeoutShortFlag,
		commands.HTTPIdleTimeoutDefaultValue,
		commands.HTTPIdleTimeoutUsage,
	)
}

// configureOptions fills options not set by flags from config.
func configureOptions(opts *serveOptions, httpConfig models.HTTPConfig) {
	if opts.listenAddress == "" {
		opts.listenAddress = httpConfig.ListenAddress
	}

	if opts.readTimeout == 0 {
		opts.readTimeout = httpConfig.ReadTimeout
	}

	if opts.writeTimeout == 0 {
		opts.writeTimeout = httpConfig.WriteTimeout
	}

	if opts.idleTimeout == 0 {
		opts.idleTimeout = httpConfig.IdleTimeout
	}

	opts.maxRows = httpConfig.MaxRows
}

// newHandler creates echo router with all API routes.
func newHandler(opts *serveOptions) *echo.Echo {
	handler := echo.New()
	handler.HideBanner = true
	handler.HidePort = true
	handler.Use(middleware.Recover())

	setupRoutes(handlerOptions{
		useCase: opts.useCase,
		metrics: opts.metrics,
		fs:      opts.fs,
		maxRows: opts.maxRows,
	}, handler)

	return handler
}

// runServe executes an `serve` command. Server is shut down when ctx is done.
func runServe(ctx context.Context, opts *serveOptions) error {
	server := &http.Server{
		Handler:      newHandler(opts),
		Addr:         opts.listenAddress,
		ReadTimeout:  opts.readTimeout,
		WriteTimeout: opts.writeTimeout,
		IdleTimeout:  opts.idleTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = server.Shutdown(shutdownCtx)
	}()

	slog.Info("running HTTP server with params:",
		slog.Any("listen-address", opts.listenAddress),
		slog.Any("read-timeout", opts.readTimeout),
		slog.Any("write-timeout", opts.writeTimeout),
		slog.Any("idle-timeout", opts.idleTimeout),
		slog.Uint64("max-rows", opts.maxRows),
	)

	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.New(err.Error())
	}

	return nil
}
