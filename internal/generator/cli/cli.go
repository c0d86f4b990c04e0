package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	golocale "github.com/Xuanwo/go-locale"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"

	"github.com/mimesis-go/mimesis/internal/generator/cli/commands"
	"github.com/mimesis-go/mimesis/internal/generator/cli/commands/mimesis"
	"github.com/mimesis-go/mimesis/internal/generator/cli/confirm"
	clierrors "github.com/mimesis-go/mimesis/internal/generator/cli/errors"
	"github.com/mimesis-go/mimesis/internal/generator/cli/options"
	"github.com/mimesis-go/mimesis/internal/generator/cli/render/prompt"
	"github.com/mimesis-go/mimesis/internal/generator/logger/handlers"
	"github.com/mimesis-go/mimesis/internal/generator/metrics"
	"github.com/mimesis-go/mimesis/internal/generator/models"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/locale"
)

// Cli type is used to describe mimesis CLI.
type Cli struct {
	opts *options.CliOptions
	cmd  *cobra.Command
}

func NewCli(opts *options.CliOptions) *Cli {
	return &Cli{
		opts: opts,
		cmd:  mimesis.NewMimesisCommand(opts),
	}
}

func (cli *Cli) MustSetup() {
	err := cli.handleAppFlags(os.Args[1:])
	if err != nil {
		_, _ = fmt.Fprintln(cli.cmd.OutOrStdout(), err.Error())

		os.Exit(1)
	}

	err = cli.initialize()
	if err != nil {
		_, _ = fmt.Fprintln(cli.cmd.OutOrStdout(), err.Error())

		os.Exit(1)
	}
}

func (cli *Cli) Run(ctx context.Context) error {
	var usageErr *clierrors.UsageError

	err := cli.cmd.ExecuteContext(ctx)
	if err != nil && errors.As(err, &usageErr) {
		_, _ = fmt.Fprintln(cli.cmd.OutOrStdout(), err.Error())

		os.Exit(1)
	}

	return err //nolint:wrapcheck
}

func (cli *Cli) Options() *options.CliOptions {
	return cli.opts
}

// handleAppFlags parses flags of root command before executing it.
func (cli *Cli) handleAppFlags(args []string) error {
	cmd := cli.cmd

	flags := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	flags.SetInterspersed(false)

	flags.AddFlagSet(cmd.Flags())
	flags.AddFlagSet(cmd.PersistentFlags())

	if err := flags.Parse(args); err != nil {
		return commands.FlagErrorFunc(cmd, err)
	}

	return nil
}

// initialize configures the CLI using config and flags and creates use case.
func (cli *Cli) initialize() error {
	cliOpts := cli.opts

	appConfig := cliOpts.AppConfig()
	mimesisOpts := cliOpts.MimesisOpts()

	// set tty mode
	if !*mimesisOpts.NoTTY.Changed && !*mimesisOpts.TTY.Changed {
		cliOpts.SetUseTTY(mimesisOpts.TTY.Value)
	} else {
		cliOpts.SetUseTTY(*mimesisOpts.TTY.Changed)
	}

	err := appConfig.ParseFromFile(mimesisOpts.ConfigPath)
	if err != nil {
		return errors.WithMessage(err, "error during initializing cli")
	}

	err = mergeFlags(appConfig, mimesisOpts)
	if err != nil {
		return errors.WithMessage(err, "error during initializing cli")
	}

	if appConfig.Locale == "" {
		appConfig.Locale = detectLocale(golocale.Detect)
	}

	// setup logger
	logLevel := slog.LevelInfo
	if mimesisOpts.DebugMode {
		logLevel = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var logHandler slog.Handler

	if appConfig.LogFormat == "json" {
		logHandler = slog.NewJSONHandler(cliOpts.Out(), handlerOpts)
	} else {
		logHandler = handlers.NewTextHandler(cliOpts.Out(), handlerOpts)
	}

	slog.SetDefault(slog.New(logHandler))

	// setup renderer and questions
	renderer := prompt.NewRenderer(cliOpts.In(), cliOpts.Out(), cliOpts.UseTTY())
	cliOpts.SetRenderer(renderer)

	if cliOpts.UseTTY() {
		cliOpts.SetConfirm(confirm.BuildConfirmTTY(cliOpts.In(), cliOpts.Out()))
	} else {
		cliOpts.SetConfirm(confirm.BuildConfirmNoTTY(renderer, cliOpts.Out(), cliOpts.IsUpdatePaused()))
	}

	// setup use case
	m := metrics.New()
	cliOpts.SetMetrics(m)

	dataFs := locale.EmbeddedFs()
	if appConfig.DataDir != "" {
		dataFs = locale.DirFs(appConfig.DataDir)
	}

	loader := locale.NewLoader(
		dataFs,
		locale.WithLogger(slog.Default()),
		locale.WithMissHook(m.IncrementLoaderMiss),
	)

	cliOpts.SetUseCase(general.NewUseCase(general.UseCaseConfig{
		Locale:   appConfig.Locale,
		Loader:   loader,
		Observer: m,
	}))

	return nil
}

// mergeFlags overrides values of app config by root command flags.
func mergeFlags(appConfig *models.AppConfig, opts *options.MimesisOptions) error {
	if opts.Locale != "" {
		code := locale.Normalize(opts.Locale)
		if !locale.IsSupported(code) {
			return locale.NewUnsupportedLocaleError(opts.Locale)
		}

		appConfig.Locale = code
	}

	if opts.Seed.Changed != nil && *opts.Seed.Changed {
		appConfig.Seed = opts.Seed.Value
	}

	if opts.DataDir != "" {
		appConfig.DataDir = opts.DataDir
	}

	return nil
}

// detectLocale returns supported locale closest to the system one.
// Region specific locale is preferred, then its language, then default locale.
func detectLocale(detect func() (language.Tag, error)) string {
	tag, err := detect()
	if err != nil {
		slog.Debug("failed to detect system locale", slog.Any("error", err))

		return locale.DefaultLocale
	}

	if code := locale.Normalize(tag.String()); locale.IsSupported(code) {
		return code
	}

	base, _ := tag.Base()
	if code := locale.Normalize(base.String()); locale.IsSupported(code) {
		return code
	}

	return locale.DefaultLocale
}
