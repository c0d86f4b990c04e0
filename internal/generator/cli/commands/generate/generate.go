package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mimesis-go/mimesis/internal/generator/cli/commands"
	"github.com/mimesis-go/mimesis/internal/generator/cli/options"
	"github.com/mimesis-go/mimesis/internal/generator/cli/render"
	"github.com/mimesis-go/mimesis/internal/generator/cli/utils"
	"github.com/mimesis-go/mimesis/internal/generator/usecase"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/provider"
)

// generateOptions type is used to describe 'generate' command options.
type generateOptions struct {
	useCase  usecase.UseCase
	renderer render.Renderer
	key      string
	locale   string
	seed     int64
	count    int
	params   []string
	format   string
}

// generateOutput type is used to describe values written in json and yaml formats.
type generateOutput struct {
	Key    string `json:"key"    yaml:"key"`
	Values []any  `json:"values" yaml:"values"`
}

// NewGenerateCommand creates 'generate' command for CLI.
func NewGenerateCommand(cliOpts *options.CliOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [FLAGS] [KEY]",
		Short: "Generates values of provider method",
		Long: "Generates values of provider method by its key, for example 'person.full_name'.\n" +
			"Locale and seed default to root command flags.",
		Args:                  commands.RequiresMaxArgs(1),
		DisableFlagsInUseLine: true,
		PreRun: func(_ *cobra.Command, _ []string) {
			opts.useCase = cliOpts.UseCase()
			opts.renderer = cliOpts.Renderer()

			if opts.locale == "" {
				opts.locale = cliOpts.AppConfig().Locale
			}

			if opts.seed == 0 {
				opts.seed = cliOpts.AppConfig().Seed
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := commands.ValidateFormat(cmd, opts.format); err != nil {
				return err
			}

			if opts.count < 1 {
				return commands.FlagErrorFunc(cmd, errors.Errorf("count should be positive, got %d", opts.count))
			}

			err := getKey(cmd.Context(), opts, args)
			if err != nil {
				return errors.WithMessage(err, "failed to get provider method key")
			}

			return runGenerate(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.SetOut(cliOpts.Out())

	setupFlags(cmd.Flags(), opts)

	return cmd
}

func setupFlags(flags *pflag.FlagSet, opts *generateOptions) {
	flags.IntVarP(
		&opts.count,
		commands.CountFlag,
		commands.CountShortFlag,
		commands.CountDefaultValue,
		commands.CountUsage,
	)

	flags.StringArrayVarP(
		&opts.params,
		commands.ParamFlag,
		commands.ParamShortFlag,
		nil,
		commands.ParamUsage,
	)

	flags.StringVarP(
		&opts.locale,
		commands.LocaleFlag,
		commands.LocaleShortFlag,
		commands.LocaleDefaultValue,
		commands.LocaleUsage,
	)

	flags.Int64VarP(
		&opts.seed,
		commands.SeedFlag,
		commands.SeedShortFlag,
		commands.SeedDefaultValue,
		commands.SeedUsage,
	)

	flags.StringVarP(
		&opts.format,
		commands.FormatFlag,
		commands.FormatShortFlag,
		commands.FormatDefaultValue,
		commands.FormatUsage,
	)
}

// getKey gets provider method key from arguments or selection menu.
func getKey(ctx context.Context, opts *generateOptions, args []string) error {
	if len(args) > 0 {
		opts.key = args[0]

		return nil
	}

	keys := utils.Map(opts.useCase.Providers(), func(info provider.MethodInfo) string { return info.Key })

	key, err := opts.renderer.SelectionMenu(ctx, "Choose provider method", keys)
	if err != nil {
		return err
	}

	opts.key = key

	return nil
}

// runGenerate executes an `generate` command.
func runGenerate(ctx context.Context, out io.Writer, opts *generateOptions) error {
	params, err := utils.ParseParams(opts.params)
	if err != nil {
		return err
	}

	values, err := opts.useCase.Generate(ctx, usecase.GenerateConfig{
		Key:    opts.key,
		Params: params,
		Locale: opts.locale,
		Seed:   opts.seed,
		Count:  opts.count,
	})
	if err != nil {
		return err
	}

	return commands.WriteFormatted(out, opts.format, generateOutput{Key: opts.key, Values: values}, func(w io.Writer) error {
		return writeText(w, values)
	})
}

// writeText writes one value per line. Values other than strings are written as JSON.
func writeText(w io.Writer, values []any) error {
	for _, value := range values {
		line, ok := value.(string)
		if !ok {
			data, err := json.Marshal(value)
			if err != nil {
				return errors.New(err.Error())
			}

			line = string(data)
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.New(err.Error())
		}
	}

	return nil
}
