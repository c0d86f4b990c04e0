package mimesis

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mimesis-go/mimesis/internal/generator/cli/commands"
	"github.com/mimesis-go/mimesis/internal/generator/cli/commands/download"
	"github.com/mimesis-go/mimesis/internal/generator/cli/commands/generate"
	"github.com/mimesis-go/mimesis/internal/generator/cli/commands/locales"
	"github.com/mimesis-go/mimesis/internal/generator/cli/commands/providers"
	"github.com/mimesis-go/mimesis/internal/generator/cli/commands/schema"
	"github.com/mimesis-go/mimesis/internal/generator/cli/commands/serve"
	"github.com/mimesis-go/mimesis/internal/generator/cli/commands/validate"
	"github.com/mimesis-go/mimesis/internal/generator/cli/commands/version"
	"github.com/mimesis-go/mimesis/internal/generator/cli/options"
	"github.com/mimesis-go/mimesis/internal/generator/cli/streams"
	"github.com/mimesis-go/mimesis/internal/generator/cli/utils"
)

// NewMimesisCommand creates root 'mimesis' command for CLI.
// Without subcommand it shows logo and menu of available commands.
func NewMimesisCommand(cliOpts *options.CliOptions) *cobra.Command {
	cobra.EnableCommandSorting = false

	opts := cliOpts.MimesisOpts()

	cmd := &cobra.Command{
		Use:                   "mimesis [FLAGS] [COMMAND]",
		Short:                 "Fake data generator for many locales",
		Args:                  commands.NoArgs,
		SilenceUsage:          true,
		SilenceErrors:         true,
		TraverseChildren:      true,
		DisableFlagsInUseLine: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
			HiddenDefaultCmd:  true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer := cliOpts.Renderer()
			renderer.Logo()

			return utils.ChooseCommand(cmd, args, renderer)
		},
	}

	cmd.SetOut(cliOpts.Out())

	cmd.SetFlagErrorFunc(commands.FlagErrorFunc)

	setupFlags(cmd.Flags(), opts, cliOpts.In())

	cmd.PersistentFlags().BoolP("help", "h", false, "Print usage")

	cmd.PersistentFlags().Lookup("help").Hidden = true

	cmd.MarkFlagsMutuallyExclusive(commands.TTYFlag, commands.NoTTYFlag)
	cmd.SetUsageTemplate(usageTemplate)

	cmd.AddCommand(
		generate.NewGenerateCommand(cliOpts),
		schema.NewSchemaCommand(cliOpts),
		validate.NewValidateCommand(cliOpts),
		locales.NewLocalesCommand(cliOpts),
		providers.NewProvidersCommand(cliOpts),
		download.NewDownloadImageCommand(cliOpts),
		serve.NewServeCommand(cliOpts),
		version.NewVersionCommand(cliOpts),
	)

	return cmd
}

// setupFlags sets flags for 'mimesis' command and bind them to MimesisOptions fields.
func setupFlags(flags *pflag.FlagSet, opts *options.MimesisOptions, in *streams.In) {
	flags.StringVarP(
		&opts.ConfigPath,
		commands.ConfigPathFlag,
		commands.ConfigPathShortFlag,
		commands.ConfigPathDefaultValue,
		commands.ConfigPathUsage,
	)

	flags.BoolVarP(
		&opts.TTY.Value,
		commands.TTYFlag,
		commands.TTYShortFlag,
		in.IsTerminal(),
		commands.TTYUsage,
	)

	opts.TTY.Changed = &flags.Lookup(commands.TTYFlag).Changed

	flags.BoolVarP(
		&opts.NoTTY.Value,
		commands.NoTTYFlag,
		commands.NoTTYShortFlag,
		commands.NoTTYDefaultValue,
		commands.NoTTYUsage,
	)

	opts.NoTTY.Changed = &flags.Lookup(commands.NoTTYFlag).Changed

	flags.BoolVarP(
		&opts.DebugMode,
		commands.DebugModeFlag,
		commands.DebugModeShortFlag,
		commands.DebugModeDefaultValue,
		commands.DebugModeUsage,
	)

	flags.StringVarP(
		&opts.CPUProfile,
		commands.CPUProfileFlag,
		commands.CPUProfileShortFlag,
		commands.CPUProfileDefaultValue,
		commands.CPUProfileUsage,
	)

	flags.StringVarP(
		&opts.MemoryProfile,
		commands.MemoryProfileFlag,
		commands.MemoryProfileShortFlag,
		commands.MemoryProfileDefaultValue,
		commands.MemoryProfileUsage,
	)

	flags.StringVarP(
		&opts.Locale,
		commands.LocaleFlag,
		commands.LocaleShortFlag,
		commands.LocaleDefaultValue,
		commands.LocaleUsage,
	)

	flags.Int64VarP(
		&opts.Seed.Value,
		commands.SeedFlag,
		commands.SeedShortFlag,
		commands.SeedDefaultValue,
		commands.SeedUsage,
	)

	opts.Seed.Changed = &flags.Lookup(commands.SeedFlag).Changed

	flags.StringVarP(
		&opts.DataDir,
		commands.DataDirFlag,
		commands.DataDirShortFlag,
		commands.DataDirDefaultValue,
		commands.DataDirUsage,
	)
}

const usageTemplate = `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

Available Commands:{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{.Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

Additional Commands:{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
