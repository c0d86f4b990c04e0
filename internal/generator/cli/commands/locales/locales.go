package locales

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mimesis-go/mimesis/internal/generator/cli/commands"
	"github.com/mimesis-go/mimesis/internal/generator/cli/options"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/locale"
)

// NewLocalesCommand creates 'locales' command for CLI.
func NewLocalesCommand(cliOpts *options.CliOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:                   "locales [FLAGS]",
		Short:                 "Lists supported locales",
		Args:                  commands.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := commands.ValidateFormat(cmd, format); err != nil {
				return err
			}

			infos := cliOpts.UseCase().Locales()

			return commands.WriteFormatted(cmd.OutOrStdout(), format, infos, func(w io.Writer) error {
				return writeTable(w, infos)
			})
		},
	}

	cmd.SetOut(cliOpts.Out())

	cmd.Flags().StringVarP(
		&format,
		commands.FormatFlag,
		commands.FormatShortFlag,
		commands.FormatDefaultValue,
		commands.FormatUsage,
	)

	return cmd
}

func writeTable(w io.Writer, infos []locale.Info) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd

	_, _ = fmt.Fprintln(tw, "CODE\tNAME\tLOCAL NAME")

	for _, info := range infos {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Code, info.Name, info.LocalName)
	}

	return tw.Flush()
}
