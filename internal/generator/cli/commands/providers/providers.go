package providers

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mimesis-go/mimesis/internal/generator/cli/commands"
	"github.com/mimesis-go/mimesis/internal/generator/cli/options"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/provider"
)

// NewProvidersCommand creates 'providers' command for CLI.
// Optional argument filters methods by provider name.
func NewProvidersCommand(cliOpts *options.CliOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:                   "providers [FLAGS] [PROVIDER]",
		Short:                 "Lists provider methods available by key",
		Args:                  commands.RequiresMaxArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := commands.ValidateFormat(cmd, format); err != nil {
				return err
			}

			infos := cliOpts.UseCase().Providers()

			if len(args) > 0 {
				infos = filterByProvider(infos, args[0])
			}

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

func filterByProvider(infos []provider.MethodInfo, name string) []provider.MethodInfo {
	prefix := strings.ToLower(name) + "."

	filtered := make([]provider.MethodInfo, 0)

	for _, info := range infos {
		if strings.HasPrefix(info.Key, prefix) {
			filtered = append(filtered, info)
		}
	}

	return filtered
}

func writeTable(w io.Writer, infos []provider.MethodInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd

	_, _ = fmt.Fprintln(tw, "KEY\tPARAMS")

	for _, info := range infos {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", info.Key, strings.Join(info.Params, ", "))
	}

	return tw.Flush()
}
