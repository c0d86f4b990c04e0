package version

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mimesis-go/mimesis/internal/generator/cli/commands"
	"github.com/mimesis-go/mimesis/internal/generator/cli/options"
)

// versionInfo type is used to describe build of the application.
type versionInfo struct {
	Version   string `json:"version"    yaml:"version"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform"   yaml:"platform"`
}

// NewVersionCommand creates 'version' command for CLI.
func NewVersionCommand(cliOpts *options.CliOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:                   "version [FLAGS]",
		Short:                 "Show mimesis version",
		Args:                  commands.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := commands.ValidateFormat(cmd, format); err != nil {
				return err
			}

			info := versionInfo{
				Version:   cliOpts.Version(),
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}

			return commands.WriteFormatted(cmd.OutOrStdout(), format, info, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, "mimesis version "+info.Version)

				return err
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
