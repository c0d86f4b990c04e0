package validate

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mimesis-go/mimesis/internal/generator/cli/commands"
	"github.com/mimesis-go/mimesis/internal/generator/cli/options"
	"github.com/mimesis-go/mimesis/internal/generator/cli/render"
	"github.com/mimesis-go/mimesis/internal/generator/models"
	"github.com/mimesis-go/mimesis/internal/generator/usecase"
)

// validateOptions type is used to describe 'validate' command options.
type validateOptions struct {
	useCase    usecase.UseCase
	renderer   render.Renderer
	schemaPath string
}

// NewValidateCommand creates 'validate' command for CLI.
func NewValidateCommand(cliOpts *options.CliOptions) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:                   "validate [PATH]",
		Short:                 "Validates schema file",
		Args:                  commands.RequiresMaxArgs(1),
		DisableFlagsInUseLine: true,
		PreRun: func(_ *cobra.Command, _ []string) {
			opts.useCase = cliOpts.UseCase()
			opts.renderer = cliOpts.Renderer()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error

			opts.schemaPath, err = commands.SchemaPath(cmd.Context(), opts.renderer, args)
			if err != nil {
				return errors.WithMessage(err, "failed to get schema file path")
			}

			return runValidate(cmd.OutOrStdout(), opts)
		},
	}

	cmd.SetOut(cliOpts.Out())

	return cmd
}

// runValidate executes an `validate` command. Besides file structure
// it checks that every field key and template can be generated.
func runValidate(out io.Writer, opts *validateOptions) error {
	var schema models.SchemaConfig

	err := schema.ParseFromFile(opts.schemaPath)
	if err != nil {
		return err
	}

	err = opts.useCase.ValidateSchema(&schema)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, "Schema is valid")

	return nil
}
