package commands

import (
	"context"
	"encoding/json"
	"io"
	"slices"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	clierrors "github.com/mimesis-go/mimesis/internal/generator/cli/errors"
	"github.com/mimesis-go/mimesis/internal/generator/cli/render"
	"github.com/mimesis-go/mimesis/internal/generator/cli/utils"
)

// Formats lists values of format flag.
var Formats = []string{"text", "json", "yaml"}

// NoArgs validates args and returns an error if there are any args.
func NoArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}

	_ = cmd.Help()

	if cmd.HasSubCommands() {
		return clierrors.NewUsageError(errors.Errorf("unknown command: %q for %q", args[0], cmd.Name()))
	}

	return clierrors.NewUsageError(errors.Errorf("%q accepts no arguments", cmd.Name()))
}

// RequiresMaxArgs returns an error if there is not at most max args.
func RequiresMaxArgs(maxArgs int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) <= maxArgs {
			return nil
		}

		_ = cmd.Help()

		return clierrors.NewUsageError(errors.Errorf(
			"%q requires at most %d %s, received %d",
			cmd.Name(),
			maxArgs,
			pluralize("argument", maxArgs),
			len(args),
		))
	}
}

// FlagErrorFunc processes errors of CLI flags.
func FlagErrorFunc(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}

	_ = cmd.Help()

	return clierrors.NewUsageError(err)
}

// ValidateFormat returns usage error if format is not one of Formats.
func ValidateFormat(cmd *cobra.Command, format string) error {
	if slices.Contains(Formats, format) {
		return nil
	}

	return FlagErrorFunc(cmd, errors.Errorf("unknown format %q, supported: %v", format, Formats))
}

// ArgOrInput returns first arg if present, otherwise asks user to enter value.
func ArgOrInput(
	ctx context.Context,
	renderer render.Renderer,
	args []string,
	title string,
	validateFunc func(string) error,
) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	value, err := renderer.InputMenu(ctx, title, validateFunc)
	if err != nil {
		return "", errors.WithMessage(err, "failed to read input")
	}

	return value, nil
}

// SchemaPath returns schema file path from args or user input.
func SchemaPath(ctx context.Context, renderer render.Renderer, args []string) (string, error) {
	return ArgOrInput(ctx, renderer, args, SchemaPathPrompt, utils.ValidateFileFormat(SchemaFileFormats...))
}

// WriteFormatted writes v to out as indented JSON or YAML. Text format is written by text function.
func WriteFormatted(out io.Writer, format string, v any, text func(w io.Writer) error) error {
	var err error

	switch format {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(v)
	case "yaml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2) //nolint:mnd

		err = encoder.Encode(v)
		if err == nil {
			err = encoder.Close()
		}
	default:
		err = text(out)
	}

	if err != nil {
		return errors.WithMessagef(errors.New(err.Error()), "failed to write %s output", format)
	}

	return nil
}

// pluralize returns a plural word.
func pluralize(word string, number int) string {
	if number == 1 {
		return word
	}

	return word + "s"
}
