package utils

import (
	"encoding/json"
	"io"
	"net/url"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mimesis-go/mimesis/internal/generator/cli/render"
)

// DummyReadWriteCloser wraps reader or writer with no-op Close.
type DummyReadWriteCloser struct {
	io.Reader
	io.Writer
}

func (DummyReadWriteCloser) Close() error {
	return nil
}

// ValidateFileFormat returns an error if the file format is not supported.
func ValidateFileFormat(formats ...string) func(string) error {
	return func(filePath string) error {
		if len(formats) == 0 {
			return nil
		}

		if !slices.Contains(formats, strings.ToLower(filepath.Ext(filePath))) {
			return errors.Errorf("invalid file extension, supported: %v", formats)
		}

		return nil
	}
}

// ValidateURL returns an error if the string is not an absolute http(s) URL.
func ValidateURL() func(string) error {
	return func(s string) error {
		u, err := url.Parse(strings.TrimSpace(s))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errors.Errorf("invalid url %q, expected http(s)://host/path", s)
		}

		return nil
	}
}

// ParseParams parses "name=value" pairs. Values are decoded as JSON
// when possible (numbers, booleans, arrays), otherwise kept as strings.
func ParseParams(pairs []string) (map[string]any, error) {
	params := make(map[string]any, len(pairs))

	for _, pair := range pairs {
		name, raw, found := strings.Cut(pair, "=")

		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, errors.Errorf("invalid param %q, expected name=value", pair)
		}

		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}

		params[name] = value
	}

	return params, nil
}

// GetPercentage calculates what percentage 'currentValue' is of 'total'.
func GetPercentage(total, currentValue uint64) uint64 {
	if total == 0 {
		return 0
	}

	return currentValue * 100 / total
}

// Map maps slice of elements with type T to slice with type V using function fn.
func Map[T, V any](ts []T, fn func(T) V) []V {
	result := make([]V, len(ts))
	for i, t := range ts {
		result[i] = fn(t)
	}

	return result
}

// ChooseCommand runs interactive menu with selection of available commands
// and executes the chosen one with args.
func ChooseCommand(cmd *cobra.Command, args []string, renderer render.Renderer) error {
	const backNavigation = "back"

	command := cmd

	for len(command.Commands()) > 0 {
		names := make([]string, 0, len(command.Commands())+1)

		for _, c := range command.Commands() {
			if c.IsAvailableCommand() {
				names = append(names, c.Name())
			}
		}

		if command.Parent() != nil {
			names = append(names, backNavigation)
		}

		selected, err := renderer.SelectionMenu(cmd.Context(), "Select a command", names)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if selected == backNavigation {
			command = command.Parent()

			continue
		}

		command, _, err = command.Find([]string{selected})
		if err != nil {
			return errors.Errorf("command %q not found", selected)
		}
	}

	commandPath := strings.Split(command.CommandPath(), " ")

	command.Root().SetArgs(append(commandPath[1:], args...))

	return command.Root().ExecuteContext(cmd.Context()) //nolint:wrapcheck
}
