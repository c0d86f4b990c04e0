package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh/spinner"
	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"

	"github.com/mimesis-go/mimesis/internal/generator/cli/render"
	"github.com/mimesis-go/mimesis/internal/generator/cli/streams"
)

const (
	backNavigation = "back"
	menuSize       = 10
)

// Verify interface compliance in compile time.
var _ render.Renderer = (*Renderer)(nil)

type result struct {
	value string
	err   error
}

// Renderer type is implementation of renderer that using prompts in TTY mode
// and numbered lists in plain mode.
type Renderer struct {
	useTTY  bool
	in      *streams.In
	out     *streams.Out
	scanner *bufio.Scanner
}

// NewRenderer creates Renderer object.
func NewRenderer(in *streams.In, out *streams.Out, useTTY bool) *Renderer {
	r := &Renderer{
		useTTY: useTTY,
		in:     in,
		out:    out,
	}

	if in != nil {
		r.scanner = bufio.NewScanner(in)
	}

	return r
}

// Logo function just display logo.
func (r *Renderer) Logo() {
	_, _ = fmt.Fprint(r.out, LogoText)
}

// SelectionMenu displays items and returns the chosen one.
func (r *Renderer) SelectionMenu(ctx context.Context, title string, items []string) (string, error) {
	title = strings.TrimSpace(title)

	if r.useTTY {
		return r.await(ctx, func() (string, error) {
			_, value, err := r.selectionPrompt(title, items).Run()

			return value, err //nolint:wrapcheck
		})
	}

	return r.await(ctx, func() (string, error) {
		_, _ = fmt.Fprintln(r.out, title)

		for i, item := range items {
			_, _ = fmt.Fprintf(r.out, "%d. %s\n", i+1, item)
		}

		for {
			input, err := r.prompt("Write a number: ")
			if err != nil {
				return "", err
			}

			number, err := strconv.Atoi(input)
			if err == nil && number >= 1 && number <= len(items) {
				_, _ = fmt.Fprintf(r.out, "Selected: %s\n", items[number-1])

				return items[number-1], nil
			}

			_, _ = fmt.Fprintln(r.out, "invalid input, please try again")
		}
	})
}

// InputMenu asks for a line until validateFunc accepts it.
func (r *Renderer) InputMenu(ctx context.Context, title string, validateFunc func(string) error) (string, error) {
	title = strings.TrimSpace(title)

	if r.useTTY {
		return r.await(ctx, func() (string, error) {
			return r.inputPrompt(title, validateFunc).Run() //nolint:wrapcheck
		})
	}

	return r.await(ctx, func() (string, error) {
		for {
			input, err := r.prompt(title + ": ")
			if err != nil {
				return "", err
			}

			if err = validateFunc(input); err == nil {
				return input, nil
			}

			_, _ = fmt.Fprintln(r.out, err.Error())
		}
	})
}

// WithSpinner shows spinner while fn is running. Without TTY only title is printed.
func (r *Renderer) WithSpinner(title string, fn func()) {
	if !r.useTTY {
		_, _ = fmt.Fprintln(r.out, title)

		fn()

		return
	}

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		defer cancel()

		fn()
	}()

	_ = spinner.New().
		Title(title).
		Context(ctx).
		Run()
}

// ReadLine reads trimmed line from input stream.
func (r *Renderer) ReadLine() (string, error) {
	if r.scanner == nil {
		return "", errors.New(io.EOF.Error())
	}

	if r.scanner.Scan() {
		return strings.TrimSpace(r.scanner.Text()), nil
	}

	if err := r.scanner.Err(); err != nil {
		return "", errors.New(err.Error())
	}

	return "", errors.New(io.EOF.Error())
}

// IsTerminal returns true if input stream is connected to a terminal.
func (r *Renderer) IsTerminal() bool {
	return r.in != nil && r.in.IsTerminal()
}

// await runs blocking read in goroutine, so it can be abandoned when ctx is done.
func (r *Renderer) await(ctx context.Context, read func() (string, error)) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.New(err.Error())
	}

	resultChan := make(chan result, 1)

	go func() {
		value, err := read()
		if err != nil {
			err = errors.New(err.Error())
		}

		resultChan <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", errors.New(ctx.Err().Error())
	case res := <-resultChan:
		return res.value, res.err
	}
}

// prompt prints label and reads answer. Piped answers are echoed to keep output readable.
func (r *Renderer) prompt(label string) (string, error) {
	_, _ = fmt.Fprint(r.out, label)

	input, err := r.ReadLine()
	if err != nil {
		_, _ = fmt.Fprintln(r.out)

		return "", err
	}

	if !r.IsTerminal() {
		_, _ = fmt.Fprintln(r.out, input)
	}

	return input, nil
}

func (r *Renderer) selectionPrompt(title string, items []string) *promptui.Select {
	return &promptui.Select{
		Stdin:  r.in,
		Stdout: r.out,
		Label:  title,
		Items:  items,
		Templates: &promptui.SelectTemplates{
			Label: "{{ . }}",
			Active: fmt.Sprintf(
				`{{ if eq . %q }}> {{ . | red }}{{ else }}> {{ . | cyan }}{{ end }}`, backNavigation,
			),
			Inactive: fmt.Sprintf(
				`{{ if eq . %q }}  {{ . | red }}{{ else }}  {{ . }}{{ end }}`, backNavigation,
			),
			Selected: "\U00002714 {{ . | green }}",
		},
		HideHelp: true,
		Size:     menuSize,
	}
}

func (r *Renderer) inputPrompt(title string, validateFunc func(string) error) *promptui.Prompt {
	return &promptui.Prompt{
		Stdin:  r.in,
		Stdout: r.out,
		Label:  title,
		Templates: &promptui.PromptTemplates{
			Prompt:  "{{ . }} ",
			Success: "{{ . | bold }} ",
		},
		Validate: validateFunc,
	}
}
