package confirm

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"

	"github.com/mimesis-go/mimesis/internal/generator/cli/render"
	"github.com/mimesis-go/mimesis/internal/generator/cli/utils"
)

var ErrPromptFailed = errors.New("prompt failed")

// Confirm asks user a yes/no question. Returns true for "yes".
type Confirm func(ctx context.Context, question string) (bool, error)

type answer struct {
	value bool
	err   error
}

// parseAnswer reports answer value and whether the input is an answer at all.
// Empty input means "no".
func parseAnswer(input string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, true
	case "", "n", "no":
		return false, true
	default:
		return false, false
	}
}

// BuildConfirmTTY returns Confirm that uses interactive prompt.
func BuildConfirmTTY(in io.Reader, out io.Writer) Confirm {
	return func(ctx context.Context, question string) (bool, error) {
		_, _ = fmt.Fprintln(out)

		cancelableIn := newCancelableReader(in)
		defer cancelableIn.Close()

		prompt := promptui.Prompt{
			Label:  question + " [y/N]",
			Stdin:  cancelableIn,
			Stdout: utils.DummyReadWriteCloser{Writer: out},
			Validate: func(input string) error {
				if _, ok := parseAnswer(input); !ok {
					return errors.New("please enter y or n")
				}

				return nil
			},
		}

		return wait(ctx, func() (bool, error) {
			input, err := prompt.Run()
			if err != nil {
				return false, errors.Wrap(ErrPromptFailed, err.Error())
			}

			value, _ := parseAnswer(input)

			return value, nil
		})
	}
}

// BuildConfirmNoTTY returns Confirm that reads answer line by line from renderer.
// Progress logging is paused with isUpdatePaused while question is shown.
func BuildConfirmNoTTY(renderer render.Renderer, out io.Writer, isUpdatePaused *atomic.Bool) Confirm {
	return func(ctx context.Context, question string) (bool, error) {
		isUpdatePaused.Store(true)
		defer isUpdatePaused.Store(false)

		return wait(ctx, func() (bool, error) {
			for {
				_, _ = fmt.Fprintf(out, "%s [y/N]: ", question)

				input, err := renderer.ReadLine()
				if err != nil {
					return false, err //nolint:wrapcheck
				}

				if !renderer.IsTerminal() {
					_, _ = fmt.Fprintln(out, input)
				}

				if value, ok := parseAnswer(input); ok {
					return value, nil
				}

				_, _ = fmt.Fprintln(out, "Please enter y or n")
			}
		})
	}
}

// wait runs blocking ask in goroutine and returns early when ctx is done.
func wait(ctx context.Context, ask func() (bool, error)) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err //nolint:wrapcheck
	}

	answerChan := make(chan answer, 1)

	go func() {
		value, err := ask()
		answerChan <- answer{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err() //nolint:wrapcheck
	case a := <-answerChan:
		return a.value, a.err
	}
}
