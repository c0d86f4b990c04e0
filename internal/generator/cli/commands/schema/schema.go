package schema

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mimesis-go/mimesis/internal/generator/cli/commands"
	"github.com/mimesis-go/mimesis/internal/generator/cli/confirm"
	"github.com/mimesis-go/mimesis/internal/generator/cli/options"
	"github.com/mimesis-go/mimesis/internal/generator/cli/progress"
	"github.com/mimesis-go/mimesis/internal/generator/cli/progress/bar"
	"github.com/mimesis-go/mimesis/internal/generator/cli/progress/log"
	"github.com/mimesis-go/mimesis/internal/generator/cli/render"
	"github.com/mimesis-go/mimesis/internal/generator/models"
	"github.com/mimesis-go/mimesis/internal/generator/output/general"
	"github.com/mimesis-go/mimesis/internal/generator/usecase"
)

const progressDelay = 500 * time.Millisecond

// schemaOptions type is used to describe 'schema' command options.
type schemaOptions struct {
	useCase         usecase.UseCase
	renderer        render.Renderer
	confirm         confirm.Confirm
	fs              afero.Fs
	out             io.Writer
	isUpdatePaused  *atomic.Bool
	schemaPath      string
	useTTY          bool
	forceGeneration bool
}

// NewSchemaCommand creates 'schema' command for CLI.
func NewSchemaCommand(cliOpts *options.CliOptions) *cobra.Command {
	opts := &schemaOptions{}

	cmd := &cobra.Command{
		Use:                   "schema [FLAGS] [PATH]",
		Short:                 "Generates rows of schema and saves them to output",
		Args:                  commands.RequiresMaxArgs(1),
		DisableFlagsInUseLine: true,
		PreRun: func(cmd *cobra.Command, _ []string) {
			opts.useCase = cliOpts.UseCase()
			opts.renderer = cliOpts.Renderer()
			opts.confirm = cliOpts.Confirm()
			opts.fs = cliOpts.Fs()
			opts.out = cmd.OutOrStdout()
			opts.isUpdatePaused = cliOpts.IsUpdatePaused()
			opts.useTTY = cliOpts.UseTTY()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var err error

			opts.schemaPath, err = commands.SchemaPath(ctx, opts.renderer, args)
			if err != nil {
				return errors.WithMessage(err, "failed to get schema file path")
			}

			slog.Info("generator started", slog.String("version", cliOpts.Version()))

			err = runSchema(ctx, opts)
			if err != nil {
				return errors.WithMessage(err, "failed to generate")
			}

			slog.Info("generator finished")

			return nil
		},
	}

	cmd.SetOut(cliOpts.Out())

	setupFlags(cmd.Flags(), opts)

	return cmd
}

func setupFlags(flags *pflag.FlagSet, opts *schemaOptions) {
	flags.BoolVarP(
		&opts.forceGeneration,
		commands.ForceGenerationFlag,
		commands.ForceGenerationShortFlag,
		commands.ForceGenerationFlagDefaultValue,
		commands.ForceGenerationUsage,
	)
}

// runSchema executes an `schema` command.
func runSchema(ctx context.Context, opts *schemaOptions) error {
	schema := &models.SchemaConfig{}

	err := schema.ParseFromFile(opts.schemaPath)
	if err != nil {
		return err
	}

	out := general.NewOutput(opts.fs, schema, opts.forceGeneration, opts.confirm)

	taskID, err := opts.useCase.CreateTask(ctx, usecase.TaskConfig{
		Schema: schema,
		Output: out,
	})
	if err != nil {
		return err
	}

	var (
		finished atomic.Bool
		wg       sync.WaitGroup
	)

	startProgressTracking(ctx, opts, taskID, &finished, &wg)

	err = opts.useCase.WaitResult(taskID)

	finished.Store(true)

	if err != nil {
		slog.Info("generation seed", slog.Int64("seed", schema.Seed))
		slog.Info("saved rows", slog.String("schema", schema.Name), slog.Uint64("count", out.SavedRowsCount()))

		return err
	}

	wg.Wait()

	return nil
}

// startProgressTracking runs function to track progress of task
// by getting progress from usecase object and displaying it.
func startProgressTracking(
	ctx context.Context,
	opts *schemaOptions,
	taskID string,
	finished *atomic.Bool,
	wg *sync.WaitGroup,
) {
	var tracker progress.Tracker

	if opts.useTTY {
		tracker = bar.NewProgressBarManager(ctx, opts.out)
	} else {
		tracker = log.NewProgressLogManager(ctx, opts.isUpdatePaused)
	}

	wg.Add(1)

	go func() {
		defer wg.Done()

		lastUpdate := false

		for {
			progresses, err := opts.useCase.GetProgress(taskID)
			if err != nil {
				slog.Debug("failed to get progress", slog.String("taskID", taskID), slog.Any("error", err))
			}

			for name, p := range progresses {
				tracker.AddTask(name, fmt.Sprintf("generating rows of schema %q", name), p.Total)
				tracker.UpdateProgress(name, p)
			}

			if lastUpdate {
				break
			}

			if finished.Load() {
				lastUpdate = true
			} else {
				time.Sleep(progressDelay)
			}
		}

		tracker.Wait()
	}()
}
