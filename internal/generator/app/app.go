package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"

	"github.com/pkg/errors"

	"github.com/mimesis-go/mimesis/internal/generator/cli"
	"github.com/mimesis-go/mimesis/internal/generator/cli/options"
)

// App type runs mimesis CLI with signal handling and profiling.
type App struct {
	cliOpts       *options.CliOptions
	cli           *cli.Cli
	cpuProfile    *os.File
	memoryProfile *os.File
}

// NewApp creates App. Use case is built by CLI setup from config and flags.
func NewApp(version string) *App {
	cliOpts := options.NewCliOptions(version)
	mimesisCli := cli.NewCli(cliOpts)
	mimesisCli.MustSetup()

	return &App{
		cliOpts: cliOpts,
		cli:     mimesisCli,
	}
}

func (a *App) Run() {
	ctx, cancelCtx := a.notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	a.run(ctx, cancelCtx)

	//nolint:errorlint
	switch err := context.Cause(ctx); err.(type) {
	case nil:
	case *SignalError:
		slog.Warn("mimesis finished due to event", slog.String("event", err.Error()))
	default:
		slog.Error("mimesis finished due to error", slog.String("error", err.Error()))

		if a.cliOpts.DebugMode() {
			a.logStackTrace(err)
		}

		os.Exit(1)
	}
}

func (a *App) notifyContext(ctx context.Context, signals ...os.Signal) (context.Context, context.CancelCauseFunc) {
	osSignalChannel := make(chan os.Signal, 1)
	signal.Notify(osSignalChannel, signals...)

	ctxCause, cancelCtx := context.WithCancelCause(ctx)

	go func() {
		osSignal := <-osSignalChannel
		slog.Info("got os signal, canceling", slog.String("signal", osSignal.String()))
		cancelCtx(NewSignalError(osSignal))

		osSignal = <-osSignalChannel
		slog.Error("got os signal, force exit", slog.String("signal", osSignal.String()))
		os.Exit(1)
	}()

	return ctxCause, cancelCtx
}

func (a *App) run(ctx context.Context, cancelCtx context.CancelCauseFunc) {
	a.startProfiling()
	defer a.stopProfiling()

	useCase := a.cliOpts.UseCase()

	if err := useCase.Setup(); err != nil {
		cancelCtx(err)

		return
	}

	if err := a.cli.Run(ctx); err != nil {
		cancelCtx(err)

		return
	}

	if err := useCase.Teardown(); err != nil {
		cancelCtx(err)

		return
	}
}

// startProfiling starts CPU profile if its file is set by flag.
func (a *App) startProfiling() {
	path := a.cliOpts.CPUProfile()
	if path == "" {
		return
	}

	file, err := os.Create(path)
	if err != nil {
		slog.Error("failed to create CPU profile file", slog.String("error", err.Error()))

		return
	}

	a.cpuProfile = file

	if err = pprof.StartCPUProfile(file); err != nil {
		slog.Error("failed to start CPU profiling", slog.String("error", err.Error()))
	}
}

// stopProfiling stops CPU profile and writes heap profile if its file is set by flag.
func (a *App) stopProfiling() {
	if a.cpuProfile != nil {
		pprof.StopCPUProfile()
		closeProfile("CPU", a.cpuProfile)
	}

	path := a.cliOpts.MemoryProfile()
	if path == "" {
		return
	}

	file, err := os.Create(path)
	if err != nil {
		slog.Error("failed to create memory profile file", slog.String("error", err.Error()))

		return
	}

	a.memoryProfile = file

	if err = pprof.WriteHeapProfile(file); err != nil {
		slog.Error("failed to write memory profiling results", slog.String("error", err.Error()))
	}

	closeProfile("memory", a.memoryProfile)
}

func closeProfile(kind string, file *os.File) {
	if err := file.Close(); err != nil {
		slog.Error("failed to close "+kind+" profile file", slog.String("error", err.Error()))
	}
}

func (a *App) logStackTrace(err error) {
	if e, ok := errors.Cause(err).(stackTracer); ok {
		for _, frame := range e.StackTrace() {
			frameTrace := strings.Split(fmt.Sprintf("%+v", frame), "\n")
			slog.Error(frameTrace[0])
			slog.Error(frameTrace[1])
		}
	}
}
