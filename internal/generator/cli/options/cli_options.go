package options

import (
	"os"
	"sync/atomic"

	"github.com/spf13/afero"

	"github.com/mimesis-go/mimesis/internal/generator/cli/confirm"
	"github.com/mimesis-go/mimesis/internal/generator/cli/render"
	"github.com/mimesis-go/mimesis/internal/generator/cli/streams"
	"github.com/mimesis-go/mimesis/internal/generator/metrics"
	"github.com/mimesis-go/mimesis/internal/generator/models"
	"github.com/mimesis-go/mimesis/internal/generator/usecase"
)

// Option type is a value wrapper with a flag indicating whether its value has been modified.
type Option[T any] struct {
	Value   T
	Changed *bool
}

// MimesisOptions type is used to describe root command options.
type MimesisOptions struct {
	TTY           Option[bool]
	NoTTY         Option[bool]
	ConfigPath    string
	DebugMode     bool
	CPUProfile    string
	MemoryProfile string
	Locale        string
	Seed          Option[int64]
	DataDir       string
}

// CliOptions type holds dependencies shared by CLI commands.
type CliOptions struct {
	useCase        usecase.UseCase
	metrics        *metrics.Metrics
	renderer       render.Renderer
	confirm        confirm.Confirm
	fs             afero.Fs
	in             *streams.In
	out            *streams.Out
	appConfig      *models.AppConfig
	mimesisOptions *MimesisOptions
	isUpdatePaused *atomic.Bool
	version        string
	useTTY         bool
}

func NewCliOptions(version string) *CliOptions {
	return &CliOptions{
		version:        version,
		fs:             afero.NewOsFs(),
		in:             streams.NewIn(os.Stdin),
		out:            streams.NewOut(os.Stdout),
		appConfig:      &models.AppConfig{},
		mimesisOptions: &MimesisOptions{},
		isUpdatePaused: &atomic.Bool{},
	}
}

func (opts *CliOptions) UseCase() usecase.UseCase {
	return opts.useCase
}

func (opts *CliOptions) SetUseCase(useCase usecase.UseCase) {
	opts.useCase = useCase
}

func (opts *CliOptions) Metrics() *metrics.Metrics {
	return opts.metrics
}

func (opts *CliOptions) SetMetrics(m *metrics.Metrics) {
	opts.metrics = m
}

func (opts *CliOptions) Renderer() render.Renderer {
	return opts.renderer
}

func (opts *CliOptions) SetRenderer(renderer render.Renderer) {
	opts.renderer = renderer
}

// Confirm returns function asking user yes/no questions, nil if questions are disabled.
func (opts *CliOptions) Confirm() confirm.Confirm {
	return opts.confirm
}

func (opts *CliOptions) SetConfirm(c confirm.Confirm) {
	opts.confirm = c
}

func (opts *CliOptions) Fs() afero.Fs {
	return opts.fs
}

func (opts *CliOptions) SetFs(fs afero.Fs) {
	opts.fs = fs
}

func (opts *CliOptions) In() *streams.In {
	return opts.in
}

func (opts *CliOptions) SetIn(in *streams.In) {
	opts.in = in
}

func (opts *CliOptions) Out() *streams.Out {
	return opts.out
}

func (opts *CliOptions) SetOut(out *streams.Out) {
	opts.out = out
}

func (opts *CliOptions) AppConfig() *models.AppConfig {
	return opts.appConfig
}

func (opts *CliOptions) SetAppConfig(appConfig *models.AppConfig) {
	opts.appConfig = appConfig
}

func (opts *CliOptions) MimesisOpts() *MimesisOptions {
	return opts.mimesisOptions
}

func (opts *CliOptions) SetMimesisOpts(mimesisOpts *MimesisOptions) {
	opts.mimesisOptions = mimesisOpts
}

// IsUpdatePaused is set while user answers a question, progress logging waits for it.
func (opts *CliOptions) IsUpdatePaused() *atomic.Bool {
	return opts.isUpdatePaused
}

func (opts *CliOptions) UseTTY() bool {
	return opts.useTTY
}

func (opts *CliOptions) SetUseTTY(useTTY bool) {
	opts.useTTY = useTTY
}

func (opts *CliOptions) Version() string {
	return opts.version
}

func (opts *CliOptions) SetVersion(version string) {
	opts.version = version
}

func (opts *CliOptions) DebugMode() bool {
	return opts.MimesisOpts().DebugMode
}

func (opts *CliOptions) SetDebugMode(debugMode bool) {
	opts.MimesisOpts().DebugMode = debugMode
}

func (opts *CliOptions) CPUProfile() string {
	return opts.MimesisOpts().CPUProfile
}

func (opts *CliOptions) MemoryProfile() string {
	return opts.MimesisOpts().MemoryProfile
}
