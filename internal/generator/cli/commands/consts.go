package commands

const (
	ConfigPathFlag         = "config"
	ConfigPathShortFlag    = "c"
	ConfigPathDefaultValue = ""
	ConfigPathUsage        = "Location of config file"

	ForceGenerationFlag             = "force"
	ForceGenerationShortFlag        = "f"
	ForceGenerationFlagDefaultValue = false
	ForceGenerationUsage            = "Remove files of previous generations of the schema without asking"

	TTYFlag      = "tty"
	TTYShortFlag = "t"
	TTYUsage     = "Activate TTY mode"

	NoTTYFlag         = "no-tty"
	NoTTYShortFlag    = "T"
	NoTTYDefaultValue = false
	NoTTYUsage        = "Deactivate TTY mode"

	DebugModeFlag         = "debug"
	DebugModeShortFlag    = "d"
	DebugModeDefaultValue = false
	DebugModeUsage        = "Enable debug mode"

	CPUProfileFlag         = "cpu-profile"
	CPUProfileShortFlag    = ""
	CPUProfileDefaultValue = ""
	CPUProfileUsage        = "Path to GoLang CPU profile file"

	MemoryProfileFlag         = "memory-profile"
	MemoryProfileShortFlag    = ""
	MemoryProfileDefaultValue = ""
	MemoryProfileUsage        = "Path to GoLang memory profile file"

	LocaleFlag         = "locale"
	LocaleShortFlag    = "l"
	LocaleDefaultValue = ""
	LocaleUsage        = "Locale of generated data, detected from environment if not set"

	SeedFlag         = "seed"
	SeedShortFlag    = "s"
	SeedDefaultValue = 0
	SeedUsage        = "Seed of random generator, random if zero"

	DataDirFlag         = "data-dir"
	DataDirShortFlag    = ""
	DataDirDefaultValue = ""
	DataDirUsage        = "Directory with locale data files, embedded data is used if not set"

	CountFlag         = "count"
	CountShortFlag    = "n"
	CountDefaultValue = 1
	CountUsage        = "Number of values to generate"

	ParamFlag      = "param"
	ParamShortFlag = "p"
	ParamUsage     = "Parameter of provider method in name=value form, can be repeated"

	FormatFlag         = "format"
	FormatShortFlag    = "F"
	FormatDefaultValue = "text"
	FormatUsage        = "Output format: text, json or yaml"

	DownloadDirFlag         = "dir"
	DownloadDirShortFlag    = "o"
	DownloadDirDefaultValue = ""
	DownloadDirUsage        = "Directory to save downloaded image"

	HTTPListenAddressFlag         = "listen-address"
	HTTPListenAddressShortFlag    = "a"
	HTTPListenAddressDefaultValue = ""
	HTTPListenAddressUsage        = "HTTP listen address"

	HTTPReadTimeoutFlag         = "read-timeout"
	HTTPReadTimeoutShortFlag    = "r"
	HTTPReadTimeoutDefaultValue = 0
	HTTPReadTimeoutUsage        = "HTTP read timeout"

	HTTPWriteTimeoutFlag         = "write-timeout"
	HTTPWriteTimeoutShortFlag    = "w"
	HTTPWriteTimeoutDefaultValue = 0
	HTTPWriteTimeoutUsage        = "HTTP write timeout"

	HTTPIdleTimeoutFlag         = "idle-timeout"
	HTTPIdleTimeoutShortFlag    = "i"
	HTTPIdleTimeoutDefaultValue = 0
	HTTPIdleTimeoutUsage        = "HTTP idle timeout"

	SchemaPathPrompt = "Enter path to schema file"
)

// SchemaFileFormats lists extensions of schema files.
var SchemaFileFormats = []string{".yml", ".yaml", ".json"}
