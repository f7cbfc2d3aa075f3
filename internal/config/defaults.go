package config

const (
	defaultImageCmd     = "CoronaImageCmd"
	defaultOutputFormat = "exr"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// FormatEXR and FormatJPG are the recognized output formats: OpenEXR keeps the
// full dynamic range, JPEG trades it for size.
const (
	FormatEXR = "exr"
	FormatJPG = "jpg"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tool: Tool{
			ImageCmd: defaultImageCmd,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
