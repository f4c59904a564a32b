package config

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	defaultCodec     = "text"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Output: Output{
			Codec: defaultCodec,
		},
	}
}
