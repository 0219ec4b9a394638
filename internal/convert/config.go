package convert

// Config holds configuration for a Converter.
type Config struct {
	// Strict counts outputs still holding a <REQUIRED> placeholder as
	// unconverted and keeps the original text for them.
	Strict bool
	// MethodFallback looks up ".name" for attribute calls whose full
	// dotted name is unknown, so tensor methods resolve on any receiver.
	MethodFallback bool
	// Mappings lists user mapping files loaded after the builtin tables.
	Mappings []string
}

// DefaultConfig returns the default conversion configuration.
func DefaultConfig() Config {
	return Config{
		Strict:         false,
		MethodFallback: true,
	}
}
