package log

const (
	// ModeProduction selects the sampled production encoder profile.
	ModeProduction = "production"
	// ModeDebug selects the development encoder profile.
	ModeDebug = "debug"

	// EncodingConsole emits human-readable lines.
	EncodingConsole = "console"
	// EncodingJSON emits structured JSON lines.
	EncodingJSON = "json"
)
