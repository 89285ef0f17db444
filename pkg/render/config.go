package render

// Config controls how markup trees are serialized.
//
// The zero value renders compact output: no indentation, no line
// breaks, declarations emitted as written. Configuration travels by
// value with the renderer that owns it; there is no process-global
// configuration.
type Config struct {
	// Indent is written once per nesting level before block-level
	// lines. Empty disables indentation.
	Indent string

	// Newline is written after block-level lines. Empty disables line
	// breaks, which also disables indentation output.
	Newline string

	// ForceImportant appends !important to every stylesheet
	// declaration. Email clients are the usual reason.
	ForceImportant bool

	// ReserveBytes is the initial output buffer capacity.
	ReserveBytes int
}

// Fixed configurations. These are part of the output contract:
// rendering the same tree with the same preset yields identical bytes
// from release to release.
var (
	// Compact is the default: minimal whitespace-free output.
	Compact = Config{ReserveBytes: 1024}

	// Pretty indents with two spaces for development and debugging.
	Pretty = Config{Indent: "  ", Newline: "\n", ReserveBytes: 2048}

	// Email single-space indents and forces !important, for mail
	// clients that mangle both whitespace and specificity.
	Email = Config{Indent: " ", Newline: "\n", ForceImportant: true, ReserveBytes: 2048}

	// Optimized is Compact with a larger initial buffer for big pages.
	Optimized = Config{ReserveBytes: 4096}
)

// Default returns the default configuration (Compact).
func Default() Config {
	return Compact
}

// pretty reports whether line-break output is enabled.
func (c Config) pretty() bool {
	return c.Newline != ""
}
