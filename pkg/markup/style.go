package markup

// MediaQuery is a CSS media condition such as "(max-width: 600px)" or
// "print". It is treated as an opaque string: two conditions are the
// same group if and only if they compare equal byte for byte.
type MediaQuery string

// Common media conditions.
const (
	MediaPrint  MediaQuery = "print"
	MediaScreen MediaQuery = "screen"
	MediaDark   MediaQuery = "(prefers-color-scheme: dark)"
)

// StyleRule is a single CSS declaration attached to an element, plus the
// context it applies in. Identity is structural: every field takes part,
// compared by exact string equality. "color:red" and "color:#ff0000" are
// different rules, as are two rules that differ only in Media.
//
// Property and Value are emitted as-is. There is no validation and no
// normalization; what the caller writes is what the stylesheet gets.
type StyleRule struct {
	Property string     // CSS property, e.g. "color"
	Value    string     // CSS value, e.g. "red"
	Media    MediaQuery // Optional media condition the rule is grouped under
	Selector string     // Optional selector prefix, e.g. "nav" for descendant rules
	Pseudo   string     // Optional pseudo suffix, e.g. ":hover"
}

// Style creates a plain declaration.
func Style(property, value string) StyleRule {
	return StyleRule{Property: property, Value: value}
}

// MediaStyle creates a declaration grouped under a media condition.
func MediaStyle(media MediaQuery, property, value string) StyleRule {
	return StyleRule{Property: property, Value: value, Media: media}
}

// Hover creates a declaration that applies on :hover.
func Hover(property, value string) StyleRule {
	return StyleRule{Property: property, Value: value, Pseudo: ":hover"}
}

// Focus creates a declaration that applies on :focus.
func Focus(property, value string) StyleRule {
	return StyleRule{Property: property, Value: value, Pseudo: ":focus"}
}

// Active creates a declaration that applies on :active.
func Active(property, value string) StyleRule {
	return StyleRule{Property: property, Value: value, Pseudo: ":active"}
}
