package markup

import (
	"strconv"
	"strings"
)

// Attr creates an attribute with the given name and value.
func Attr(name, value string) Attribute {
	return Attribute{Name: name, Value: value}
}

// Flag creates a boolean attribute: the name renders with no value.
func Flag(name string) Attribute {
	return Attribute{Name: name}
}

// AttrIf returns the attribute only when cond is true; otherwise an
// inert attribute that rendering skips.
func AttrIf(cond bool, name, value string) Attribute {
	if cond {
		return Attr(name, value)
	}
	return Attribute{}
}

// FlagIf returns the boolean attribute only when cond is true.
func FlagIf(cond bool, name string) Attribute {
	if cond {
		return Flag(name)
	}
	return Attribute{}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attribute { return Attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
// Style-derived class names merge into the same rendered attribute,
// after these explicit classes.
func Class(classes ...string) Attribute { return Attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with the
// Style rule constructor).
func StyleAttr(style string) Attribute { return Attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") renders data-id="123".
func Data(key, value string) Attribute { return Attr("data-"+key, value) }

// Link and media attributes

// Href sets the href attribute.
func Href(url string) Attribute { return Attr("href", url) }

// Src sets the src attribute.
func Src(url string) Attribute { return Attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attribute { return Attr("alt", text) }

// Target sets the target attribute.
func Target(target string) Attribute { return Attr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attribute { return Attr("rel", rel) }

// Width sets the width attribute.
func Width(w int) Attribute { return Attr("width", strconv.Itoa(w)) }

// Height sets the height attribute.
func Height(h int) Attribute { return Attr("height", strconv.Itoa(h)) }

// Form attributes

// Type sets the type attribute.
func Type(t string) Attribute { return Attr("type", t) }

// Name sets the name attribute.
func Name(name string) Attribute { return Attr("name", name) }

// Value sets the value attribute.
func Value(value string) Attribute { return Attr("value", value) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attribute { return Attr("placeholder", text) }

// Action sets the action attribute.
func Action(url string) Attribute { return Attr("action", url) }

// Method sets the method attribute.
func Method(method string) Attribute { return Attr("method", method) }

// For sets the for attribute.
func For(id string) Attribute { return Attr("for", id) }

// Disabled sets the disabled boolean attribute.
func Disabled() Attribute { return Flag("disabled") }

// Checked sets the checked boolean attribute.
func Checked() Attribute { return Flag("checked") }

// Required sets the required boolean attribute.
func Required() Attribute { return Flag("required") }

// Selected sets the selected boolean attribute.
func Selected() Attribute { return Flag("selected") }

// Readonly sets the readonly boolean attribute.
func Readonly() Attribute { return Flag("readonly") }

// Multiple sets the multiple boolean attribute.
func Multiple() Attribute { return Flag("multiple") }

// Autofocus sets the autofocus boolean attribute.
func Autofocus() Attribute { return Flag("autofocus") }

// Document attributes

// Lang sets the lang attribute.
func Lang(lang string) Attribute { return Attr("lang", lang) }

// Charset sets the charset attribute.
func Charset(cs string) Attribute { return Attr("charset", cs) }

// Content sets the content attribute.
func Content(content string) Attribute { return Attr("content", content) }

// TitleAttr sets the title attribute (named to avoid conflict with the
// Title element).
func TitleAttr(title string) Attribute { return Attr("title", title) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attribute { return Attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attribute { return Attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attribute { return Attr("aria-hidden", strconv.FormatBool(hidden)) }

// AriaCurrent sets the aria-current attribute.
func AriaCurrent(value string) Attribute { return Attr("aria-current", value) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attribute { return Attr("tabindex", strconv.Itoa(index)) }

// Hidden sets the hidden boolean attribute.
func Hidden() Attribute { return Flag("hidden") }
