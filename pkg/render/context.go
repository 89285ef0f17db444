package render

import "github.com/vellum-dev/vellum/pkg/markup"

// Context is the mutable state of a single render: the ordered
// attribute map for the element currently being opened, the style
// registry, and the indentation state. Every render call creates its
// own Context; nothing here is shared or locked.
type Context struct {
	cfg Config

	attrs   []attrEntry
	attrIdx map[string]int

	reg styleRegistry

	indent []byte
	inline int // >0 while rendering phrasing content on one line
}

// attrEntry is one slot of the ordered attribute map. Removed entries
// keep their slot so that surviving attributes hold their positions;
// they are skipped when flushing.
type attrEntry struct {
	name    string
	value   string
	removed bool
}

// NewContext creates a fresh Context for one render.
func NewContext(cfg Config) *Context {
	return &Context{
		cfg:     cfg,
		attrIdx: make(map[string]int),
		reg:     newStyleRegistry(),
	}
}

// Config returns the configuration this context renders under.
func (c *Context) Config() Config {
	return c.cfg
}

// SetAttribute stages an attribute for the element being opened.
// First write of a name claims the next position; overwriting keeps
// the original position. An empty value renders as a boolean
// attribute (name only).
func (c *Context) SetAttribute(name, value string) {
	if idx, ok := c.attrIdx[name]; ok {
		c.attrs[idx].value = value
		return
	}
	c.attrIdx[name] = len(c.attrs)
	c.attrs = append(c.attrs, attrEntry{name: name, value: value})
}

// RemoveAttribute drops a staged attribute. Setting the same name
// again afterwards appends it at the end, as a new entry.
func (c *Context) RemoveAttribute(name string) {
	if idx, ok := c.attrIdx[name]; ok {
		c.attrs[idx].removed = true
		delete(c.attrIdx, name)
	}
}

// Attribute returns the staged value for name.
func (c *Context) Attribute(name string) (string, bool) {
	if idx, ok := c.attrIdx[name]; ok {
		return c.attrs[idx].value, true
	}
	return "", false
}

// flushAttributes writes the staged attributes in order and resets the
// map for the next element. Values are attribute-escaped; an empty
// value emits just the name.
func (c *Context) flushAttributes(buf *Buffer) {
	for _, a := range c.attrs {
		if a.removed {
			continue
		}
		buf.WriteByte(' ')
		buf.WriteString(a.name)
		if a.value == "" {
			continue
		}
		buf.WriteString(`="`)
		writeEscapedAttr(buf, a.value)
		buf.WriteByte('"')
	}
	c.attrs = c.attrs[:0]
	clear(c.attrIdx)
}

// ClassName registers one style rule and returns its class name.
// The same rule always maps to the same name within this context.
func (c *Context) ClassName(rule markup.StyleRule) string {
	return c.reg.className(rule)
}

// ClassNames registers rules in order and returns their class names.
func (c *Context) ClassNames(rules []markup.StyleRule) []string {
	names := make([]string, len(rules))
	for i, rule := range rules {
		names[i] = c.reg.className(rule)
	}
	return names
}

// Stylesheet assembles the registered rules into CSS. The document
// assembler calls this once traversal is complete; callers rendering
// bare fragments can do the same to place the styles themselves.
func (c *Context) Stylesheet() string {
	return c.reg.stylesheet(c.cfg.ForceImportant)
}

// HasStyles reports whether any rule was registered.
func (c *Context) HasStyles() bool {
	return !c.reg.empty()
}

// enter grows the indentation by one unit.
func (c *Context) enter() {
	c.indent = append(c.indent, c.cfg.Indent...)
}

// exit shrinks the indentation by one unit.
func (c *Context) exit() {
	c.indent = c.indent[:len(c.indent)-len(c.cfg.Indent)]
}

// writeIndent writes the current indentation.
func (c *Context) writeIndent(buf *Buffer) {
	buf.Write(c.indent)
}

// writeNewline writes the configured line break.
func (c *Context) writeNewline(buf *Buffer) {
	buf.WriteString(c.cfg.Newline)
}
