package render

import (
	"strconv"
	"strings"

	"github.com/vellum-dev/vellum/pkg/markup"
)

// styleRegistry assigns deterministic class names to style rules and
// collects them for stylesheet assembly. Names are memoized on the
// full rule, so registering the same declaration twice yields one
// class and one stylesheet entry. The counter only advances for rules
// not seen before, which is what makes names reproducible: any two
// contexts fed the same rules in the same order assign the same names.
type styleRegistry struct {
	classes map[markup.StyleRule]string // rule -> assigned class name
	counter int

	decls      map[styleKey][]string // selector block -> declarations, in registration order
	keyOrder   []styleKey            // preserve first-seen selector order
	mediaOrder []markup.MediaQuery   // preserve first-seen media order
	mediaSeen  map[markup.MediaQuery]bool
}

// styleKey identifies one selector block in the output stylesheet.
type styleKey struct {
	media    markup.MediaQuery
	selector string
}

func newStyleRegistry() styleRegistry {
	return styleRegistry{
		classes:   make(map[markup.StyleRule]string),
		decls:     make(map[styleKey][]string),
		mediaSeen: make(map[markup.MediaQuery]bool),
	}
}

func (r *styleRegistry) empty() bool {
	return len(r.keyOrder) == 0
}

// className returns the class for rule, assigning the next one on
// first sight.
func (r *styleRegistry) className(rule markup.StyleRule) string {
	if name, ok := r.classes[rule]; ok {
		return name
	}

	name := rule.Property + "-" + strconv.Itoa(r.counter)
	r.counter++
	r.classes[rule] = name

	selector := "." + name + rule.Pseudo
	if rule.Selector != "" {
		selector = rule.Selector + " " + selector
	}

	key := styleKey{media: rule.Media, selector: selector}
	if _, ok := r.decls[key]; !ok {
		r.keyOrder = append(r.keyOrder, key)
	}
	r.decls[key] = append(r.decls[key], rule.Property+":"+rule.Value)

	if rule.Media != "" && !r.mediaSeen[rule.Media] {
		r.mediaSeen[rule.Media] = true
		r.mediaOrder = append(r.mediaOrder, rule.Media)
	}

	return name
}

// stylesheet assembles the collected rules: ungrouped selector blocks
// first in first-seen order, then one @media block per distinct
// condition in first-seen order. Assembly does not mutate the
// registry; calling it again yields the same bytes.
func (r *styleRegistry) stylesheet(important bool) string {
	if r.empty() {
		return ""
	}

	var b strings.Builder
	for _, key := range r.keyOrder {
		if key.media == "" {
			r.writeBlock(&b, key, important)
		}
	}
	for _, media := range r.mediaOrder {
		b.WriteString("@media ")
		b.WriteString(string(media))
		b.WriteByte('{')
		for _, key := range r.keyOrder {
			if key.media == media {
				r.writeBlock(&b, key, important)
			}
		}
		b.WriteByte('}')
	}
	return b.String()
}

// writeBlock writes one selector block: selector{decl;decl}.
func (r *styleRegistry) writeBlock(b *strings.Builder, key styleKey, important bool) {
	b.WriteString(key.selector)
	b.WriteByte('{')
	for i, decl := range r.decls[key] {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(decl)
		if important {
			b.WriteString(" !important")
		}
	}
	b.WriteByte('}')
}
