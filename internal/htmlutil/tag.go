package htmlutil

import (
	"io"
	"strings"
)

// Tag is a fluent builder for one HTML element: its name, attributes,
// classes and inline styles, rendered in the order they were added.
type Tag struct {
	name       string
	attributes []attribute
	classes    []string
	styles     []style
}

type attribute struct {
	name, value string
}

type style struct {
	name, value string
}

// NewTag starts building an element named name.
func NewTag(name string) *Tag {
	return &Tag{name: name}
}

// AddAttribute sets an HTML attribute, overwriting any prior value under
// the same name.
func (t *Tag) AddAttribute(name, value string) *Tag {
	for i, a := range t.attributes {
		if a.name == name {
			t.attributes[i].value = value
			return t
		}
	}
	t.attributes = append(t.attributes, attribute{name, value})
	return t
}

// AddClass appends a CSS class name.
func (t *Tag) AddClass(class string) *Tag {
	t.classes = append(t.classes, class)
	return t
}

// AddStyle appends an inline CSS declaration.
func (t *Tag) AddStyle(name, value string) *Tag {
	t.styles = append(t.styles, style{name, value})
	return t
}

// RenderOpen writes the opening tag, e.g. `<tr class="critical">`.
func (t *Tag) RenderOpen(w io.StringWriter) {
	w.WriteString("<")
	w.WriteString(t.name)
	t.renderAttributes(w)
	w.WriteString(">")
}

// RenderClose writes the closing tag, e.g. `</tr>`.
func (t *Tag) RenderClose(w io.StringWriter) {
	w.WriteString("</")
	w.WriteString(t.name)
	w.WriteString(">")
}

// RenderText writes an opening tag, escaped text content, and a closing
// tag in one call.
func (t *Tag) RenderText(w io.StringWriter, text string) {
	t.RenderOpen(w)
	w.WriteString(EscapeText(text))
	t.RenderClose(w)
}

func (t *Tag) renderAttributes(w io.StringWriter) {
	for _, a := range t.attributes {
		w.WriteString(" ")
		w.WriteString(a.name)
		w.WriteString(`="`)
		w.WriteString(EscapeAttr(a.value))
		w.WriteString(`"`)
	}
	if len(t.classes) > 0 {
		w.WriteString(` class="`)
		w.WriteString(strings.Join(t.classes, " "))
		w.WriteString(`"`)
	}
	if len(t.styles) > 0 {
		w.WriteString(` style="`)
		for _, s := range t.styles {
			w.WriteString(s.name)
			w.WriteString(":")
			w.WriteString(s.value)
			w.WriteString(";")
		}
		w.WriteString(`"`)
	}
}
