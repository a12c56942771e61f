package plinth

import (
	"io"
	"slices"
	"strings"
)

// A Sink receives the markup a render produces. Three operations cover
// everything the shell emits: open an element, close an element, and pass
// raw text through. The shell decides which elements to open, in which
// order, with which attributes; the Sink decides what the bytes look like.
//
// The shell never closes the void elements it opens (meta, link), so Sink
// implementations don't need to special-case them to stay well-formed.
type Sink interface {
	// OpenTag emits the opening tag of an element. attrs maps attribute
	// names to values; no two attributes share a name, and their order
	// carries no meaning, so implementations can pick whatever order
	// suits them.
	OpenTag(name string, attrs map[string]string) error

	// CloseTag emits the closing tag of an element.
	CloseTag(name string) error

	// Raw emits text exactly as passed, with no escaping of any sort.
	Raw(text string) error
}

// voidElements are the elements that have no closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

var _ Sink = &MarkupWriter{}

// MarkupWriter is a Sink that writes HTML to an io.Writer. Attribute values
// are entity-escaped, and attributes are written in sorted name order so
// the same element always produces the same bytes. Closing a void element
// writes nothing, making the writer safe to drive mechanically.
type MarkupWriter struct {
	out io.Writer
}

// NewMarkupWriter returns a MarkupWriter writing to out.
func NewMarkupWriter(out io.Writer) *MarkupWriter {
	return &MarkupWriter{out: out}
}

// OpenTag writes an opening tag, its attributes sorted by name and their
// values escaped.
func (m *MarkupWriter) OpenTag(name string, attrs map[string]string) error {
	var tag strings.Builder
	tag.WriteString("<")
	tag.WriteString(name)
	names := make([]string, 0, len(attrs))
	for attr := range attrs {
		names = append(names, attr)
	}
	slices.Sort(names)
	for _, attr := range names {
		tag.WriteString(" ")
		tag.WriteString(attr)
		tag.WriteString(`="`)
		tag.WriteString(escapeAttr(attrs[attr]))
		tag.WriteString(`"`)
	}
	tag.WriteString(">")
	_, err := io.WriteString(m.out, tag.String())
	return err
}

// CloseTag writes a closing tag, unless the element is a void element,
// which doesn't have one.
func (m *MarkupWriter) CloseTag(name string) error {
	if voidElements[name] {
		return nil
	}
	_, err := io.WriteString(m.out, "</"+name+">")
	return err
}

// Raw writes text through untouched.
func (m *MarkupWriter) Raw(text string) error {
	_, err := io.WriteString(m.out, text)
	return err
}

// escapeAttr escapes text for inclusion in a double-quoted attribute value.
// Beyond the standard entities, it escapes the whitespace characters that
// could break attribute parsing.
func escapeAttr(s string) string {
	var escaped strings.Builder
	escaped.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			escaped.WriteString("&amp;")
		case '<':
			escaped.WriteString("&lt;")
		case '>':
			escaped.WriteString("&gt;")
		case '"':
			escaped.WriteString("&quot;")
		case '\'':
			escaped.WriteString("&#39;")
		case '\n':
			escaped.WriteString("&#10;")
		case '\r':
			escaped.WriteString("&#13;")
		case '\t':
			escaped.WriteString("&#9;")
		default:
			escaped.WriteRune(r)
		}
	}
	return escaped.String()
}
