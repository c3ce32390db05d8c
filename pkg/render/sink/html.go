package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/keyscope/pkg/dom"
)

// keyPressCSS is the animation referenced by highlighted keys.
const keyPressCSS = `
    @keyframes keyPress {
      0% { transform: translateY(0); }
      50% { transform: translateY(-4px); }
      100% { transform: translateY(-2px); }
    }
    body { font-family: sans-serif; background: #343a40; color: #f8f9fa; }
    .detected-text { margin-top: 1rem; padding: 1rem; border: 1px solid #6c757d; border-radius: 4px; }
    .detected-text .text-info { color: #0dcaf0; margin-left: 0.25em; }`

// HTMLOption configures HTML rendering.
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	title    string
	fragment bool
}

// WithHTMLTitle sets the document title.
func WithHTMLTitle(s string) HTMLOption { return func(r *htmlRenderer) { r.title = s } }

// WithFragment emits only the element markup, without the surrounding
// document and stylesheet.
func WithFragment() HTMLOption { return func(r *htmlRenderer) { r.fragment = true } }

// RenderHTML serializes root and its subtree. By default the markup is
// wrapped in a standalone document that defines the keyPress animation.
func RenderHTML(root *dom.Element, opts ...HTMLOption) []byte {
	r := htmlRenderer{title: "Keyboard Visualization"}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	if r.fragment {
		writeElement(&buf, root, 0)
		return buf.Bytes()
	}

	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	buf.WriteString(`  <meta charset="utf-8">` + "\n")
	buf.WriteString("  <title>")
	xml.EscapeText(&buf, []byte(r.title))
	buf.WriteString("</title>\n")
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", keyPressCSS)
	buf.WriteString("</head>\n<body>\n")
	writeElement(&buf, root, 1)
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes()
}

func writeElement(buf *bytes.Buffer, e *dom.Element, depth int) {
	if e == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(buf, "%s<%s", indent, e.Tag)
	if e.ID != "" {
		writeAttr(buf, "id", e.ID)
	}
	if e.Class != "" {
		writeAttr(buf, "class", e.Class)
	}
	for _, k := range slices.Sorted(maps.Keys(e.Data)) {
		writeAttr(buf, "data-"+k, e.Data[k])
	}
	if len(e.Style) > 0 {
		writeAttr(buf, "style", strings.Join(e.SortedStyle(), "; "))
	}
	buf.WriteString(">")

	xml.EscapeText(buf, []byte(e.Text))
	if len(e.Children) == 0 {
		fmt.Fprintf(buf, "</%s>\n", e.Tag)
		return
	}
	buf.WriteString("\n")
	for _, c := range e.Children {
		writeElement(buf, c, depth+1)
	}
	fmt.Fprintf(buf, "%s</%s>\n", indent, e.Tag)
}

func writeAttr(buf *bytes.Buffer, name, value string) {
	fmt.Fprintf(buf, ` %s="`, name)
	xml.EscapeText(buf, []byte(value))
	buf.WriteString(`"`)
}
