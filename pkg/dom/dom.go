// Package dom is a minimal element tree for visualization containers.
//
// It models just enough of a browser document for the keyboard renderer:
// elements with an id, a class list, data attributes, inline styles, text and
// children, plus lookup by id and by class. Sinks in
// [github.com/matzehuels/keyscope/pkg/render/sink] serialize trees to HTML.
package dom

import (
	"maps"
	"slices"
	"strings"
)

// Element is a node in the tree.
type Element struct {
	Tag      string            `json:"tag"`
	ID       string            `json:"id,omitempty"`
	Class    string            `json:"class,omitempty"`
	Data     map[string]string `json:"data,omitempty"`
	Style    map[string]string `json:"style,omitempty"`
	Text     string            `json:"text,omitempty"`
	Children []*Element        `json:"children,omitempty"`

	parent *Element
}

// NewElement creates a detached element.
func NewElement(tag string) *Element {
	return &Element{Tag: tag}
}

// Parent returns the element's parent, or nil when detached.
func (e *Element) Parent() *Element { return e.parent }

// AppendChild attaches child as the last child of e, detaching it from any
// previous parent first. It returns child.
func (e *Element) AppendChild(child *Element) *Element {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	e.Children = append(e.Children, child)
	return child
}

// RemoveChild detaches child from e. It is a no-op if child is not a child
// of e.
func (e *Element) RemoveChild(child *Element) {
	i := slices.Index(e.Children, child)
	if i < 0 {
		return
	}
	e.Children = slices.Delete(e.Children, i, i+1)
	child.parent = nil
}

// Clear removes all children and text, like setting innerHTML to "".
func (e *Element) Clear() {
	for _, c := range e.Children {
		c.parent = nil
	}
	e.Children = nil
	e.Text = ""
}

// SetData sets a data-* attribute (name without the "data-" prefix).
func (e *Element) SetData(name, value string) {
	if e.Data == nil {
		e.Data = make(map[string]string)
	}
	e.Data[name] = value
}

// SetStyle sets an inline style property.
func (e *Element) SetStyle(prop, value string) {
	if e.Style == nil {
		e.Style = make(map[string]string)
	}
	e.Style[prop] = value
}

// SetStyles sets several inline style properties at once.
func (e *Element) SetStyles(props map[string]string) {
	for k, v := range props {
		e.SetStyle(k, v)
	}
}

// HasClass reports whether class is in the element's class list.
func (e *Element) HasClass(class string) bool {
	return slices.Contains(strings.Fields(e.Class), class)
}

// Walk visits e and its descendants depth-first in document order. Returning
// false from fn stops the walk.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// QueryAll returns the descendants of e (e excluded) matching pred, in
// document order.
func (e *Element) QueryAll(pred func(*Element) bool) []*Element {
	var out []*Element
	for _, c := range e.Children {
		c.Walk(func(n *Element) bool {
			if pred(n) {
				out = append(out, n)
			}
			return true
		})
	}
	return out
}

// ByClass returns the descendants carrying class.
func (e *Element) ByClass(class string) []*Element {
	return e.QueryAll(func(n *Element) bool { return n.HasClass(class) })
}

// ByData returns the descendants whose data-name attribute equals value.
func (e *Element) ByData(name, value string) []*Element {
	return e.QueryAll(func(n *Element) bool {
		v, ok := n.Data[name]
		return ok && v == value
	})
}

// TextContent returns the concatenated text of e and its descendants.
func (e *Element) TextContent() string {
	var b strings.Builder
	e.Walk(func(n *Element) bool {
		b.WriteString(n.Text)
		return true
	})
	return b.String()
}

// SortedStyle returns the inline style as "prop: value" pairs in
// property order, for deterministic serialization.
func (e *Element) SortedStyle() []string {
	keys := slices.Sorted(maps.Keys(e.Style))
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k + ": " + e.Style[k]
	}
	return out
}

// Document owns a tree rooted at Body.
type Document struct {
	Body *Element
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{Body: NewElement("body")}
}

// CreateContainer appends a div with the given id to the body and returns it.
func (d *Document) CreateContainer(id string) *Element {
	div := NewElement("div")
	div.ID = id
	return d.Body.AppendChild(div)
}

// GetElementByID returns the first element with the given id, or nil.
func (d *Document) GetElementByID(id string) *Element {
	if d == nil || d.Body == nil || id == "" {
		return nil
	}
	var found *Element
	d.Body.Walk(func(n *Element) bool {
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}
