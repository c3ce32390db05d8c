package dom

import (
	"slices"
	"testing"
)

func TestGetElementByID(t *testing.T) {
	doc := NewDocument()
	kb := doc.CreateContainer("keyboardVisualization")
	inner := kb.AppendChild(NewElement("span"))
	inner.ID = "nested"

	if got := doc.GetElementByID("keyboardVisualization"); got != kb {
		t.Errorf("GetElementByID(container) = %v, want %v", got, kb)
	}
	if got := doc.GetElementByID("nested"); got != inner {
		t.Errorf("GetElementByID(nested) = %v, want %v", got, inner)
	}
	if got := doc.GetElementByID("missing"); got != nil {
		t.Errorf("GetElementByID(missing) = %v, want nil", got)
	}
	if got := doc.GetElementByID(""); got != nil {
		t.Errorf("GetElementByID(\"\") = %v, want nil", got)
	}

	var nilDoc *Document
	if got := nilDoc.GetElementByID("x"); got != nil {
		t.Errorf("nil document lookup = %v, want nil", got)
	}
}

func TestClearDetachesChildren(t *testing.T) {
	root := NewElement("div")
	a := root.AppendChild(NewElement("div"))
	b := root.AppendChild(NewElement("div"))
	root.Text = "stale"

	root.Clear()

	if len(root.Children) != 0 {
		t.Errorf("len(Children) = %d after Clear, want 0", len(root.Children))
	}
	if root.Text != "" {
		t.Errorf("Text = %q after Clear, want empty", root.Text)
	}
	if a.Parent() != nil || b.Parent() != nil {
		t.Error("cleared children still reference their parent")
	}
}

func TestAppendChildReparents(t *testing.T) {
	first := NewElement("div")
	second := NewElement("div")
	child := first.AppendChild(NewElement("span"))

	second.AppendChild(child)

	if len(first.Children) != 0 {
		t.Errorf("old parent still has %d children", len(first.Children))
	}
	if child.Parent() != second {
		t.Error("child parent not updated")
	}
}

func TestQueries(t *testing.T) {
	root := NewElement("div")
	row := root.AppendChild(NewElement("div"))
	row.Class = "keyboard-row"
	for _, k := range []string{"a", "b", "a"} {
		key := row.AppendChild(NewElement("div"))
		key.Class = "keyboard-key lifted"
		key.SetData("key", k)
		key.Text = k
	}

	if got := len(root.ByClass("keyboard-key")); got != 3 {
		t.Errorf("ByClass(keyboard-key) = %d elements, want 3", got)
	}
	if got := len(root.ByClass("lifted")); got != 3 {
		t.Errorf("ByClass(lifted) = %d elements, want 3", got)
	}
	if got := len(root.ByClass("keyboard")); got != 0 {
		t.Errorf("ByClass(keyboard) = %d elements, want 0 (no prefix match)", got)
	}
	if got := len(root.ByData("key", "a")); got != 2 {
		t.Errorf("ByData(key, a) = %d elements, want 2", got)
	}
	if got := root.TextContent(); got != "aba" {
		t.Errorf("TextContent() = %q, want %q", got, "aba")
	}
}

func TestSortedStyle(t *testing.T) {
	e := NewElement("div")
	e.SetStyles(map[string]string{"width": "40px", "background-color": "#212529"})

	want := []string{"background-color: #212529", "width: 40px"}
	if got := e.SortedStyle(); !slices.Equal(got, want) {
		t.Errorf("SortedStyle() = %v, want %v", got, want)
	}
}

func TestRemoveChildNotPresent(t *testing.T) {
	root := NewElement("div")
	root.AppendChild(NewElement("span"))
	root.RemoveChild(NewElement("span"))
	if len(root.Children) != 1 {
		t.Errorf("len(Children) = %d, want 1", len(root.Children))
	}
}
