package keyboard

import "strings"

// DefaultUnit is the width of a 1.0 key and the height of every key, in pixels.
const DefaultUnit = 40

// KeyDescriptor is the static metadata of one key.
type KeyDescriptor struct {
	Label string  `json:"label"`
	Width float64 `json:"width"` // multiple of the key unit
	Key   string  `json:"key"`   // lowercase label, matched against text
}

var wideKeys = map[string]float64{
	"Backspace": 2,
	"Tab":       1.5,
	"Caps":      1.75,
	"Enter":     2.25,
	"Shift":     2.5,
	"Ctrl":      1.5,
	"Win":       1.25,
	"Alt":       1.25,
	"Space":     6.5,
	"Menu":      1.25,
	`\`:         1.5,
}

// layout is built once at init and never mutated; Layout hands out copies.
var layout = buildLayout([][]string{
	{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "=", "Backspace"},
	{"Tab", "q", "w", "e", "r", "t", "y", "u", "i", "o", "p", "[", "]", `\`},
	{"Caps", "a", "s", "d", "f", "g", "h", "j", "k", "l", ";", "'", "Enter"},
	{"Shift", "z", "x", "c", "v", "b", "n", "m", ",", ".", "/", "Shift"},
	{"Ctrl", "Win", "Alt", "Space", "Alt", "Menu", "Ctrl"},
})

func buildLayout(rows [][]string) [][]KeyDescriptor {
	out := make([][]KeyDescriptor, len(rows))
	for i, row := range rows {
		out[i] = make([]KeyDescriptor, len(row))
		for j, label := range row {
			w, ok := wideKeys[label]
			if !ok {
				w = 1
			}
			out[i][j] = KeyDescriptor{Label: label, Width: w, Key: strings.ToLower(label)}
		}
	}
	return out
}

// Layout returns a copy of the keyboard rows, top to bottom.
func Layout() [][]KeyDescriptor {
	out := make([][]KeyDescriptor, len(layout))
	for i, row := range layout {
		out[i] = append([]KeyDescriptor(nil), row...)
	}
	return out
}

// KeyCount returns the number of keys on the layout.
func KeyCount() int {
	n := 0
	for _, row := range layout {
		n += len(row)
	}
	return n
}
