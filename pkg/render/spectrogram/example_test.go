package spectrogram_test

import (
	"fmt"

	"github.com/matzehuels/keyscope/pkg/canvas"
	"github.com/matzehuels/keyscope/pkg/render/spectrogram"
)

func ExampleRenderer_Render() {
	c := canvas.New("spectrogramCanvas", 100)
	spectrogram.New().Render(c, &spectrogram.Payload{
		Data: [][]float64{{0, 1}, {0.5, 0.25}},
		Time: []float64{0, 1},
		Freq: []float64{0, 4000},
	})

	fmt.Printf("%vx%v\n", c.Width(), c.Height())
	fmt.Println(c.Chart().Cells, "cells")
	for _, tick := range c.Chart().FreqTicks {
		fmt.Println(tick.Label)
	}
	// Output:
	// 100x60
	// 4 cells
	// 0 kHz
	// 4 kHz
}

func ExampleTickIndices() {
	fmt.Println(spectrogram.TickIndices(129, 8))
	// Output: [0 18 36 54 73 91 109 128]
}
