// Package pkg provides the core libraries for Keyscope keystroke acoustic
// visualization.
//
// # Overview
//
// Keyscope draws the two views of a keystroke acoustic analysis: a
// time-frequency spectrogram of the recording and a heat map of the
// keyboard keys found in the decoded text. The pkg directory is organized
// into four areas:
//
//  1. Drawing primitives - [colormap], [canvas] and [dom]
//  2. Renderers - [render/spectrogram] and [render/keyboard]
//  3. Output - [render/sink] serializes canvases and element trees
//  4. Orchestration - [pipeline] with [cache], [config] and [observability]
//
// # Architecture
//
// The typical data flow:
//
//	Analysis result / payload JSON
//	         ↓
//	    [render/spectrogram]      [render/keyboard]
//	    (canvas display list)     (element tree, painted to a canvas)
//	         ↓                         ↓
//	    [render/sink] → SVG / PNG / PDF / HTML / JSON
//
// # Quick Start
//
// Render a spectrogram payload to SVG:
//
//	import (
//	    "github.com/matzehuels/keyscope/pkg/canvas"
//	    "github.com/matzehuels/keyscope/pkg/render/sink"
//	    "github.com/matzehuels/keyscope/pkg/render/spectrogram"
//	)
//
//	p, _ := spectrogram.ReadFile("capture.json")
//	c := canvas.New("spectrogramCanvas", 800)
//	spectrogram.Render(c, p)
//	svg := sink.RenderSVG(c)
//
// Or let a [pipeline.Runner] render, serialize and cache in one call:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	artifacts, _ := runner.Keyboard(ctx, "hello world", pipeline.Options{
//	    Formats: []string{"html", "png"},
//	})
//
// # Main Packages
//
//   - [colormap]: the five-stop spectrogram ramp and the key heat hue
//   - [canvas]: drawing surface with a display list and attached chart state
//   - [dom]: minimal element tree standing in for page containers
//   - [render/spectrogram]: payload model, tick selection and rendering
//   - [render/keyboard]: static layout, character frequencies and rendering
//   - [render/sink]: SVG, PNG, PDF, HTML and JSON writers
//   - [pipeline]: render orchestration with caching and hooks
//   - [cache]: file, Redis and null artifact caches
//   - [config]: TOML configuration
//   - [errors]: coded errors
//
// [colormap]: https://pkg.go.dev/github.com/matzehuels/keyscope/pkg/colormap
// [canvas]: https://pkg.go.dev/github.com/matzehuels/keyscope/pkg/canvas
// [dom]: https://pkg.go.dev/github.com/matzehuels/keyscope/pkg/dom
// [render/spectrogram]: https://pkg.go.dev/github.com/matzehuels/keyscope/pkg/render/spectrogram
// [render/keyboard]: https://pkg.go.dev/github.com/matzehuels/keyscope/pkg/render/keyboard
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/keyscope/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/keyscope/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/keyscope/pkg/pipeline#Runner
// [cache]: https://pkg.go.dev/github.com/matzehuels/keyscope/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/keyscope/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/keyscope/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/keyscope/pkg/errors
package pkg
