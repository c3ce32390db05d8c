// Package pipeline runs keyscope renders end to end.
//
// A [Runner] takes a spectrogram payload or decoded text, renders it with
// the matching renderer, serializes the result into every requested format
// and caches the bytes. CLI commands and any embedding service share this
// path so caching and hooks behave the same everywhere.
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	opts := pipeline.OptionsFromConfig(cfg)
//	opts.Formats = []string{"svg", "png"}
//	artifacts, err := runner.Spectrogram(ctx, payload, opts)
//	svg := artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/keyscope/pkg/cache"
	"github.com/matzehuels/keyscope/pkg/config"
	"github.com/matzehuels/keyscope/pkg/errors"
	"github.com/matzehuels/keyscope/pkg/render/keyboard"
	"github.com/matzehuels/keyscope/pkg/render/sink"
	"github.com/matzehuels/keyscope/pkg/render/spectrogram"
)

// Visualization kinds.
const (
	KindSpectrogram = spectrogram.ChartKind
	KindKeyboard    = keyboard.ChartKind
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatHTML = "html"
)

// SpectrogramFormats are the formats a spectrogram can be written in.
var SpectrogramFormats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON}

// KeyboardFormats are the formats a keyboard can be written in.
var KeyboardFormats = []string{FormatHTML, FormatSVG, FormatPNG, FormatPDF, FormatJSON}

// DefaultCanvasID names the spectrogram canvas.
const DefaultCanvasID = "spectrogramCanvas"

// Artifacts maps a format to its rendered bytes.
type Artifacts map[string][]byte

// Options controls a render. Zero values fall back to the renderer defaults.
type Options struct {
	Formats []string `json:"formats"`

	// ParentWidth is the layout width of the spectrogram's container;
	// 0 means unknown, which selects FallbackWidth.
	ParentWidth   float64 `json:"parent_width,omitempty"`
	FallbackWidth float64 `json:"fallback_width,omitempty"`
	MaxHeight     float64 `json:"max_height,omitempty"`
	Aspect        float64 `json:"aspect,omitempty"`
	Title         string  `json:"title,omitempty"`
	FreqTicks     int     `json:"freq_ticks,omitempty"`
	TimeTicks     int     `json:"time_ticks,omitempty"`
	MaxHz         float64 `json:"max_hz,omitempty"`

	KeyUnit   float64 `json:"key_unit,omitempty"`
	Container string  `json:"container,omitempty"`
	// HTMLTitle replaces the default title of the keyboard HTML document.
	HTMLTitle string `json:"html_title,omitempty"`

	Scale float64 `json:"scale,omitempty"`

	// Refresh skips cache lookups; results are still written back.
	Refresh bool `json:"-"`

	Logger *log.Logger `json:"-"`
}

// OptionsFromConfig maps a configuration onto render options.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Formats:       slices.Clone(cfg.Output.Formats),
		FallbackWidth: cfg.Spectrogram.FallbackWidth,
		MaxHeight:     cfg.Spectrogram.MaxHeight,
		Aspect:        cfg.Spectrogram.Aspect,
		Title:         cfg.Spectrogram.Title,
		FreqTicks:     cfg.Spectrogram.FreqTicks,
		TimeTicks:     cfg.Spectrogram.TimeTicks,
		MaxHz:         cfg.Spectrogram.MaxHz,
		KeyUnit:       cfg.Keyboard.KeyUnit,
		Container:     cfg.Keyboard.Container,
		Scale:         cfg.Output.Scale,
	}
}

// ValidateFormat checks a single format against the formats of kind.
func ValidateFormat(kind, format string) error {
	valid := formatsFor(kind)
	if !slices.Contains(valid, format) {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid %s format %q (valid: %s)", kind, format, strings.Join(valid, ", "))
	}
	return nil
}

// ValidateFormats checks every format.
func ValidateFormats(kind string, formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(kind, f); err != nil {
			return err
		}
	}
	return nil
}

func formatsFor(kind string) []string {
	if kind == KindKeyboard {
		return KeyboardFormats
	}
	return SpectrogramFormats
}

// ValidateAndSetDefaults fills unset fields and checks formats for kind.
func (o *Options) ValidateAndSetDefaults(kind string) error {
	if len(o.Formats) == 0 {
		o.Formats = []string{formatsFor(kind)[0]}
	}
	if err := ValidateFormats(kind, o.Formats); err != nil {
		return err
	}
	if o.Scale <= 0 {
		o.Scale = sink.DefaultScale
	}
	if o.KeyUnit <= 0 {
		o.KeyUnit = keyboard.DefaultUnit
	}
	if o.Container == "" {
		o.Container = keyboard.DefaultContainer
	}
	if err := errors.ValidateContainerID(o.Container); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SpectrogramOptions converts the options into renderer options.
func (o *Options) SpectrogramOptions() []spectrogram.Option {
	return []spectrogram.Option{
		spectrogram.WithLogger(o.Logger),
		spectrogram.WithTitle(o.Title),
		spectrogram.WithFallbackWidth(o.FallbackWidth),
		spectrogram.WithMaxHeight(o.MaxHeight),
		spectrogram.WithAspect(o.Aspect),
		spectrogram.WithTickCounts(o.FreqTicks, o.TimeTicks),
	}
}

// KeyboardOptions converts the options into renderer options.
func (o *Options) KeyboardOptions() []keyboard.Option {
	return []keyboard.Option{
		keyboard.WithLogger(o.Logger),
		keyboard.WithKeyUnit(o.KeyUnit),
	}
}

// ArtifactKeyOpts returns cache key options for one artifact.
func (o *Options) ArtifactKeyOpts(kind, format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	switch kind {
	case KindSpectrogram:
		k.Width = o.ParentWidth
		if k.Width <= 0 {
			k.Width = o.FallbackWidth
		}
		k.MaxHeight = o.MaxHeight
		k.Aspect = o.Aspect
		k.Title = o.Title
		k.Ticks = [2]int{o.FreqTicks, o.TimeTicks}
	case KindKeyboard:
		k.Unit = o.KeyUnit
		k.Container = o.Container
		k.Title = o.HTMLTitle
	}
	return k
}
