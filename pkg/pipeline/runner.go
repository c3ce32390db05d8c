package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/keyscope/pkg/cache"
	"github.com/matzehuels/keyscope/pkg/canvas"
	"github.com/matzehuels/keyscope/pkg/dom"
	"github.com/matzehuels/keyscope/pkg/errors"
	"github.com/matzehuels/keyscope/pkg/observability"
	"github.com/matzehuels/keyscope/pkg/render/keyboard"
	"github.com/matzehuels/keyscope/pkg/render/sink"
	"github.com/matzehuels/keyscope/pkg/render/spectrogram"
)

// Runner renders visualizations with caching.
//
// The Runner is stateless except for the cache and logger. Every call
// builds a fresh canvas or document, so multiple goroutines can share one
// Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.TTLArtifact,
	}
}

// Spectrogram renders p into every requested format.
func (r *Runner) Spectrogram(ctx context.Context, p *spectrogram.Payload, opts Options) (Artifacts, error) {
	artifacts, _, err := r.SpectrogramWithCacheInfo(ctx, p, opts)
	return artifacts, err
}

// SpectrogramWithCacheInfo renders p and reports whether every artifact
// came from the cache. Unlike the renderer, it rejects an empty or ragged
// matrix with a coded error so callers can report it.
func (r *Runner) SpectrogramWithCacheInfo(ctx context.Context, p *spectrogram.Payload, opts Options) (Artifacts, bool, error) {
	if err := opts.ValidateAndSetDefaults(KindSpectrogram); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)
	if err := p.Validate(); err != nil {
		return nil, false, err
	}

	data, err := json.Marshal(p)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "hash payload")
	}

	return r.run(ctx, KindSpectrogram, cache.Hash(data), opts, func() (Artifacts, error) {
		c := canvas.New(DefaultCanvasID, opts.ParentWidth)
		spectrogram.New(opts.SpectrogramOptions()...).Render(c, p)

		r.Logger.Info("rendered spectrogram",
			"cells", c.Chart().Cells,
			"width", c.Width(),
			"height", c.Height())
		return renderCanvas(c, opts)
	})
}

// Keyboard renders the heat map of text into every requested format.
func (r *Runner) Keyboard(ctx context.Context, text string, opts Options) (Artifacts, error) {
	artifacts, _, err := r.KeyboardWithCacheInfo(ctx, text, opts)
	return artifacts, err
}

// KeyboardWithCacheInfo renders text and reports whether every artifact
// came from the cache. Empty text renders a neutral keyboard.
func (r *Runner) KeyboardWithCacheInfo(ctx context.Context, text string, opts Options) (Artifacts, bool, error) {
	if err := opts.ValidateAndSetDefaults(KindKeyboard); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	return r.run(ctx, KindKeyboard, cache.Hash([]byte(text)), opts, func() (Artifacts, error) {
		doc := dom.NewDocument()
		container := doc.CreateContainer(opts.Container)
		kb := keyboard.New(opts.KeyboardOptions()...).Render(doc, opts.Container, text)

		freq := keyboard.Count(text)
		r.Logger.Info("rendered keyboard",
			"chars", len(freq),
			"max", freq.Max())
		return renderKeyboard(container, kb, opts)
	})
}

// run serves every format from the cache or calls render and caches its
// output.
func (r *Runner) run(ctx context.Context, kind, inputHash string, opts Options, render func() (Artifacts, error)) (Artifacts, bool, error) {
	hooks := observability.Render()
	start := time.Now()
	hooks.OnRenderStart(ctx, kind, opts.Formats)

	if !opts.Refresh {
		if artifacts, ok := r.lookup(ctx, kind, inputHash, opts); ok {
			hooks.OnRenderComplete(ctx, kind, opts.Formats, time.Since(start), nil)
			r.Logger.Debug("served from cache", "kind", kind, "formats", opts.Formats)
			return artifacts, true, nil
		}
	}

	artifacts, err := render()
	hooks.OnRenderComplete(ctx, kind, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range artifacts {
		key := r.Keyer.ArtifactKey(kind, inputHash, opts.ArtifactKeyOpts(kind, format))
		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			r.Logger.Debug("cache write failed", "key", key, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	r.Logger.Info("wrote outputs",
		"kind", kind,
		"formats", opts.Formats,
		"duration", time.Since(start))
	return artifacts, false, nil
}

func (r *Runner) lookup(ctx context.Context, kind, inputHash string, opts Options) (Artifacts, bool) {
	artifacts := make(Artifacts, len(opts.Formats))
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(kind, inputHash, opts.ArtifactKeyOpts(kind, format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			observability.Cache().OnCacheMiss(ctx, "artifact")
			return nil, false
		}
		observability.Cache().OnCacheHit(ctx, "artifact")
		artifacts[format] = data
	}
	return artifacts, true
}

// NormalizePower converts raw power data into a normalized payload,
// caching the result by input and frequency crop.
func (r *Runner) NormalizePower(ctx context.Context, in *PowerInput, maxHz float64) (*spectrogram.Payload, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash power input")
	}
	key := r.Keyer.PayloadKey(cache.Hash(raw), maxHz)

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		if p, err := spectrogram.Decode(bytes.NewReader(data)); err == nil {
			observability.Cache().OnCacheHit(ctx, "payload")
			return p, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "payload")

	p, err := spectrogram.FromPower(in.Power, in.Time, in.Freq, maxHz)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(p); err == nil {
		if r.Cache.Set(ctx, key, data, cache.TTLPayload) == nil {
			observability.Cache().OnCacheSet(ctx, "payload", len(data))
		}
	}
	r.Logger.Debug("normalized power matrix",
		"rows", p.Rows(), "cols", p.Cols(),
		"min_db", *p.MinValue, "max_db", *p.MaxValue)
	return p, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func renderCanvas(c *canvas.Canvas, opts Options) (Artifacts, error) {
	out := make(Artifacts, len(opts.Formats))
	for _, format := range opts.Formats {
		var (
			data []byte
			err  error
		)
		switch format {
		case FormatSVG:
			data = sink.RenderSVG(c)
		case FormatPNG:
			data, err = sink.RenderPNG(c, sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(c)
		case FormatJSON:
			data, err = sink.RenderJSON(c)
		default:
			err = errors.New(errors.ErrCodeInvalidFormat, "format %q not supported for canvases", format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		out[format] = data
	}
	return out, nil
}

func renderKeyboard(container, kb *dom.Element, opts Options) (Artifacts, error) {
	out := make(Artifacts, len(opts.Formats))
	var painted *canvas.Canvas
	for _, format := range opts.Formats {
		switch format {
		case FormatHTML:
			var htmlOpts []sink.HTMLOption
			if opts.HTMLTitle != "" {
				htmlOpts = append(htmlOpts, sink.WithHTMLTitle(opts.HTMLTitle))
			}
			out[format] = sink.RenderHTML(container, htmlOpts...)
		case FormatJSON:
			data, err := sink.RenderElementJSON(container)
			if err != nil {
				return nil, fmt.Errorf("render %s: %w", format, err)
			}
			out[format] = data
		default:
			if painted == nil {
				painted = canvas.New(opts.Container, 0)
				if err := keyboard.Paint(kb, painted); err != nil {
					return nil, fmt.Errorf("paint keyboard: %w", err)
				}
			}
			arts, err := renderCanvas(painted, Options{Formats: []string{format}, Scale: opts.Scale})
			if err != nil {
				return nil, err
			}
			out[format] = arts[format]
		}
	}
	return out, nil
}
