package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports render and cache events as debug log lines.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks creates hooks that log to l, or to the default logger if l
// is nil.
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{logger: l.WithPrefix("hooks")}
}

func (h *LogHooks) OnRenderStart(_ context.Context, kind string, formats []string) {
	h.logger.Debug("render start", "kind", kind, "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, kind string, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "kind", kind, "formats", formats, "duration", d, "err", err)
		return
	}
	h.logger.Debug("render complete", "kind", kind, "formats", formats, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

var (
	_ RenderHooks = (*LogHooks)(nil)
	_ CacheHooks  = (*LogHooks)(nil)
)
