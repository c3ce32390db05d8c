package cache

// ScopedKeyer wraps a Keyer with a prefix, so several tools or users can
// share one Redis without colliding.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "keyscope:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(kind, inputHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(kind, inputHash, opts)
}

// PayloadKey generates a prefixed key for normalized payloads.
func (k *ScopedKeyer) PayloadKey(inputHash string, maxHz float64) string {
	return k.prefix + k.inner.PayloadKey(inputHash, maxHz)
}
