package cache

import "strconv"

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey identifies a rendered output of kind ("spectrogram",
	// "keyboard") for an input hash.
	ArtifactKey(kind, inputHash string, opts ArtifactKeyOpts) string
	// PayloadKey identifies a payload normalized from raw power data.
	PayloadKey(inputHash string, maxHz float64) string
}

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format    string  `json:"format"`
	Width     float64 `json:"width,omitempty"`
	MaxHeight float64 `json:"max_height,omitempty"`
	Aspect    float64 `json:"aspect,omitempty"`
	Title     string  `json:"title,omitempty"`
	Ticks     [2]int  `json:"ticks,omitzero"`
	Scale     float64 `json:"scale,omitempty"`
	Unit      float64 `json:"unit,omitempty"`
	Container string  `json:"container,omitempty"`
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:<kind>:<hash>".
func (DefaultKeyer) ArtifactKey(kind, inputHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+kind, inputHash, opts)
}

// PayloadKey returns "payload:<hash>".
func (DefaultKeyer) PayloadKey(inputHash string, maxHz float64) string {
	return hashKey("payload", inputHash, strconv.FormatFloat(maxHz, 'f', -1, 64))
}

var _ Keyer = DefaultKeyer{}
