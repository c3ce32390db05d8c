package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/keyscope/pkg/errors"
	"github.com/matzehuels/keyscope/pkg/pipeline"
	"github.com/matzehuels/keyscope/pkg/render"
)

// knownExts are the file extensions basePath strips from an output path.
var knownExts = map[string]bool{
	pipeline.FormatSVG:  true,
	pipeline.FormatPNG:  true,
	pipeline.FormatPDF:  true,
	pipeline.FormatJSON: true,
	pipeline.FormatHTML: true,
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input; stdin ("-") or an
// empty input falls back to fallback. A known format extension on output is
// stripped.
func basePath(output, input, fallback string) string {
	if output == "" {
		if input == "" || input == "-" {
			return fallback
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if knownExts[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactWriteParams describes one batch of rendered files.
type artifactWriteParams struct {
	artifacts pipeline.Artifacts
	formats   []string
	input     string
	output    string
	fallback  string
	suffix    string
}

// outputPaths returns the file each format is written to. A single format
// with an explicit output goes exactly there; otherwise files are named
// base[_suffix].format. A path that would overwrite the input gets the
// fallback name appended.
func (p artifactWriteParams) outputPaths() map[string]string {
	paths := make(map[string]string, len(p.formats))
	if len(p.formats) == 1 && p.output != "" && p.suffix == "" {
		paths[p.formats[0]] = p.output
		return paths
	}
	base := basePath(p.output, p.input, p.fallback)
	if p.suffix != "" {
		base += "_" + p.suffix
	}
	for _, f := range p.formats {
		path := base + "." + f
		if path == p.input {
			path = base + "_" + p.fallback + "." + f
		}
		paths[f] = path
	}
	return paths
}

// writeArtifacts writes every artifact and returns the written paths in
// format order.
func writeArtifacts(p artifactWriteParams) ([]string, error) {
	paths := p.outputPaths()
	written := make([]string, 0, len(p.formats))
	for _, f := range p.formats {
		data, ok := p.artifacts[f]
		if !ok {
			continue
		}
		path := paths[f]
		if err := errors.ValidateOutputPath(path); err != nil {
			return written, err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// checkConverter fails early when PDF output is requested but rsvg-convert
// is missing, before any rendering work is done.
func checkConverter(formats []string) error {
	if slices.Contains(formats, pipeline.FormatPDF) && !render.Available() {
		_, err := render.ToPDF(nil)
		return err
	}
	return nil
}
