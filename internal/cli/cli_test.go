package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/keyscope/pkg/errors"
	"github.com/matzehuels/keyscope/pkg/observability"
	"github.com/matzehuels/keyscope/pkg/pipeline"
	"github.com/matzehuels/keyscope/pkg/render"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"svg"}},
		{"png", []string{"png"}},
		{"svg,png", []string{"svg", "png"}},
		{" svg , pdf ,", []string{"svg", "pdf"}},
	}

	for _, tt := range tests {
		if got := parseFormats(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "capture.json", "capture"},
		{"", "dir/capture.json", "dir/capture"},
		{"", "-", "spectrogram"},
		{"", "", "spectrogram"},
		{"out.svg", "capture.json", "out"},
		{"out.html", "", "out"},
		{"out.v2", "capture.json", "out.v2"},
	}

	for _, tt := range tests {
		if got := basePath(tt.output, tt.input, "spectrogram"); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name   string
		params artifactWriteParams
		want   map[string]string
	}{
		{
			name:   "single format explicit output",
			params: artifactWriteParams{formats: []string{"png"}, input: "a.json", output: "shot.png"},
			want:   map[string]string{"png": "shot.png"},
		},
		{
			name:   "multiple formats",
			params: artifactWriteParams{formats: []string{"svg", "json"}, input: "a.json", output: "out.svg"},
			want:   map[string]string{"svg": "out.svg", "json": "out.json"},
		},
		{
			name:   "derived from input",
			params: artifactWriteParams{formats: []string{"svg"}, input: "a.json"},
			want:   map[string]string{"svg": "a.svg"},
		},
		{
			name:   "input collision",
			params: artifactWriteParams{formats: []string{"json"}, input: "a.json", fallback: "spectrogram"},
			want:   map[string]string{"json": "a_spectrogram.json"},
		},
		{
			name:   "suffix",
			params: artifactWriteParams{formats: []string{"html"}, input: "r.json", output: "run.html", suffix: "keyboard"},
			want:   map[string]string{"html": "run_keyboard.html"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.params.outputPaths(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("outputPaths() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	written, err := writeArtifacts(artifactWriteParams{
		artifacts: pipeline.Artifacts{"svg": []byte("<svg/>"), "json": []byte("{}")},
		formats:   []string{"svg", "json", "png"},
		output:    filepath.Join(dir, "out"),
	})
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}

	want := []string{filepath.Join(dir, "out.svg"), filepath.Join(dir, "out.json")}
	if !reflect.DeepEqual(written, want) {
		t.Errorf("written = %v, want %v", written, want)
	}
	data, err := os.ReadFile(want[0])
	if err != nil || string(data) != "<svg/>" {
		t.Errorf("out.svg = %q, %v", data, err)
	}
}

func TestWriteArtifactsRejectsDirectory(t *testing.T) {
	_, err := writeArtifacts(artifactWriteParams{
		artifacts: pipeline.Artifacts{"svg": []byte("<svg/>")},
		formats:   []string{"svg"},
		output:    "somewhere/",
	})
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("writeArtifacts(dir) error = %v, want INVALID_PATH", err)
	}
}

func TestCheckConverter(t *testing.T) {
	if err := checkConverter([]string{"svg", "png"}); err != nil {
		t.Errorf("checkConverter(svg, png) = %v, want nil", err)
	}
	err := checkConverter([]string{"pdf"})
	if render.Available() {
		if err != nil {
			t.Errorf("checkConverter(pdf) = %v with rsvg-convert installed", err)
		}
		return
	}
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("checkConverter(pdf) = %v, want UNSUPPORTED", err)
	}
}

func TestSplitResultFormats(t *testing.T) {
	tests := []struct {
		in       string
		sg, kb []string
		wantErr  bool
	}{
		{"", []string{"svg"}, []string{"html"}, false},
		{"html", nil, []string{"html"}, false},
		{"svg,html", []string{"svg"}, []string{"svg", "html"}, false},
		{"png,json", []string{"png", "json"}, []string{"png", "json"}, false},
		{"gif", nil, nil, true},
	}

	for _, tt := range tests {
		sg, kb, err := splitResultFormats(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("splitResultFormats(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !reflect.DeepEqual(sg, tt.sg) || !reflect.DeepEqual(kb, tt.kb) {
			t.Errorf("splitResultFormats(%q) = %v, %v, want %v, %v", tt.in, sg, kb, tt.sg, tt.kb)
		}
	}
}

func TestKeyboardText(t *testing.T) {
	file := filepath.Join(t.TempDir(), "text.txt")
	if err := os.WriteFile(file, []byte("hello world\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		args    []string
		file    string
		want    string
		wantErr bool
	}{
		{"args joined", []string{"hello", "world"}, "", "hello world", false},
		{"no text", nil, "", "", false},
		{"file", nil, file, "hello world", false},
		{"both", []string{"x"}, file, "", true},
		{"missing file", nil, file + ".missing", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := keyboardText(tt.args, tt.file)
			if (err != nil) != tt.wantErr {
				t.Fatalf("keyboardText() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("keyboardText() = %q, want %q", got, tt.want)
			}
		})
	}
}

// =============================================================================
// Command Tests
// =============================================================================

// runCLI executes the root command with isolated config and cache dirs.
func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Cleanup(observability.Reset)

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestSpectrogramCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "capture.json")
	writeJSON(t, input, map[string]any{
		"data": [][]float64{{0, 0.5}, {1, 0.25}},
		"time": []float64{0, 0.5},
		"freq": []float64{0, 4000},
	})

	if err := runCLI(t, "spectrogram", input, "-f", "svg,json", "--no-cache"); err != nil {
		t.Fatalf("spectrogram: %v", err)
	}

	svg, err := os.ReadFile(filepath.Join(dir, "capture.svg"))
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !strings.Contains(string(svg), "Keyboard Acoustic Spectrogram") {
		t.Error("svg is missing the title")
	}
	if _, err := os.Stat(filepath.Join(dir, "capture_spectrogram.json")); err != nil {
		t.Errorf("json artifact must not overwrite the input: %v", err)
	}
	if _, err := os.ReadFile(input); err != nil {
		t.Fatal(err)
	}
}

func TestSpectrogramCommandRejects(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.json")
	writeJSON(t, empty, map[string]any{"data": [][]float64{}})

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"html is keyboard only", []string{"spectrogram", empty, "-f", "html"}, errors.ErrCodeInvalidFormat},
		{"empty matrix", []string{"spectrogram", empty, "--no-cache"}, errors.ErrCodeEmptyData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := runCLI(t, tt.args...); !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestKeyboardCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "kb")
	if err := runCLI(t, "keyboard", "aab", "-o", out, "-f", "html,json", "--title", "Capture 3"); err != nil {
		t.Fatalf("keyboard: %v", err)
	}

	html, err := os.ReadFile(out + ".html")
	if err != nil {
		t.Fatalf("read html: %v", err)
	}
	if !strings.Contains(string(html), `data-key="a"`) || !strings.Contains(string(html), "Detected Text:") {
		t.Error("html is missing keys or caption")
	}
	if !strings.Contains(string(html), "<title>Capture 3</title>") {
		t.Error("html is missing the --title")
	}
	if _, err := os.Stat(out + ".json"); err != nil {
		t.Errorf("json artifact: %v", err)
	}
}

func TestResultCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "result.json")
	writeJSON(t, input, map[string]any{
		"status":              "success",
		"spectrogram":         map[string]any{"data": [][]float64{{0.2, 0.8}}},
		"predicted_text":      "hello",
		"accuracy_percentage": 91.5,
	})

	if err := runCLI(t, "result", input, "--no-cache"); err != nil {
		t.Fatalf("result: %v", err)
	}
	for _, name := range []string{"result_spectrogram.svg", "result_keyboard.html"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestResultCommandFailedAnalysis(t *testing.T) {
	input := filepath.Join(t.TempDir(), "result.json")
	writeJSON(t, input, map[string]any{"status": "error", "error": "no audio"})

	if err := runCLI(t, "result", input); !errors.Is(err, errors.ErrCodeInvalidPayload) {
		t.Errorf("error = %v, want INVALID_PAYLOAD", err)
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[spectrogram]\nbogus = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCLI(t, "--config", bad, "config"); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("bad config error = %v, want INVALID_CONFIG", err)
	}
	if err := runCLI(t, "--config", filepath.Join(dir, "missing.toml"), "config"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("missing config error = %v, want NOT_FOUND", err)
	}
	if err := runCLI(t, "config"); err != nil {
		t.Errorf("default config: %v", err)
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		if err := runCLI(t, "completion", shell); err != nil {
			t.Errorf("completion %s: %v", shell, err)
		}
	}
	if err := runCLI(t, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh should fail")
	}
}
