package spectrogram

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/keyscope/pkg/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		p    *Payload
		code errors.Code
	}{
		{"nil", nil, errors.ErrCodeEmptyData},
		{"no data", &Payload{}, errors.ErrCodeEmptyData},
		{"empty row", &Payload{Data: [][]float64{{}}}, errors.ErrCodeEmptyData},
		{"ragged", &Payload{Data: [][]float64{{1, 2}, {3}}}, errors.ErrCodeInvalidPayload},
		{"ok", &Payload{Data: [][]float64{{1}}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Validate() = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	p, err := Decode(strings.NewReader(`{"data":[[0,0.5],[1,0.25]],"time":[0,0.1],"freq":[0,4000],"min_value":-100,"max_value":-20}`))
	if err != nil {
		t.Fatal(err)
	}
	if p.Rows() != 2 || p.Cols() != 2 {
		t.Errorf("shape = %dx%d", p.Rows(), p.Cols())
	}
	if p.MinValue == nil || *p.MinValue != -100 || p.MaxValue == nil || *p.MaxValue != -20 {
		t.Errorf("extents = %v, %v", p.MinValue, p.MaxValue)
	}

	_, err = Decode(strings.NewReader(`{"data":`))
	if !errors.Is(err, errors.ErrCodeInvalidPayload) {
		t.Errorf("truncated input: got %v", err)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "capture.json")
	if err := os.WriteFile(path, []byte(`{"data":[[1]]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Data[0][0] != 1 {
		t.Errorf("data = %v", p.Data)
	}

	_, err = ReadFile(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("missing file: got %v", err)
	}
}

func TestFromPower(t *testing.T) {
	power := [][]float64{
		{1, 10},
		{100, 1000},
		{5, 5},
		{7, 7},
	}
	freq := []float64{0, 4000, 8000, 12000}
	p, err := FromPower(power, []float64{0, 0.1}, freq, 8000)
	if err != nil {
		t.Fatal(err)
	}

	// int(4 * 8000 / 12000) = 2 rows survive the crop.
	if p.Rows() != 2 || len(p.Freq) != 2 {
		t.Fatalf("rows = %d, freq = %v", p.Rows(), p.Freq)
	}
	if math.Abs(*p.MinValue-0) > 1e-6 || math.Abs(*p.MaxValue-30) > 1e-6 {
		t.Errorf("extents = %v, %v, want 0, 30", *p.MinValue, *p.MaxValue)
	}
	want := [][]float64{{0, 1.0 / 3}, {2.0 / 3, 1}}
	for i := range want {
		for j := range want[i] {
			if math.Abs(p.Data[i][j]-want[i][j]) > 1e-6 {
				t.Errorf("data[%d][%d] = %v, want %v", i, j, p.Data[i][j], want[i][j])
			}
		}
	}
	if power[0][0] != 1 {
		t.Error("input mutated")
	}
}

func TestFromPowerNoCrop(t *testing.T) {
	p, err := FromPower([][]float64{{0, 0}, {0, 0}}, nil, nil, 8000)
	if err != nil {
		t.Fatal(err)
	}
	if p.Rows() != 2 {
		t.Errorf("rows = %d, want 2", p.Rows())
	}
	// A flat matrix normalizes to zero rather than NaN.
	for _, row := range p.Data {
		for _, v := range row {
			if v != 0 {
				t.Errorf("flat value = %v, want 0", v)
			}
		}
	}
}

func TestFromPowerInvalid(t *testing.T) {
	if _, err := FromPower(nil, nil, nil, 0); !errors.Is(err, errors.ErrCodeEmptyData) {
		t.Errorf("nil power: got %v", err)
	}
}
