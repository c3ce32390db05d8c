package spectrogram

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/keyscope/pkg/errors"
)

// Payload is the input of a spectrogram render.
type Payload struct {
	// Data is indexed [frequency bin][time frame], values in [0, 1].
	Data [][]float64 `json:"data"`
	// Time holds one label in seconds per column. Optional.
	Time []float64 `json:"time,omitempty"`
	// Freq holds one label in Hz per row. Optional.
	Freq []float64 `json:"freq,omitempty"`

	// MinValue and MaxValue are the decibel extents the data was
	// normalized from, when known.
	MinValue *float64 `json:"min_value,omitempty"`
	MaxValue *float64 `json:"max_value,omitempty"`
}

// Rows returns the number of frequency bins.
func (p *Payload) Rows() int {
	if p == nil {
		return 0
	}
	return len(p.Data)
}

// Cols returns the number of time frames.
func (p *Payload) Cols() int {
	if p == nil || len(p.Data) == 0 {
		return 0
	}
	return len(p.Data[0])
}

// Validate checks the matrix invariants: at least one row and one column,
// and all rows of equal length.
func (p *Payload) Validate() error {
	if p == nil || p.Data == nil {
		return errors.New(errors.ErrCodeEmptyData, "spectrogram payload has no data")
	}
	rows, cols := p.Rows(), p.Cols()
	if rows == 0 || cols == 0 {
		return errors.New(errors.ErrCodeEmptyData, "spectrogram matrix is %dx%d", rows, cols)
	}
	for i, row := range p.Data {
		if len(row) != cols {
			return errors.New(errors.ErrCodeInvalidPayload,
				"row %d has %d columns, want %d", i, len(row), cols)
		}
	}
	return nil
}

// Decode reads a JSON payload from r. It does not validate the matrix;
// rendering an invalid payload is a no-op.
func Decode(r io.Reader) (*Payload, error) {
	var p Payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPayload, err, "decode spectrogram payload")
	}
	return &p, nil
}

// ReadFile decodes the JSON payload stored at path.
func ReadFile(path string) (*Payload, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "open %s", path)
		}
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}
