package pipeline

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/keyscope/pkg/errors"
	"github.com/matzehuels/keyscope/pkg/render/spectrogram"
)

// StatusSuccess is the status of a completed analysis.
const StatusSuccess = "success"

// Result is the response of a keystroke analysis: the spectrogram of the
// recording and the text decoded from it.
type Result struct {
	Status             string               `json:"status"`
	Spectrogram        *spectrogram.Payload `json:"spectrogram,omitempty"`
	PredictedText      string               `json:"predicted_text"`
	AccuracyPercentage float64              `json:"accuracy_percentage,omitempty"`
	ConfidenceScores   []float64            `json:"confidence_scores,omitempty"`

	// Error is set instead of the fields above when the analysis failed.
	Error string `json:"error,omitempty"`
}

// Err reports a failed analysis as an error.
func (r *Result) Err() error {
	if r.Error != "" {
		return errors.New(errors.ErrCodeInvalidPayload, "analysis failed: %s", r.Error)
	}
	if r.Status != StatusSuccess {
		return errors.New(errors.ErrCodeInvalidPayload, "analysis status %q", r.Status)
	}
	return nil
}

// DecodeResult reads a result envelope from r.
func DecodeResult(r io.Reader) (*Result, error) {
	var res Result
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPayload, err, "decode result")
	}
	return &res, nil
}

// ReadResult decodes the result envelope stored at path.
func ReadResult(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "open %s", path)
		}
		return nil, err
	}
	defer f.Close()
	return DecodeResult(f)
}

// PowerInput is a raw spectrogram as produced by a short-time Fourier
// transform: power indexed [frequency bin][time frame] with its axes.
type PowerInput struct {
	Power [][]float64 `json:"power"`
	Time  []float64   `json:"time,omitempty"`
	Freq  []float64   `json:"freq,omitempty"`
}

// DecodePower reads a PowerInput from r.
func DecodePower(r io.Reader) (*PowerInput, error) {
	var in PowerInput
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPayload, err, "decode power input")
	}
	return &in, nil
}
