package spectrogram

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultMaxHz is the frequency crop applied by FromPower; keystroke energy
// sits below 8 kHz.
const DefaultMaxHz = 8000

// powerFloor keeps log10 finite for silent bins and the normalization
// denominator non-zero for flat matrices.
const powerFloor = 1e-10

// FromPower converts a raw power matrix ([frequency bin][time frame]) into a
// normalized payload.
//
// Power is converted to decibels, rows above maxHz are dropped (freq is
// assumed to run from 0 to the Nyquist frequency), and the result is min-max
// normalized to [0, 1]. The decibel extents are recorded in MinValue and
// MaxValue. A maxHz of 0 or an empty freq keeps every row.
func FromPower(power [][]float64, time, freq []float64, maxHz float64) (*Payload, error) {
	src := &Payload{Data: power}
	if err := src.Validate(); err != nil {
		return nil, err
	}

	rows := cropRows(len(power), freq, maxHz)

	data := make([][]float64, rows)
	for i := range rows {
		row := make([]float64, len(power[i]))
		for j, v := range power[i] {
			row[j] = 10 * math.Log10(v+powerFloor)
		}
		data[i] = row
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range data {
		lo = math.Min(lo, floats.Min(row))
		hi = math.Max(hi, floats.Max(row))
	}
	span := hi - lo + powerFloor
	for _, row := range data {
		floats.AddConst(-lo, row)
		floats.Scale(1/span, row)
	}

	p := &Payload{
		Data:     data,
		Time:     append([]float64(nil), time...),
		MinValue: &lo,
		MaxValue: &hi,
	}
	if len(freq) > 0 {
		p.Freq = append([]float64(nil), freq[:min(rows, len(freq))]...)
	}
	return p, nil
}

// cropRows returns how many leading rows fall under maxHz.
func cropRows(rows int, freq []float64, maxHz float64) int {
	if maxHz <= 0 || len(freq) == 0 {
		return rows
	}
	nyquist := freq[len(freq)-1]
	if nyquist <= 0 {
		return rows
	}
	keep := max(int(float64(len(freq))*maxHz/nyquist), 1)
	return min(keep, len(freq), rows)
}
