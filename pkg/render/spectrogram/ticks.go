package spectrogram

import (
	"math"
	"strconv"
)

// TickIndices picks up to maxTicks evenly spaced indices into an array of n
// labels, always including the first and (when more than one tick fits) the
// last. A single tick lands on index 0.
func TickIndices(n, maxTicks int) []int {
	if n <= 0 || maxTicks <= 0 {
		return nil
	}
	num := min(maxTicks, n)
	if num == 1 {
		return []int{0}
	}
	out := make([]int, num)
	for i := range num {
		// Integer division floors for non-negative operands.
		out[i] = i * (n - 1) / (num - 1)
	}
	return out
}

// FormatFreq renders a frequency in Hz as kHz rounded to one decimal,
// e.g. 8000 -> "8 kHz", 1234 -> "1.2 kHz".
func FormatFreq(hz float64) string {
	khz := roundHalfUp(hz/100) / 10
	return strconv.FormatFloat(khz, 'f', -1, 64) + " kHz"
}

// FormatTime renders seconds rounded to at most two decimals,
// e.g. 1 -> "1s", 0.256 -> "0.26s".
func FormatTime(sec float64) string {
	t := roundHalfUp(sec*100) / 100
	return strconv.FormatFloat(t, 'f', -1, 64) + "s"
}

// roundHalfUp rounds halves toward positive infinity.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
