package stats

import (
	"math"
	"sort"
)

// Descriptive summarizes a numeric sequence. Mean, median, variance, standard
// deviation, skewness, and kurtosis are rounded to 2 decimal places; count,
// mode, min, max, and range are reported as-is. Mode is nil for an empty
// input.
type Descriptive struct {
	Count    int      `json:"count"`
	Mean     float64  `json:"mean"`
	Median   float64  `json:"median"`
	Mode     *float64 `json:"mode"`
	Min      float64  `json:"min"`
	Max      float64  `json:"max"`
	Range    float64  `json:"range"`
	Variance float64  `json:"variance"`
	StdDev   float64  `json:"std_dev"`
	Skewness float64  `json:"skewness"`
	Kurtosis float64  `json:"kurtosis"`
}

// Describe computes descriptive statistics for a sequence of values.
//
// Variance and standard deviation use the sample (n-1 denominator) formula;
// a single-element input yields 0 for both. When several values are equally
// frequent, the smallest one is reported as the mode. Skewness is Pearson's
// second skewness coefficient, 3*(mean-median)/stdDev; kurtosis is the
// excess kurtosis; both are 0 when the standard deviation is 0.
func Describe(values []float64) Descriptive {
	if len(values) == 0 {
		return Descriptive{}
	}

	n := len(values)

	var sum float64
	minValue := values[0]
	maxValue := values[0]
	for _, v := range values {
		sum += v
		if v < minValue {
			minValue = v
		}
		if v > maxValue {
			maxValue = v
		}
	}
	exactMean := sum / float64(n)

	mean := round2(exactMean)
	median := round2(medianOf(values))
	mode := modeOf(values)

	var variance, stdDev float64
	if n > 1 {
		var squares float64
		for _, v := range values {
			d := v - exactMean
			squares += d * d
		}
		sampleVariance := squares / float64(n-1)
		variance = round2(sampleVariance)
		stdDev = round2(math.Sqrt(sampleVariance))
	}

	var skewness, kurtosis float64
	if stdDev != 0 {
		skewness = round2(3 * (mean - median) / stdDev)

		var fourths float64
		for _, v := range values {
			d := v - mean
			fourths += d * d * d * d
		}
		kurtosis = round2(fourths/float64(n)/math.Pow(stdDev, 4) - 3)
	}

	return Descriptive{
		Count:    n,
		Mean:     mean,
		Median:   median,
		Mode:     &mode,
		Min:      minValue,
		Max:      maxValue,
		Range:    maxValue - minValue,
		Variance: variance,
		StdDev:   stdDev,
		Skewness: skewness,
		Kurtosis: kurtosis,
	}
}

// medianOf returns the median without mutating the input.
func medianOf(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// modeOf returns the most frequent value. Frequency ties are broken by
// taking the smallest value, so the result is deterministic.
func modeOf(values []float64) float64 {
	counts := make(map[float64]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	mode := values[0]
	best := 0
	for v, c := range counts {
		if c > best || (c == best && v < mode) {
			mode = v
			best = c
		}
	}
	return mode
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
