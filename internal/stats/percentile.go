package stats

import (
	"fmt"
	"math"

	"github.com/HdrHistogram/hdrhistogram-go"
)

const (
	// percentileScale is the fixed-point resolution used to record
	// float observations into an integer histogram (4 decimal places)
	percentileScale = 1e4

	// percentileSigFigs is the histogram precision
	percentileSigFigs = 5
)

// Percentile is one requested quantile and its value.
type Percentile struct {
	Quantile float64 `json:"quantile" yaml:"quantile"`
	Value    float64 `json:"value" yaml:"value"`
}

// Percentiles returns the value at each quantile in qs (0-100].
//
// Observations are recorded into an HDR histogram as fixed-point offsets
// from the minimum, so negative values are supported and values are
// resolved to 1e-4.
func Percentiles(values []float64, qs []float64) ([]Percentile, error) {
	if len(values) == 0 {
		return nil, ErrEmpty
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("cannot compute percentiles of non-finite value %v", v)
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	highest := int64(math.Ceil((hi-lo)*percentileScale)) + 1
	if highest < 2 {
		highest = 2
	}
	hist := hdrhistogram.New(1, highest, percentileSigFigs)

	for _, v := range values {
		if err := hist.RecordValue(toFixed(v, lo)); err != nil {
			return nil, fmt.Errorf("recording %v: %w", v, err)
		}
	}

	result := make([]Percentile, 0, len(qs))
	for _, q := range qs {
		if q <= 0 || q > 100 {
			return nil, fmt.Errorf("percentile %v out of range (0, 100]", q)
		}
		result = append(result, Percentile{
			Quantile: q,
			Value:    fromFixed(hist.ValueAtQuantile(q), lo),
		})
	}
	return result, nil
}

func toFixed(v, offset float64) int64 {
	return int64(math.Round((v - offset) * percentileScale))
}

func fromFixed(v int64, offset float64) float64 {
	return float64(v)/percentileScale + offset
}
