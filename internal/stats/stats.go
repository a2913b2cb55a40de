// Package stats computes summary statistics over repeated-experiment observations.
package stats

import (
	"errors"
	"math"
)

// ErrEmpty is returned when a statistic is requested over no observations.
var ErrEmpty = errors.New("no observations")

// Mean returns the arithmetic mean of values, summed in order.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// SampleStdDev returns the Bessel-corrected standard deviation of values.
// A single observation has a standard deviation of 0.
func SampleStdDev(values []float64) (float64, error) {
	mean, err := Mean(values)
	if err != nil {
		return 0, err
	}
	if len(values) == 1 {
		return 0, nil
	}
	sq := 0.0
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)-1)), nil
}

// StandardError returns the sample standard deviation divided by the
// square root of the observation count.
func StandardError(values []float64) (float64, error) {
	sd, err := SampleStdDev(values)
	if err != nil {
		return 0, err
	}
	return sd / math.Sqrt(float64(len(values))), nil
}

// Summary holds the three statistics reported for an observation set.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	StdErr float64
}

// Summarize computes mean, standard deviation and standard error in one call.
func Summarize(values []float64) (Summary, error) {
	mean, err := Mean(values)
	if err != nil {
		return Summary{}, err
	}
	sd, _ := SampleStdDev(values)
	return Summary{
		Count:  len(values),
		Mean:   mean,
		StdDev: sd,
		StdErr: sd / math.Sqrt(float64(len(values))),
	}, nil
}
