package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{name: "single", values: []float64{0.5}, want: 0.5},
		{name: "three", values: []float64{1, 2, 3}, want: 2},
		{name: "negative", values: []float64{-1, 1}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mean(tt.values)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestEmpty(t *testing.T) {
	_, err := Mean(nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = SampleStdDev([]float64{})
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = StandardError(nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Summarize(nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Percentiles(nil, []float64{50})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestSingleObservation(t *testing.T) {
	s, err := Summarize([]float64{0.42})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 0.42, s.Mean)
	assert.Equal(t, 0.0, s.StdDev)
	assert.Equal(t, 0.0, s.StdErr)
}

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 2.0, s.Mean, 1e-12)
	assert.InDelta(t, 1.0, s.StdDev, 1e-12)
	assert.InDelta(t, 1/math.Sqrt(3), s.StdErr, 1e-12)

	se, err := StandardError([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 0.5774, se, 1e-4)
}

func TestSummarize_TwoRuns(t *testing.T) {
	s, err := Summarize([]float64{0.8, 0.6})
	require.NoError(t, err)
	assert.InDelta(t, 0.7, s.Mean, 1e-12)
	assert.InDelta(t, 0.1414, s.StdDev, 1e-4)
	assert.InDelta(t, 0.1, s.StdErr, 1e-12)
}

func TestPercentiles(t *testing.T) {
	values := []float64{10, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	ps, err := Percentiles(values, []float64{50, 90, 100})
	require.NoError(t, err)
	require.Len(t, ps, 3)

	assert.Equal(t, 50.0, ps[0].Quantile)
	assert.InDelta(t, 5.0, ps[0].Value, 1e-9)
	assert.InDelta(t, 9.0, ps[1].Value, 1e-9)
	assert.InDelta(t, 10.0, ps[2].Value, 1e-9)
}

func TestPercentiles_NegativeAndFractional(t *testing.T) {
	ps, err := Percentiles([]float64{-0.25, 0.5, 0.75}, []float64{50})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, ps[0].Value, 1e-9)
}

func TestPercentiles_Constant(t *testing.T) {
	ps, err := Percentiles([]float64{0.3, 0.3}, []float64{50, 99})
	require.NoError(t, err)
	assert.InDelta(t, 0.3, ps[0].Value, 1e-9)
	assert.InDelta(t, 0.3, ps[1].Value, 1e-9)
}

func TestPercentiles_Invalid(t *testing.T) {
	_, err := Percentiles([]float64{1, 2}, []float64{0})
	assert.Error(t, err)

	_, err = Percentiles([]float64{1, 2}, []float64{101})
	assert.Error(t, err)

	_, err = Percentiles([]float64{1, math.NaN()}, []float64{50})
	assert.Error(t, err)
}
