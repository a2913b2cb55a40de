package config

import (
	"errors"
	"strings"
	"testing"
)

func validOptions() Options {
	return Options{
		Metrics:    []string{"EXACT"},
		Statistics: []string{"skippingF1"},
		Files:      []string{"job1.out"},
	}
}

func TestValidate_MinimalValid(t *testing.T) {
	if err := validOptions().Validate(); err != nil {
		t.Errorf("Validate() returned error for valid options: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(o *Options)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "missing metric",
			modify:  func(o *Options) { o.Metrics = nil },
			wantErr: true,
			errMsg:  "metric",
		},
		{
			name:    "missing statistic",
			modify:  func(o *Options) { o.Statistics = nil },
			wantErr: true,
			errMsg:  "statistic",
		},
		{
			name:    "empty metric item",
			modify:  func(o *Options) { o.Metrics = []string{"EXACT", ""} },
			wantErr: true,
			errMsg:  "item 2 is empty",
		},
		{
			name:    "no files",
			modify:  func(o *Options) { o.Files = nil },
			wantErr: true,
			errMsg:  "input file",
		},
		{
			name:    "percentile zero",
			modify:  func(o *Options) { o.Percentiles = []float64{0} },
			wantErr: true,
			errMsg:  "percentiles",
		},
		{
			name:    "percentile above 100",
			modify:  func(o *Options) { o.Percentiles = []float64{100.5} },
			wantErr: true,
			errMsg:  "percentiles",
		},
		{
			name:   "percentile 100",
			modify: func(o *Options) { o.Percentiles = []float64{100} },
		},
		{
			name:    "unknown format",
			modify:  func(o *Options) { o.Format = "junit" },
			wantErr: true,
			errMsg:  "format",
		},
		{
			name:   "uppercase format",
			modify: func(o *Options) { o.Format = "JSON" },
		},
		{
			name:    "unknown input format",
			modify:  func(o *Options) { o.InputFormat = "csv" },
			wantErr: true,
			errMsg:  "input-format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOptions()
			tt.modify(&o)
			err := o.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Validate() error = %q, want it to mention %q", err, tt.errMsg)
			}
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	err := Options{}.Validate()

	var verrs *ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Validate() error type = %T, want *ValidationErrors", err)
	}
	if len(verrs.Errors) != 3 {
		t.Errorf("got %d errors, want 3: %v", len(verrs.Errors), err)
	}
	if !strings.Contains(err.Error(), "3 validation errors") {
		t.Errorf("error message = %q", err.Error())
	}
}
