// SPDX-License-Identifier: MIT

package program

import (
	"fmt"
	"strings"
)

// Metric identifies the scoring function a program's raw fitness was
// computed with. The computations themselves live in package fitness.
type Metric uint8

const (
	MetricMSE Metric = iota
	MetricMAE
	MetricRMSE
	MetricPearson
	MetricSpearman
	MetricLogLoss

	numMetrics
)

var metricNames = [numMetrics]string{
	MetricMSE:      "mse",
	MetricMAE:      "mae",
	MetricRMSE:     "rmse",
	MetricPearson:  "pearson",
	MetricSpearman: "spearman",
	MetricLogLoss:  "logloss",
}

// Valid reports whether m is a supported metric.
func (m Metric) Valid() bool { return m < numMetrics }

// Criterion returns 1 if larger scores are better (correlations) and 0 if
// smaller scores are better (errors, log-loss).
func (m Metric) Criterion() int {
	switch m {
	case MetricPearson, MetricSpearman:
		return 1
	default:
		return 0
	}
}

// String returns the lowercase metric name.
func (m Metric) String() string {
	if !m.Valid() {
		return fmt.Sprintf("metric(%d)", uint8(m))
	}
	return metricNames[m]
}

// ParseMetric maps a name (case-insensitive) to its Metric.
func ParseMetric(name string) (Metric, error) {
	var key = strings.ToLower(strings.TrimSpace(name))
	for i := Metric(0); i < numMetrics; i++ {
		if metricNames[i] == key {
			return i, nil
		}
	}
	return 0, fmt.Errorf("ParseMetric(%q): %w", name, ErrUnknownMetric)
}
