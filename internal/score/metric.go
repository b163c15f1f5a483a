package score

import (
	"encoding/json"
	"fmt"
	"math"
)

// Metric is one precision/recall/F1 triple. Undefined values are NaN.
type Metric struct {
	Precision float64
	Recall    float64
	F1        float64
}

// Report holds the three strictness tiers.
type Report struct {
	Span         Metric `json:"span"`
	SpanType     Metric `json:"span_type"`
	SpanTypeLink Metric `json:"span_type_link"`
}

// Compute derives a metric from a match count and the two totals. A zero
// denominator yields NaN rather than zero.
func Compute(matched, predicted, gold int) Metric {
	p := ratio(matched, predicted)
	r := ratio(matched, gold)
	return Metric{Precision: p, Recall: r, F1: harmonicMean(p, r)}
}

func ratio(num, den int) float64 {
	if den == 0 {
		return math.NaN()
	}
	return float64(num) / float64(den)
}

func harmonicMean(p, r float64) float64 {
	if math.IsNaN(p) || math.IsNaN(r) || p+r == 0 {
		return math.NaN()
	}
	return 2 * p * r / (p + r)
}

// String renders the metric in the fixed report layout.
func (m Metric) String() string {
	return fmt.Sprintf("Precision:%.4f Recall:%.4f F1:%.4f", m.Precision, m.Recall, m.F1)
}

// Defined reports whether all three values are defined.
func (m Metric) Defined() bool {
	return !math.IsNaN(m.Precision) && !math.IsNaN(m.Recall) && !math.IsNaN(m.F1)
}

type metricJSON struct {
	Precision *float64 `json:"precision"`
	Recall    *float64 `json:"recall"`
	F1        *float64 `json:"f1"`
}

// MarshalJSON encodes undefined values as null.
func (m Metric) MarshalJSON() ([]byte, error) {
	return json.Marshal(metricJSON{
		Precision: definedOrNil(m.Precision),
		Recall:    definedOrNil(m.Recall),
		F1:        definedOrNil(m.F1),
	})
}

// UnmarshalJSON decodes null values back to NaN.
func (m *Metric) UnmarshalJSON(data []byte) error {
	var raw metricJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Precision = nanIfNil(raw.Precision)
	m.Recall = nanIfNil(raw.Recall)
	m.F1 = nanIfNil(raw.F1)
	return nil
}

func definedOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func nanIfNil(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
