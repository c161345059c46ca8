// Package progress compares consecutive self-assessment entries and
// classifies the overall movement.
package progress

import "time"

// DeltaLabel buckets a signed per-metric change.
type DeltaLabel string

const (
	DeltaStrongUp   DeltaLabel = "strong_up"
	DeltaMildUp     DeltaLabel = "mild_up"
	DeltaNone       DeltaLabel = "none"
	DeltaMildDown   DeltaLabel = "mild_down"
	DeltaStrongDown DeltaLabel = "strong_down"
)

// Trend is the majority-vote direction across all metrics.
type Trend string

const (
	TrendPositive Trend = "positive"
	TrendNegative Trend = "negative"
	TrendStable   Trend = "stable"
)

// MetricDef names one tracked metric.
type MetricDef struct {
	Key   string
	Label string
}

// DefaultMetrics is the fixed metric template of the progress tool.
var DefaultMetrics = []MetricDef{
	{Key: "energy", Label: "Energy"},
	{Key: "confidence", Label: "Confidence"},
	{Key: "clarity", Label: "Clarity of direction"},
	{Key: "discipline", Label: "Discipline"},
	{Key: "satisfaction", Label: "Satisfaction"},
}

// Entry is one progress check-in. Entries form an append-only list,
// newest last.
type Entry struct {
	Date       time.Time      `json:"date"`
	Values     map[string]int `json:"values"`
	MainFocus  string         `json:"main_focus"`
	KeyThought string         `json:"key_thought"`
}

// MetricDelta is the computed change of one metric between two
// consecutive entries.
type MetricDelta struct {
	Metric   MetricDef
	Previous int
	Current  int
	Delta    int
	Label    DeltaLabel
}

// Comparison is the full delta report between an entry and its
// predecessor.
type Comparison struct {
	Deltas    []MetricDelta
	Grew      int
	Fell      int
	Unchanged int
	Trend     Trend
}

// LabelDelta maps a signed delta to its 5-bucket label.
func LabelDelta(delta int) DeltaLabel {
	switch {
	case delta >= 2:
		return DeltaStrongUp
	case delta == 1:
		return DeltaMildUp
	case delta == 0:
		return DeltaNone
	case delta == -1:
		return DeltaMildDown
	default:
		return DeltaStrongDown
	}
}

// Compare computes per-metric deltas between the current entry and its
// predecessor, then classifies the overall trend by majority vote. A
// tie between grown and fallen metrics, or no strict majority, reads
// as stable.
func Compare(current, previous Entry, metrics []MetricDef) Comparison {
	c := Comparison{Deltas: make([]MetricDelta, 0, len(metrics))}
	for _, m := range metrics {
		cur := current.Values[m.Key]
		prv := previous.Values[m.Key]
		d := cur - prv
		c.Deltas = append(c.Deltas, MetricDelta{
			Metric:   m,
			Previous: prv,
			Current:  cur,
			Delta:    d,
			Label:    LabelDelta(d),
		})
		switch {
		case d > 0:
			c.Grew++
		case d < 0:
			c.Fell++
		default:
			c.Unchanged++
		}
	}

	switch {
	case c.Grew > c.Fell && c.Grew > c.Unchanged:
		c.Trend = TrendPositive
	case c.Fell > c.Grew && c.Fell > c.Unchanged:
		c.Trend = TrendNegative
	default:
		c.Trend = TrendStable
	}
	return c
}
