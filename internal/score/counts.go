package score

// Counts are the running totals behind every metric.
type Counts struct {
	Span      int `json:"span"`
	Type      int `json:"type"`
	Link      int `json:"link"`
	Predicted int `json:"predicted"`
	Gold      int `json:"gold"`
}

// Add returns the element-wise sum of two count sets.
func (c Counts) Add(other Counts) Counts {
	return Counts{
		Span:      c.Span + other.Span,
		Type:      c.Type + other.Type,
		Link:      c.Link + other.Link,
		Predicted: c.Predicted + other.Predicted,
		Gold:      c.Gold + other.Gold,
	}
}

// Sub returns the element-wise difference c - other.
func (c Counts) Sub(other Counts) Counts {
	return Counts{
		Span:      c.Span - other.Span,
		Type:      c.Type - other.Type,
		Link:      c.Link - other.Link,
		Predicted: c.Predicted - other.Predicted,
		Gold:      c.Gold - other.Gold,
	}
}

func (c Counts) tally(v Verdict) Counts {
	if v.Span {
		c.Span++
	}
	if v.Type {
		c.Type++
	}
	if v.Link {
		c.Link++
	}
	return c
}

// Report computes the three metric tiers from the totals.
func (c Counts) Report() Report {
	return Report{
		Span:         Compute(c.Span, c.Predicted, c.Gold),
		SpanType:     Compute(c.Type, c.Predicted, c.Gold),
		SpanTypeLink: Compute(c.Link, c.Predicted, c.Gold),
	}
}
