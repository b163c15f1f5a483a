package mention

import "testing"

// TestIsNIL verifies NIL detection ignores cluster suffixes.
func TestIsNIL(t *testing.T) {
	cases := map[string]bool{
		"NIL":      true,
		"NIL-7":    true,
		"NIL00012": true,
		"Q42":      false,
		"m.0abc":   false,
		"":         false,
		"nil":      false,
		"E0123NIL": false,
	}
	for id, want := range cases {
		if got := IsNIL(id); got != want {
			t.Fatalf("IsNIL(%q) = %v, want %v", id, got, want)
		}
	}
}

// TestValidate verifies offset and doc id invariants.
func TestValidate(t *testing.T) {
	valid := Mention{DocID: "D1", Start: 0, End: 5, Type: "PER"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid mention, got %v", err)
	}
	invalid := []Mention{
		{DocID: "", Start: 0, End: 5},
		{DocID: "D1", Start: 5, End: 5},
		{DocID: "D1", Start: 6, End: 5},
		{DocID: "D1", Start: -1, End: 5},
	}
	for _, m := range invalid {
		if err := m.Validate(); err == nil {
			t.Fatalf("expected error for %v", m)
		}
	}
}

// TestCloneDoesNotAlias verifies stage copies are independent.
func TestCloneDoesNotAlias(t *testing.T) {
	doc := Document{ID: "D1", Mentions: []Mention{{DocID: "D1", Start: 0, End: 3, PredictedID: "NIL"}}}
	clone := doc.Clone()
	clone.Mentions[0].PredictedID = "Q1"
	if doc.Mentions[0].PredictedID != "NIL" {
		t.Fatalf("clone mutated original: %s", doc.Mentions[0].PredictedID)
	}
}

// TestTextSpanRunes verifies offsets count runes, not bytes.
func TestTextSpanRunes(t *testing.T) {
	doc := Document{Text: "北京是中国的首都", Source: "<p>北京</p>"}
	if got := doc.TextSpan(0, 2); got != "北京" {
		t.Fatalf("unexpected text span %q", got)
	}
	if got := doc.TextSpan(6, 20); got != "首都" {
		t.Fatalf("unexpected clamped span %q", got)
	}
	if got := doc.SourceSpan(3, 5); got != "北京" {
		t.Fatalf("unexpected source span %q", got)
	}
	if got := doc.TextSpan(4, 2); got != "" {
		t.Fatalf("expected empty span, got %q", got)
	}
}

// TestNormalizeSurface verifies width, case and spacing are folded.
func TestNormalizeSurface(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "Barack  Obama", want: "barack obama"},
		{in: "ＯＢＡＭＡ", want: "obama"},
		{in: " México ", want: "méxico"},
		{in: "北京", want: "北京"},
	}
	for _, tc := range cases {
		if got := NormalizeSurface(tc.in); got != tc.want {
			t.Fatalf("NormalizeSurface(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
