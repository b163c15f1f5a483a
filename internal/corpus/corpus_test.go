package corpus

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"edleval/internal/config"
)

// TestStripMarkupOffsets verifies plain offsets map back to source runes.
func TestStripMarkupOffsets(t *testing.T) {
	source := `<doc id="X"><post author="ana">Hola Madrid</post></doc>`
	text, offsets := StripMarkup(source)
	if text != "Hola Madrid" {
		t.Fatalf("unexpected text %q", text)
	}
	if len(offsets) != len([]rune(text)) {
		t.Fatalf("offset table length %d, want %d", len(offsets), len([]rune(text)))
	}
	start := strings.Index(source, "Madrid")
	if offsets[5] != start {
		t.Fatalf("offset of M = %d, want %d", offsets[5], start)
	}
	sourceRunes := []rune(source)
	for i, r := range []rune(text) {
		if sourceRunes[offsets[i]] != r {
			t.Fatalf("rune %d maps to %q, want %q", i, sourceRunes[offsets[i]], r)
		}
	}
}

// TestStripMarkupMultibyte verifies offsets count runes for CJK text.
func TestStripMarkupMultibyte(t *testing.T) {
	text, offsets := StripMarkup("<p>北京</p><p>上海</p>")
	if text != "北京上海" {
		t.Fatalf("unexpected text %q", text)
	}
	want := []int{3, 4, 12, 13}
	for i := range want {
		if offsets[i] != want[i] {
			t.Fatalf("offsets = %v, want %v", offsets, want)
		}
	}
}

const goldTable = "# run\tid\tmention\textent\tkb\ttype\tkind\tconf\n" +
	"sys\tM1\tObama\tSPA_DF_1:10-14\tm.02mjmr\tPER\tNAM\t1.0\n" +
	"sys\tM2\tpresidente\tSPA_DF_1:20-29\tm.02mjmr\tPER\tNOM\t1.0\n" +
	"sys\tM3\t北京\tCMN_NW_1:3-4\tm.01914\tGPE\tNAM\t1.0\n" +
	"sys\tM4\tPepe\tSPA_NW_2:0-3\tNIL00007\tPER\tNAM\n"

// TestParseGoldFiltersLanguageAndKind verifies TAC rows are filtered and ends made exclusive.
func TestParseGoldFiltersLanguageAndKind(t *testing.T) {
	gold, err := ParseGold(strings.NewReader(goldTable), GoldFilter{DocIDMarker: "SPA", Kinds: []string{"NAM"}})
	if err != nil {
		t.Fatalf("parse gold: %v", err)
	}
	if len(gold) != 2 {
		t.Fatalf("expected 2 gold mentions, got %d: %+v", len(gold), gold)
	}
	first := gold[0]
	if first.DocID != "SPA_DF_1" || first.Start != 10 || first.End != 15 {
		t.Fatalf("unexpected extent %+v", first)
	}
	if first.GoldID != "m.02mjmr" || first.Type != "PER" || first.Kind != "NAM" || first.Surface != "Obama" {
		t.Fatalf("unexpected fields %+v", first)
	}
	if gold[1].GoldID != "NIL00007" {
		t.Fatalf("unexpected NIL id %q", gold[1].GoldID)
	}
}

// TestParseGoldWithoutFilter verifies an empty filter keeps every row.
func TestParseGoldWithoutFilter(t *testing.T) {
	gold, err := ParseGold(strings.NewReader(goldTable), GoldFilter{})
	if err != nil {
		t.Fatalf("parse gold: %v", err)
	}
	if len(gold) != 4 {
		t.Fatalf("expected 4 gold mentions, got %d", len(gold))
	}
}

// TestParseGoldRejectsBadExtent verifies malformed rows fail with a line number.
func TestParseGoldRejectsBadExtent(t *testing.T) {
	for _, extent := range []string{"SPA_DF_1", "SPA_DF_1:10", "SPA_DF_1:a-4", "SPA_DF_1:4-b", ":1-2", "SPA_DF_1:9-3"} {
		line := "sys\tM1\tX\t" + extent + "\tQ1\tPER\tNAM\n"
		_, err := ParseGold(strings.NewReader(line), GoldFilter{})
		if err == nil {
			t.Fatalf("expected error for extent %q", extent)
		}
		if !strings.Contains(err.Error(), "gold line 1") {
			t.Fatalf("expected line number in %v", err)
		}
	}
}

func writeCorpus(t *testing.T) config.Config {
	t.Helper()
	root := t.TempDir()
	docs := filepath.Join(root, "docs")
	if err := os.MkdirAll(docs, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	files := map[string]string{
		"SPA_NW_2.xml": "<doc>Pepe</doc>",
		"SPA_DF_1.xml": "<doc><post author=\"ana\">Hola</post></doc>",
		"notes.txt":    "ignored",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(docs, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	goldPath := filepath.Join(root, "gold.tab")
	if err := os.WriteFile(goldPath, []byte(goldTable), 0o644); err != nil {
		t.Fatalf("write gold: %v", err)
	}
	return config.Config{Languages: map[string]config.LanguageConfig{
		"es": {DocumentsDir: docs, GoldFile: goldPath, DocIDMarker: "SPA", MentionKinds: []string{"NAM"}},
	}}
}

// TestTACReaderLoadsSortedDocuments verifies ordering, ids and the limit.
func TestTACReaderLoadsSortedDocuments(t *testing.T) {
	reader := NewTACReader(writeCorpus(t))
	ctx := context.Background()
	docs, err := reader.LoadDocuments(ctx, config.Spanish, 0)
	if err != nil {
		t.Fatalf("load documents: %v", err)
	}
	if len(docs) != 2 || docs[0].ID != "SPA_DF_1" || docs[1].ID != "SPA_NW_2" {
		t.Fatalf("unexpected documents %+v", docs)
	}
	if docs[0].Text != "Hola" || docs[1].Text != "Pepe" {
		t.Fatalf("unexpected text %q / %q", docs[0].Text, docs[1].Text)
	}

	limited, err := reader.LoadDocuments(ctx, config.Spanish, 1)
	if err != nil {
		t.Fatalf("load limited: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected 1 document, got %d", len(limited))
	}

	gold, err := reader.LoadGoldMentions(ctx, config.Spanish)
	if err != nil {
		t.Fatalf("load gold: %v", err)
	}
	if len(gold) != 2 {
		t.Fatalf("expected 2 gold mentions, got %d", len(gold))
	}
}

// TestTACReaderUnconfiguredLanguage verifies missing sources fail cleanly.
func TestTACReaderUnconfiguredLanguage(t *testing.T) {
	reader := NewTACReader(writeCorpus(t))
	if _, err := reader.LoadDocuments(context.Background(), config.Chinese, 0); err == nil {
		t.Fatalf("expected error for unconfigured language")
	}
}

// TestTACReaderHonorsCancellation verifies a cancelled context stops loading.
func TestTACReaderHonorsCancellation(t *testing.T) {
	reader := NewTACReader(writeCorpus(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := reader.LoadDocuments(ctx, config.Spanish, 0); err == nil {
		t.Fatalf("expected context error")
	}
}
