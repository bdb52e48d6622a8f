package rollup

import (
	"context"
	"math/rand"
	"testing"

	"github.com/michaelscutari/fsinfo/internal/entry"
)

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func TestBuildTextAndUnknown(t *testing.T) {
	records := []entry.FileRecord{
		entry.NewFileRecord("/root", "notes.txt", 2048, entry.Recognized("text/plain")),
		entry.NewFileRecord("/root", "blob", 512, entry.Unknown),
	}

	s, err := Build(context.Background(), records)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if s.Empty() {
		t.Fatalf("summary should not be empty")
	}

	if len(s.SizeByType.Rows) != 2 {
		t.Fatalf("expected 2 type keys, got %+v", s.SizeByType.Rows)
	}
	if v, ok := s.SizeByType.Value("text/plain"); !ok || v != 2.0 {
		t.Fatalf("text/plain size: %v %v", v, ok)
	}
	if v, ok := s.SizeByType.Value("Unknown"); !ok || v != 0.5 {
		t.Fatalf("Unknown size: %v %v", v, ok)
	}

	if len(s.CountByFolder.Rows) != 1 || s.CountByFolder.Rows[0] != (Row{"/root", 2}) {
		t.Fatalf("unexpected folder counts: %+v", s.CountByFolder.Rows)
	}
	if s.Totals.Files != 2 || s.Totals.Bytes != 2560 {
		t.Fatalf("unexpected totals: %+v", s.Totals)
	}
}

func TestBuildEmpty(t *testing.T) {
	s, err := Build(context.Background(), nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !s.Empty() {
		t.Fatalf("expected empty summary")
	}
	for _, g := range s.Charts() {
		if len(g.Rows) != 0 {
			t.Fatalf("%s: expected no rows, got %+v", g.Title, g.Rows)
		}
	}
}

func TestBuildIsOrderIndependent(t *testing.T) {
	var records []entry.FileRecord
	folders := []string{"/r", "/r/a", "/r/b", "/r/a/c"}
	types := []entry.FileType{entry.Recognized("text/plain"), entry.Recognized("image/png"), entry.Unknown}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		records = append(records, entry.NewFileRecord(
			folders[i%len(folders)],
			"f",
			rng.Int63n(1<<20),
			types[i%len(types)],
		))
	}

	first, err := Build(context.Background(), records)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	shuffled := append([]entry.FileRecord(nil), records...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	second, err := Build(context.Background(), shuffled)
	if err != nil {
		t.Fatalf("build shuffled: %v", err)
	}

	a, b := first.Charts(), second.Charts()
	for i := range a {
		if len(a[i].Rows) != len(b[i].Rows) {
			t.Fatalf("%s: row count differs", a[i].Title)
		}
		for _, row := range a[i].Rows {
			if v, ok := b[i].Value(row.Key); !ok || v != row.Value {
				t.Fatalf("%s[%s]: %v vs %v", a[i].Title, row.Key, row.Value, v)
			}
		}
	}
	if first.Totals != second.Totals {
		t.Fatalf("totals differ: %+v vs %+v", first.Totals, second.Totals)
	}
}

func TestBuildDropsNothing(t *testing.T) {
	records := []entry.FileRecord{
		entry.NewFileRecord("/r", "a", 1000, entry.Recognized("text/plain")),
		entry.NewFileRecord("/r/x", "b", 3000, entry.Recognized("text/plain")),
		entry.NewFileRecord("/r/x", "c", 5000, entry.Unknown),
	}
	s, err := Build(context.Background(), records)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	var wantKB float64
	for _, r := range records {
		wantKB += r.SizeKB
	}
	if got := s.SizeByFolder.Total(); !approx(got, s.SizeByType.Total()) || !approx(got, s.Totals.SizeKB()) {
		t.Fatalf("size totals disagree: folder=%v type=%v totals=%v", got, s.SizeByType.Total(), s.Totals.SizeKB())
	}
	if !approx(s.Totals.SizeKB(), wantKB) {
		t.Fatalf("total KB %v, want %v", s.Totals.SizeKB(), wantKB)
	}
	if s.CountByFolder.Total() != 3 || s.CountByType.Total() != 3 {
		t.Fatalf("counts should cover all 3 records")
	}
	if s.CountByType.Rows[0] != (Row{"text/plain", 2}) {
		t.Fatalf("largest count should come first: %+v", s.CountByType.Rows)
	}
}

func TestChartTitles(t *testing.T) {
	charts := emptySummary().Charts()
	want := []string{
		"File Size Distribution By Type",
		"File Count Per Folder",
		"File Type Count",
		"Folder-Wise File Size",
		"File Type-Wise Size Distribution",
	}
	if len(charts) != len(want) {
		t.Fatalf("expected %d charts, got %d", len(want), len(charts))
	}
	for i, c := range charts {
		if c.Title != want[i] {
			t.Fatalf("chart %d: got %q want %q", i, c.Title, want[i])
		}
	}
}
