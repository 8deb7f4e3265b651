package game

import (
	"testing"
	"time"
)

func TestMergeScoreSortsAndTruncates(t *testing.T) {
	top := []int{500, 300, 100}
	got := mergeScore(top, 400)
	want := []int{500, 400, 300, 100}
	if len(got) != len(want) {
		t.Fatalf("merged length: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("merged[%d] = %d, want %d (full: %v)", i, got[i], want[i], got)
		}
	}

	full := []int{900, 800, 700, 600, 500}
	got = mergeScore(full, 750)
	if len(got) != HighscoreKeep {
		t.Fatalf("table not truncated: %v", got)
	}
	if got[2] != 750 || got[4] != 600 {
		t.Fatalf("insertion wrong: %v", got)
	}

	// A score below the floor of a full table falls off.
	got = mergeScore(full, 1)
	for _, v := range got {
		if v == 1 {
			t.Fatalf("too-low score kept: %v", got)
		}
	}
}

func TestMergeScoreAllowsDuplicates(t *testing.T) {
	got := mergeScore([]int{100}, 100)
	if len(got) != 2 || got[0] != 100 || got[1] != 100 {
		t.Fatalf("duplicate scores should both be kept: %v", got)
	}
}

func TestHighscoreRoundTrip(t *testing.T) {
	in := HighscoreTable{
		Top:         []int{500, 300, 100},
		LastUpdated: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	out, err := decodeHighscores(encodeHighscores(in))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Top) != 3 || out.Top[0] != 500 || out.Top[2] != 100 {
		t.Fatalf("top mismatch: %v", out.Top)
	}
	if !out.LastUpdated.Equal(in.LastUpdated) {
		t.Fatalf("timestamp mismatch: %v != %v", out.LastUpdated, in.LastUpdated)
	}
}

func TestDecodeHighscoresNormalizes(t *testing.T) {
	data := []byte(`{"top":[10,900,500,300,100,50,20],"last_updated":"2026-03-01T12:00:00Z"}`)
	got, err := decodeHighscores(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Top) != HighscoreKeep {
		t.Fatalf("not truncated: %v", got.Top)
	}
	if got.Top[0] != 900 || got.Top[4] != 50 {
		t.Fatalf("not sorted descending: %v", got.Top)
	}
}

func TestDecodeHighscoresMalformed(t *testing.T) {
	if _, err := decodeHighscores([]byte(`not json`)); err == nil {
		t.Fatal("garbage input should error")
	}
	if _, err := decodeHighscores([]byte(`{"top":"nope"}`)); err == nil {
		t.Fatal("wrong top type should error")
	}
	// A bad timestamp alone is recoverable.
	got, err := decodeHighscores([]byte(`{"top":[100],"last_updated":"yesterday"}`))
	if err != nil {
		t.Fatalf("bad timestamp should not fail the decode: %v", err)
	}
	if got.LastUpdated.IsZero() {
		t.Fatal("bad timestamp should be replaced, not zeroed")
	}
}

func TestHighscoreStoreDegradedMode(t *testing.T) {
	st := NewHighscoreStore(nil)
	got := st.Load()
	if len(got.Top) != 0 {
		t.Fatalf("nil-manager load should be empty: %v", got.Top)
	}
	if got.LastUpdated.IsZero() {
		t.Fatal("empty table should still carry a timestamp")
	}
	// Save must be a silent no-op.
	st.Save(HighscoreTable{Top: []int{1}, LastUpdated: time.Now()})
}
