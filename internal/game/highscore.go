package game

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// HighscoreKeep is the number of entries retained in the table.
const HighscoreKeep = 5

const (
	highscoreObject = "highscore"
	highscoreProp   = "table"
)

// HighscoreTable is the persisted top-N record. Top is always sorted
// descending and holds at most HighscoreKeep entries.
type HighscoreTable struct {
	Top         []int
	LastUpdated time.Time
}

// Best returns the highest stored score, or 0 when the table is empty.
func (t HighscoreTable) Best() int {
	if len(t.Top) == 0 {
		return 0
	}
	return t.Top[0]
}

func (t HighscoreTable) Contains(score int) bool {
	for _, s := range t.Top {
		if s == score {
			return true
		}
	}
	return false
}

// highscoreRecord is the on-disk JSON shape: a descending top list plus
// an ISO-8601 UTC timestamp.
type highscoreRecord struct {
	Top         []int  `json:"top"`
	LastUpdated string `json:"last_updated"`
}

// mergeScore inserts score into top, re-sorts descending and truncates
// to HighscoreKeep entries.
func mergeScore(top []int, score int) []int {
	merged := make([]int, 0, len(top)+1)
	merged = append(merged, top...)
	merged = append(merged, score)
	sort.Sort(sort.Reverse(sort.IntSlice(merged)))
	if len(merged) > HighscoreKeep {
		merged = merged[:HighscoreKeep]
	}
	return merged
}

// decodeHighscores parses the persisted record. Any malformed input is
// reported as an error; callers degrade to an empty table.
func decodeHighscores(data []byte) (HighscoreTable, error) {
	var rec highscoreRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return HighscoreTable{}, err
	}
	t := HighscoreTable{Top: rec.Top}
	sort.Sort(sort.Reverse(sort.IntSlice(t.Top)))
	if len(t.Top) > HighscoreKeep {
		t.Top = t.Top[:HighscoreKeep]
	}
	if ts, err := time.Parse(time.RFC3339, rec.LastUpdated); err == nil {
		t.LastUpdated = ts
	} else {
		t.LastUpdated = time.Now().UTC()
	}
	return t, nil
}

func encodeHighscores(t HighscoreTable) []byte {
	rec := highscoreRecord{
		Top:         t.Top,
		LastUpdated: t.LastUpdated.UTC().Format(time.RFC3339),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil
	}
	return data
}

// HighscoreStore persists the table through gdata. A nil manager is a
// valid degraded mode: loads yield an empty table, saves are dropped.
type HighscoreStore struct {
	m *gdata.Manager
}

func NewHighscoreStore(m *gdata.Manager) *HighscoreStore {
	return &HighscoreStore{m: m}
}

// Load reads the persisted table. Absent or malformed state degrades to
// an empty table stamped with the current time; never fails.
func (st *HighscoreStore) Load() HighscoreTable {
	empty := HighscoreTable{LastUpdated: time.Now().UTC()}
	if st == nil || st.m == nil {
		return empty
	}
	if !st.m.ObjectPropExists(highscoreObject, highscoreProp) {
		return empty
	}
	data, err := st.m.LoadObjectProp(highscoreObject, highscoreProp)
	if err != nil {
		return empty
	}
	t, err := decodeHighscores(data)
	if err != nil {
		return empty
	}
	return t
}

// Save writes the table, silently dropping any failure (read-only
// filesystems must not break a game-over).
func (st *HighscoreStore) Save(t HighscoreTable) {
	if st == nil || st.m == nil {
		return
	}
	data := encodeHighscores(t)
	if data == nil {
		return
	}
	_ = st.m.SaveObjectProp(highscoreObject, highscoreProp, data)
}
