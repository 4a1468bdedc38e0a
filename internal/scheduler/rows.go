package scheduler

import (
	"sort"

	"github.com/vindursweden/kalender/internal/domain"
)

// BuildRows merges all tracked people's events into time-ordered rows:
// one row per distinct start timestamp, one cell per person whose event
// starts exactly then. Two people starting at the same instant share a
// row; the row builder never carries cells over gaps — that belongs to
// fill logic upstream.
func BuildRows(events []domain.Event, people []domain.Person) []domain.Row {
	tracked := make(map[string]bool, len(people))
	for _, p := range people {
		tracked[p.ID] = true
	}

	// Deterministic cell choice when a person has two events at the same
	// start: lowest event ID wins.
	sorted := append([]domain.Event(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if a.PersonID != b.PersonID {
			return a.PersonID < b.PersonID
		}
		return a.ID < b.ID
	})

	var rows []domain.Row
	index := make(map[int64]int)
	for _, e := range sorted {
		if !tracked[e.PersonID] {
			continue
		}
		ts := e.Start.UnixNano()
		i, ok := index[ts]
		if !ok {
			i = len(rows)
			index[ts] = i
			rows = append(rows, domain.Row{At: e.Start, Cells: make(map[string]domain.Event)})
		}
		if _, taken := rows[i].Cells[e.PersonID]; !taken {
			rows[i].Cells[e.PersonID] = e
		}
	}
	return rows
}
