// Package importer converts external iCalendar feeds into manual
// calendar events, so appointments from school or work calendars show up
// in the day grid next to the template plan.
package importer

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/vindursweden/kalender/internal/domain"
)

// ImportedEvent pairs a converted event with its source UID, so repeated
// imports of the same feed can be recognized by the caller.
type ImportedEvent struct {
	UID   string
	Event domain.Event
}

// ParseFile reads an ICS file and converts its VEVENTs. Events that
// cannot be converted are skipped and reported in the second return
// value, never silently dropped.
func ParseFile(path, personID string) ([]ImportedEvent, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data, personID)
}

// Parse converts an ICS payload into manual events for one person.
func Parse(data []byte, personID string) ([]ImportedEvent, []string, error) {
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("empty ICS payload")
	}
	cal, err := ical.ParseCalendar(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing calendar: %w", err)
	}

	var events []ImportedEvent
	var skipped []string
	for _, ve := range cal.Events() {
		imported, err := convertVEvent(ve, personID)
		if err != nil {
			skipped = append(skipped, err.Error())
			continue
		}
		events = append(events, imported)
	}
	return events, skipped, nil
}

func convertVEvent(ve *ical.VEvent, personID string) (ImportedEvent, error) {
	uid := ""
	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		uid = p.Value
	}
	if uid == "" {
		return ImportedEvent{}, fmt.Errorf("event without UID skipped")
	}

	summary := ""
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		summary = strings.TrimSpace(p.Value)
	}
	if summary == "" {
		return ImportedEvent{}, fmt.Errorf("event %s has no summary", uid)
	}

	// Recurring events need expansion, which belongs to the feed owner's
	// calendar application. One-off events only.
	if ve.GetProperty(ical.ComponentPropertyRrule) != nil {
		return ImportedEvent{}, fmt.Errorf("recurring event %s skipped", uid)
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return ImportedEvent{}, fmt.Errorf("event %s has no usable start: %v", uid, err)
	}
	end, err := ve.GetEndAt()
	if err != nil || !end.After(start) {
		return ImportedEvent{}, fmt.Errorf("event %s has no usable end", uid)
	}

	return ImportedEvent{
		UID: uid,
		Event: domain.Event{
			ID:         uuid.New().String(),
			PersonID:   personID,
			Title:      summary,
			Start:      start.UTC(),
			End:        end.UTC(),
			FixedStart: true,
			Origin:     domain.OriginManual,
		},
	}, nil
}
