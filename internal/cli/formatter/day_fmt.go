package formatter

import (
	"fmt"
	"time"

	"github.com/vindursweden/kalender/internal/contract"
	"github.com/vindursweden/kalender/internal/domain"
)

const clockLayout = "15:04"

// DayPlanTable renders the day grid: one row per distinct start time, one
// column per tracked person.
func DayPlanTable(plan *contract.DayPlan, people []domain.Person) string {
	headers := make([]string, 0, len(people)+1)
	headers = append(headers, "Tid")
	for _, p := range people {
		headers = append(headers, PersonLabel(p))
	}

	rows := make([][]string, 0, len(plan.Rows))
	for _, r := range plan.Rows {
		row := make([]string, 0, len(people)+1)
		row = append(row, r.At.Format(clockLayout))
		for _, p := range people {
			if e, ok := r.Cells[p.ID]; ok {
				row = append(row, EventCell(e))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}

	return RenderTable(headers, rows)
}

// ReplanTable renders the patches of a replan preview.
func ReplanTable(preview *contract.ReplanPreview) string {
	headers := []string{"Händelse", "Ny start", "Ny längd"}
	rows := make([][]string, 0, len(preview.Patches))
	for _, p := range preview.Patches {
		newDur := Dim("oförändrad")
		if p.NewPlannedDuration != nil {
			newDur = FormatDuration(*p.NewPlannedDuration)
		}
		rows = append(rows, []string{p.EventID, p.NewStart.Format(clockLayout), newDur})
	}
	return RenderTable(headers, rows)
}

// FormatDuration renders a duration as whole minutes.
func FormatDuration(d time.Duration) string {
	return fmt.Sprintf("%d min", int(d/time.Minute))
}
