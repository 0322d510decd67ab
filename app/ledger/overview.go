package ledger

import (
	"sort"
	"time"
)

// OverviewRecord is one line of a student's fee overview: either a course
// year's final fee or the registration fee.
type OverviewRecord struct {
	FeeType   string    `json:"fee_type"`
	Course    *string   `json:"course,omitempty"`
	Year      *int      `json:"year,omitempty"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// OverviewSummaryRow is a fee summary joined to its course name.
type OverviewSummaryRow struct {
	CourseName *string
	YearNumber *int
	FinalFees  float64
	CreatedAt  time.Time
}

// OverviewRegistrationRow is a registration fee for the overview.
type OverviewRegistrationRow struct {
	Amount    float64
	CreatedAt *time.Time
}

// FeeOverview combines course fee summaries and registration fees into one
// list sorted newest first.
func FeeOverview(summaries []OverviewSummaryRow, regs []OverviewRegistrationRow, now time.Time) []OverviewRecord {
	records := make([]OverviewRecord, 0, len(summaries)+len(regs))

	for _, s := range summaries {
		records = append(records, OverviewRecord{
			FeeType:   "Course",
			Course:    s.CourseName,
			Year:      s.YearNumber,
			Amount:    s.FinalFees,
			CreatedAt: s.CreatedAt,
		})
	}
	for _, r := range regs {
		created := now
		if r.CreatedAt != nil {
			created = *r.CreatedAt
		}
		records = append(records, OverviewRecord{
			FeeType:   "Registration",
			Amount:    r.Amount,
			CreatedAt: created,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records
}
