package database

import (
	"database/sql"

	"swaram-cms/app/models"
)

// TimetableBatch is one batch occupying a timetable cell.
type TimetableBatch struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Timetable maps start-time slot -> day -> batches. Every slot that appears
// anywhere carries all six days, empty cells included, so the grid renders
// without presence checks.
type Timetable map[string]map[models.DayOfWeek][]TimetableBatch

var timetableDays = []models.DayOfWeek{
	models.Monday, models.Tuesday, models.Wednesday,
	models.Thursday, models.Friday, models.Saturday,
}

// GetTimetableBySlot builds the weekly grid from batch schedules, restricted
// to one academic year.
func GetTimetableBySlot(db *sql.DB, academicYear int) (Timetable, error) {
	query := `SELECT bs.start_time, bs.day_of_week, b.id, b.name
			  FROM batch_schedules bs
			  JOIN batches b ON bs.batch_id = b.id
			  WHERE b.academic_year = $1
			  ORDER BY bs.start_time, b.name`

	rows, err := db.Query(query, academicYear)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	timetable := make(Timetable)
	for rows.Next() {
		var slot string
		var day models.DayOfWeek
		var batch TimetableBatch
		if err := rows.Scan(&slot, &day, &batch.ID, &batch.Name); err != nil {
			return nil, err
		}
		if _, ok := timetable[slot]; !ok {
			cells := make(map[models.DayOfWeek][]TimetableBatch, len(timetableDays))
			for _, d := range timetableDays {
				cells[d] = []TimetableBatch{}
			}
			timetable[slot] = cells
		}
		timetable[slot][day] = append(timetable[slot][day], batch)
	}
	return timetable, rows.Err()
}
