package database

import "database/sql"

// DashboardCounts holds the headline totals shown on the dashboard.
type DashboardCounts struct {
	Students          int `json:"students"`
	Courses           int `json:"courses"`
	Batches           int `json:"batches"`
	ActiveEnrollments int `json:"active_enrollments"`
}

// GetDashboardCounts gathers the headline totals in one round trip.
func GetDashboardCounts(db *sql.DB) (*DashboardCounts, error) {
	counts := &DashboardCounts{}
	query := `SELECT
			  (SELECT COUNT(*) FROM students),
			  (SELECT COUNT(*) FROM courses),
			  (SELECT COUNT(*) FROM batches),
			  (SELECT COUNT(*) FROM enrollments WHERE status = 'Enrolled')`
	err := db.QueryRow(query).Scan(&counts.Students, &counts.Courses, &counts.Batches, &counts.ActiveEnrollments)
	if err != nil {
		return nil, err
	}
	return counts, nil
}
