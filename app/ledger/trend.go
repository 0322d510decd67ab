package ledger

import (
	"time"

	"swaram-cms/app/models"
)

// academicYearMonths is the fixed bucket order for trend series. The
// academy's year runs June through May.
var academicYearMonths = [12]string{
	"Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	"Jan", "Feb", "Mar", "Apr", "May",
}

// TrendPoint is one month's collected total.
type TrendPoint struct {
	Month string  `json:"month"`
	Fees  float64 `json:"fees"`
}

// MonthlyTrendSeries holds the two parallel 12-point series.
type MonthlyTrendSeries struct {
	Registration []TrendPoint `json:"registration"`
	Installments []TrendPoint `json:"installments"`
}

// monthLabel returns the short month name of t ("Jun", "Jul", ...).
func monthLabel(t time.Time) string {
	return t.Month().String()[:3]
}

func initTotals() map[string]float64 {
	totals := make(map[string]float64, len(academicYearMonths))
	for _, m := range academicYearMonths {
		totals[m] = 0
	}
	return totals
}

func toSeries(totals map[string]float64) []TrendPoint {
	series := make([]TrendPoint, 0, len(academicYearMonths))
	for _, m := range academicYearMonths {
		series = append(series, TrendPoint{Month: m, Fees: totals[m]})
	}
	return series
}

// MonthlyTrend buckets paid amounts by the short month name of their
// creation timestamp, in academic-year order. Buckets key on month name
// only; the year component is ignored, since the console only ever asks
// for the current academic year. Rows without a timestamp are skipped.
func MonthlyTrend(reg []RegistrationRow, inst []InstallmentRow) MonthlyTrendSeries {
	regTotals := initTotals()
	for _, r := range reg {
		if !r.IsPaid || r.CreatedAt == nil {
			continue
		}
		regTotals[monthLabel(*r.CreatedAt)] += r.Amount
	}

	instTotals := initTotals()
	for _, i := range inst {
		if i.Status != models.PaymentCompleted || i.CreatedAt == nil {
			continue
		}
		instTotals[monthLabel(*i.CreatedAt)] += i.Amount
	}

	return MonthlyTrendSeries{
		Registration: toSeries(regTotals),
		Installments: toSeries(instTotals),
	}
}
