package domain

import "math"

// SatisfactionCounts are appointment counts by status inside the satisfaction window
type SatisfactionCounts struct {
	Confirmed int
	Cancelled int
	Pending   int
}

// Percentage returns Confirmed / (Confirmed + Cancelled + Pending) * 100 rounded to one decimal.
// An empty window yields 100.
func (c SatisfactionCounts) Percentage() float64 {
	total := c.Confirmed + c.Cancelled + c.Pending
	if total == 0 {
		return 100.0
	}
	ratio := float64(c.Confirmed) / float64(total) * 100
	return math.Round(ratio*10) / 10
}

// DashboardStats aggregates the staff dashboard counters
type DashboardStats struct {
	ConfirmedToday     int
	Pending            int
	ConfirmedThisMonth int
	Satisfaction       float64
}
