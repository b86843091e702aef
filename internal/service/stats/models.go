package stats

// DashboardResponse счётчики панели персонала
type DashboardResponse struct {
	ConfirmedToday     int     `json:"confirmedToday"`
	Pending            int     `json:"pending"`
	ConfirmedThisMonth int     `json:"confirmedThisMonth"`
	Satisfaction       float64 `json:"satisfaction"`
}
