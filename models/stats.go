package models

// DashboardStats is the summary computed over one fetched snapshot of
// appointments and payments. It is derived, never stored.
type DashboardStats struct {
	TotalAppointments  int     `json:"totalAppointments"`
	TotalRevenue       float64 `json:"totalRevenue"`
	CompletedSessions  int     `json:"completedSessions"`
	PendingPayments    int     `json:"pendingPayments"`
	ActiveClients      int     `json:"activeClients"`
	TodaysAppointments int     `json:"todaysAppointments"`
}

// PercentChange compares a metric against the preceding period.
type PercentChange struct {
	Value      float64 `json:"value"`
	IsPositive bool    `json:"isPositive"`
}

// DateRange is an inclusive calendar-date window used as a query parameter.
type DateRange struct {
	Label     string `json:"label"`
	StartDate string `json:"startDate"` // yyyy-MM-dd
	EndDate   string `json:"endDate"`   // yyyy-MM-dd
}

// MonthlyRevenue is one calendar-month bucket of the revenue chart.
type MonthlyRevenue struct {
	Month        string  `json:"month"` // e.g. "Jan 2025"
	Revenue      float64 `json:"revenue"`
	Appointments int     `json:"appointments"`
}
