package dashboard

import "context"

// Summary is the per-license aggregate view backing the vendor dashboard.
type Summary struct {
	OpenTasks            int64
	OverdueTasks         int64
	TasksDueThisWeek     int64
	HighRiskClients      int64
	AmlReviewsOverdue    int64
	MinutesThisMonth     int64
	BillableMinutesMonth int64
	ActiveClients        int64
	ActiveUsers          int64
	SeatLimit            int
	SeatUsagePercent     float64
	UnreadNotifications  int64
}

// DashboardService assembles the summary for one license.
type DashboardService interface {
	Summary(ctx context.Context, licenseID, userID string) (*Summary, error)
}

// DashboardRepository runs the aggregate queries.
type DashboardRepository interface {
	Summary(ctx context.Context, licenseID, userID string) (*Summary, error)
}
