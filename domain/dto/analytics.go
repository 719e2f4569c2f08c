package dto

// AnalyticsResponse is the supervisor rollup. Every breakdown map carries a
// key for each enumerated value, zeroes included.
type AnalyticsResponse struct {
	TotalTasks       int `json:"totalTasks"`
	ActiveTasks      int `json:"activeTasks"`
	CompletedTasks   int `json:"completedTasks"`
	UrgentTasks      int `json:"urgentTasks"`
	RecentTasksCount int `json:"recentTasksCount"`

	StatusCounts   map[string]int `json:"statusCounts"`
	PriorityCounts map[string]int `json:"priorityCounts"`
	TypeCounts     map[string]int `json:"typeCounts"`
	RoleCounts     map[string]int `json:"roleCounts"`
}
