package models

// SubjectBreakdown is chart-ready: labels and hours share an index and
// are ordered by descending hours.
type SubjectBreakdown struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"` // hours, rounded to 1 decimal
}

// AnalyticsResult is the dense daily series for a requested window. All
// slices have exactly one entry per calendar day, ascending. Days with no
// wellness data carry nil, not zero; days with no study time carry 0.
type AnalyticsResult struct {
	Dates           []string         `json:"dates"` // YYYY-MM-DD
	StudyHours      []float64        `json:"study_hours"`
	StressLevels    []*float64       `json:"stress_levels"`
	EnergyLevels    []*float64       `json:"energy_levels"`
	Subjects        SubjectBreakdown `json:"subjects"`
	TotalStudyHours float64          `json:"total_study_hours"`
	AvgStress       *float64         `json:"avg_stress"` // mean of non-nil days only
	AvgEnergy       *float64         `json:"avg_energy"`
}

// Recommendation priorities. Result order reflects rule order, not
// priority.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Recommendation is a single piece of rule-derived advice.
type Recommendation struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

// WeekdaySeries is a Monday-first histogram over the seven weekdays.
type WeekdaySeries struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// SubjectSessions counts sessions per subject.
type SubjectSessions struct {
	Subject  string `json:"subject"`
	Sessions int    `json:"sessions"`
}

// SessionStats summarizes a user's sessions over an optional date range.
type SessionStats struct {
	TotalSessions int               `json:"total_sessions"`
	TotalHours    int64             `json:"total_hours"`
	TotalMinutes  int64             `json:"total_minutes"` // remainder after whole hours
	SessionsByDay WeekdaySeries     `json:"sessions_by_day"`
	BySubject     []SubjectSessions `json:"sessions_by_subject"`
}
