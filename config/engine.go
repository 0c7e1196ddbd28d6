package config

// Engine holds the analytics policy knobs. Passing it explicitly (rather
// than hard-coding constants in the services) lets callers run alternate
// policies, e.g. a higher weekly cap for premium users.
type Engine struct {
	// Productivity score
	ScoreWindowDays   int     // lookback for the productivity score
	MaxWeeklyHours    float64 // study hours beyond this buy no extra score
	VolumePoints      float64 // cap of the volume sub-score
	ConsistencyPoints float64 // cap of the consistency sub-score
	WellbeingPoints   float64 // cap of the wellbeing sub-score
	DefaultStress     float64 // assumed stress when no wellness data exists

	// Recommendations
	RecentWindow    int64   // how many most-recent events each rule inspects
	LongSessionMin  float64 // mean session minutes above which the break rule fires
	HighStressLevel float64 // mean stress above which the stress rule fires
}

// DefaultEngine returns the stock policy.
func DefaultEngine() Engine {
	return Engine{
		ScoreWindowDays:   7,
		MaxWeeklyHours:    20,
		VolumePoints:      50,
		ConsistencyPoints: 30,
		WellbeingPoints:   20,
		DefaultStress:     5,
		RecentWindow:      5,
		LongSessionMin:    60,
		HighStressLevel:   7,
	}
}
