package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/F-Mutua/Mindfit/config"
	"github.com/F-Mutua/Mindfit/models"
)

const dateLayout = "2006-01-02"

// Analytics turns raw study and wellness records into windowed rollups,
// a productivity score and recommendations. It holds no mutable state:
// every call is a pure read over whatever the store returns, so repeated
// calls against an unchanged store yield identical results.
type Analytics struct {
	store RecordStore
	cfg   config.Engine
	now   func() time.Time
}

func NewAnalytics(store RecordStore, cfg config.Engine) *Analytics {
	return &Analytics{store: store, cfg: cfg, now: time.Now}
}

// WithClock overrides the time source. Tests use this to pin "today".
func (a *Analytics) WithClock(now func() time.Time) *Analytics {
	a.now = now
	return a
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }

// Aggregate builds the dense daily series for the `days` calendar days
// ending today (UTC). Every day in the window gets exactly one entry:
// 0 study hours when nothing was logged, nil stress/energy when no
// wellness entry exists (a missing check-in is not zero stress).
// The caller validates days >= 1.
func (a *Analytics) Aggregate(ctx context.Context, userID string, days int) (*models.AnalyticsResult, error) {
	now := a.now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -(days - 1))

	studyRows, err := a.store.StudyDailyTotals(ctx, userID, start, now)
	if err != nil {
		return nil, fmt.Errorf("aggregate study: %w", err)
	}
	wellnessRows, err := a.store.WellnessDailyAverages(ctx, userID, start, now)
	if err != nil {
		return nil, fmt.Errorf("aggregate wellness: %w", err)
	}
	subjectRows, err := a.store.SubjectTotals(ctx, userID, start, now)
	if err != nil {
		return nil, fmt.Errorf("aggregate subjects: %w", err)
	}

	studyByDay := make(map[string]StudyDayStat, len(studyRows))
	for _, r := range studyRows {
		studyByDay[r.Date] = r
	}
	wellnessByDay := make(map[string]WellnessDayStat, len(wellnessRows))
	for _, r := range wellnessRows {
		wellnessByDay[r.Date] = r
	}

	res := &models.AnalyticsResult{
		Dates:        make([]string, days),
		StudyHours:   make([]float64, days),
		StressLevels: make([]*float64, days),
		EnergyLevels: make([]*float64, days),
		Subjects: models.SubjectBreakdown{
			Labels: []string{},
			Data:   []float64{},
		},
	}

	var totalHours float64
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format(dateLayout)
		res.Dates[i] = date
		if row, ok := studyByDay[date]; ok {
			res.StudyHours[i] = float64(row.TotalMinutes) / 60
		}
		totalHours += res.StudyHours[i]
		if row, ok := wellnessByDay[date]; ok {
			stress, energy := row.AvgStress, row.AvgEnergy
			res.StressLevels[i] = &stress
			res.EnergyLevels[i] = &energy
		}
	}
	res.TotalStudyHours = round1(totalHours)
	res.AvgStress = meanOfPresent(res.StressLevels)
	res.AvgEnergy = meanOfPresent(res.EnergyLevels)

	for _, row := range subjectRows {
		res.Subjects.Labels = append(res.Subjects.Labels, row.Subject)
		res.Subjects.Data = append(res.Subjects.Data, round1(float64(row.TotalMinutes)/60))
	}

	return res, nil
}

// meanOfPresent averages only the non-nil entries, rounded to 1 decimal.
// All-nil input yields nil, never zero.
func meanOfPresent(vals []*float64) *float64 {
	var sum float64
	var n int
	for _, v := range vals {
		if v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := round1(sum / float64(n))
	return &avg
}

var weekdayLabels = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// SessionStats summarizes sessions between from and to (inclusive). The
// weekday histogram is computed here from the grouped dates, ISO style
// with Monday first, rather than trusting any database weekday numbering.
func (a *Analytics) SessionStats(ctx context.Context, userID string, from, to time.Time) (*models.SessionStats, error) {
	dayRows, err := a.store.StudyDailyTotals(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("session stats: %w", err)
	}
	subjectRows, err := a.store.SubjectTotals(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("session stats: %w", err)
	}

	stats := &models.SessionStats{
		SessionsByDay: models.WeekdaySeries{
			Labels: weekdayLabels,
			Data:   make([]int, 7),
		},
		BySubject: []models.SubjectSessions{},
	}

	var totalMinutes int64
	for _, row := range dayRows {
		stats.TotalSessions += row.Sessions
		totalMinutes += row.TotalMinutes
		day, err := time.Parse(dateLayout, row.Date)
		if err != nil {
			return nil, fmt.Errorf("session stats: bad date %q: %w", row.Date, err)
		}
		// time.Weekday puts Sunday at 0; shift to Monday=0.
		idx := (int(day.Weekday()) + 6) % 7
		stats.SessionsByDay.Data[idx] += row.Sessions
	}
	stats.TotalHours = totalMinutes / 60
	stats.TotalMinutes = totalMinutes % 60

	for _, row := range subjectRows {
		stats.BySubject = append(stats.BySubject, models.SubjectSessions{
			Subject:  row.Subject,
			Sessions: row.Sessions,
		})
	}
	return stats, nil
}
