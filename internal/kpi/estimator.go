package kpi

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Estimator produces the metric inputs that have no backing data: the data
// model records no deadlines, start times or per-day completion history, so
// these values are estimates by construction. Isolating them behind this
// interface keeps the rest of the engine deterministic and lets a real
// event-log-based implementation replace the placeholders without touching
// the formulas.
type Estimator interface {
	// OverdueCards estimates how many of totalCards missed their expected
	// finish (placeholder: a tenth of the total).
	OverdueCards(totalCards int) int

	// AverageStartTime estimates the mean creation-to-start delay in days
	// (placeholder: a fraction of the creation-to-update time).
	AverageStartTime(averageTimePerCard float64) float64

	// DailyProgress estimates completed cards for each of the trailing
	// seven days, oldest first.
	DailyProgress(totalCompleted int, now time.Time) []DailyProgress

	// WeeklyTrend estimates activity for the four trailing weeks, most
	// recent first.
	WeeklyTrend(now time.Time) []WeeklyTrend
}

// JitterEstimator is the default Estimator: fixed ratios for the overdue and
// start-time estimates, pseudo-random jitter over the mean daily completion
// rate for the progress series.
type JitterEstimator struct {
	rng *rand.Rand
}

// NewJitterEstimator returns an estimator with a time-seeded source.
func NewJitterEstimator() *JitterEstimator {
	seed := uint64(time.Now().UnixNano())
	return &JitterEstimator{rng: rand.New(rand.NewPCG(seed, seed))}
}

// NewSeededEstimator returns an estimator with a fixed seed, for
// reproducible output.
func NewSeededEstimator(seed uint64) *JitterEstimator {
	return &JitterEstimator{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (e *JitterEstimator) OverdueCards(totalCards int) int {
	return totalCards / 10
}

func (e *JitterEstimator) AverageStartTime(averageTimePerCard float64) float64 {
	return averageTimePerCard * 0.3
}

func (e *JitterEstimator) DailyProgress(totalCompleted int, now time.Time) []DailyProgress {
	progress := make([]DailyProgress, 0, 7)
	for i := 0; i < 7; i++ {
		date := now.AddDate(0, 0, -(6 - i))
		progress = append(progress, DailyProgress{
			Date:           date.Format("02/01/2006"),
			CardsCompleted: e.rng.IntN(5) + totalCompleted/7,
		})
	}
	return progress
}

func (e *JitterEstimator) WeeklyTrend(now time.Time) []WeeklyTrend {
	trend := make([]WeeklyTrend, 0, 4)
	for i := 0; i < 4; i++ {
		trend = append(trend, WeeklyTrend{
			Week:           fmt.Sprintf("Week %d", 4-i),
			CardsCreated:   e.rng.IntN(20) + 10,
			CardsCompleted: e.rng.IntN(15) + 8,
			Efficiency:     e.rng.IntN(30) + 70,
		})
	}
	return trend
}
