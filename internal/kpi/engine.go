package kpi

import (
	"fmt"
	"math"
	"time"

	"taskboard/internal/model"
)

// Engine computes dashboard metrics from a snapshot. It holds no state
// besides the estimator supplying the placeholder values.
type Engine struct {
	est Estimator
}

// NewEngine returns an engine backed by the given estimator. A nil
// estimator falls back to the default jitter implementation.
func NewEngine(est Estimator) *Engine {
	if est == nil {
		est = NewJitterEstimator()
	}
	return &Engine{est: est}
}

// Compute derives the full dashboard payload from the snapshot.
func (e *Engine) Compute(snap model.Snapshot) Data {
	now := time.Now()

	boardKPIs := make([]BoardKPIs, 0, len(snap.Boards))
	for _, board := range snap.Boards {
		boardKPIs = append(boardKPIs, e.boardKPIs(board, now))
	}

	return Data{
		BoardKPIs:   boardKPIs,
		ProjectKPIs: e.projectKPIs(boardKPIs, now),
		LastUpdated: now,
	}
}

func (e *Engine) boardKPIs(board model.Board, now time.Time) BoardKPIs {
	totalCards := 0
	cardsPerColumn := make(map[string]int, len(board.Columns))
	var dist PriorityCount
	var totalDays float64
	for _, col := range board.Columns {
		totalCards += len(col.Cards)
		cardsPerColumn[col.Title] = len(col.Cards)
		for _, card := range col.Cards {
			switch card.Priority {
			case model.PriorityHigh:
				dist.High++
			case model.PriorityMedium:
				dist.Medium++
			case model.PriorityLow:
				dist.Low++
			}
			totalDays += card.UpdatedAt.Sub(card.CreatedAt).Hours() / 24
		}
	}

	// Cards in the last column count as completed.
	completedCards := 0
	if len(board.Columns) > 0 {
		completedCards = len(board.Columns[len(board.Columns)-1].Cards)
	}

	completionRate := 0.0
	if totalCards > 0 {
		completionRate = float64(completedCards) / float64(totalCards) * 100
	}

	averageTime := 0.0
	if totalCards > 0 {
		averageTime = totalDays / float64(totalCards)
	}

	// balanceScore is 0 for an even third-third-third priority split and
	// grows with imbalance; timeScore decays from 100 by 10 points per day
	// of average age.
	balanceScore := 0.0
	if totalCards > 0 {
		balanceScore = math.Abs(33.33-float64(dist.High)/float64(totalCards)*100) +
			math.Abs(33.33-float64(dist.Medium)/float64(totalCards)*100) +
			math.Abs(33.33-float64(dist.Low)/float64(totalCards)*100)
	}
	timeScore := 100.0
	if averageTime > 0 {
		timeScore = math.Max(0, 100-averageTime*10)
	}
	productivityScore := 0.0
	if totalCards > 0 {
		productivityScore = completionRate*0.5 + (100-balanceScore)*0.3 + timeScore*0.2
	}

	return BoardKPIs{
		BoardID:              board.ID,
		BoardTitle:           board.Title,
		TotalCards:           totalCards,
		CompletedCards:       completedCards,
		CompletionRate:       round(completionRate),
		AverageTimePerCard:   round1(averageTime),
		CardsPerColumn:       cardsPerColumn,
		PriorityDistribution: dist,
		ProductivityScore:    round(productivityScore),
		Metrics:              e.boardMetrics(totalCards, completedCards, averageTime, now),
	}
}

func (e *Engine) boardMetrics(totalCards, completedCards int, averageTime float64, now time.Time) BoardMetrics {
	overdueCards := e.est.OverdueCards(totalCards)
	avgStart := e.est.AverageStartTime(averageTime)

	completionTrend := TrendStable
	if averageTime < 3 {
		completionTrend = TrendUp
	} else if averageTime > 7 {
		completionTrend = TrendDown
	}

	createdTrend := TrendDown
	if float64(completedCards) >= float64(totalCards)*0.8 {
		createdTrend = TrendUp
	}

	overduePct := 0
	if totalCards > 0 {
		overduePct = round(float64(overdueCards) / float64(totalCards) * 100)
	}
	// NaN when there are no cards, which correctly fails the < comparison.
	overdueTrend := TrendDown
	if float64(overdueCards)/float64(totalCards) < 0.1 {
		overdueTrend = TrendUp
	}

	startTrend := TrendStable
	if avgStart < 1 {
		startTrend = TrendUp
	}

	throughputTrend := TrendDown
	if float64(completedCards) > float64(totalCards)*0.5 {
		throughputTrend = TrendUp
	}

	return BoardMetrics{
		AverageCompletionTime: Metric{
			Name:        "Average Completion Time",
			Value:       round1(averageTime),
			Description: "Average time to complete a task from creation",
			Formula:     "Σ(completed at − created at) / total tasks",
			Unit:        "days",
			Trend:       completionTrend,
			ComputedAt:  now,
		},
		CreatedVsCompleted: Metric{
			Name:        "Created vs Completed",
			Value:       fmt.Sprintf("%d/%d", totalCards, completedCards),
			Description: "Tasks created compared to tasks completed in the period",
			Unit:        "tasks",
			Trend:       createdTrend,
			ComputedAt:  now,
		},
		OverduePercentage: Metric{
			Name:        "Overdue Percentage",
			Value:       overduePct,
			Description: "Estimated share of tasks past their expected finish",
			Formula:     "(overdue tasks / total tasks) × 100",
			Unit:        "%",
			Trend:       overdueTrend,
			ComputedAt:  now,
		},
		AverageStartTime: Metric{
			Name:        "Average Start Time",
			Value:       round1(avgStart),
			Description: "Estimated average delay between task creation and first activity",
			Formula:     "Σ(started at − created at) / total tasks",
			Unit:        "days",
			Trend:       startTrend,
			ComputedAt:  now,
		},
		TaskThroughput: Metric{
			Name:        "Task Throughput",
			Value:       round1(float64(completedCards) / 7),
			Description: "Average number of tasks completed per day",
			Formula:     "completed tasks / days in period",
			Unit:        "tasks/day",
			Trend:       throughputTrend,
			ComputedAt:  now,
		},
	}
}

func (e *Engine) projectKPIs(boards []BoardKPIs, now time.Time) ProjectKPIs {
	totalCards := 0
	totalCompleted := 0
	scoreSum := 0
	var byPriority PriorityCount
	comparison := make([]BoardComparison, 0, len(boards))
	mostActive := ""
	mostActiveCards := -1
	for _, b := range boards {
		totalCards += b.TotalCards
		totalCompleted += b.CompletedCards
		scoreSum += b.ProductivityScore
		byPriority.High += b.PriorityDistribution.High
		byPriority.Medium += b.PriorityDistribution.Medium
		byPriority.Low += b.PriorityDistribution.Low
		comparison = append(comparison, BoardComparison{
			BoardName:      b.BoardTitle,
			Efficiency:     b.ProductivityScore,
			TotalCards:     b.TotalCards,
			CompletionRate: b.CompletionRate,
		})
		// Strict comparison keeps the first board on ties.
		if b.TotalCards > mostActiveCards {
			mostActive = b.BoardTitle
			mostActiveCards = b.TotalCards
		}
	}
	if len(boards) == 0 {
		mostActive = ""
	}

	globalCompletionRate := 0
	if totalCards > 0 {
		globalCompletionRate = round(float64(totalCompleted) / float64(totalCards) * 100)
	}
	averageProductivityScore := 0
	if len(boards) > 0 {
		averageProductivityScore = round(float64(scoreSum) / float64(len(boards)))
	}

	return ProjectKPIs{
		TotalBoards:              len(boards),
		TotalCards:               totalCards,
		GlobalCompletionRate:     globalCompletionRate,
		AverageProductivityScore: averageProductivityScore,
		MostActiveBoard:          mostActive,
		CardsByPriority:          byPriority,
		DailyProgress:            e.est.DailyProgress(totalCompleted, now),
		WeeklyTrend:              e.est.WeeklyTrend(now),
		BoardComparison:          comparison,
		Metrics:                  e.projectMetrics(totalCompleted, globalCompletionRate, averageProductivityScore, boards, now),
	}
}

func (e *Engine) projectMetrics(totalCompleted, globalCompletionRate, averageProductivityScore int, boards []BoardKPIs, now time.Time) ProjectMetrics {
	efficiencyTrend := TrendStable
	if averageProductivityScore > 75 {
		efficiencyTrend = TrendUp
	} else if averageProductivityScore < 50 {
		efficiencyTrend = TrendDown
	}

	performing := 0
	for _, b := range boards {
		if b.ProductivityScore > 70 {
			performing++
		}
	}

	trendValue := "Declining"
	trendClass := TrendDown
	if globalCompletionRate > 60 {
		trendValue = "Growing"
		trendClass = TrendUp
	} else if globalCompletionRate > 40 {
		trendValue = "Steady"
		trendClass = TrendStable
	}

	return ProjectMetrics{
		SystemEfficiency: Metric{
			Name:        "System Efficiency",
			Value:       averageProductivityScore,
			Description: "Average productivity across all boards",
			Formula:     "Σ(board productivity) / number of boards",
			Unit:        "points",
			Trend:       efficiencyTrend,
			ComputedAt:  now,
		},
		DailyThroughput: Metric{
			Name:        "Daily Throughput",
			Value:       round(float64(totalCompleted) / 7),
			Description: "Average number of tasks completed per day across the system",
			Unit:        "tasks/day",
			Trend:       TrendStable,
			ComputedAt:  now,
		},
		BoardPerformance: Metric{
			Name:        "Board Performance",
			Value:       performing,
			Description: "Number of boards performing above average",
			Unit:        "boards",
			Trend:       TrendUp,
			ComputedAt:  now,
		},
		PerformanceTrend: Metric{
			Name:        "Performance Trend",
			Value:       trendValue,
			Description: "Overall system performance direction over recent weeks",
			Trend:       trendClass,
			ComputedAt:  now,
		},
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
