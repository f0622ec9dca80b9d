// Package kpi derives productivity metrics from board snapshots. The
// computation is pure and cheap, so it reruns on every query; nothing here
// is cached or persisted.
package kpi

import (
	"time"

	"github.com/google/uuid"
)

// Trend classifies a metric against its fixed thresholds.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Metric is a single named measurement shown on the dashboard. Value is a
// number or a preformatted string depending on the metric.
type Metric struct {
	Name        string    `json:"name"`
	Value       any       `json:"value"`
	Description string    `json:"description"`
	Formula     string    `json:"formula,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	Trend       Trend     `json:"trend"`
	ComputedAt  time.Time `json:"lastUpdated"`
}

// PriorityCount holds card counts per priority level.
type PriorityCount struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// BoardMetrics are the five named per-board sub-metrics.
type BoardMetrics struct {
	AverageCompletionTime Metric `json:"averageCompletionTime"`
	CreatedVsCompleted    Metric `json:"createdVsCompleted"`
	OverduePercentage     Metric `json:"overduePercentage"`
	AverageStartTime      Metric `json:"averageStartTime"`
	TaskThroughput        Metric `json:"taskThroughput"`
}

// BoardKPIs are the derived metrics for a single board. CompletedCards is
// the card count of the board's last column: completion is a positional
// convention, not a stored status.
type BoardKPIs struct {
	BoardID              uuid.UUID      `json:"boardId"`
	BoardTitle           string         `json:"boardTitle"`
	TotalCards           int            `json:"totalCards"`
	CompletedCards       int            `json:"completedCards"`
	CompletionRate       int            `json:"completionRate"`
	AverageTimePerCard   float64        `json:"averageTimePerCard"`
	CardsPerColumn       map[string]int `json:"cardsPerColumn"`
	PriorityDistribution PriorityCount  `json:"priorityDistribution"`
	ProductivityScore    int            `json:"productivityScore"`
	Metrics              BoardMetrics   `json:"metrics"`
}

// DailyProgress pairs a formatted date with an estimated completed-card
// count for that day.
type DailyProgress struct {
	Date           string `json:"date"`
	CardsCompleted int    `json:"cardsCompleted"`
}

// WeeklyTrend is one estimated week of activity.
type WeeklyTrend struct {
	Week           string `json:"week"`
	CardsCreated   int    `json:"cardsCreated"`
	CardsCompleted int    `json:"cardsCompleted"`
	Efficiency     int    `json:"efficiency"`
}

// BoardComparison summarizes one board for cross-board charts.
type BoardComparison struct {
	BoardName      string `json:"boardName"`
	Efficiency     int    `json:"efficiency"`
	TotalCards     int    `json:"totalCards"`
	CompletionRate int    `json:"completionRate"`
}

// ProjectMetrics are the four named system-level sub-metrics.
type ProjectMetrics struct {
	SystemEfficiency Metric `json:"systemEfficiency"`
	DailyThroughput  Metric `json:"dailyThroughput"`
	BoardPerformance Metric `json:"boardPerformance"`
	PerformanceTrend Metric `json:"performanceTrend"`
}

// ProjectKPIs aggregate over all boards. DailyProgress and WeeklyTrend are
// estimator output, not history: the data model keeps no per-day log.
type ProjectKPIs struct {
	TotalBoards              int               `json:"totalBoards"`
	TotalCards               int               `json:"totalCards"`
	GlobalCompletionRate     int               `json:"globalCompletionRate"`
	AverageProductivityScore int               `json:"averageProductivityScore"`
	MostActiveBoard          string            `json:"mostActiveBoard"`
	CardsByPriority          PriorityCount     `json:"cardsByPriority"`
	DailyProgress            []DailyProgress   `json:"dailyProgress"`
	WeeklyTrend              []WeeklyTrend     `json:"weeklyTrend"`
	BoardComparison          []BoardComparison `json:"boardComparison"`
	Metrics                  ProjectMetrics    `json:"metrics"`
}

// Data is the full dashboard payload.
type Data struct {
	BoardKPIs   []BoardKPIs `json:"boardKPIs"`
	ProjectKPIs ProjectKPIs `json:"projectKPIs"`
	LastUpdated time.Time   `json:"lastUpdated"`
}
