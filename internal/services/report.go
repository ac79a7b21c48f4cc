package services

import (
	"time"

	"github.com/mcoutinho/finbot-backend/internal/dto"
	"github.com/mcoutinho/finbot-backend/internal/models"
)

// ReportPeriod selects the time window of a chat report.
type ReportPeriod int

const (
	PeriodToday ReportPeriod = iota
	PeriodMonth
	PeriodWeek
)

// WindowFor computes the inclusive [start, end] range for a period,
// anchored at now. Boundaries are derived at call time, never stored.
func WindowFor(now time.Time, period ReportPeriod) dto.Window {
	switch period {
	case PeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return dto.Window{
			Start: start,
			End:   start.AddDate(0, 1, 0).Add(-time.Nanosecond),
		}
	case PeriodWeek:
		return dto.Window{
			Start: now.AddDate(0, 0, -7),
			End:   now,
		}
	default: // PeriodToday
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return dto.Window{
			Start: start,
			End:   start.Add(24*time.Hour - time.Nanosecond),
		}
	}
}

// Summarize aggregates a set of transactions into totals, balance and
// per-category expense totals. Income never contributes to the category
// breakdown.
func Summarize(txs []models.Transaction) dto.Summary {
	summary := dto.Summary{
		CategorySummary: map[string]float64{},
	}

	for _, tx := range txs {
		switch tx.Kind {
		case models.KindIncome:
			summary.TotalIncome += tx.Amount
		case models.KindExpense:
			summary.TotalExpenses += tx.Amount
			summary.CategorySummary[tx.Category] += tx.Amount
		}
	}

	summary.Balance = summary.TotalIncome - summary.TotalExpenses
	summary.TransactionCount = len(txs)
	return summary
}
