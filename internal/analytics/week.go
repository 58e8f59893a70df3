package analytics

import (
	"time"

	"github.com/centavo-app/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WeeklyStat is the utilization of one weekly budget in the current ISO week.
type WeeklyStat struct {
	WeeklyBudgetID uuid.UUID       `json:"weeklyBudgetId" example:"f3a1b5c9-8c2e-44d7-9f1a-6b0e3d8c2a51"`
	CategoryID     uuid.UUID       `json:"categoryId" example:"c7d6e1f8-ef9d-444c-9c71-32dfd8cb5efc"`
	CategoryName   string          `json:"categoryName" example:"Comida"`
	Year           int             `json:"year" example:"2024"`
	Week           int             `json:"week" example:"27"` // ISO 8601 week number
	Amount         decimal.Decimal `json:"amount" example:"400000"`
	Spent          decimal.Decimal `json:"spent" example:"250000"` // Expenses in the category during the ISO week
	Remaining      decimal.Decimal `json:"remaining" example:"150000"`
}

// WeekSpan returns the Monday and Sunday bounding the ISO week of t, both at
// midnight UTC.
func WeekSpan(t time.Time) (monday, sunday time.Time) {
	day := dateOnly(t)

	offset := int(day.Weekday()+6) % 7 // Monday is 0
	monday = day.AddDate(0, 0, -offset)
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// ComputeWeeklyStats derives the utilization of the weekly budgets matching
// the ISO week of now. Budgets for other weeks are ignored.
func ComputeWeeklyStats(budgets []models.WeeklyBudget, transactions []models.Transaction, categories []models.Category, now time.Time) []WeeklyStat {
	year, week := now.UTC().ISOWeek()
	names := categoryNames(categories)
	monday, sunday := WeekSpan(now)

	spent := make(map[uuid.UUID]decimal.Decimal)
	for _, transaction := range transactions {
		if transaction.Type != models.TransactionTypeExpense {
			continue
		}

		day := dateOnly(transaction.Date)
		if day.Before(monday) || day.After(sunday) {
			continue
		}

		spent[transaction.CategoryID] = spent[transaction.CategoryID].Add(transaction.Amount)
	}

	var stats []WeeklyStat
	for _, budget := range budgets {
		if budget.Year != year || budget.Week != week {
			continue
		}

		stats = append(stats, WeeklyStat{
			WeeklyBudgetID: budget.ID,
			CategoryID:     budget.CategoryID,
			CategoryName:   names[budget.CategoryID],
			Year:           budget.Year,
			Week:           budget.Week,
			Amount:         budget.Amount,
			Spent:          spent[budget.CategoryID],
			Remaining:      budget.Amount.Sub(spent[budget.CategoryID]),
		})
	}

	return stats
}
