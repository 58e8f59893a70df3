package analytics

import (
	"time"

	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyAllowance is the projection of how much can still be spent per day
// this month without missing the savings target.
type DailyAllowance struct {
	Available      decimal.Decimal `json:"available" example:"1800000"`     // Income minus essential spending minus the savings target
	DaysRemaining  int             `json:"daysRemaining" example:"12"`      // Days left in the month including today, at least 1
	PerDay         decimal.Decimal `json:"perDay" example:"150000"`         // Available split over the remaining days, floored at zero
	EssentialSpent decimal.Decimal `json:"essentialSpent" example:"2700000"` // Expenses in essential categories this month
	SavingsTarget  decimal.Decimal `json:"savingsTarget" example:"1000000"` // From the month's goal, zero when no goal is set
}

// ComputeDailyAllowance projects the spendable amount per remaining day.
//
// For the real current month the remaining days count from today, otherwise
// the month is treated as over and the denominator bottoms out at one day.
// PerDay never goes negative, an overspent month simply shows zero.
func ComputeDailyAllowance(transactions []models.Transaction, categories []models.Category, goal *models.MonthlyGoal, month types.Month, now time.Time) DailyAllowance {
	essential := make(map[uuid.UUID]bool)
	for _, category := range categories {
		if category.Essential {
			essential[category.ID] = true
		}
	}

	var income, essentialSpent decimal.Decimal
	for _, transaction := range MonthTransactions(transactions, month) {
		switch transaction.Type {
		case models.TransactionTypeIncome:
			income = income.Add(transaction.Amount)

		case models.TransactionTypeExpense:
			if essential[transaction.CategoryID] {
				essentialSpent = essentialSpent.Add(transaction.Amount)
			}
		}
	}

	var savingsTarget decimal.Decimal
	if goal != nil {
		savingsTarget = goal.SavingsTarget
	}

	currentDay := month.Days()
	if month.Contains(now) {
		currentDay = now.UTC().Day()
	}

	daysRemaining := month.Days() - currentDay + 1
	if daysRemaining < 1 {
		daysRemaining = 1
	}

	available := income.Sub(essentialSpent).Sub(savingsTarget)

	perDay := available.Div(decimal.NewFromInt(int64(daysRemaining)))
	if perDay.IsNegative() {
		perDay = decimal.Zero
	}

	return DailyAllowance{
		Available:      available,
		DaysRemaining:  daysRemaining,
		PerDay:         perDay,
		EssentialSpent: essentialSpent,
		SavingsTarget:  savingsTarget,
	}
}
