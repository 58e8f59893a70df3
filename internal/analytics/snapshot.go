// Package analytics derives the dashboard views from a snapshot of the
// application's collections.
//
// All functions in this package are pure: they read the snapshot, never
// mutate it, and return freshly computed values. Recomputation is the
// caller's responsibility; the package holds no state and performs no I/O.
package analytics

import (
	"time"

	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"github.com/google/uuid"
)

// DefaultCurrency is the ISO 4217 code used for amounts in insight strings
// when no other currency is configured.
const DefaultCurrency = "PYG"

// Snapshot is an immutable view of all collections a derivation runs over.
//
// Now is read once per derivation so that all views of a single report are
// computed against the same instant.
type Snapshot struct {
	Now      time.Time
	Month    types.Month
	Currency string

	Transactions  []models.Transaction
	Categories    []models.Category
	Budgets       []models.Budget
	Debts         []models.Debt
	Goals         []models.MonthlyGoal
	WeeklyBudgets []models.WeeklyBudget
	Subscriptions []models.Subscription
	Reminders     []models.PaymentReminder
	CardDiet      models.CardDietSettings
}

// Report is the full set of derived views for one month.
type Report struct {
	Month          types.Month       `json:"month" example:"2024-07-01T00:00:00.000000Z"` // The month the report is for
	Stats          MonthStats        `json:"stats"`                                       // Income, expenses, balance, savings and debt payments
	Budgets        []BudgetStat      `json:"budgets"`                                     // Budget utilization per budget row
	BudgetWarnings []BudgetWarning   `json:"budgetWarnings"`                              // Budgets between 80% and 100% used
	Debts          []DebtStat        `json:"debts"`                                       // Payment progress per debt
	Avalanche      []models.Debt     `json:"avalanche"`                                   // Payoff ordering by descending APR
	Snowball       []models.Debt     `json:"snowball"`                                    // Payoff ordering by ascending balance
	Allowance      DailyAllowance    `json:"allowance"`                                   // Daily spending allowance projection
	Insights       []string          `json:"insights"`                                    // Up to three natural language insights
	MicroSpending  MicroSpending     `json:"microSpending"`                               // Small purchases below the threshold
	WeeklyBudgets  []WeeklyStat      `json:"weeklyBudgets"`                               // Weekly budgets for the current ISO week
	CardDiet       *CardDietStats    `json:"cardDiet"`                                    // Card diet streak, nil when the diet is disabled
	Upcoming       []UpcomingPayment `json:"upcoming"`                                    // Payments due within the next seven days
}

// Recompute derives the complete report from the snapshot.
func Recompute(s Snapshot) Report {
	stats := ComputeMonthStats(s.Transactions, s.Categories, s.Debts, s.Month)
	budgetStats := ComputeBudgetStats(s.Budgets, s.Transactions, s.Categories, s.Month)

	return Report{
		Month:          s.Month,
		Stats:          stats,
		Budgets:        budgetStats,
		BudgetWarnings: ComputeBudgetWarnings(budgetStats),
		Debts:          ComputeDebtStats(s.Debts, s.Transactions, s.Month),
		Avalanche:      Avalanche(s.Debts),
		Snowball:       Snowball(s.Debts),
		Allowance:      ComputeDailyAllowance(s.Transactions, s.Categories, goalForMonth(s.Goals, s.Month), s.Month, s.Now),
		Insights:       ComputeInsights(s.Transactions, s.Categories, stats, s.Month, s.Currency),
		MicroSpending:  ComputeMicroSpending(s.Transactions, s.Categories, s.Month, DefaultMicroThreshold),
		WeeklyBudgets:  ComputeWeeklyStats(s.WeeklyBudgets, s.Transactions, s.Categories, s.Now),
		CardDiet:       ComputeCardDietStats(s.CardDiet, s.Transactions, s.Now),
		Upcoming:       ComputeUpcomingPayments(s.Reminders, s.Subscriptions, s.Debts, s.Month, s.Now),
	}
}

// goalForMonth returns the goal for the month, or nil if none is set.
func goalForMonth(goals []models.MonthlyGoal, month types.Month) *models.MonthlyGoal {
	for i := range goals {
		if goals[i].Month.Equal(month) {
			return &goals[i]
		}
	}

	return nil
}

// categoryNames returns a lookup from category ID to name.
func categoryNames(categories []models.Category) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}

	return names
}

// categoriesInGroup returns the set of category IDs belonging to a group.
func categoriesInGroup(categories []models.Category, group models.CategoryGroup) map[uuid.UUID]bool {
	ids := make(map[uuid.UUID]bool)
	for _, category := range categories {
		if category.Group == group {
			ids[category.ID] = true
		}
	}

	return ids
}

// dateOnly truncates a time to midnight UTC of its calendar day.
func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
