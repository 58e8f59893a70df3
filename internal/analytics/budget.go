package analytics

import (
	"sort"

	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetStat is the utilization of a single budget in its month.
//
// PercentUsed is nil while the budget amount is unset, which is not the same
// as a set budget with nothing spent yet.
type BudgetStat struct {
	BudgetID     uuid.UUID       `json:"budgetId" example:"d5b3a0e8-0407-4c9e-8b32-16e338c7e7e0"`
	CategoryID   uuid.UUID       `json:"categoryId" example:"c7d6e1f8-ef9d-444c-9c71-32dfd8cb5efc"`
	CategoryName string          `json:"categoryName" example:"Comida"`
	Amount       decimal.Decimal `json:"amount" example:"1500000"`    // Budgeted amount
	Spent        decimal.Decimal `json:"spent" example:"1230000"`     // Expenses in the category this month
	Remaining    decimal.Decimal `json:"remaining" example:"270000"`  // Amount minus Spent
	PercentUsed  *float64        `json:"percentUsed" example:"82.00"` // Spent over Amount in percent, nil when the amount is unset
}

// BudgetWarning flags a budget that is close to being used up.
type BudgetWarning struct {
	CategoryID   uuid.UUID `json:"categoryId" example:"c7d6e1f8-ef9d-444c-9c71-32dfd8cb5efc"`
	CategoryName string    `json:"categoryName" example:"Comida"`
	PercentUsed  float64   `json:"percentUsed" example:"82.00"`
}

// DebtStat is the payment progress of a single debt in the month.
type DebtStat struct {
	DebtID        uuid.UUID       `json:"debtId" example:"a9f7c3e1-46b2-4b9f-9d0a-91c2f77a20b4"`
	Name          string          `json:"name" example:"Tarjeta Itaú"`
	Balance       decimal.Decimal `json:"balance" example:"8400000"`
	MonthlyTarget decimal.Decimal `json:"monthlyTarget" example:"900000"` // The configured monthly payment
	PaidThisMonth decimal.Decimal `json:"paidThisMonth" example:"450000"` // Expenses in the debt's linked category this month
	Remaining     decimal.Decimal `json:"remaining" example:"450000"`     // MonthlyTarget minus PaidThisMonth, never negative
	Covered       bool            `json:"covered" example:"false"`        // Whether PaidThisMonth reaches MonthlyTarget
}

// ComputeBudgetStats derives the utilization of every budget set for the
// month. Budgets of other months are ignored.
func ComputeBudgetStats(budgets []models.Budget, transactions []models.Transaction, categories []models.Category, month types.Month) []BudgetStat {
	names := categoryNames(categories)
	spent := spentByCategory(transactions, month)

	var stats []BudgetStat
	for _, budget := range budgets {
		if !budget.Month.Equal(month) {
			continue
		}

		stat := BudgetStat{
			BudgetID:     budget.ID,
			CategoryID:   budget.CategoryID,
			CategoryName: names[budget.CategoryID],
			Amount:       budget.Amount,
			Spent:        spent[budget.CategoryID],
			Remaining:    budget.Amount.Sub(spent[budget.CategoryID]),
		}

		if !budget.IsUnset() {
			percent, _ := stat.Spent.Div(budget.Amount).Mul(decimal.NewFromInt(100)).Float64()
			stat.PercentUsed = &percent
		}

		stats = append(stats, stat)
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].CategoryName < stats[j].CategoryName
	})

	return stats
}

// ComputeBudgetWarnings returns the budgets that are more than 80% but not
// yet fully used. Overspent budgets are not warnings, they are already
// visible as negative remaining amounts.
func ComputeBudgetWarnings(stats []BudgetStat) []BudgetWarning {
	var warnings []BudgetWarning
	for _, stat := range stats {
		if stat.PercentUsed == nil {
			continue
		}

		if *stat.PercentUsed > 80 && *stat.PercentUsed < 100 {
			warnings = append(warnings, BudgetWarning{
				CategoryID:   stat.CategoryID,
				CategoryName: stat.CategoryName,
				PercentUsed:  *stat.PercentUsed,
			})
		}
	}

	return warnings
}

// ComputeDebtStats derives the month's payment progress for every debt.
func ComputeDebtStats(debts []models.Debt, transactions []models.Transaction, month types.Month) []DebtStat {
	spent := spentByCategory(transactions, month)

	var stats []DebtStat
	for _, debt := range debts {
		paid := spent[debt.CategoryID]

		remaining := debt.MonthlyPayment.Sub(paid)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		stats = append(stats, DebtStat{
			DebtID:        debt.ID,
			Name:          debt.Name,
			Balance:       debt.Balance,
			MonthlyTarget: debt.MonthlyPayment,
			PaidThisMonth: paid,
			Remaining:     remaining,
			Covered:       paid.GreaterThanOrEqual(debt.MonthlyPayment) && debt.MonthlyPayment.IsPositive(),
		})
	}

	return stats
}

// Avalanche orders debts for the avalanche payoff strategy, highest APR
// first. Debts without a known APR cannot be ranked and are left out.
func Avalanche(debts []models.Debt) []models.Debt {
	var ordered []models.Debt
	for _, debt := range debts {
		if debt.APR != nil {
			ordered = append(ordered, debt)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].APR.GreaterThan(*ordered[j].APR)
	})

	return ordered
}

// Snowball orders debts for the snowball payoff strategy, smallest balance
// first.
func Snowball(debts []models.Debt) []models.Debt {
	ordered := make([]models.Debt, len(debts))
	copy(ordered, debts)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Balance.LessThan(ordered[j].Balance)
	})

	return ordered
}
