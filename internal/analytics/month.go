package analytics

import (
	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthStats are the headline figures for one month.
//
// Balance is always Income minus Expenses. Savings and DebtPayments are the
// expense subtotals of the SAVINGS and DEBT category groups and are therefore
// already contained in Expenses.
type MonthStats struct {
	Income       decimal.Decimal `json:"income" example:"7500000"`       // Sum of all income in the month
	Expenses     decimal.Decimal `json:"expenses" example:"5200000"`     // Sum of all expenses in the month
	Balance      decimal.Decimal `json:"balance" example:"2300000"`      // Income minus expenses
	Savings      decimal.Decimal `json:"savings" example:"1000000"`      // Expenses in SAVINGS group categories
	DebtPayments decimal.Decimal `json:"debtPayments" example:"1500000"` // Expenses in DEBT group categories and debt linked categories
}

// MonthTransactions returns the transactions dated within the month.
func MonthTransactions(transactions []models.Transaction, month types.Month) []models.Transaction {
	var filtered []models.Transaction
	for _, transaction := range transactions {
		if month.Contains(transaction.Date) {
			filtered = append(filtered, transaction)
		}
	}

	return filtered
}

// ComputeMonthStats sums the month's transactions into the headline figures.
//
// A payment counts towards DebtPayments when its category is in the DEBT
// group or is linked to a tracked debt.
func ComputeMonthStats(transactions []models.Transaction, categories []models.Category, debts []models.Debt, month types.Month) MonthStats {
	debtGroup := categoriesInGroup(categories, models.CategoryGroupDebt)
	for _, debt := range debts {
		debtGroup[debt.CategoryID] = true
	}
	savingsGroup := categoriesInGroup(categories, models.CategoryGroupSavings)

	var stats MonthStats
	for _, transaction := range MonthTransactions(transactions, month) {
		switch transaction.Type {
		case models.TransactionTypeIncome:
			stats.Income = stats.Income.Add(transaction.Amount)

		case models.TransactionTypeExpense:
			stats.Expenses = stats.Expenses.Add(transaction.Amount)

			if savingsGroup[transaction.CategoryID] {
				stats.Savings = stats.Savings.Add(transaction.Amount)
			}
			if debtGroup[transaction.CategoryID] {
				stats.DebtPayments = stats.DebtPayments.Add(transaction.Amount)
			}
		}
	}

	stats.Balance = stats.Income.Sub(stats.Expenses)
	return stats
}

// spentByCategory sums the month's expenses per category.
func spentByCategory(transactions []models.Transaction, month types.Month) map[uuid.UUID]decimal.Decimal {
	spent := make(map[uuid.UUID]decimal.Decimal)
	for _, transaction := range MonthTransactions(transactions, month) {
		if transaction.Type != models.TransactionTypeExpense {
			continue
		}

		spent[transaction.CategoryID] = spent[transaction.CategoryID].Add(transaction.Amount)
	}

	return spent
}
