package analytics

import (
	"fmt"

	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// ComputeInsights produces up to three short observations about the month:
// the biggest variable spending category, the savings rate, and whether the
// month closed with a surplus or a deficit.
//
// A signal without data is omitted rather than rendered empty, so the slice
// may hold fewer than three entries.
func ComputeInsights(transactions []models.Transaction, categories []models.Category, stats MonthStats, month types.Month, currencyCode string) []string {
	var insights []string

	if name, total, ok := largestVariableCategory(transactions, categories, month); ok {
		insights = append(insights, fmt.Sprintf("Your biggest variable expense is %s at %s", name, FormatAmount(total, currencyCode)))
	}

	if stats.Income.IsPositive() {
		rate := stats.Savings.Div(stats.Income).Mul(decimal.NewFromInt(100))
		insights = append(insights, fmt.Sprintf("You are saving %s%% of your income", rate.StringFixed(1)))
	}

	switch {
	case stats.Balance.IsPositive():
		insights = append(insights, fmt.Sprintf("This month closes with a surplus of %s", FormatAmount(stats.Balance, currencyCode)))
	case stats.Balance.IsNegative():
		insights = append(insights, fmt.Sprintf("This month closes with a deficit of %s", FormatAmount(stats.Balance.Neg(), currencyCode)))
	}

	return insights
}

// largestVariableCategory finds the variable group category with the highest
// expense total in the month. Ties are broken alphabetically.
func largestVariableCategory(transactions []models.Transaction, categories []models.Category, month types.Month) (string, decimal.Decimal, bool) {
	variable := categoriesInGroup(categories, models.CategoryGroupVariable)
	names := categoryNames(categories)
	spent := spentByCategory(transactions, month)

	var best string
	var bestTotal decimal.Decimal
	found := false

	for id, total := range spent {
		if !variable[id] || !total.IsPositive() {
			continue
		}

		name := names[id]
		if !found || total.GreaterThan(bestTotal) || (total.Equal(bestTotal) && name < best) {
			best = name
			bestTotal = total
			found = true
		}
	}

	return best, bestTotal, found
}
