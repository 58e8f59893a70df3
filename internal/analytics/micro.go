package analytics

import (
	"sort"

	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultMicroThreshold is the amount below which an expense counts as a
// micro purchase.
var DefaultMicroThreshold = decimal.NewFromInt(50000)

// MicroSpending summarizes the month's purchases below the threshold. Small
// amounts slip by unnoticed, the summary makes their total visible.
type MicroSpending struct {
	Threshold     decimal.Decimal `json:"threshold" example:"50000"`
	Count         int             `json:"count" example:"23"`     // Number of micro purchases in the month
	Total         decimal.Decimal `json:"total" example:"612000"` // Their combined amount
	TopCategories []MicroCategory `json:"topCategories"`          // The three categories with the most micro purchases
}

// MicroCategory is a category accumulating micro purchases.
type MicroCategory struct {
	CategoryID   uuid.UUID       `json:"categoryId" example:"c7d6e1f8-ef9d-444c-9c71-32dfd8cb5efc"`
	CategoryName string          `json:"categoryName" example:"Delivery"`
	Count        int             `json:"count" example:"8"`
	Total        decimal.Decimal `json:"total" example:"184000"`
}

// ComputeMicroSpending derives the micro purchase summary for the month.
// Categories are ranked by purchase count, not amount, and ties are broken
// alphabetically so the top list is stable across recomputations.
func ComputeMicroSpending(transactions []models.Transaction, categories []models.Category, month types.Month, threshold decimal.Decimal) MicroSpending {
	names := categoryNames(categories)
	summary := MicroSpending{Threshold: threshold}
	perCategory := make(map[uuid.UUID]*MicroCategory)

	for _, transaction := range MonthTransactions(transactions, month) {
		if transaction.Type != models.TransactionTypeExpense {
			continue
		}
		if transaction.Amount.GreaterThanOrEqual(threshold) {
			continue
		}

		summary.Count++
		summary.Total = summary.Total.Add(transaction.Amount)

		entry, ok := perCategory[transaction.CategoryID]
		if !ok {
			entry = &MicroCategory{
				CategoryID:   transaction.CategoryID,
				CategoryName: names[transaction.CategoryID],
			}
			perCategory[transaction.CategoryID] = entry
		}
		entry.Count++
		entry.Total = entry.Total.Add(transaction.Amount)
	}

	top := make([]MicroCategory, 0, len(perCategory))
	for _, entry := range perCategory {
		top = append(top, *entry)
	}

	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].CategoryName < top[j].CategoryName
	})

	if len(top) > 3 {
		top = top[:3]
	}
	summary.TopCategories = top

	return summary
}
