package analytics

import (
	"time"

	"github.com/centavo-app/backend/internal/models"
)

// CardDietStats is the progress of the current card diet period.
type CardDietStats struct {
	StartDate       time.Time            `json:"startDate" example:"2024-07-01T00:00:00Z"`
	DaysWithoutCard int                  `json:"daysWithoutCard" example:"12"` // Days since the last card expense, or since the start date
	Violations      []models.Transaction `json:"violations"`                   // Card expenses since the start date outside the exceptions
}

// ComputeCardDietStats derives the diet streak from card usage since the
// diet's start date. It returns nil while the diet is disabled.
//
// A violation is a card expense in a category that is not on the exception
// list. The streak counts whole days from the most recent card expense,
// excepted or not, or from the start date when the card was not used at all.
func ComputeCardDietStats(settings models.CardDietSettings, transactions []models.Transaction, now time.Time) *CardDietStats {
	if !settings.Enabled {
		return nil
	}

	start := dateOnly(settings.StartDate)

	var violations []models.Transaction
	last := start
	for _, transaction := range transactions {
		if transaction.Type != models.TransactionTypeExpense || transaction.Account != models.AccountCard {
			continue
		}
		if dateOnly(transaction.Date).Before(start) {
			continue
		}
		// Every card expense breaks the streak, the exception list only
		// decides whether it counts as a violation
		if day := dateOnly(transaction.Date); day.After(last) {
			last = day
		}

		if settings.IsException(transaction.CategoryID) {
			continue
		}

		violations = append(violations, transaction)
	}

	days := int(dateOnly(now).Sub(last).Hours() / 24)
	if days < 0 {
		days = 0
	}

	return &CardDietStats{
		StartDate:       settings.StartDate,
		DaysWithoutCard: days,
		Violations:      violations,
	}
}
