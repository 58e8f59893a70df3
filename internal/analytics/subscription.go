package analytics

import (
	"sort"
	"strings"

	"github.com/centavo-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

// DetectSubscriptions finds recurring merchants in the transaction history
// without any user declared list.
//
// Expenses are grouped by their case normalized description. A merchant with
// at least two charges becomes a subscription when every charge is within
// 10% of the group's mean amount. The emitted subscription carries the mean
// as its amount, the category and date of the most recent charge, and an
// estimated next charge one calendar month later.
//
// The result replaces the stored subscription list on every transaction
// change, use MergeSubscriptionStatus to carry user set statuses over.
func DetectSubscriptions(transactions []models.Transaction) []models.Subscription {
	groups := make(map[string][]models.Transaction)
	for _, transaction := range transactions {
		if transaction.Type != models.TransactionTypeExpense {
			continue
		}

		merchant := strings.ToUpper(strings.TrimSpace(transaction.Description))
		if merchant == "" {
			continue
		}

		groups[merchant] = append(groups[merchant], transaction)
	}

	merchants := make([]string, 0, len(groups))
	for merchant := range groups {
		merchants = append(merchants, merchant)
	}
	sort.Strings(merchants)

	var subscriptions []models.Subscription
	for _, merchant := range merchants {
		charges := groups[merchant]
		if len(charges) < 2 {
			continue
		}

		sort.SliceStable(charges, func(i, j int) bool {
			return charges[i].Date.Before(charges[j].Date)
		})

		var sum decimal.Decimal
		for _, charge := range charges {
			sum = sum.Add(charge.Amount)
		}
		mean := sum.Div(decimal.NewFromInt(int64(len(charges))))

		if !withinSpread(charges, mean) {
			continue
		}

		latest := charges[len(charges)-1]
		subscriptions = append(subscriptions, models.Subscription{
			Merchant:      merchant,
			Amount:        mean,
			CategoryID:    latest.CategoryID,
			LastCharge:    latest.Date,
			NextEstimated: latest.Date.AddDate(0, 1, 0),
			Status:        models.SubscriptionActive,
		})
	}

	return subscriptions
}

// withinSpread reports whether every charge is within 10% of the mean.
func withinSpread(charges []models.Transaction, mean decimal.Decimal) bool {
	if !mean.IsPositive() {
		return false
	}

	limit := decimal.NewFromFloat(0.10)
	for _, charge := range charges {
		deviation := charge.Amount.Sub(mean).Abs().Div(mean)
		if deviation.GreaterThanOrEqual(limit) {
			return false
		}
	}

	return true
}

// MergeSubscriptionStatus carries identity and user set status from the
// stored subscriptions onto a freshly detected list. Detection owns every
// other field, the user only ever changes the status.
func MergeSubscriptionStatus(detected, existing []models.Subscription) []models.Subscription {
	byMerchant := make(map[string]models.Subscription, len(existing))
	for _, subscription := range existing {
		byMerchant[subscription.Merchant] = subscription
	}

	merged := make([]models.Subscription, len(detected))
	for i, subscription := range detected {
		if previous, ok := byMerchant[subscription.Merchant]; ok {
			subscription.DefaultModel = previous.DefaultModel
			subscription.Status = previous.Status
		}

		merged[i] = subscription
	}

	return merged
}
