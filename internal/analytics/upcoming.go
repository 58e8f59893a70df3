package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// UpcomingPayment is one entry of the merged seven day payment outlook.
//
// The ID is prefixed by the entry's source so that synthesized entries for
// subscriptions and debts never collide with reminder IDs.
type UpcomingPayment struct {
	ID      string              `json:"id" example:"debt-a9f7c3e1-46b2-4b9f-9d0a-91c2f77a20b4"`
	Title   string              `json:"title" example:"Tarjeta Itaú"`
	DueDate time.Time           `json:"dueDate" example:"2024-07-05T00:00:00Z"`
	Type    models.ReminderType `json:"type" example:"CARD_DUE"`
	Amount  *decimal.Decimal    `json:"amount" example:"900000"` // nil when the reminder has no amount
}

// ComputeUpcomingPayments merges reminders, active subscriptions, and debt
// due dates into one list of payments due within the next seven days, sorted
// by due date.
//
// Debt due dates are anchored in the selected month, so past or future
// months contribute their own due dates and usually fall outside the window.
func ComputeUpcomingPayments(reminders []models.PaymentReminder, subscriptions []models.Subscription, debts []models.Debt, month types.Month, now time.Time) []UpcomingPayment {
	windowStart := dateOnly(now)
	windowEnd := windowStart.AddDate(0, 0, 7)

	inWindow := func(t time.Time) bool {
		day := dateOnly(t)
		return !day.Before(windowStart) && !day.After(windowEnd)
	}

	var upcoming []UpcomingPayment

	for _, reminder := range reminders {
		if !inWindow(reminder.DueDate) {
			continue
		}

		upcoming = append(upcoming, UpcomingPayment{
			ID:      fmt.Sprintf("reminder-%s", reminder.ID),
			Title:   reminder.Title,
			DueDate: reminder.DueDate,
			Type:    reminder.Type,
			Amount:  reminder.Amount,
		})
	}

	for _, subscription := range subscriptions {
		if subscription.Status != models.SubscriptionActive || !inWindow(subscription.NextEstimated) {
			continue
		}

		amount := subscription.Amount
		upcoming = append(upcoming, UpcomingPayment{
			ID:      fmt.Sprintf("sub-%s", subscription.ID),
			Title:   subscription.Merchant,
			DueDate: subscription.NextEstimated,
			Type:    models.ReminderSubscription,
			Amount:  &amount,
		})
	}

	for _, debt := range debts {
		dueDate := month.Day(debt.DueDay)
		if !inWindow(dueDate) {
			continue
		}

		amount := debt.MonthlyPayment
		upcoming = append(upcoming, UpcomingPayment{
			ID:      fmt.Sprintf("debt-%s", debt.ID),
			Title:   debt.Name,
			DueDate: dueDate,
			Type:    models.ReminderCardDue,
			Amount:  &amount,
		})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate)
	})

	return upcoming
}
