package v1

import (
	"net/http"
	"time"

	"github.com/centavo-app/backend/internal/analytics"
	"github.com/centavo-app/backend/internal/httputil"
	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type MonthResponse struct {
	Data  *analytics.Report `json:"data"`                                                  // The dashboard report for the month
	Error *string           `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMonth)
	r.GET("", GetMonth)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get month dashboard
// @Description	Returns all derived views for the month: statistics, budget and debt progress, payoff orderings, daily allowance, insights, micro spending, weekly budgets, card diet and upcoming payments
// @Tags			Months
// @Produce		json
// @Success		200	{object}	MonthResponse
// @Failure		400	{object}	MonthResponse
// @Failure		500	{object}	MonthResponse
// @Param			month	query	string	true	"The month in YYYY-MM format"
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
	var query QueryMonth
	if err := c.BindQuery(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	if query.Month.IsZero() {
		s := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	snapshot, err := loadSnapshot(types.MonthOf(query.Month))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	report := analytics.Recompute(snapshot)
	c.JSON(http.StatusOK, MonthResponse{Data: &report})
}

// loadSnapshot reads every collection the derivations run over. All queries
// happen before Recompute so the report is computed against one state.
func loadSnapshot(month types.Month) (analytics.Snapshot, error) {
	snapshot := analytics.Snapshot{
		Now:      time.Now(),
		Month:    month,
		Currency: analytics.DefaultCurrency,
	}

	cardDiet, err := models.LoadCardDietSettings(models.DB)
	if err != nil {
		return analytics.Snapshot{}, err
	}
	snapshot.CardDiet = cardDiet

	for _, dest := range []any{
		&snapshot.Transactions,
		&snapshot.Categories,
		&snapshot.Budgets,
		&snapshot.Debts,
		&snapshot.Goals,
		&snapshot.WeeklyBudgets,
		&snapshot.Subscriptions,
		&snapshot.Reminders,
	} {
		if err := models.DB.Find(dest).Error; err != nil {
			return analytics.Snapshot{}, err
		}
	}

	return snapshot, nil
}
