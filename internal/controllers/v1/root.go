package v1

import (
	"net/http"

	"github.com/centavo-app/backend/internal/httputil"
	"github.com/centavo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Budgets       string `json:"budgets" example:"https://example.com/api/v1/budgets"`              // URL of Budget collection endpoint
	CardDiet      string `json:"cardDiet" example:"https://example.com/api/v1/card-diet"`           // URL of the card diet settings endpoint
	Categories    string `json:"categories" example:"https://example.com/api/v1/categories"`        // URL of Category collection endpoint
	CategoryRules string `json:"categoryRules" example:"https://example.com/api/v1/category-rules"` // URL of Category Rule collection endpoint
	Debts         string `json:"debts" example:"https://example.com/api/v1/debts"`                  // URL of Debt collection endpoint
	Export        string `json:"export" example:"https://example.com/api/v1/export"`                // URL of the export endpoint
	Goals         string `json:"goals" example:"https://example.com/api/v1/goals"`                  // URL of goal collection endpoint
	Import        string `json:"import" example:"https://example.com/api/v1/import"`                // URL of import list endpoint
	Months        string `json:"months" example:"https://example.com/api/v1/months"`                // URL of the month dashboard endpoint
	Reminders     string `json:"reminders" example:"https://example.com/api/v1/reminders"`          // URL of Payment Reminder collection endpoint
	Subscriptions string `json:"subscriptions" example:"https://example.com/api/v1/subscriptions"`  // URL of Subscription collection endpoint
	Transactions  string `json:"transactions" example:"https://example.com/api/v1/transactions"`    // URL of Transaction collection endpoint
	WeeklyBudgets string `json:"weeklyBudgets" example:"https://example.com/api/v1/weekly-budgets"` // URL of Weekly Budget collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Budgets:       url + "/v1/budgets",
			CardDiet:      url + "/v1/card-diet",
			Categories:    url + "/v1/categories",
			CategoryRules: url + "/v1/category-rules",
			Debts:         url + "/v1/debts",
			Export:        url + "/v1/export",
			Goals:         url + "/v1/goals",
			Import:        url + "/v1/import",
			Months:        url + "/v1/months",
			Reminders:     url + "/v1/reminders",
			Subscriptions: url + "/v1/subscriptions",
			Transactions:  url + "/v1/transactions",
			WeeklyBudgets: url + "/v1/weekly-budgets",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
