package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/centavo-app/backend/internal/httputil"
	"github.com/centavo-app/backend/internal/importer"
	"github.com/centavo-app/backend/internal/importer/parser/statement"
	"github.com/centavo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
)

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// matchRules applies the category rules to a transaction preview. Since
// rules are loaded from the database in priority order, the first match
// wins.
func matchRules(transaction *importer.TransactionPreview, rules []models.CategoryRule) {
	for _, rule := range rules {
		if glob.Glob(rule.Match, transaction.Transaction.Description) {
			transaction.Transaction.CategoryID = rule.CategoryID
			transaction.RuleID = rule.ID
			return
		}
	}
}

// findCategory resolves the category name from the statement against the
// existing categories. Not finding one is an expected case, the commit
// creates missing categories.
func findCategory(transaction *importer.TransactionPreview) {
	if transaction.CategoryName == "" {
		return
	}

	var category models.Category
	err := models.DB.Where(&models.Category{Name: transaction.CategoryName}, "Name").First(&category).Error
	if err != nil {
		return
	}

	transaction.Transaction.CategoryID = category.ID
}

// duplicateTransactions finds duplicate transactions by their import hash
// and sets their IDs in the DuplicateTransactionIDs field.
func duplicateTransactions(transaction *importer.TransactionPreview) {
	var duplicates []models.Transaction
	models.DB.
		Where(models.Transaction{
			ImportHash: transaction.Transaction.ImportHash,
		}).
		Find(&duplicates)

	// When there are no resources, we want an empty list, not null
	duplicateIDs := make([]uuid.UUID, 0)
	for _, duplicate := range duplicates {
		duplicateIDs = append(duplicateIDs, duplicate.ID)
	}
	transaction.DuplicateTransactionIDs = duplicateIDs
}

// previewTransactions parses the uploaded statement and resolves rules,
// categories and duplicates for every line.
func previewTransactions(c *gin.Context) ([]importer.TransactionPreview, error) {
	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		return nil, err
	}

	transactions, err := statement.Parse(f)
	if err != nil {
		// statement.Parse returns a usable error already
		return nil, err
	}

	var rules []models.CategoryRule
	err = models.DB.Order("priority ASC").Find(&rules).Error
	if err != nil {
		return nil, err
	}

	for i, transaction := range transactions {
		if len(rules) > 0 {
			matchRules(&transaction, rules)
		}

		// Only resolve the statement's category name when no rule matched
		if transaction.Transaction.CategoryID == uuid.Nil {
			findCategory(&transaction)
		}

		duplicateTransactions(&transaction)
		transactions[i] = transaction
	}

	return transactions, nil
}

type ImportPreviewList struct {
	Data  []importer.TransactionPreview `json:"data"`                                           // List of transaction previews
	Error *string                       `json:"error" example:"you must send a file to this endpoint"` // The error, if any occurred
}

// RegisterImportRoutes registers the routes for imports.
func RegisterImportRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsImport)
		r.GET("", GetImport)

		r.OPTIONS("/statement-preview", OptionsImportStatementPreview)
		r.POST("/statement-preview", ImportStatementPreview)

		r.OPTIONS("/statement", OptionsImportStatement)
		r.POST("/statement", ImportStatement)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsGet(c)
}

type ImportResponse struct {
	Links ImportLinks `json:"links"` // Links for the import API
}

type ImportLinks struct {
	Statement        string `json:"statement" example:"https://example.com/api/v1/import/statement"`                // URL of the statement import endpoint
	StatementPreview string `json:"statementPreview" example:"https://example.com/api/v1/import/statement-preview"` // URL of the statement import preview endpoint
}

// @Summary		Import API overview
// @Description	Returns general information about the import API
// @Tags			Import
// @Success		200	{object}	ImportResponse
// @Router			/v1/import [get]
func GetImport(c *gin.Context) {
	c.JSON(http.StatusOK, ImportResponse{
		Links: ImportLinks{
			Statement:        c.GetString(string(models.DBContextURL)) + "/v1/import/statement",
			StatementPreview: c.GetString(string(models.DBContextURL)) + "/v1/import/statement-preview",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/statement-preview [options]
func OptionsImportStatementPreview(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/statement [options]
func OptionsImportStatement(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Statement import preview
// @Description	Returns a preview of transactions to be imported after parsing a statement CSV file
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	ImportPreviewList
// @Failure		400		{object}	ImportPreviewList
// @Failure		500		{object}	ImportPreviewList
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/import/statement-preview [post]
func ImportStatementPreview(c *gin.Context) {
	transactions, err := previewTransactions(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportPreviewList{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ImportPreviewList{Data: transactions})
}

// @Summary		Import statement
// @Description	Imports transactions from a statement CSV file. Unknown categories are created, duplicates by import hash are skipped.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	TransactionCreateResponse
// @Failure		400		{object}	TransactionCreateResponse
// @Failure		500		{object}	TransactionCreateResponse
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/import/statement [post]
func ImportStatement(c *gin.Context) {
	transactions, err := previewTransactions(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &s,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TransactionCreateResponse{}
	url := c.GetString(string(models.DBContextURL))

	for _, preview := range transactions {
		// Duplicates are skipped so that re-uploading the same statement
		// does not create the transactions twice
		if len(preview.DuplicateTransactionIDs) > 0 {
			continue
		}

		transaction := preview.Transaction

		if transaction.CategoryID == uuid.Nil {
			category, err := importCategory(preview.CategoryName)
			if err != nil {
				status = r.appendError(err, status)
				continue
			}

			transaction.CategoryID = category.ID
		}

		err = models.DB.Create(&transaction).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newTransaction(url, transaction)
		r.Data = append(r.Data, TransactionResponse{Data: &data})
	}

	c.JSON(status, r)
}

// importCategory returns the category for an imported transaction, creating
// it as a non-essential variable category if it does not exist yet. An empty
// name falls back to a catch-all category.
func importCategory(name string) (models.Category, error) {
	if name == "" {
		name = "Uncategorized"
	}

	var category models.Category
	err := models.DB.
		Where(&models.Category{Name: name}, "Name").
		Attrs(&models.Category{Group: models.CategoryGroupVariable}).
		FirstOrCreate(&category).Error

	return category, err
}
