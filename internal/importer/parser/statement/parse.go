// Package statement parses bank statement exports in CSV format.
//
// The expected columns are date, description, amount, type, account and
// category. Type, account and category may be empty; the category column
// carries a display name that is resolved against the existing categories
// when the import is committed.
package statement

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/centavo-app/backend/internal/importer"
	"github.com/centavo-app/backend/internal/importer/helpers"
	"github.com/centavo-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Column indices of the statement CSV format
const (
	Date = iota
	Description
	Amount
	Type
	Account
	Category
)

// Parse reads a statement CSV and returns one preview per data line.
func Parse(f io.Reader) ([]importer.TransactionPreview, error) {
	reader := csv.NewReader(f)

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	var transactions []importer.TransactionPreview

	// Skip the header line
	_, err := reader.Read()
	if err == io.EOF {
		return []importer.TransactionPreview{}, nil
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		if strings.TrimSpace(record[Date]) == "" {
			return csvReadError(reader, errors.New("no date is set for the transaction"))
		}

		date, err := time.Parse("2006-01-02", record[Date])
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not parse time: %w", err))
		}

		amount, err := decimal.NewFromString(record[Amount])
		if err != nil {
			return csvReadError(reader, errors.New("the amount could not be parsed to a decimal"))
		}

		if !amount.IsPositive() {
			return csvReadError(reader, errors.New("the amount for a transaction must be positive"))
		}

		transactionType, err := parseType(record[Type])
		if err != nil {
			return csvReadError(reader, err)
		}

		account, err := parseAccount(record[Account])
		if err != nil {
			return csvReadError(reader, err)
		}

		transactions = append(transactions, importer.TransactionPreview{
			Transaction: models.Transaction{
				Date:        date,
				Description: strings.TrimSpace(record[Description]),
				Type:        transactionType,
				Account:     account,
				Amount:      amount,
				ImportHash:  helpers.Sha256String(strings.Join(record, ",")),
			},
			CategoryName: strings.TrimSpace(record[Category]),
		})
	}

	return transactions, nil
}

func parseType(value string) (models.TransactionType, error) {
	switch models.TransactionType(strings.ToUpper(strings.TrimSpace(value))) {
	case models.TransactionTypeIncome:
		return models.TransactionTypeIncome, nil
	case models.TransactionTypeExpense, "":
		return models.TransactionTypeExpense, nil
	}

	return "", fmt.Errorf("the transaction type %q is not supported", value)
}

func parseAccount(value string) (models.TransactionAccount, error) {
	switch models.TransactionAccount(strings.ToUpper(strings.TrimSpace(value))) {
	case models.AccountCash, "":
		return models.AccountCash, nil
	case models.AccountBank:
		return models.AccountBank, nil
	case models.AccountCard:
		return models.AccountCard, nil
	}

	return "", fmt.Errorf("the account %q is not supported", value)
}

// csvReadError returns an error including the line of the input the error
// occurred in.
func csvReadError(r *csv.Reader, err error) ([]importer.TransactionPreview, error) {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(1)

	return []importer.TransactionPreview{}, fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
