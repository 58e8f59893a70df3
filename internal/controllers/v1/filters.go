package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// likeFilter filters a string column with a substring match. An explicitly
// set empty parameter matches only empty values.
func likeFilter(query *gorm.DB, setFields []string, column, field, value string) *gorm.DB {
	if value != "" {
		return query.Where(column+" LIKE ?", fmt.Sprintf("%%%s%%", value))
	}

	if slices.Contains(setFields, field) {
		return query.Where(column + " = ''")
	}

	return query
}

// searchFilter matches the search string against any of the columns.
func searchFilter(db, query *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" {
		return query
	}

	pattern := fmt.Sprintf("%%%s%%", search)

	sub := db.Where(columns[0]+" LIKE ?", pattern)
	for _, column := range columns[1:] {
		sub = sub.Or(db.Where(column+" LIKE ?", pattern))
	}

	return query.Where(sub)
}
