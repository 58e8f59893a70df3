package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRule assigns a category to imported transactions whose description
// matches a glob pattern. Rules are applied in ascending priority order, the
// first match wins.
type CategoryRule struct {
	DefaultModel
	Priority   uint
	Match      string // Glob pattern matched against the transaction description
	CategoryID uuid.UUID
	Category   Category `json:"-"`
}

func (r *CategoryRule) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*CategoryRule)
	return tx.First(&Category{}, toSave.CategoryID).Error
}

func (r *CategoryRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)

	if r.Match == "" {
		return ErrCategoryRuleMatchEmpty
	}

	return nil
}

// Returns all category rules on this instance for export
func (CategoryRule) Export() (json.RawMessage, error) {
	var rules []CategoryRule
	err := DB.Unscoped().Where(&CategoryRule{}).Find(&rules).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&rules)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
