package models

import "time"

// Expense represents money leaving the ledger. Every expense belongs to
// exactly one category.
type Expense struct {
	Base
	Amount      float64   `gorm:"not null" json:"amount"`
	Description *string   `json:"description"`
	CategoryID  string    `gorm:"type:uuid;not null" json:"category_id"`
	Date        time.Time `gorm:"not null" json:"date"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}
