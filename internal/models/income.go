package models

import "time"

// Income represents money entering the ledger. It has no relationships to
// other entities.
type Income struct {
	Base
	Amount      float64   `gorm:"not null" json:"amount"`
	Description *string   `json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
}
