package models

// Category represents an expense category. Names are unique across the
// whole ledger.
type Category struct {
	Base
	Name string `gorm:"not null;uniqueIndex" json:"name"`

	// ExpenseCount is derived per query, never stored.
	ExpenseCount int64 `gorm:"-" json:"expense_count"`

	// Relationships
	Expenses []Expense `gorm:"foreignKey:CategoryID" json:"expenses,omitempty"`
}
