package services

import (
	"context"
	"time"

	"centavo/internal/models"
	"centavo/internal/pagination"
)

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(name string) (*models.Category, error)
	GetCategories(page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(categoryID string) (*models.Category, error)
	RenameCategory(categoryID, name string) (*models.Category, error)
	DeleteCategory(categoryID string) error
}

// IncomeUpdateFields holds optional overrides for a partial income update.
// Only non-nil fields are applied.
type IncomeUpdateFields struct {
	Amount      *float64
	Description *string
	Date        *time.Time
}

// IncomeServicer defines the contract for income-related business logic.
type IncomeServicer interface {
	CreateIncome(amount float64, description *string, date time.Time) (*models.Income, error)
	GetIncomes(page pagination.PageRequest) (*pagination.PageResponse[models.Income], error)
	GetIncomeByID(incomeID string) (*models.Income, error)
	UpdateIncome(incomeID string, fields IncomeUpdateFields) (*models.Income, error)
	DeleteIncome(incomeID string) error
	GetIncomesByDateRange(from, to time.Time) ([]models.Income, error)
}

// ExpenseUpdateFields holds optional overrides for a partial expense update.
// Only non-nil fields are applied.
type ExpenseUpdateFields struct {
	Amount      *float64
	Description *string
	CategoryID  *string
	Date        *time.Time
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(amount float64, description *string, categoryID string, date time.Time) (*models.Expense, error)
	GetExpenses(page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(expenseID string) (*models.Expense, error)
	UpdateExpense(expenseID string, fields ExpenseUpdateFields) (*models.Expense, error)
	DeleteExpense(expenseID string) error
	GetExpensesByDateRange(from, to time.Time) ([]models.Expense, error)
}

// Summary contains whole-ledger totals, recomputed from scratch on every call.
type Summary struct {
	TotalIncome    float64 `json:"totalIncome"`
	TotalExpenses  float64 `json:"totalExpenses"`
	CurrentBalance float64 `json:"currentBalance"`
}

// Counts contains ledger record counts for reporting.
type Counts struct {
	Incomes  int64 `json:"incomes"`
	Expenses int64 `json:"expenses"`
}

// StatisticsServicer defines the contract for ledger aggregation.
type StatisticsServicer interface {
	GetSummary() (*Summary, error)
	GetCounts() (*Counts, error)
}

// AnalysisResult pairs the advisory text with the snapshot it was built from.
type AnalysisResult struct {
	Analysis string               `json:"analysis"`
	Data     models.FinancialData `json:"data"`
}

// AnalysisServicer defines the contract for the financial-analysis feature.
type AnalysisServicer interface {
	GetFinancialAnalysis(ctx context.Context, periodToken, userGoal string) (*AnalysisResult, error)
}
