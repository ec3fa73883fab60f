package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"centavo/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryWithName creates a category with the given name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestIncome creates an income with the given amount, dated now.
func CreateTestIncome(t *testing.T, db *gorm.DB, amount float64) *models.Income {
	t.Helper()
	return CreateTestIncomeOnDate(t, db, amount, time.Now())
}

// CreateTestIncomeOnDate creates an income with the given amount and date.
func CreateTestIncomeOnDate(t *testing.T, db *gorm.DB, amount float64, date time.Time) *models.Income {
	t.Helper()

	description := fmt.Sprintf("Test Income %d", nextID())
	income := &models.Income{
		Amount:      amount,
		Description: &description,
		Date:        date,
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestExpense creates an expense in the given category, dated now.
// It bypasses the balance guard by writing directly.
func CreateTestExpense(t *testing.T, db *gorm.DB, categoryID string, amount float64) *models.Expense {
	t.Helper()
	return CreateTestExpenseOnDate(t, db, categoryID, amount, time.Now())
}

// CreateTestExpenseOnDate creates an expense with the given amount and date.
func CreateTestExpenseOnDate(t *testing.T, db *gorm.DB, categoryID string, amount float64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Amount:     amount,
		CategoryID: categoryID,
		Date:       date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}
