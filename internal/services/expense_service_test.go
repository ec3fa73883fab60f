package services

import (
	"strings"
	"testing"
	"time"

	"centavo/internal/models"
	"centavo/internal/pagination"
	"centavo/internal/testutil"
)

func TestCreateExpense(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		cat := testutil.CreateTestCategory(t, db)
		testutil.CreateTestIncome(t, db, 1000)

		description := "Supermercado"
		expense, err := svc.CreateExpense(300, &description, cat.ID, time.Now())
		testutil.AssertNoError(t, err)

		if expense.ID == "" {
			t.Fatal("expected non-empty expense ID")
		}
		if expense.Amount != 300 {
			t.Errorf("expected amount 300, got %f", expense.Amount)
		}
		if expense.Category.Name != cat.Name {
			t.Errorf("expected category %s preloaded, got %s", cat.Name, expense.Category.Name)
		}
	})

	t.Run("insufficient_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		cat := testutil.CreateTestCategory(t, db)
		testutil.CreateTestIncome(t, db, 100)

		_, err := svc.CreateExpense(101, nil, cat.ID, time.Now())
		testutil.AssertAppError(t, err, "INSUFFICIENT_BALANCE")

		// Nothing persisted
		var count int64
		db.Model(&models.Expense{}).Count(&count)
		if count != 0 {
			t.Errorf("expected no expense rows after rejection, got %d", count)
		}
	})

	t.Run("rejection_message_carries_figures", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		cat := testutil.CreateTestCategory(t, db)
		testutil.CreateTestIncome(t, db, 100)

		_, err := svc.CreateExpense(250, nil, cat.ID, time.Now())
		if err == nil {
			t.Fatal("expected error")
		}
		msg := err.Error()
		if !strings.Contains(msg, "100.00") || !strings.Contains(msg, "250.00") {
			t.Errorf("expected message with available and requested amounts, got %q", msg)
		}
	})

	t.Run("amount_equal_to_balance_passes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		cat := testutil.CreateTestCategory(t, db)
		testutil.CreateTestIncome(t, db, 500)

		_, err := svc.CreateExpense(500, nil, cat.ID, time.Now())
		testutil.AssertNoError(t, err)
	})

	t.Run("zero_balance_blocks_any_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		cat := testutil.CreateTestCategory(t, db)

		_, err := svc.CreateExpense(1, nil, cat.ID, time.Now())
		testutil.AssertAppError(t, err, "INSUFFICIENT_BALANCE")
	})

	t.Run("balance_accounts_for_prior_expenses", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		cat := testutil.CreateTestCategory(t, db)
		testutil.CreateTestIncome(t, db, 1000)
		testutil.CreateTestExpense(t, db, cat.ID, 900)

		_, err := svc.CreateExpense(200, nil, cat.ID, time.Now())
		testutil.AssertAppError(t, err, "INSUFFICIENT_BALANCE")

		_, err = svc.CreateExpense(100, nil, cat.ID, time.Now())
		testutil.AssertNoError(t, err)
	})

	t.Run("category_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		testutil.CreateTestIncome(t, db, 1000)

		_, err := svc.CreateExpense(100, nil, "0199b8a0-0000-7000-8000-000000000000", time.Now())
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestGetExpenses(t *testing.T) {
	t.Run("preloads_categories", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		cat := testutil.CreateTestCategoryWithName(t, db, "Transporte")
		testutil.CreateTestExpense(t, db, cat.ID, 100)

		result, err := svc.GetExpenses(pagination.PageRequest{Page: 1, PageSize: 20})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 1 {
			t.Fatalf("expected 1 expense, got %d", result.TotalItems)
		}
		if result.Data[0].Category.Name != "Transporte" {
			t.Errorf("expected preloaded category Transporte, got %s", result.Data[0].Category.Name)
		}
	})
}

func TestGetExpenseByID(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		_, err := svc.GetExpenseByID("0199b8a0-0000-7000-8000-000000000000")
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})
}

func TestUpdateExpense(t *testing.T) {
	t.Run("update_bypasses_balance_guard", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		cat := testutil.CreateTestCategory(t, db)
		testutil.CreateTestIncome(t, db, 100)

		expense, err := svc.CreateExpense(50, nil, cat.ID, time.Now())
		testutil.AssertNoError(t, err)

		// Raising the amount past the balance succeeds on update
		newAmount := 5000.0
		updated, err := svc.UpdateExpense(expense.ID, ExpenseUpdateFields{Amount: &newAmount})
		testutil.AssertNoError(t, err)

		if updated.Amount != 5000 {
			t.Errorf("expected amount 5000, got %f", updated.Amount)
		}
	})

	t.Run("reassign_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		original := testutil.CreateTestCategoryWithName(t, db, "Comida")
		target := testutil.CreateTestCategoryWithName(t, db, "Transporte")
		expense := testutil.CreateTestExpense(t, db, original.ID, 100)

		updated, err := svc.UpdateExpense(expense.ID, ExpenseUpdateFields{CategoryID: &target.ID})
		testutil.AssertNoError(t, err)

		if updated.CategoryID != target.ID {
			t.Errorf("expected category ID %s, got %s", target.ID, updated.CategoryID)
		}
		if updated.Category.Name != "Transporte" {
			t.Errorf("expected reloaded category Transporte, got %s", updated.Category.Name)
		}
	})

	t.Run("reassign_to_missing_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		cat := testutil.CreateTestCategory(t, db)
		expense := testutil.CreateTestExpense(t, db, cat.ID, 100)

		missing := "0199b8a0-0000-7000-8000-000000000000"
		_, err := svc.UpdateExpense(expense.ID, ExpenseUpdateFields{CategoryID: &missing})
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		amount := 100.0
		_, err := svc.UpdateExpense("0199b8a0-0000-7000-8000-000000000000", ExpenseUpdateFields{Amount: &amount})
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})
}

func TestDeleteExpense(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		cat := testutil.CreateTestCategory(t, db)
		expense := testutil.CreateTestExpense(t, db, cat.ID, 100)

		err := svc.DeleteExpense(expense.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.GetExpenseByID(expense.ID)
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})
}

func TestGetExpensesByDateRange(t *testing.T) {
	t.Run("inclusive_bounds_ascending_order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		cat := testutil.CreateTestCategory(t, db)

		from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

		testutil.CreateTestExpenseOnDate(t, db, cat.ID, 10, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestExpenseOnDate(t, db, cat.ID, 20, from)
		testutil.CreateTestExpenseOnDate(t, db, cat.ID, 30, to)

		expenses, err := svc.GetExpensesByDateRange(from, to)
		testutil.AssertNoError(t, err)

		if len(expenses) != 2 {
			t.Fatalf("expected 2 expenses in range, got %d", len(expenses))
		}
		if expenses[0].Amount != 20 {
			t.Errorf("expected ascending date order, got first amount %f", expenses[0].Amount)
		}
		if expenses[0].Category.ID != cat.ID {
			t.Error("expected category preloaded on range query")
		}
	})
}
