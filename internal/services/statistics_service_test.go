package services

import (
	"testing"

	"centavo/internal/testutil"
)

func TestGetSummary(t *testing.T) {
	t.Run("empty_ledger_is_all_zeros", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStatisticsService(db)

		summary, err := svc.GetSummary()
		testutil.AssertNoError(t, err)

		if summary.TotalIncome != 0 || summary.TotalExpenses != 0 || summary.CurrentBalance != 0 {
			t.Errorf("expected all zeros, got %+v", summary)
		}
	})

	t.Run("balance_is_income_minus_expenses", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStatisticsService(db)
		cat := testutil.CreateTestCategory(t, db)

		testutil.CreateTestIncome(t, db, 1000)
		testutil.CreateTestIncome(t, db, 500)
		testutil.CreateTestExpense(t, db, cat.ID, 300)
		testutil.CreateTestExpense(t, db, cat.ID, 200)

		summary, err := svc.GetSummary()
		testutil.AssertNoError(t, err)

		if summary.TotalIncome != 1500 {
			t.Errorf("expected total income 1500, got %f", summary.TotalIncome)
		}
		if summary.TotalExpenses != 500 {
			t.Errorf("expected total expenses 500, got %f", summary.TotalExpenses)
		}
		if summary.CurrentBalance != 1000 {
			t.Errorf("expected balance 1000, got %f", summary.CurrentBalance)
		}
	})

	t.Run("negative_balance_possible_after_edits", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStatisticsService(db)
		cat := testutil.CreateTestCategory(t, db)

		// Fixtures write directly, like an update that raised an amount
		testutil.CreateTestIncome(t, db, 100)
		testutil.CreateTestExpense(t, db, cat.ID, 400)

		summary, err := svc.GetSummary()
		testutil.AssertNoError(t, err)

		if summary.CurrentBalance != -300 {
			t.Errorf("expected balance -300, got %f", summary.CurrentBalance)
		}
	})
}

func TestGetCounts(t *testing.T) {
	t.Run("counts_records", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStatisticsService(db)
		cat := testutil.CreateTestCategory(t, db)

		testutil.CreateTestIncome(t, db, 100)
		testutil.CreateTestIncome(t, db, 100)
		testutil.CreateTestIncome(t, db, 100)
		testutil.CreateTestExpense(t, db, cat.ID, 50)

		counts, err := svc.GetCounts()
		testutil.AssertNoError(t, err)

		if counts.Incomes != 3 {
			t.Errorf("expected 3 incomes, got %d", counts.Incomes)
		}
		if counts.Expenses != 1 {
			t.Errorf("expected 1 expense, got %d", counts.Expenses)
		}
	})
}
