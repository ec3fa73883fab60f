package services

import (
	"testing"

	"centavo/internal/models"
	"centavo/internal/pagination"
	"centavo/internal/testutil"
)

func TestCreateCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		cat, err := svc.CreateCategory("Comida")
		testutil.AssertNoError(t, err)

		if cat.ID == "" {
			t.Fatal("expected non-empty category ID")
		}
		if cat.Name != "Comida" {
			t.Errorf("expected name Comida, got %s", cat.Name)
		}
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory("Comida")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateCategory("Comida")
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY_NAME")
	})

	t.Run("name_matching_is_case_sensitive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory("Comida")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateCategory("comida")
		testutil.AssertNoError(t, err)
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory("")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetCategories(t *testing.T) {
	t.Run("includes_expense_counts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		catWithExpenses := testutil.CreateTestCategory(t, db)
		testutil.CreateTestCategory(t, db)

		testutil.CreateTestExpense(t, db, catWithExpenses.ID, 100)
		testutil.CreateTestExpense(t, db, catWithExpenses.ID, 50)

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.GetCategories(page)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Fatalf("expected 2 categories, got %d", result.TotalItems)
		}

		counts := make(map[string]int64)
		for _, cat := range result.Data {
			counts[cat.ID] = cat.ExpenseCount
		}
		if counts[catWithExpenses.ID] != 2 {
			t.Errorf("expected expense count 2, got %d", counts[catWithExpenses.ID])
		}
	})

	t.Run("pagination", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		for i := 0; i < 5; i++ {
			testutil.CreateTestCategory(t, db)
		}

		page := pagination.PageRequest{Page: 1, PageSize: 2}
		result, err := svc.GetCategories(page)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 5 {
			t.Errorf("expected 5 total items, got %d", result.TotalItems)
		}
		if len(result.Data) != 2 {
			t.Errorf("expected 2 items on page 1, got %d", len(result.Data))
		}
		if result.TotalPages != 3 {
			t.Errorf("expected 3 total pages, got %d", result.TotalPages)
		}
	})
}

func TestGetCategoryByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		created := testutil.CreateTestCategory(t, db)

		cat, err := svc.GetCategoryByID(created.ID)
		testutil.AssertNoError(t, err)

		if cat.ID != created.ID {
			t.Errorf("expected category ID %s, got %s", created.ID, cat.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.GetCategoryByID("0199b8a0-0000-7000-8000-000000000000")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestRenameCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		cat := testutil.CreateTestCategoryWithName(t, db, "Comida")

		updated, err := svc.RenameCategory(cat.ID, "Supermercado")
		testutil.AssertNoError(t, err)

		if updated.Name != "Supermercado" {
			t.Errorf("expected name Supermercado, got %s", updated.Name)
		}
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		testutil.CreateTestCategoryWithName(t, db, "Comida")
		cat := testutil.CreateTestCategoryWithName(t, db, "Transporte")

		_, err := svc.RenameCategory(cat.ID, "Comida")
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY_NAME")
	})

	t.Run("rename_to_own_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		cat := testutil.CreateTestCategoryWithName(t, db, "Comida")

		_, err := svc.RenameCategory(cat.ID, "Comida")
		testutil.AssertNoError(t, err)
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.RenameCategory("0199b8a0-0000-7000-8000-000000000000", "Comida")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		cat := testutil.CreateTestCategory(t, db)

		err := svc.DeleteCategory(cat.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.GetCategoryByID(cat.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")

		// Verify hard delete
		var count int64
		db.Model(&models.Category{}).Where("id = ?", cat.ID).Count(&count)
		if count != 0 {
			t.Errorf("expected record to be gone, got count %d", count)
		}
	})

	t.Run("blocked_while_expenses_reference_it", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		cat := testutil.CreateTestCategory(t, db)
		testutil.CreateTestExpense(t, db, cat.ID, 100)

		err := svc.DeleteCategory(cat.ID)
		testutil.AssertAppError(t, err, "CATEGORY_HAS_EXPENSES")

		// Category must survive the failed delete
		_, err = svc.GetCategoryByID(cat.ID)
		testutil.AssertNoError(t, err)
	})

	t.Run("deletable_after_expenses_removed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		cat := testutil.CreateTestCategory(t, db)
		expense := testutil.CreateTestExpense(t, db, cat.ID, 100)

		if err := db.Delete(expense).Error; err != nil {
			t.Fatalf("failed to delete expense: %v", err)
		}

		err := svc.DeleteCategory(cat.ID)
		testutil.AssertNoError(t, err)
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		err := svc.DeleteCategory("0199b8a0-0000-7000-8000-000000000000")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}
