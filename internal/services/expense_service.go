package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "centavo/internal/errors"
	"centavo/internal/models"
	"centavo/internal/pagination"
)

// expenseService handles expense-related business logic, including the
// balance guard on creation.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// CreateExpense records a new expense. The requested amount must not exceed
// the current whole-ledger balance; an amount equal to the balance passes.
// The balance check and the insert run in one database transaction, which
// narrows (but under read-committed isolation does not fully eliminate) the
// window where two concurrent creations could jointly overdraw the ledger.
func (s *expenseService) CreateExpense(amount float64, description *string, categoryID string, date time.Time) (*models.Expense, error) {
	if categoryID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category ID is required")
	}

	if date.IsZero() {
		date = time.Now()
	}

	var expense *models.Expense
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.Where("id = ?", categoryID).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCategoryNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		summary, err := ledgerSummary(tx)
		if err != nil {
			return err
		}

		if amount > summary.CurrentBalance {
			return apperrors.WithMessage(apperrors.ErrInsufficientBalance,
				fmt.Sprintf("Insufficient balance. Available: $%.2f, requested: $%.2f",
					summary.CurrentBalance, amount))
		}

		expense = &models.Expense{
			Amount:      amount,
			Description: description,
			CategoryID:  categoryID,
			Date:        date,
		}
		if err := tx.Create(expense).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		expense.Category = category
		return nil
	})
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// GetExpenses retrieves a paginated list of expenses with their categories,
// newest first.
func (s *expenseService) GetExpenses(page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Expense{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := s.db.Model(&models.Expense{}).
		Preload("Category").
		Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetExpenseByID retrieves an expense with its category.
func (s *expenseService) GetExpenseByID(expenseID string) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Preload("Category").
		Where("id = ?", expenseID).
		First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateExpense applies a partial update. Only provided fields change.
// The balance guard applies to creation only; an update that raises the
// amount past the current balance succeeds.
func (s *expenseService) UpdateExpense(expenseID string, fields ExpenseUpdateFields) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(expenseID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Amount != nil {
		updates["amount"] = *fields.Amount
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.CategoryID != nil {
		var category models.Category
		if err := s.db.Where("id = ?", *fields.CategoryID).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		updates["category_id"] = *fields.CategoryID
	}
	if fields.Date != nil {
		updates["date"] = *fields.Date
	}

	if len(updates) > 0 {
		if err := s.db.Model(expense).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	// Re-read so the embedded category reflects any reassignment.
	return s.GetExpenseByID(expenseID)
}

// DeleteExpense permanently removes an expense.
func (s *expenseService) DeleteExpense(expenseID string) error {
	expense, err := s.GetExpenseByID(expenseID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetExpensesByDateRange returns expenses with from <= date <= to in
// ascending date order, categories included.
func (s *expenseService) GetExpensesByDateRange(from, to time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Preload("Category").
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}
