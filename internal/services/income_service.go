package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "centavo/internal/errors"
	"centavo/internal/models"
	"centavo/internal/pagination"
)

// incomeService handles income-related business logic.
type incomeService struct {
	db *gorm.DB
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db}
}

// CreateIncome records a new income. A zero date defaults to now.
func (s *incomeService) CreateIncome(amount float64, description *string, date time.Time) (*models.Income, error) {
	if date.IsZero() {
		date = time.Now()
	}

	income := &models.Income{
		Amount:      amount,
		Description: description,
		Date:        date,
	}

	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return income, nil
}

// GetIncomes retrieves a paginated list of incomes, newest first.
func (s *incomeService) GetIncomes(page pagination.PageRequest) (*pagination.PageResponse[models.Income], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Income{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var incomes []models.Income
	if err := s.db.Model(&models.Income{}).
		Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(incomes, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetIncomeByID retrieves an income by ID.
func (s *incomeService) GetIncomeByID(incomeID string) (*models.Income, error) {
	var income models.Income
	if err := s.db.Where("id = ?", incomeID).First(&income).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIncomeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &income, nil
}

// UpdateIncome applies a partial update. Only provided fields change.
func (s *incomeService) UpdateIncome(incomeID string, fields IncomeUpdateFields) (*models.Income, error) {
	income, err := s.GetIncomeByID(incomeID)
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
	if fields.Date != nil {
		updates["date"] = *fields.Date
	}

	if len(updates) > 0 {
		if err := s.db.Model(income).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return income, nil
}

// DeleteIncome permanently removes an income.
func (s *incomeService) DeleteIncome(incomeID string) error {
	income, err := s.GetIncomeByID(incomeID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(income).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetIncomesByDateRange returns incomes with from <= date <= to in ascending
// date order.
func (s *incomeService) GetIncomesByDateRange(from, to time.Time) ([]models.Income, error) {
	var incomes []models.Income
	if err := s.db.Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return incomes, nil
}
