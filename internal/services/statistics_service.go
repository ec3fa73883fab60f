package services

import (
	"gorm.io/gorm"

	apperrors "centavo/internal/errors"
	"centavo/internal/models"
)

// statisticsService derives reporting aggregates from the ledger. It holds
// no state of its own; every call recomputes from the live ledger.
type statisticsService struct {
	db *gorm.DB
}

// NewStatisticsService creates a new StatisticsServicer.
func NewStatisticsService(db *gorm.DB) StatisticsServicer {
	return &statisticsService{db: db}
}

// GetSummary returns whole-ledger totals and the current balance.
func (s *statisticsService) GetSummary() (*Summary, error) {
	return ledgerSummary(s.db)
}

// GetCounts returns the number of income and expense records.
func (s *statisticsService) GetCounts() (*Counts, error) {
	var incomes, expenses int64
	if err := s.db.Model(&models.Income{}).Count(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Model(&models.Expense{}).Count(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &Counts{Incomes: incomes, Expenses: expenses}, nil
}

// ledgerSummary computes totals over the entire ledger with the given
// connection, so the expense guard can reuse it inside a transaction.
// Sums over an empty table are zero.
func ledgerSummary(db *gorm.DB) (*Summary, error) {
	totalIncome, err := sumAmounts(db, &models.Income{})
	if err != nil {
		return nil, err
	}
	totalExpenses, err := sumAmounts(db, &models.Expense{})
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalIncome:    totalIncome,
		TotalExpenses:  totalExpenses,
		CurrentBalance: totalIncome - totalExpenses,
	}, nil
}

func sumAmounts(db *gorm.DB, model interface{}) (float64, error) {
	var total float64
	if err := db.Model(model).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}
