package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"centavo/internal/llm"
	"centavo/internal/logger"
	"centavo/internal/models"
	"centavo/internal/period"
)

// incomeSourceFallback labels incomes that carry no description in the
// analysis snapshot.
const incomeSourceFallback = "Sin descripción"

// analysisService assembles a period snapshot of the ledger and turns it
// into advisory text, via the language model when available and a local
// summary otherwise.
type analysisService struct {
	incomes    IncomeServicer
	expenses   ExpenseServicer
	generator  llm.Generator
	classifier *Classifier
	currency   string
	now        func() time.Time
}

// NewAnalysisService creates a new AnalysisServicer.
func NewAnalysisService(incomes IncomeServicer, expenses ExpenseServicer, generator llm.Generator, classifier *Classifier, currency string) AnalysisServicer {
	return &analysisService{
		incomes:    incomes,
		expenses:   expenses,
		generator:  generator,
		classifier: classifier,
		currency:   currency,
		now:        time.Now,
	}
}

// GetFinancialAnalysis builds the snapshot for the requested period and asks
// the generator for advice. Generator failures degrade to a locally computed
// summary; only data-access problems surface as errors.
func (s *analysisService) GetFinancialAnalysis(ctx context.Context, periodToken, userGoal string) (*AnalysisResult, error) {
	log := logger.Get()

	window, known := period.Resolve(periodToken, s.now())
	if !known {
		log.Warnw("Unrecognized period token, defaulting to current month", "period", periodToken)
	}

	data, err := s.buildSnapshot(window, userGoal)
	if err != nil {
		return nil, err
	}

	analysis, err := s.generator.Generate(ctx, *data)
	if err != nil {
		log.Warnw("Analysis generation failed, falling back to local summary", "error", err)
		analysis = s.fallbackAnalysis(data)
	}

	return &AnalysisResult{Analysis: analysis, Data: *data}, nil
}

func (s *analysisService) buildSnapshot(window period.Range, userGoal string) (*models.FinancialData, error) {
	incomes, err := s.incomes.GetIncomesByDateRange(window.From, window.To)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.GetExpensesByDateRange(window.From, window.To)
	if err != nil {
		return nil, err
	}

	incomeEntries := make([]models.IncomeEntry, 0, len(incomes))
	for _, income := range incomes {
		source := incomeSourceFallback
		if income.Description != nil && *income.Description != "" {
			source = *income.Description
		}
		incomeEntries = append(incomeEntries, models.IncomeEntry{
			Date:   income.Date.Format("2006-01-02"),
			Amount: income.Amount,
			Source: source,
		})
	}

	expenseEntries := make([]models.ExpenseEntry, 0, len(expenses))
	for _, expense := range expenses {
		expenseEntries = append(expenseEntries, models.ExpenseEntry{
			Date:     expense.Date.Format("2006-01-02"),
			Amount:   expense.Amount,
			Category: expense.Category.Name,
			Fixed:    s.classifier.IsFixed(expense.Category.Name),
			Notes:    expense.Description,
		})
	}

	profile := models.UserProfile{
		HouseholdSize: 1,
		Dependents:    0,
		HasDebt:       false,
		Goals:         []string{},
	}
	if userGoal != "" {
		profile.Goals = []string{userGoal}
	}

	return &models.FinancialData{
		Period: models.PeriodInfo{
			From: window.From.Format("2006-01-02"),
			To:   window.ToDate,
			Days: window.Days,
		},
		Currency:    s.currency,
		Incomes:     incomeEntries,
		Expenses:    expenseEntries,
		UserProfile: profile,
	}, nil
}

// fallbackAnalysis produces a deterministic summary from the snapshot alone,
// used whenever the generator is unavailable.
func (s *analysisService) fallbackAnalysis(data *models.FinancialData) string {
	var totalIncome, totalExpenses float64
	for _, income := range data.Incomes {
		totalIncome += income.Amount
	}
	for _, expense := range data.Expenses {
		totalExpenses += expense.Amount
	}
	balance := totalIncome - totalExpenses

	var b strings.Builder
	fmt.Fprintf(&b, "📊 **Análisis Financiero - %d días**\n\n", data.Period.Days)
	b.WriteString("💰 **Resumen:**\n")
	fmt.Fprintf(&b, "• Ingresos totales: $%s\n", humanize.Commaf(totalIncome))
	fmt.Fprintf(&b, "• Gastos totales: $%s\n", humanize.Commaf(totalExpenses))
	fmt.Fprintf(&b, "• Balance: $%s\n\n", humanize.Commaf(balance))

	if len(data.UserProfile.Goals) > 0 {
		fmt.Fprintf(&b, "🎯 **Tu meta:** %s\n\n", data.UserProfile.Goals[0])
	}

	if balance < 0 {
		b.WriteString("💡 **Recomendación:** Tus gastos superan tus ingresos en este período. Revisa tus gastos variables para encontrar oportunidades de ahorro.\n\n")
	} else {
		b.WriteString("💡 **Recomendación:** Mantienes un balance positivo. Considera destinar parte del excedente a tus metas de ahorro.\n\n")
	}

	b.WriteString("*Nota: El servicio de IA no está disponible temporalmente. Este es un análisis básico de tus datos.*")
	return b.String()
}
