package models

// PeriodInfo describes the resolved reporting window of a snapshot. To is a
// bare calendar date; the end-of-day query bound never leaves the service.
type PeriodInfo struct {
	From string `json:"from"`
	To   string `json:"to"`
	Days int    `json:"days"`
}

// IncomeEntry is an income projected for the analysis snapshot.
type IncomeEntry struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Source string  `json:"source"`
}

// ExpenseEntry is an expense projected for the analysis snapshot.
type ExpenseEntry struct {
	Date     string  `json:"date"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Fixed    bool    `json:"fixed"`
	Notes    *string `json:"notes,omitempty"`
}

// UserProfile carries household context for the advisor. There is no stored
// user entity; everything except the goals is a static placeholder.
type UserProfile struct {
	HouseholdSize int      `json:"household_size"`
	Dependents    int      `json:"dependents"`
	HasDebt       bool     `json:"has_debt"`
	Goals         []string `json:"goals"`
}

// FinancialData is the read-only snapshot of ledger data for a period,
// handed to the analysis generator. It is built per request and never
// persisted.
type FinancialData struct {
	Period      PeriodInfo     `json:"period"`
	Currency    string         `json:"currency"`
	Incomes     []IncomeEntry  `json:"incomes"`
	Expenses    []ExpenseEntry `json:"expenses"`
	UserProfile UserProfile    `json:"user_profile"`
}
