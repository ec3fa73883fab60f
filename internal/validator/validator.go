// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validCurrencies contains the ISO 4217 codes the reporting layer accepts.
var validCurrencies = map[string]bool{
	"ARS": true, "BRL": true, "CLP": true, "COP": true, "EUR": true,
	"GBP": true, "MXN": true, "PEN": true, "USD": true, "UYU": true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("period_token", validatePeriodToken)
		_ = v.RegisterValidation("iso4217", validateISO4217)
	}
}

func validatePeriodToken(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "current_month", "last_month", "last_3_months":
		return true
	}
	return false
}

func validateISO4217(fl validator.FieldLevel) bool {
	return validCurrencies[fl.Field().String()]
}
