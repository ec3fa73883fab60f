package services

import "testing"

func TestClassifierIsFixed(t *testing.T) {
	classifier := NewClassifier([]string{
		"Alquiler", "Servicios", "Streaming", "Seguros", "Préstamos", "Gimnasio",
	})

	tests := []struct {
		name     string
		category string
		want     bool
	}{
		{"exact_match", "Alquiler", true},
		{"case_insensitive", "alquiler", true},
		{"substring_match", "Servicios Públicos", true},
		{"plural_vocab_not_contained", "Seguro de Salud", false},
		{"plural_form_matches", "Seguros de Auto", true},
		{"variable_expense", "Comida", false},
		{"empty_name", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.IsFixed(tt.category); got != tt.want {
				t.Errorf("IsFixed(%q) = %v, want %v", tt.category, got, tt.want)
			}
		})
	}
}

func TestClassifierEmptyVocabulary(t *testing.T) {
	classifier := NewClassifier(nil)
	if classifier.IsFixed("Alquiler") {
		t.Error("expected nothing to be fixed with an empty vocabulary")
	}
}
