package services

import "strings"

// Classifier decides whether an expense is fixed or variable from its
// category name. A category is fixed when its lowercased name contains any
// lowercased vocabulary entry, so "Servicios Públicos" matches "Servicios".
type Classifier struct {
	vocabulary []string
}

// NewClassifier builds a classifier over the given vocabulary of
// fixed-expense category names.
func NewClassifier(vocabulary []string) *Classifier {
	return &Classifier{vocabulary: vocabulary}
}

// IsFixed reports whether the category name marks a fixed expense.
func (c *Classifier) IsFixed(categoryName string) bool {
	name := strings.ToLower(categoryName)
	for _, entry := range c.vocabulary {
		if strings.Contains(name, strings.ToLower(entry)) {
			return true
		}
	}
	return false
}
