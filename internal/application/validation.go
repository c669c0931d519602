package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "entityName" -> "entity name")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"entityName": "entity name",
		"format":     "format",
		"rootPath":   "root path",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateEntityName checks that a name refers to a single folder under Evaluation.
// Returns a ValidationError for empty names or names that would escape it.
func ValidateEntityName(fieldName, name string) error {
	if err := ValidateRequired(fieldName, name); err != nil {
		return err
	}

	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be a single folder name, got: %s", formatFieldName(fieldName), name),
		}
	}
	return nil
}
