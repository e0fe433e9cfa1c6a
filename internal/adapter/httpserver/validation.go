package httpserver

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationResult represents the result of validating a request payload.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidateAnalysisText checks one of the free-text inputs against the
// configured length bounds. Lengths are measured in runes so multi-byte
// input is not penalized.
func ValidateAnalysisText(field, text string, minLen, maxLen int) ValidationResult {
	if strings.TrimSpace(text) == "" {
		return ValidationResult{
			Valid: false,
			Errors: []ValidationError{
				{
					Field:   field,
					Code:    "REQUIRED",
					Message: fmt.Sprintf("%s must not be empty", field),
				},
			},
		}
	}

	n := utf8.RuneCountInString(text)
	if n < minLen {
		return ValidationResult{
			Valid: false,
			Errors: []ValidationError{
				{
					Field:   field,
					Code:    "TOO_SHORT",
					Message: fmt.Sprintf("%s must be at least %d characters", field, minLen),
				},
			},
		}
	}
	if n > maxLen {
		return ValidationResult{
			Valid: false,
			Errors: []ValidationError{
				{
					Field:   field,
					Code:    "TOO_LONG",
					Message: fmt.Sprintf("%s must be at most %d characters", field, maxLen),
				},
			},
		}
	}

	return ValidationResult{Valid: true}
}

// ValidateAnalysisRequest validates both text inputs and merges the errors.
func ValidateAnalysisRequest(resumeText, jobText string, minLen, maxLen int) ValidationResult {
	var errs []ValidationError
	if res := ValidateAnalysisText("resume_text", resumeText, minLen, maxLen); !res.Valid {
		errs = append(errs, res.Errors...)
	}
	if res := ValidateAnalysisText("job_description", jobText, minLen, maxLen); !res.Valid {
		errs = append(errs, res.Errors...)
	}
	if len(errs) > 0 {
		return ValidationResult{Valid: false, Errors: errs}
	}
	return ValidationResult{Valid: true}
}
