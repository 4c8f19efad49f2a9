package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// walletFormat matches a base58 Solana address
var walletFormat = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("wallet", validateWallet)
	_ = v.RegisterValidation("rollfilter", validateRollFilter)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map.
// This prevents leaking internal struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "wallet":
			errs[field] = "Invalid wallet address"
		case "rollfilter":
			errs[field] = "Unknown export filter"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateWallet(fl validator.FieldLevel) bool {
	address := fl.Field().String()
	if address == "" {
		return true
	}
	return walletFormat.MatchString(address)
}

// validRollFilters mirrors the filters the export service accepts
var validRollFilters = map[string]bool{
	"all":       true,
	"tier6plus": true,
	"pity":      true,
}

func validateRollFilter(fl validator.FieldLevel) bool {
	filter := fl.Field().String()
	if filter == "" {
		return true
	}
	return validRollFilters[strings.ToLower(filter)]
}
