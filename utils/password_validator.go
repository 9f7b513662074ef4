package utils

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"shortlink-dashboard/config"
)

// ValidatePassword validates a password against the configured rules before
// a registration request is sent, so the user gets immediate feedback
// instead of a round-trip rejection.
func ValidatePassword(password string, rules config.PasswordRulesConfig) error {
	if len(password) < rules.MinLength {
		return fmt.Errorf("password must be at least %d characters long", rules.MinLength)
	}
	if len(password) > rules.MaxLength {
		return fmt.Errorf("password must not exceed %d characters", rules.MaxLength)
	}

	if rules.RequireUppercase && !containsUppercase(password) {
		return errors.New("password must contain at least one uppercase letter")
	}

	if rules.RequireLowercase && !containsLowercase(password) {
		return errors.New("password must contain at least one lowercase letter")
	}

	if rules.RequireDigit && !containsDigit(password) {
		return errors.New("password must contain at least one digit")
	}

	if rules.RequireSpecial && !containsSpecial(password) {
		return errors.New("password must contain at least one special character")
	}

	return nil
}

// GetPasswordRequirements returns a human-readable string of password requirements
func GetPasswordRequirements(rules config.PasswordRulesConfig) string {
	var requirements []string

	requirements = append(requirements, fmt.Sprintf("%d-%d characters", rules.MinLength, rules.MaxLength))

	if rules.RequireUppercase {
		requirements = append(requirements, "at least one uppercase letter")
	}
	if rules.RequireLowercase {
		requirements = append(requirements, "at least one lowercase letter")
	}
	if rules.RequireDigit {
		requirements = append(requirements, "at least one digit")
	}
	if rules.RequireSpecial {
		requirements = append(requirements, "at least one special character")
	}

	return strings.Join(requirements, ", ")
}

func containsUppercase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func containsLowercase(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func containsSpecial(s string) bool {
	for _, r := range s {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return true
		}
	}
	return false
}
