// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"regain/config"
	domainerrors "regain/internal/domain/errors"
	"regain/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{
		cost:     cost,
		strength: cfg.PasswordStrength,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks the password against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if h.strength == nil {
		return nil
	}

	var problems []string

	if h.strength.MinLength > 0 && len(password) < h.strength.MinLength {
		problems = append(problems, fmt.Sprintf("at least %d characters", h.strength.MinLength))
	}
	if h.strength.MaxLength > 0 && len(password) > h.strength.MaxLength {
		problems = append(problems, fmt.Sprintf("at most %d characters", h.strength.MaxLength))
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsNumber(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if h.strength.RequireUppercase && !hasUpper {
		problems = append(problems, "an uppercase letter")
	}
	if h.strength.RequireLowercase && !hasLower {
		problems = append(problems, "a lowercase letter")
	}
	if h.strength.RequireNumbers && !hasNumber {
		problems = append(problems, "a number")
	}
	if h.strength.RequireSpecial && !hasSpecial {
		problems = append(problems, "a special character")
	}

	if len(problems) > 0 {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain " + strings.Join(problems, ", "))
	}

	return nil
}
