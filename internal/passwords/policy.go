// Package passwords implements the password policy applied when a user sets
// a new password.
//
// Rules are checked in order and the first failing rule wins:
//
//  1. at least MinLength characters
//  2. no whitespace
//  3. at least one lowercase ASCII letter
//  4. at least one digit or symbol (anything outside [A-Za-z_])
//
// Every rule failure is a *common.Error of kind common.ErrValidation whose
// message can be shown to the user directly.
package passwords

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/taskboard/internal/common"
)

// MinLength is the minimal password length, in characters.
const MinLength = 6

var (
	ErrTooShort         = common.Validation("password must be at least 6 characters long")
	ErrWhitespace       = common.Validation("password cannot contain whitespace characters")
	ErrNoLowercase      = common.Validation("password must contain at least one lowercase character")
	ErrNoNumberOrSymbol = common.Validation("password must contain at least one number or symbol")
)

// Result is the outcome of Validate. Err is nil iff IsValid is true.
type Result struct {
	IsValid bool
	Err     error
}

// Validate runs the policy against password.
func Validate(password string) Result {
	if err := Check(password); err != nil {
		return Result{IsValid: false, Err: err}
	}
	return Result{IsValid: true}
}

// Check is Validate for callers that only need the error.
func Check(password string) error {
	switch {
	case utf8.RuneCountInString(password) < MinLength:
		return ErrTooShort
	case strings.IndexFunc(password, unicode.IsSpace) >= 0:
		return ErrWhitespace
	case strings.IndexFunc(password, isLowerASCII) < 0:
		return ErrNoLowercase
	case strings.IndexFunc(password, isNumberOrSymbol) < 0:
		return ErrNoNumberOrSymbol
	}
	return nil
}

func isLowerASCII(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// isNumberOrSymbol matches a digit or any non-word character, where word
// characters are ASCII letters, digits and underscore.
func isNumberOrSymbol(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		return false
	}
	return true
}
