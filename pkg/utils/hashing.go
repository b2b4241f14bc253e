package utils

import (
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}

var (
	upperRe   = regexp.MustCompile(`[A-Z]`)
	lowerRe   = regexp.MustCompile(`[a-z]`)
	digitRe   = regexp.MustCompile(`\d`)
	specialRe = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>?]`)
	emailRe   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

var commonWeakPasswords = map[string]bool{
	"password":    true,
	"123456":      true,
	"123456789":   true,
	"qwerty":      true,
	"abc123":      true,
	"password123": true,
	"admin":       true,
	"letmein":     true,
	"welcome":     true,
	"monkey":      true,
}

// ValidatePasswordStrength checks the registration password policy and
// returns every rule the password breaks, so the client can show all of them
// at once.
func ValidatePasswordStrength(password string) (bool, []string) {
	var messages []string

	if len(password) < 8 {
		messages = append(messages, "Password must be at least 8 characters long")
	}
	if len(password) > 128 {
		messages = append(messages, "Password must be less than 128 characters")
	}
	if !upperRe.MatchString(password) {
		messages = append(messages, "Password must contain at least one uppercase letter")
	}
	if !lowerRe.MatchString(password) {
		messages = append(messages, "Password must contain at least one lowercase letter")
	}
	if !digitRe.MatchString(password) {
		messages = append(messages, "Password must contain at least one number")
	}
	if !specialRe.MatchString(password) {
		messages = append(messages, "Password must contain at least one special character")
	}
	if commonWeakPasswords[strings.ToLower(password)] {
		messages = append(messages, "Password is too common, please choose a stronger password")
	}

	return len(messages) == 0, messages
}

func ValidateEmailFormat(email string) bool {
	return emailRe.MatchString(email)
}
