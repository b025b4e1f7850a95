package domain

import "strings"

// Category identifies a notification category a user can opt into.
type Category string

const (
	CategoryDoorbell Category = "doorbell"
	CategoryDinner   Category = "dinner"
)

// Categories returns all known categories in menu order.
func Categories() []Category {
	return []Category{CategoryDoorbell, CategoryDinner}
}

// ParseCategory resolves a command argument to a category. Both the German
// command names and the internal identifiers are accepted, case-insensitively.
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(s) {
	case "klingel", "doorbell":
		return CategoryDoorbell, true
	case "essen", "dinner":
		return CategoryDinner, true
	}
	return "", false
}

// CategoryByCode resolves the one-letter callback code used in menu buttons.
func CategoryByCode(code byte) (Category, bool) {
	switch code {
	case 'k':
		return CategoryDoorbell, true
	case 'e':
		return CategoryDinner, true
	}
	return "", false
}

// DisplayName returns the name shown to users.
func (c Category) DisplayName() string {
	switch c {
	case CategoryDoorbell:
		return "Klingel"
	case CategoryDinner:
		return "Essen"
	}
	return string(c)
}

// Subject returns the phrase used in toggle confirmations.
func (c Category) Subject() string {
	switch c {
	case CategoryDoorbell:
		return "die Klingel"
	case CategoryDinner:
		return "fertiges Essen"
	}
	return string(c)
}

// Code returns the one-letter callback code for menu buttons.
func (c Category) Code() byte {
	switch c {
	case CategoryDoorbell:
		return 'k'
	case CategoryDinner:
		return 'e'
	}
	return 0
}
