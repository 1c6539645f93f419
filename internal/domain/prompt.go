package domain

import (
	"fmt"
	"strings"
)

// Category groups sample prompts in the catalog.
type Category string

const (
	CategorySafe              Category = "safe"
	CategoryPotentiallyUnsafe Category = "unsafe"
)

// Title is the label shown in the category picker.
func (c Category) Title() string {
	switch c {
	case CategorySafe:
		return "Safe Prompts"
	case CategoryPotentiallyUnsafe:
		return "Potentially Unsafe Prompts"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c == CategorySafe || c == CategoryPotentiallyUnsafe
}

// ParseCategory accepts a slug ("safe", "unsafe") or a picker title.
func ParseCategory(value string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "safe", "safe prompts":
		return CategorySafe, nil
	case "unsafe", "potentially-unsafe", "potentially unsafe", "potentially unsafe prompts":
		return CategoryPotentiallyUnsafe, nil
	default:
		return "", fmt.Errorf("unknown prompt category %q (want safe|unsafe)", value)
	}
}

// PromptEntry is one immutable catalog item.
type PromptEntry struct {
	Category Category
	Label    string
	Text     string
}
