package domain

import (
	"fmt"
	"strings"
)

// RiskLevel is a Preparedness Framework rating.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

// ParseRiskLevel normalizes a rating read from a data asset.
func ParseRiskLevel(value string) (RiskLevel, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "low":
		return RiskLow, nil
	case "medium":
		return RiskMedium, nil
	case "high":
		return RiskHigh, nil
	case "critical":
		return RiskCritical, nil
	default:
		return "", fmt.Errorf("unknown risk level %q", value)
	}
}

// RiskEntry rates one tracked category.
type RiskEntry struct {
	Category string    `yaml:"category"`
	Level    RiskLevel `yaml:"level"`
}
