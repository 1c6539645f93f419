// Package evaldata loads and validates the constant evaluation tables
// rendered by the static dashboard sections.
package evaldata

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/safety-dash/assets"
	"github.com/doeshing/safety-dash/internal/domain"
	"github.com/doeshing/safety-dash/internal/ports"
)

// Store holds a validated, read-only dataset.
type Store struct {
	dataset domain.Dataset
}

// NewDefault loads the embedded dataset.
func NewDefault() (*Store, error) {
	return Parse(assets.EvaluationsYAML)
}

// Parse decodes and validates a dataset.
func Parse(raw []byte) (*Store, error) {
	var dataset domain.Dataset
	if err := yaml.Unmarshal(raw, &dataset); err != nil {
		return nil, fmt.Errorf("parse evaluations: %w", err)
	}
	if err := Validate(&dataset); err != nil {
		return nil, err
	}
	return &Store{dataset: dataset}, nil
}

// Dataset returns the loaded tables.
func (s *Store) Dataset() domain.Dataset {
	return s.dataset
}

// Validate checks every block and normalizes risk levels in place.
func Validate(dataset *domain.Dataset) error {
	if dataset.Version == "" {
		return errors.New("evaluations: version is required")
	}
	for slug, section := range dataset.Sections {
		if _, err := domain.ParseSection(slug); err != nil {
			return fmt.Errorf("evaluations: %w", err)
		}
		for i := range section.Blocks {
			if err := validateBlock(&section.Blocks[i]); err != nil {
				return fmt.Errorf("evaluations: section %s block %d: %w", slug, i, err)
			}
		}
	}
	for _, section := range domain.Sections() {
		if !section.Static() {
			continue
		}
		if _, ok := dataset.Section(section); !ok {
			return fmt.Errorf("evaluations: section %s missing", section.Slug())
		}
	}
	return nil
}

func validateBlock(block *domain.Block) error {
	switch block.Kind {
	case domain.BlockMarkdown:
		if block.Markdown == "" {
			return errors.New("markdown block is empty")
		}
	case domain.BlockBar, domain.BlockPie:
		if err := validatePoints(block.Points); err != nil {
			return err
		}
	case domain.BlockGroupedBar:
		if len(block.Series) == 0 {
			return errors.New("grouped bar needs at least one series")
		}
		for _, series := range block.Series {
			if series.Name == "" {
				return errors.New("series name is required")
			}
			if err := validatePoints(series.Points); err != nil {
				return fmt.Errorf("series %s: %w", series.Name, err)
			}
		}
	case domain.BlockRisk:
		if len(block.Risks) == 0 {
			return errors.New("risk block is empty")
		}
		for i, risk := range block.Risks {
			level, err := domain.ParseRiskLevel(string(risk.Level))
			if err != nil {
				return fmt.Errorf("%s: %w", risk.Category, err)
			}
			block.Risks[i].Level = level
		}
	default:
		return fmt.Errorf("unknown block kind %q", block.Kind)
	}
	if block.Max < 0 {
		return errors.New("max must not be negative")
	}
	return nil
}

func validatePoints(points []domain.Point) error {
	if len(points) == 0 {
		return errors.New("no data points")
	}
	for _, p := range points {
		if p.Label == "" {
			return errors.New("data point label is required")
		}
		if p.Value < 0 {
			return fmt.Errorf("%s: negative value %v", p.Label, p.Value)
		}
	}
	return nil
}

var _ ports.DatasetSource = (*Store)(nil)
