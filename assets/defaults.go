package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// CatalogYAML contains the sample prompt catalog.
//
//go:embed defaults/catalog.yaml
var CatalogYAML []byte

// EvaluationsYAML contains the versioned evaluation tables shown in the
// static sections.
//
//go:embed defaults/evaluations.yaml
var EvaluationsYAML []byte
