package evaldata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/safety-dash/internal/domain"
)

func TestDefaultDataset(t *testing.T) {
	store, err := NewDefault()
	require.NoError(t, err)

	ds := store.Dataset()
	assert.Equal(t, "2024-12-05", ds.Version)
	assert.Equal(t, "OpenAI o1 System Card (December 5, 2024)", ds.Source)

	evals, ok := ds.Section(domain.SectionEvaluations)
	require.True(t, ok)
	require.Equal(t, domain.BlockGroupedBar, evals.Blocks[0].Kind)
	require.Len(t, evals.Blocks[0].Series, 2)
	assert.Equal(t, "not_unsafe", evals.Blocks[0].Series[0].Name)
	assert.Equal(t, 0.995, evals.Blocks[0].Series[0].Points[1].Value)

	prep, ok := ds.Section(domain.SectionPreparedness)
	require.True(t, ok)
	assert.Equal(t, []domain.RiskEntry{
		{Category: "Cybersecurity", Level: domain.RiskLow},
		{Category: "CBRN", Level: domain.RiskMedium},
		{Category: "Persuasion", Level: domain.RiskMedium},
		{Category: "Model Autonomy", Level: domain.RiskLow},
	}, prep.Blocks[0].Risks)

	red, ok := ds.Section(domain.SectionRedTeam)
	require.True(t, ok)
	assert.Equal(t, 59.75, red.Blocks[0].Points[0].Value)

	cot, ok := ds.Section(domain.SectionChainOfThought)
	require.True(t, ok)
	assert.Len(t, cot.Blocks[0].Points, 5)
}

func TestValidateNormalizesRiskLevels(t *testing.T) {
	ds := minimalDataset()
	ds.Sections["preparedness"] = domain.SectionData{Blocks: []domain.Block{{
		Kind:  domain.BlockRisk,
		Risks: []domain.RiskEntry{{Category: "CBRN", Level: "medium"}},
	}}}

	require.NoError(t, Validate(&ds))
	assert.Equal(t, domain.RiskMedium, ds.Sections["preparedness"].Blocks[0].Risks[0].Level)
}

func TestValidateRejects(t *testing.T) {
	tests := map[string]func(*domain.Dataset){
		"missing version": func(ds *domain.Dataset) { ds.Version = "" },
		"unknown section": func(ds *domain.Dataset) { ds.Sections["settings"] = domain.SectionData{} },
		"missing section": func(ds *domain.Dataset) { delete(ds.Sections, "red-team") },
		"unknown kind": func(ds *domain.Dataset) {
			ds.Sections["overview"] = domain.SectionData{Blocks: []domain.Block{{Kind: "heatmap"}}}
		},
		"negative value": func(ds *domain.Dataset) {
			ds.Sections["red-team"] = domain.SectionData{Blocks: []domain.Block{{
				Kind: domain.BlockBar, Points: []domain.Point{{Label: "x", Value: -1}},
			}}}
		},
		"bad risk": func(ds *domain.Dataset) {
			ds.Sections["preparedness"] = domain.SectionData{Blocks: []domain.Block{{
				Kind: domain.BlockRisk, Risks: []domain.RiskEntry{{Category: "CBRN", Level: "Spicy"}},
			}}}
		},
		"empty series": func(ds *domain.Dataset) {
			ds.Sections["evaluations"] = domain.SectionData{Blocks: []domain.Block{{Kind: domain.BlockGroupedBar}}}
		},
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			ds := minimalDataset()
			mutate(&ds)
			assert.Error(t, Validate(&ds))
		})
	}
}

func minimalDataset() domain.Dataset {
	ds := domain.Dataset{Version: "test", Sections: map[string]domain.SectionData{}}
	for _, section := range domain.Sections() {
		if section.Static() {
			ds.Sections[section.Slug()] = domain.SectionData{Header: section.Title()}
		}
	}
	return ds
}
