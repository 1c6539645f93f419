package domain

// BlockKind selects how a dataset block is drawn.
type BlockKind string

const (
	BlockMarkdown   BlockKind = "markdown"
	BlockBar        BlockKind = "bar"
	BlockGroupedBar BlockKind = "grouped_bar"
	BlockPie        BlockKind = "pie"
	BlockRisk       BlockKind = "risk"
)

// Dataset is the versioned set of constant tables behind the static sections.
type Dataset struct {
	Version  string                 `yaml:"version"`
	Source   string                 `yaml:"source"`
	Title    string                 `yaml:"title"`
	Subtitle string                 `yaml:"subtitle"`
	Sections map[string]SectionData `yaml:"sections"`
}

// SectionData is the content of one section, keyed by Section.Slug in the asset.
type SectionData struct {
	Header string  `yaml:"header"`
	Blocks []Block `yaml:"blocks"`
}

// Block is a single chart, table or markdown list.
type Block struct {
	Kind     BlockKind   `yaml:"kind"`
	Title    string      `yaml:"title"`
	Markdown string      `yaml:"markdown,omitempty"`
	Unit     string      `yaml:"unit,omitempty"`
	Max      float64     `yaml:"max,omitempty"`
	Points   []Point     `yaml:"points,omitempty"`
	Series   []Series    `yaml:"series,omitempty"`
	Risks    []RiskEntry `yaml:"risks,omitempty"`
}

// Point is a labelled value.
type Point struct {
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
}

// Series is one metric of a grouped bar chart.
type Series struct {
	Name   string  `yaml:"name"`
	Points []Point `yaml:"points"`
}

// Section returns the data for s, if the dataset carries it.
func (d Dataset) Section(s Section) (SectionData, bool) {
	data, ok := d.Sections[s.Slug()]
	return data, ok
}
