package types

// Columns maps each field to its zero-based spreadsheet column position.
type Columns struct {
	Authors    int `json:"authors" yaml:"authors" mapstructure:"authors"`
	Booktitle  int `json:"booktitle" yaml:"booktitle" mapstructure:"booktitle"`
	Title      int `json:"title" yaml:"title" mapstructure:"title"`
	Year       int `json:"year" yaml:"year" mapstructure:"year"`
	Journal    int `json:"journal" yaml:"journal" mapstructure:"journal"`
	PaperType  int `json:"paper_type" yaml:"paper_type" mapstructure:"paper_type"`
	Method     int `json:"method" yaml:"method" mapstructure:"method"`
	Taxonomy   int `json:"taxonomy" yaml:"taxonomy" mapstructure:"taxonomy"`
	Algorithm  int `json:"algorithm" yaml:"algorithm" mapstructure:"algorithm"`
	Objectives int `json:"objectives" yaml:"objectives" mapstructure:"objectives"`
	SUT        int `json:"sut" yaml:"sut" mapstructure:"sut"`
	Metrics    int `json:"metrics" yaml:"metrics" mapstructure:"metrics"`
}

// DefaultColumns returns the column layout of the data-extraction workbook
// (C, D, E, F, O, Y, Z, AA, AB, AC, AD, AG).
func DefaultColumns() Columns {
	return Columns{
		Authors:    2,
		Booktitle:  3,
		Title:      4,
		Year:       5,
		Journal:    14,
		PaperType:  24,
		Method:     25,
		Taxonomy:   26,
		Algorithm:  27,
		Objectives: 28,
		SUT:        29,
		Metrics:    32,
	}
}

// Positions returns the field-to-column map.
func (c Columns) Positions() map[Field]int {
	return map[Field]int{
		FieldAuthors:    c.Authors,
		FieldBooktitle:  c.Booktitle,
		FieldTitle:      c.Title,
		FieldYear:       c.Year,
		FieldJournal:    c.Journal,
		FieldPaperType:  c.PaperType,
		FieldMethod:     c.Method,
		FieldTaxonomy:   c.Taxonomy,
		FieldAlgorithm:  c.Algorithm,
		FieldObjectives: c.Objectives,
		FieldSUT:        c.SUT,
		FieldMetrics:    c.Metrics,
	}
}

// MinWidth returns the table width needed to read every listed field.
func (c Columns) MinWidth(fields ...Field) int {
	pos := c.Positions()
	width := 0
	for _, f := range fields {
		if p, ok := pos[f]; ok && p+1 > width {
			width = p + 1
		}
	}
	return width
}

// InputConfig holds settings for locating and loading the survey workbook.
type InputConfig struct {
	// Path is the workbook or CSV file. Empty means discover one in Dir.
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// Dir is the directory searched when Path is empty (default ".").
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// Sheet selects a worksheet by name. Empty means the first sheet.
	Sheet string `json:"sheet" yaml:"sheet" mapstructure:"sheet"`
}

// OutputFormat selects how reports are rendered.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// BibFormat selects the bibliography serialization.
type BibFormat string

const (
	BibTeX BibFormat = "bibtex"
	BibCSL BibFormat = "csl"
)

// Config groups every setting read from flags, environment, and the config file.
type Config struct {
	Input    InputConfig `json:"input" yaml:"input" mapstructure:"input"`
	Columns  Columns     `json:"columns" yaml:"columns" mapstructure:"columns"`
	LogLevel string      `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}
