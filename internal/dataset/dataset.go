// Package dataset loads table definitions and records from YAML files.
package dataset

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joshuapare/gridkit/pkg/table"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoColumns is returned for a dataset without columns.
	ErrNoColumns = errors.New("dataset: no columns defined")
	// ErrDuplicateKey is returned when two columns declare the same key.
	ErrDuplicateKey = errors.New("dataset: duplicate column key")
	// ErrBadExpandable is returned for an unknown table.expandable value.
	ErrBadExpandable = errors.New("dataset: bad expandable mode")
)

// Default settings applied to missing fields.
const (
	DefaultPrefix        = "gridkit"
	DefaultIndentSize    = 2
	DefaultChildrenField = "children"
	DefaultColumnWidth   = 12
)

// Settings is the table section of a dataset file.
type Settings struct {
	Prefix           string `yaml:"prefix"`
	Expandable       string `yaml:"expandable"`
	IndentSize       int    `yaml:"indentSize"`
	ExpandIconColumn int    `yaml:"expandIconColumn"`
	ChildrenField    string `yaml:"childrenField"`
	RowKey           string `yaml:"rowKey"`
	ExpandRowByClick bool   `yaml:"expandRowByClick"`
	// DetailField names the record field shown in detail rows. Records
	// without it cannot expand. Empty shows the whole record.
	DetailField string `yaml:"detailField"`
	EmptyText   string `yaml:"emptyText"`
}

// ColumnSpec is one column entry of a dataset file.
type ColumnSpec struct {
	Key       string       `yaml:"key"`
	Title     string       `yaml:"title"`
	DataIndex Path         `yaml:"dataIndex"`
	Width     int          `yaml:"width"`
	Fixed     string       `yaml:"fixed"`
	Ellipsis  bool         `yaml:"ellipsis"`
	Format    string       `yaml:"format"`
	ClassName string       `yaml:"className"`
	Children  []ColumnSpec `yaml:"children"`
}

// Path is a data path written either as "a.b" or as a list.
type Path []string

// UnmarshalYAML accepts a scalar dotted path or a sequence of steps.
func (p *Path) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Value == "" {
			*p = nil
			return nil
		}
		*p = strings.Split(value.Value, ".")
		return nil
	case yaml.SequenceNode:
		var steps []string
		if err := value.Decode(&steps); err != nil {
			return err
		}
		*p = steps
		return nil
	}
	return fmt.Errorf("dataset: line %d: dataIndex must be a string or a list", value.Line)
}

type file struct {
	Table   Settings         `yaml:"table"`
	Columns []ColumnSpec     `yaml:"columns"`
	Records []map[string]any `yaml:"records"`
}

// Dataset is a parsed dataset file.
type Dataset struct {
	Settings   Settings
	Expandable table.ExpandableType
	Columns    []*table.Column
	Records    []table.Record
}

// Load reads and parses the dataset at path.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Parse parses a dataset document.
func Parse(data []byte) (*Dataset, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	if len(f.Columns) == 0 {
		return nil, ErrNoColumns
	}

	settings := f.Table
	if settings.Prefix == "" {
		settings.Prefix = DefaultPrefix
	}
	if settings.IndentSize <= 0 {
		settings.IndentSize = DefaultIndentSize
	}
	if settings.ChildrenField == "" {
		settings.ChildrenField = DefaultChildrenField
	}

	mode, err := table.ParseExpandableType(settings.Expandable)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadExpandable, settings.Expandable)
	}

	seen := make(map[string]bool)
	columns, err := buildColumns(f.Columns, seen)
	if err != nil {
		return nil, err
	}

	records := make([]table.Record, 0, len(f.Records))
	for _, r := range f.Records {
		records = append(records, table.Record(r))
	}

	return &Dataset{
		Settings:   settings,
		Expandable: mode,
		Columns:    columns,
		Records:    records,
	}, nil
}

func buildColumns(specs []ColumnSpec, seen map[string]bool) ([]*table.Column, error) {
	columns := make([]*table.Column, 0, len(specs))
	for _, spec := range specs {
		if spec.Key != "" {
			if seen[spec.Key] {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, spec.Key)
			}
			seen[spec.Key] = true
		}
		fixed, err := table.ParseFixedSide(spec.Fixed)
		if err != nil {
			return nil, fmt.Errorf("dataset: column %q: %w", spec.Key, err)
		}
		render, err := Formatter(spec.Format)
		if err != nil {
			return nil, fmt.Errorf("dataset: column %q: %w", spec.Key, err)
		}

		col := &table.Column{
			Key:       spec.Key,
			Title:     spec.Title,
			DataIndex: table.DataIndex(spec.DataIndex),
			Render:    render,
			ClassName: spec.ClassName,
			Ellipsis:  spec.Ellipsis,
			Width:     spec.Width,
			Fixed:     fixed,
		}
		if len(spec.Children) > 0 {
			col.Children, err = buildColumns(spec.Children, seen)
			if err != nil {
				return nil, err
			}
		} else {
			if col.Width <= 0 {
				col.Width = DefaultColumnWidth
			}
			if col.Title == "" {
				col.Title = TitleFor(col)
			}
		}
		columns = append(columns, col)
	}
	return columns, nil
}

// FlattenColumns returns the leaf columns of the dataset.
func (d *Dataset) FlattenColumns() []*table.Column {
	return table.FlattenColumns(d.Columns)
}

// RowKey returns the key function configured by table.rowKey.
func (d *Dataset) RowKey() table.GetRowKeyFunc {
	if d.Settings.RowKey == "" {
		return table.IndexRowKey
	}
	return table.FieldRowKey(d.Settings.RowKey)
}

// RowExpandable reports which records carry a detail row. Nil means every
// record does.
func (d *Dataset) RowExpandable() func(table.Record) bool {
	field := d.Settings.DetailField
	if field == "" {
		return nil
	}
	return func(r table.Record) bool {
		v, ok := r[field]
		return ok && v != nil
	}
}

// DetailRenderer renders the detail content of a record: the detail field
// when configured, otherwise the record itself as YAML without its children.
func (d *Dataset) DetailRenderer() table.ExpandedRowRenderFunc {
	return func(r table.Record, index, indent int, expanded bool) *table.Node {
		if field := d.Settings.DetailField; field != "" {
			return table.Text(fmt.Sprint(r[field]))
		}
		text, err := MarshalRecord(r, d.Settings.ChildrenField)
		if err != nil {
			return table.Text(err.Error())
		}
		return table.Text(text)
	}
}

// MarshalRecord encodes r as YAML, leaving out the children field.
func MarshalRecord(r table.Record, childrenField string) (string, error) {
	flat := make(map[string]any, len(r))
	for k, v := range r {
		if k == childrenField {
			continue
		}
		flat[k] = v
	}
	out, err := yaml.Marshal(flat)
	if err != nil {
		return "", fmt.Errorf("dataset: encode record: %w", err)
	}
	return strings.TrimRight(string(out), "\n"), nil
}

// EnvExpandable overrides table.expandable when set.
const EnvExpandable = "GRIDKIT_EXPANDABLE"

// ApplyEnv applies environment overrides read through lookup, usually
// os.LookupEnv.
func (d *Dataset) ApplyEnv(lookup func(string) (string, bool)) error {
	v, ok := lookup(EnvExpandable)
	if !ok {
		return nil
	}
	mode, err := table.ParseExpandableType(v)
	if err != nil {
		return fmt.Errorf("%s: %w: %q", EnvExpandable, ErrBadExpandable, v)
	}
	d.Expandable = mode
	d.Settings.Expandable = mode.String()
	return nil
}
