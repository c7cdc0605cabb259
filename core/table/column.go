package table

import "github.com/pkg/errors"

var (
	// errors
	ErrUnknownColumn = errors.New("unknown column")
	ErrNotSortable   = errors.New("column is not sortable")
)

// Column describes one rendered column.
// Key is the Row field it reads, Kind selects its comparator and Format (optional)
// overrides the raw value's display.
type Column struct {
	Key      string
	Label    string
	Sortable bool
	Kind     Kind
	Format   Formatter
}

// Cell renders the column's cell for row.
func (col Column) Cell(row Row) Cell {
	v := value(row, col.Key)
	if col.Format != nil {
		return col.Format.Format(v, row)
	}
	return Identity{}.Format(v, row)
}

// Action is a per row affordance rendered in the trailing "Actions" column.
type Action struct {
	Name   string `json:"name"` // view | edit | delete ...
	Label  string `json:"label"`
	Href   string `json:"href,omitempty"`
	Method string `json:"method,omitempty"`
	Danger bool   `json:"danger,omitempty"`
}

// ActionsFunc returns the actions of a row.
type ActionsFunc func(row Row) []Action

// schema indexes the columns and holds their comparators, resolved once at declaration.
type schema struct {
	columns     []Column
	index       map[string]int
	comparators []Comparator
}

func newSchema(columns []Column) schema {
	s := schema{
		columns:     make([]Column, len(columns)),
		index:       make(map[string]int, len(columns)),
		comparators: make([]Comparator, len(columns)),
	}
	copy(s.columns, columns)
	for i, col := range columns {
		if _, dup := s.index[col.Key]; !dup {
			s.index[col.Key] = i
		}
		s.comparators[i] = ComparatorFor(col.Kind)
	}
	return s
}

// checkSortable returns nil if key names a sortable column.
func (s schema) checkSortable(key string) error {
	i, ok := s.index[key]
	if !ok {
		return errors.Wrapf(ErrUnknownColumn, "sorting by %q", key)
	}
	if !s.columns[i].Sortable {
		return errors.Wrapf(ErrNotSortable, "sorting by %q", key)
	}
	return nil
}

func (s schema) comparator(key string) Comparator {
	if i, ok := s.index[key]; ok {
		return s.comparators[i]
	}
	return compareStrings
}
