// Package table is the tabular data view engine behind every listing screen:
// free-text search, single column sort and pagination over an in-memory row collection.
package table

import (
	"sort"
	"strings"
)

// Option configures a Table.
type Option func(t *Table)

// WithPageSize sets the number of rows per page.
func WithPageSize(n int) Option {
	return func(t *Table) {
		if n > 0 {
			t.state.PageSize = n
		}
	}
}

// WithActions adds a trailing "Actions" column rendered by fn.
func WithActions(fn ActionsFunc) Option {
	return func(t *Table) { t.actions = fn }
}

// WithSearchHook registers fn to be notified whenever the search text changes.
// It is independent of the table's own filtering.
func WithSearchHook(fn func(text string)) Option {
	return func(t *Table) { t.onSearch = fn }
}

// WithState starts the table from s instead of the default state (see Restore).
func WithState(s State) Option {
	return func(t *Table) { t.initial = &s }
}

// Table owns the view state of one listing: search text, sort and page.
// It never mutates the rows it is given.
// A Table is not safe for concurrent use; each listing instance owns its own.
type Table struct {
	schema   schema
	rows     []Row
	state    State
	actions  ActionsFunc
	onSearch func(text string)
	initial  *State
}

// New builds a Table over rows.
func New(columns []Column, rows []Row, opts ...Option) *Table {
	t := &Table{
		schema: newSchema(columns),
		rows:   rows,
		state:  NewState(DefaultPageSize),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.initial != nil {
		s := *t.initial
		if s.PageSize < 1 {
			s.PageSize = t.state.PageSize
		}
		t.initial = nil
		t.Restore(s)
	}
	return t
}

// Columns returns the table's column descriptors.
func (t *Table) Columns() []Column {
	cols := make([]Column, len(t.schema.columns))
	copy(cols, t.schema.columns)
	return cols
}

// State returns the current view state.
func (t *Table) State() State {
	s := t.state
	if s.Sort != nil {
		srt := *s.Sort
		s.Sort = &srt
	}
	return s
}

// TotalPages returns the page count of the current filtered rows.
func (t *Table) TotalPages() int {
	return TotalPages(len(t.filtered()), t.state.PageSize)
}

// SetSearchText replaces the search text and goes back to page 1.
func (t *Table) SetSearchText(text string) {
	t.dispatch(SearchChanged{Text: text})
	if t.onSearch != nil {
		t.onSearch(text)
	}
}

// SetSort toggles the sort on the column key.
// Unknown and unsortable columns are rejected; the state is left untouched.
func (t *Table) SetSort(key string) error {
	if err := t.schema.checkSortable(key); err != nil {
		return err
	}
	t.dispatch(SortToggled{Key: key})
	return nil
}

// SetPage moves to page, clamped to the available pages.
func (t *Table) SetPage(page int) { t.dispatch(PageRequested{Page: page}) }

// First goes to the first page.
func (t *Table) First() { t.dispatch(Navigated{Nav: First}) }

// Prev goes back one page, stopping at the first.
func (t *Table) Prev() { t.dispatch(Navigated{Nav: Prev}) }

// Next goes forward one page, stopping at the last.
func (t *Table) Next() { t.dispatch(Navigated{Nav: Next}) }

// Last goes to the last page.
func (t *Table) Last() { t.dispatch(Navigated{Nav: Last}) }

// SetRows replaces the dataset. The view state is kept; the page is re-clamped.
func (t *Table) SetRows(rows []Row) {
	t.rows = rows
	t.state = t.state.Clamp(t.TotalPages())
}

// Reset goes back to the default state: no search, no sort, page 1.
func (t *Table) Reset() { t.dispatch(ResetRequested{}) }

// Restore loads a state held outside of the table (query string, CLI flags...).
// A sort on an unknown or unsortable column is dropped and the page is clamped.
func (t *Table) Restore(s State) {
	if s.PageSize < 1 {
		s.PageSize = t.state.PageSize
	}
	if s.Sort != nil {
		if t.schema.checkSortable(s.Sort.Key) != nil {
			s.Sort = nil
		} else {
			srt := *s.Sort
			if srt.Direction != Desc {
				srt.Direction = Asc
			}
			s.Sort = &srt
		}
	}
	t.state = s
	t.state = t.state.Clamp(t.TotalPages())
}

// Apply dispatches ev. SortToggled events on unsortable columns are rejected.
func (t *Table) Apply(ev Event) error {
	if st, ok := ev.(SortToggled); ok {
		return t.SetSort(st.Key)
	}
	if sc, ok := ev.(SearchChanged); ok {
		t.SetSearchText(sc.Text)
		return nil
	}
	t.dispatch(ev)
	return nil
}

func (t *Table) dispatch(ev Event) {
	next := Reduce(t.state, ev, t.TotalPages())
	// the page count depends on the search, re-clamp against the new filter
	t.state = next.Clamp(TotalPages(len(t.filter(next.Search)), next.PageSize))
}

func (t *Table) filtered() []Row {
	return t.filter(t.state.Search)
}

// filter keeps the rows having at least one field whose display string
// contains search, case-insensitively. The result is always a new slice.
func (t *Table) filter(search string) []Row {
	out := make([]Row, 0, len(t.rows))
	if search == "" {
		return append(out, t.rows...)
	}
	needle := strings.ToLower(search)
	for _, row := range t.rows {
		if matches(row, needle) {
			out = append(out, row)
		}
	}
	return out
}

func matches(row Row, needle string) bool {
	for _, key := range row.Keys() {
		if strings.Contains(strings.ToLower(Display(value(row, key))), needle) {
			return true
		}
	}
	return false
}

// sorted sorts rows in place with a stable sort; rows must be a derived copy.
func (t *Table) sorted(rows []Row, srt *Sort) []Row {
	if srt == nil {
		return rows
	}
	cmp := t.schema.comparator(srt.Key)
	desc := srt.Direction == Desc
	sort.SliceStable(rows, func(i, j int) bool {
		c := cmp(value(rows[i], srt.Key), value(rows[j], srt.Key))
		if desc {
			return c > 0
		}
		return c < 0
	})
	return rows
}

// Derive returns the filtered and sorted rows of the current state, all pages included.
func (t *Table) Derive() []Row {
	return t.sorted(t.filtered(), t.state.Sort)
}
