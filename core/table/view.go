package table

import "fmt"

const (
	// PlaceholderText fills the body of a table without rows.
	PlaceholderText = "No data found"
	// ActionsLabel is the header of the trailing actions column.
	ActionsLabel = "Actions"
)

// HeaderCell is one header of the rendered table.
// Direction is set on the column currently sorted.
type HeaderCell struct {
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	Sortable  bool      `json:"sortable"`
	Direction Direction `json:"direction,omitempty"`
}

// ViewRow is one body row. Index is the row's position within the page.
type ViewRow struct {
	Index   int      `json:"index"`
	Cells   []Cell   `json:"cells"`
	Actions []Action `json:"actions,omitempty"`
	Row     Row      `json:"-"`
}

// View is the render model of a table: everything a renderer needs, nothing more.
type View struct {
	Columns     []HeaderCell `json:"columns"`
	Rows        []ViewRow    `json:"rows"`
	HasActions  bool         `json:"has_actions"`
	Search      string       `json:"search"`
	Sort        *Sort        `json:"sort"`
	Page        int          `json:"page"`
	PageSize    int          `json:"page_size"`
	TotalPages  int          `json:"total_pages"`
	Total       int          `json:"total"`      // rows matching the search
	Unfiltered  int          `json:"unfiltered"` // rows in the dataset
	From        int          `json:"from"`       // 1-based, inclusive; 0 when empty
	To          int          `json:"to"`
	ColSpan     int          `json:"col_span"`
	Placeholder string       `json:"placeholder,omitempty"`
}

// Empty reports whether the page has no rows, in which case the placeholder row is rendered.
func (v View) Empty() bool { return len(v.Rows) == 0 }

// ShowPagination reports whether the pagination footer is rendered.
func (v View) ShowPagination() bool { return v.TotalPages > 1 }

// Summary is the pagination summary, eg. "Showing 1 to 10 of 25 entries".
func (v View) Summary() string {
	return fmt.Sprintf("Showing %d to %d of %d entries", v.From, v.To, v.Total)
}

// PageLabel is the current page indicator, eg. "Page 1 of 3".
func (v View) PageLabel() string {
	return fmt.Sprintf("Page %d of %d", v.Page, v.TotalPages)
}

// State returns the state the view was derived from.
func (v View) State() State {
	return State{Search: v.Search, Sort: v.Sort, Page: v.Page, PageSize: v.PageSize}
}

// IsFirstPage reports whether there is no previous page.
func (v View) IsFirstPage() bool { return v.Page <= 1 }

// IsLastPage reports whether there is no next page.
func (v View) IsLastPage() bool { return v.Page >= v.TotalPages }

// View derives the render model: filter, then sort, then paginate.
// It reads the table's state and never changes it.
func (t *Table) View() View {
	rows := t.Derive()
	s := t.state.Clamp(TotalPages(len(rows), t.state.PageSize))
	total := len(rows)

	start := (s.Page - 1) * s.PageSize
	end := start + s.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	page := rows[start:end]

	v := View{
		Columns:    make([]HeaderCell, 0, len(t.schema.columns)+1),
		Rows:       make([]ViewRow, 0, len(page)),
		HasActions: t.actions != nil,
		Search:     s.Search,
		Page:       s.Page,
		PageSize:   s.PageSize,
		TotalPages: TotalPages(total, s.PageSize),
		Total:      total,
		Unfiltered: len(t.rows),
		ColSpan:    len(t.schema.columns),
	}
	if s.Sort != nil {
		srt := *s.Sort
		v.Sort = &srt
	}
	if v.HasActions {
		v.ColSpan++
	}
	if total > 0 {
		v.From = start + 1
		v.To = end
	}

	for _, col := range t.schema.columns {
		hc := HeaderCell{Key: col.Key, Label: col.Label, Sortable: col.Sortable}
		if col.Sortable && s.Sort != nil && s.Sort.Key == col.Key {
			hc.Direction = s.Sort.Direction
		}
		v.Columns = append(v.Columns, hc)
	}
	if v.HasActions {
		v.Columns = append(v.Columns, HeaderCell{Key: "actions", Label: ActionsLabel})
	}

	for i, row := range page {
		vr := ViewRow{Index: i, Cells: make([]Cell, len(t.schema.columns)), Row: row}
		for j, col := range t.schema.columns {
			vr.Cells[j] = col.Cell(row)
		}
		if t.actions != nil {
			vr.Actions = t.actions(row)
		}
		v.Rows = append(v.Rows, vr)
	}
	if v.Empty() {
		v.Placeholder = PlaceholderText
	}
	return v
}
