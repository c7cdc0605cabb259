package table

// DefaultPageSize is the page size of tables built without WithPageSize.
const DefaultPageSize = 10

// Direction of the active sort.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort is the active sort, one column at a time.
type Sort struct {
	Key       string    `json:"key"`
	Direction Direction `json:"direction"`
}

// Nav is a pagination control.
type Nav int

const (
	First Nav = iota
	Prev
	Next
	Last
)

// State is a table's view state. The zero value is not ready for use, see NewState.
// Transitions are pure: they return a new State and never touch the receiver.
type State struct {
	Search   string `json:"search"`
	Sort     *Sort  `json:"sort"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// NewState returns the default state: no search, no sort, page 1.
func NewState(pageSize int) State {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return State{Page: 1, PageSize: pageSize}
}

// TotalPages returns the number of pages needed for count rows; never less than 1.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if count <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// WithSearch replaces the search text and goes back to page 1.
func (s State) WithSearch(text string) State {
	s.Search = text
	s.Page = 1
	return s
}

// ToggleSort sorts by key: ascending, unless key is already sorted ascending,
// in which case the direction flips to descending. The page is kept.
func (s State) ToggleSort(key string) State {
	dir := Asc
	if s.Sort != nil && s.Sort.Key == key && s.Sort.Direction == Asc {
		dir = Desc
	}
	s.Sort = &Sort{Key: key, Direction: dir}
	return s
}

// WithPage moves to page, clamped to [1, totalPages].
func (s State) WithPage(page, totalPages int) State {
	s.Page = page
	return s.Clamp(totalPages)
}

// Navigate applies a pagination control.
func (s State) Navigate(nav Nav, totalPages int) State {
	switch nav {
	case First:
		return s.WithPage(1, totalPages)
	case Prev:
		return s.WithPage(s.Page-1, totalPages)
	case Next:
		return s.WithPage(s.Page+1, totalPages)
	case Last:
		return s.WithPage(totalPages, totalPages)
	}
	return s.Clamp(totalPages)
}

// Clamp brings the page back within [1, max(1, totalPages)].
func (s State) Clamp(totalPages int) State {
	if totalPages < 1 {
		totalPages = 1
	}
	if s.Page > totalPages {
		s.Page = totalPages
	}
	if s.Page < 1 {
		s.Page = 1
	}
	if s.PageSize < 1 {
		s.PageSize = DefaultPageSize
	}
	return s
}

// Reset returns the default state, keeping the page size.
func (s State) Reset() State {
	return NewState(s.PageSize)
}

// Event is a user interaction on a table.
type Event interface {
	apply(s State, totalPages int) State
}

type (
	// SearchChanged is a new search text.
	SearchChanged struct{ Text string }

	// SortToggled is a click on a sortable column header.
	SortToggled struct{ Key string }

	// PageRequested is a jump to a page.
	PageRequested struct{ Page int }

	// Navigated is a click on a first/prev/next/last control.
	Navigated struct{ Nav Nav }

	// ResetRequested is an explicit reset by the caller.
	ResetRequested struct{}
)

func (e SearchChanged) apply(s State, _ int) State { return s.WithSearch(e.Text) }
func (e SortToggled) apply(s State, totalPages int) State { return s.ToggleSort(e.Key).Clamp(totalPages) }
func (e PageRequested) apply(s State, totalPages int) State { return s.WithPage(e.Page, totalPages) }
func (e Navigated) apply(s State, totalPages int) State { return s.Navigate(e.Nav, totalPages) }
func (ResetRequested) apply(s State, _ int) State { return s.Reset() }

// Reduce applies ev to s. totalPages is the page count of the rows derived from s.
func Reduce(s State, ev Event, totalPages int) State {
	if ev == nil {
		return s.Clamp(totalPages)
	}
	return ev.apply(s, totalPages)
}
