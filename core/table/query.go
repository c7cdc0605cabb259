package table

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Query parameters carrying a table's state.
const (
	SearchParam   = "search"
	OrderingParam = "ordering"
	PageParam     = "page"
	PageSizeParam = "page_size"
	ActionParam   = "action"
)

// MaxPageSize bounds the page size accepted from a query string.
const MaxPageSize = 100

// QueryError reports an invalid query parameter.
type QueryError struct {
	Param   string
	Message string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %s", e.Param, e.Message)
}

// Values encodes s as query values; the inverse of ParseQuery.
// The ordering is "key" (ascending) or "-key" (descending). Page 1 and the empty search are omitted.
func (s State) Values() url.Values {
	q := make(url.Values, 4)
	if s.Search != "" {
		q.Set(SearchParam, s.Search)
	}
	if s.Sort != nil {
		ordering := s.Sort.Key
		if s.Sort.Direction == Desc {
			ordering = "-" + ordering
		}
		q.Set(OrderingParam, ordering)
	}
	if s.Page > 1 {
		q.Set(PageParam, strconv.Itoa(s.Page))
	}
	if s.PageSize > 0 {
		q.Set(PageSizeParam, strconv.Itoa(s.PageSize))
	}
	return q
}

// ParseQuery decodes the state carried by q, along with the event named by its action
// parameter (nil without one). pageSize is used when q carries none.
// Only the first field of a comma separated ordering is used: one column at a time.
func ParseQuery(q url.Values, pageSize int) (State, Event, error) {
	s := NewState(pageSize)
	s.Search = q.Get(SearchParam)

	ordering := strings.TrimSpace(strings.SplitN(q.Get(OrderingParam), ",", 2)[0])
	if key := strings.TrimPrefix(ordering, "-"); key != "" {
		dir := Asc
		if strings.HasPrefix(ordering, "-") {
			dir = Desc
		}
		s.Sort = &Sort{Key: key, Direction: dir}
	}

	if v := q.Get(PageParam); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return s, nil, &QueryError{Param: PageParam, Message: "must be a positive number"}
		}
		s.Page = page
	}
	if v := q.Get(PageSizeParam); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 1 || size > MaxPageSize {
			return s, nil, &QueryError{Param: PageSizeParam, Message: fmt.Sprintf("must be between 1 and %d", MaxPageSize)}
		}
		s.PageSize = size
	}

	ev, err := ParseEvent(q.Get(ActionParam))
	if err != nil {
		return s, nil, err
	}
	return s, ev, nil
}

// ParseEvent decodes an action: first, prev, next, last, reset, sort:<key> or page:<n>.
// The empty action is no event.
func ParseEvent(action string) (Event, error) {
	action = strings.TrimSpace(action)
	switch action {
	case "":
		return nil, nil
	case "first":
		return Navigated{Nav: First}, nil
	case "prev":
		return Navigated{Nav: Prev}, nil
	case "next":
		return Navigated{Nav: Next}, nil
	case "last":
		return Navigated{Nav: Last}, nil
	case "reset":
		return ResetRequested{}, nil
	}

	name, arg := action, ""
	if i := strings.IndexByte(action, ':'); i >= 0 {
		name, arg = action[:i], action[i+1:]
	}
	switch {
	case name == "sort" && arg != "":
		return SortToggled{Key: arg}, nil
	case name == "page":
		if page, err := strconv.Atoi(arg); err == nil {
			return PageRequested{Page: page}, nil
		}
	}
	return nil, &QueryError{Param: ActionParam, Message: fmt.Sprintf("unknown action %q", action)}
}
