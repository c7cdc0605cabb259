package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-console/core"
	"github.com/trezcool/masomo-console/core/school"
	"github.com/trezcool/masomo-console/core/table"
)

// TableQuery is a listing's state bound from the query string, plus the event to apply on top of it.
//
//	?search=chen&ordering=-balance&page=2&page_size=20&action=next
type TableQuery struct {
	State table.State
	Event table.Event
}

func (q *TableQuery) Bind(ctx echo.Context, defaultPageSize int) error {
	s, ev, err := table.ParseQuery(ctx.QueryParams(), defaultPageSize)
	if err != nil {
		if qErr, ok := err.(*table.QueryError); ok {
			return core.NewValidationError(err, core.FieldError{Field: qErr.Param, Error: qErr.Message})
		}
		return errors.Wrap(err, "parsing table query")
	}
	q.State = s
	q.Event = ev
	return nil
}

// Table builds the screen's table over rows in the bound state, then applies the bound event.
// Sorting by a column the screen cannot sort by is a validation error.
func (q TableQuery) Table(screen school.Screen, rows []table.Row, opts ...table.Option) (*table.Table, error) {
	opts = append(opts, table.WithState(q.State))
	tbl := table.New(screen.Columns, rows, opts...)
	if q.Event != nil {
		if err := tbl.Apply(q.Event); err != nil {
			return nil, core.NewValidationError(err, core.FieldError{Field: table.ActionParam, Error: err.Error()})
		}
	}
	return tbl, nil
}

// idsParam binds the repeated `id` query parameter of bulk deletions (?id=S001&id=S002).
func idsParam(ctx echo.Context) []string {
	return ctx.QueryParams()["id"]
}
