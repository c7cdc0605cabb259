package ui

import (
	"fmt"
	"net/http"
	"strconv"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/trezcool/masomo-console/core/school"
	"github.com/trezcool/masomo-console/core/table"
)

// MethodField is the form field overriding the method of action forms (DELETE...).
const MethodField = "_method"

func href(path string, s table.State) string {
	return path + "?" + s.Values().Encode()
}

// ScreenPage renders a listing screen.
func ScreenPage(p Principal, screen school.Screen, v table.View) Node {
	return appPage(screen.Title, screen.Name, p,
		P(Class("muted"), Text(screen.Description)),
		DataTable(v, ScreenPath(screen)),
	)
}

// DataTable renders a table view. Every control is a link (or form) to path carrying the state it leads to.
func DataTable(v table.View, path string) Node {
	s := v.State()

	headers := make([]Node, 0, len(v.Columns))
	for _, hc := range v.Columns {
		headers = append(headers, headerCell(hc, s, path))
	}

	var body []Node
	if v.Empty() {
		body = append(body, Tr(Td(
			Attr("colspan", strconv.Itoa(v.ColSpan)),
			Class("placeholder"),
			Text(v.Placeholder),
		)))
	}
	for _, row := range v.Rows {
		cells := make([]Node, 0, len(row.Cells)+1)
		for _, c := range row.Cells {
			cells = append(cells, Td(cellContent(c)))
		}
		if v.HasActions {
			cells = append(cells, Td(Class("actions"), Group(actionNodes(row.Actions))))
		}
		body = append(body, Tr(Group(cells)))
	}

	return Div(Class("card table-wrap"),
		searchForm(s, path),
		Table(Class("data-table"),
			THead(Tr(Group(headers))),
			TBody(Group(body)),
		),
		If(v.ShowPagination(), pagination(v, path)),
	)
}

func searchForm(s table.State, path string) Node {
	// a new search goes back to page 1; ordering & page size are carried over
	hidden := make([]Node, 0, 2)
	for _, param := range []string{table.OrderingParam, table.PageSizeParam} {
		if val := s.Values().Get(param); val != "" {
			hidden = append(hidden, Input(Type("hidden"), Name(param), Value(val)))
		}
	}
	return Form(
		Method("get"),
		Action(path),
		Class("table-search"),
		Input(Type("search"), Name(table.SearchParam), Value(s.Search), Placeholder("Search...")),
		Group(hidden),
		Button(Type("submit"), Class("btn"), Text("Search")),
	)
}

func headerCell(hc table.HeaderCell, s table.State, path string) Node {
	if !hc.Sortable {
		return Th(Text(hc.Label))
	}
	indicator := "↕"
	switch hc.Direction {
	case table.Asc:
		indicator = "↑"
	case table.Desc:
		indicator = "↓"
	}
	return Th(Class("sortable"),
		A(Href(href(path, s.ToggleSort(hc.Key))),
			Text(hc.Label+" "),
			Span(Class("sort-indicator"), Text(indicator)),
		),
	)
}

func cellContent(c table.Cell) Node {
	switch {
	case c.Variant != "":
		return Span(Class("badge badge-"+c.Variant), Text(c.Text))
	case c.Percent != nil:
		return Div(Class("progress"),
			Div(Class("progress-track"),
				Div(Class("progress-bar"), Attr("style", fmt.Sprintf("width: %d%%", *c.Percent))),
			),
			Span(Class("progress-label"), Text(c.Text)),
		)
	case c.Tone != "":
		return Span(Class("tone-"+c.Tone), Text(c.Text))
	}
	return Text(c.Text)
}

func actionNodes(actions []table.Action) []Node {
	nodes := make([]Node, 0, len(actions))
	for _, a := range actions {
		className := "btn btn-sm"
		if a.Danger {
			className += " btn-danger"
		}
		if a.Method == "" || a.Method == http.MethodGet {
			nodes = append(nodes, A(Href(a.Href), Class(className), Text(a.Label)))
			continue
		}
		nodes = append(nodes, Form(
			Method("post"),
			Action(a.Href),
			Class("inline"),
			Input(Type("hidden"), Name(MethodField), Value(a.Method)),
			Button(Type("submit"), Class(className), Text(a.Label)),
		))
	}
	return nodes
}

func pagination(v table.View, path string) Node {
	s := v.State()
	control := func(label string, nav table.Nav, disabled bool) Node {
		if disabled {
			return Span(Class("btn btn-sm disabled"), Text(label))
		}
		return A(Class("btn btn-sm"), Href(href(path, s.Navigate(nav, v.TotalPages))), Text(label))
	}
	return Div(Class("table-footer"),
		P(Class("muted"), Text(v.Summary())),
		Nav(Class("pager"),
			control("First", table.First, v.IsFirstPage()),
			control("Previous", table.Prev, v.IsFirstPage()),
			Span(Class("page-label"), Text(v.PageLabel())),
			control("Next", table.Next, v.IsLastPage()),
			control("Last", table.Last, v.IsLastPage()),
		),
	)
}
