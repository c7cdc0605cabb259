package table

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var studentColumns = []Column{
	{Key: "id", Label: "ID", Sortable: true},
	{Key: "name", Label: "Name", Sortable: true},
	{Key: "grade", Label: "Grade", Sortable: true, Kind: KindNumber},
	{Key: "status", Label: "Status", Format: Badge{Title: true}},
}

func makeStudents(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Record{
			"id":     fmt.Sprintf("S%03d", i+1),
			"name":   fmt.Sprintf("Student %d", i+1),
			"grade":  (i % 12) + 1,
			"status": "active",
		}
	}
	return rows
}

func ids(rows []Row) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = Display(value(row, "id"))
	}
	return out
}

func viewIDs(v View) []string {
	out := make([]string, len(v.Rows))
	for i, row := range v.Rows {
		out[i] = row.Cells[0].Text
	}
	return out
}

func TestTable_Pagination(t *testing.T) {
	tbl := New(studentColumns, makeStudents(25))

	v := tbl.View()
	assert.Equal(t, 3, v.TotalPages)
	assert.Len(t, v.Rows, 10)
	assert.Equal(t, "Showing 1 to 10 of 25 entries", v.Summary())
	assert.Equal(t, "Page 1 of 3", v.PageLabel())
	assert.True(t, v.ShowPagination())
	assert.True(t, v.IsFirstPage())

	tbl.Last()
	v = tbl.View()
	assert.Equal(t, 3, v.Page)
	assert.Len(t, v.Rows, 5)
	assert.Equal(t, "Showing 21 to 25 of 25 entries", v.Summary())
	assert.True(t, v.IsLastPage())

	tbl.Next()
	assert.Equal(t, 3, tbl.State().Page, "next on the last page is a no-op")

	tbl.Prev()
	assert.Equal(t, 2, tbl.State().Page)

	tbl.First()
	tbl.Prev()
	assert.Equal(t, 1, tbl.State().Page, "prev on the first page is a no-op")

	tbl.SetPage(42)
	assert.Equal(t, 3, tbl.State().Page)
}

func TestTable_PageSize(t *testing.T) {
	tbl := New(studentColumns, makeStudents(25), WithPageSize(5))

	v := tbl.View()
	assert.Equal(t, 5, v.TotalPages)
	assert.Len(t, v.Rows, 5)
	assert.Equal(t, 5, v.PageSize)
}

func TestTable_Search(t *testing.T) {
	rows := Records(
		Record{"id": "T001", "name": "Dr. Robert Chen", "subject": "Mathematics"},
		Record{"id": "T002", "name": "Ms. Sarah Johnson", "subject": "English"},
		Record{"id": "T003", "name": "Mr. David Kim", "subject": "Science"},
	)
	cols := []Column{{Key: "id", Label: "ID"}, {Key: "name", Label: "Name"}}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "no search", search: "", want: []string{"T001", "T002", "T003"}},
		{name: "case insensitive", search: "chen", want: []string{"T001"}},
		{name: "exact case", search: "Chen", want: []string{"T001"}},
		{name: "field not rendered", search: "science", want: []string{"T003"}},
		{name: "substring of several", search: "r", want: []string{"T001", "T002", "T003"}},
		{name: "no match", search: "zzz", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := New(cols, rows)
			tbl.SetSearchText(tt.search)
			assert.Equal(t, tt.want, viewIDs(tbl.View()))
		})
	}
}

func TestTable_SearchResetsPage(t *testing.T) {
	tbl := New(studentColumns, makeStudents(25))
	tbl.SetPage(3)
	tbl.SetSearchText("Student 1")

	s := tbl.State()
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, "Student 1", s.Search)
}

func TestTable_SearchIsSubset(t *testing.T) {
	rows := makeStudents(40)
	tbl := New(studentColumns, rows)
	for _, search := range []string{"", "1", "Student 2", "active", "S03", "nope"} {
		tbl.SetSearchText(search)
		derived := tbl.Derive()
		assert.LessOrEqual(t, len(derived), len(rows), "search %q", search)
		assert.Subset(t, ids(rows), ids(derived), "search %q", search)
	}
}

func TestTable_SearchHook(t *testing.T) {
	var got []string
	tbl := New(studentColumns, makeStudents(3), WithSearchHook(func(text string) {
		got = append(got, text)
	}))
	tbl.SetSearchText("a")
	tbl.SetSearchText("ab")
	require.NoError(t, tbl.Apply(SearchChanged{Text: ""}))

	assert.Equal(t, []string{"a", "ab", ""}, got)
}

func TestTable_Empty(t *testing.T) {
	tbl := New(studentColumns, nil, WithActions(func(Row) []Action { return nil }))

	v := tbl.View()
	assert.True(t, v.Empty())
	assert.Equal(t, PlaceholderText, v.Placeholder)
	assert.Equal(t, len(studentColumns)+1, v.ColSpan)
	assert.False(t, v.ShowPagination())
	assert.Equal(t, 1, v.TotalPages)
	assert.Equal(t, 0, v.From)
	assert.Equal(t, 0, v.To)

	tbl = New(studentColumns, makeStudents(5))
	tbl.SetSearchText("nothing matches this")
	v = tbl.View()
	assert.Equal(t, "No data found", v.Placeholder)
	assert.Equal(t, len(studentColumns), v.ColSpan)
	assert.Equal(t, 5, v.Unfiltered)
	assert.Equal(t, 0, v.Total)
}

func TestTable_SortNumeric(t *testing.T) {
	rows := Records(
		Record{"id": "a", "grade": 10},
		Record{"id": "b", "grade": 9},
		Record{"id": "c", "grade": 2},
		Record{"id": "d", "grade": 11},
	)
	cols := []Column{{Key: "id", Label: "ID"}, {Key: "grade", Label: "Grade", Sortable: true, Kind: KindNumber}}
	tbl := New(cols, rows)

	require.NoError(t, tbl.SetSort("grade"))
	asc := ids(tbl.Derive())
	assert.Equal(t, []string{"c", "b", "a", "d"}, asc)

	require.NoError(t, tbl.SetSort("grade"))
	desc := ids(tbl.Derive())
	assert.Equal(t, []string{"d", "a", "b", "c"}, desc)

	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestTable_SortDates(t *testing.T) {
	rows := Records(
		Record{"id": "a", "date": "2024-03-10"},
		Record{"id": "b", "date": "2023-12-01"},
		Record{"id": "c", "date": nil},
		Record{"id": "d", "date": "2024-01-15"},
	)
	cols := []Column{{Key: "id", Label: "ID"}, {Key: "date", Label: "Date", Sortable: true, Kind: KindDate}}
	tbl := New(cols, rows)

	require.NoError(t, tbl.SetSort("date"))
	assert.Equal(t, []string{"c", "b", "d", "a"}, ids(tbl.Derive()))
}

func TestTable_SortIsStable(t *testing.T) {
	rows := Records(
		Record{"id": "1", "grade": 10},
		Record{"id": "2", "grade": 9},
		Record{"id": "3", "grade": 10},
		Record{"id": "4", "grade": 9},
		Record{"id": "5", "grade": 10},
	)
	cols := []Column{{Key: "id", Label: "ID"}, {Key: "grade", Label: "Grade", Sortable: true, Kind: KindNumber}}
	tbl := New(cols, rows)

	require.NoError(t, tbl.SetSort("grade"))
	assert.Equal(t, []string{"2", "4", "1", "3", "5"}, ids(tbl.Derive()))
	require.NoError(t, tbl.SetSort("grade"))
	assert.Equal(t, []string{"1", "3", "5", "2", "4"}, ids(tbl.Derive()))
}

func TestTable_SortKeepsPage(t *testing.T) {
	tbl := New(studentColumns, makeStudents(25))
	tbl.SetPage(2)
	require.NoError(t, tbl.SetSort("name"))
	assert.Equal(t, 2, tbl.State().Page)
}

func TestTable_SortDoesNotMutateRows(t *testing.T) {
	rows := makeStudents(12)
	before := ids(rows)
	tbl := New(studentColumns, rows)
	require.NoError(t, tbl.SetSort("grade"))
	require.NoError(t, tbl.SetSort("grade"))
	tbl.SetSearchText("1")
	_ = tbl.View()
	assert.Equal(t, before, ids(rows))
}

func TestTable_SetSortErrors(t *testing.T) {
	tbl := New(studentColumns, makeStudents(3))

	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{name: "unknown column", key: "lol", wantErr: ErrUnknownColumn},
		{name: "not sortable", key: "status", wantErr: ErrNotSortable},
		{name: "sortable", key: "name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tbl.SetSort(tt.key)
			if errors.Cause(err) != tt.wantErr {
				t.Errorf("SetSort() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	require.NoError(t, tbl.Apply(ResetRequested{}))
	assert.Error(t, tbl.Apply(SortToggled{Key: "status"}))
	assert.Nil(t, tbl.State().Sort)
}

func TestTable_HeaderDirection(t *testing.T) {
	tbl := New(studentColumns, makeStudents(3))
	require.NoError(t, tbl.SetSort("grade"))
	require.NoError(t, tbl.SetSort("grade"))

	v := tbl.View()
	for _, col := range v.Columns {
		if col.Key == "grade" {
			assert.Equal(t, Desc, col.Direction)
		} else {
			assert.Empty(t, col.Direction, "column %s", col.Key)
		}
	}
}

func TestTable_SetRowsClampsPage(t *testing.T) {
	tbl := New(studentColumns, makeStudents(25))
	tbl.Last()
	require.Equal(t, 3, tbl.State().Page)

	tbl.SetRows(makeStudents(12))
	assert.Equal(t, 2, tbl.State().Page)

	tbl.SetRows(nil)
	assert.Equal(t, 1, tbl.State().Page)
	assert.Equal(t, 1, tbl.TotalPages())
}

func TestTable_ViewIsReadOnly(t *testing.T) {
	tbl := New(studentColumns, makeStudents(25))
	tbl.SetPage(3)
	before := tbl.State()
	_ = tbl.View()
	_ = tbl.View()
	assert.Equal(t, before, tbl.State())
}

func TestTable_Actions(t *testing.T) {
	tbl := New(studentColumns, makeStudents(2), WithActions(func(row Row) []Action {
		id := Display(value(row, "id"))
		return []Action{
			{Name: "edit", Label: "Edit", Href: "/students/" + id},
			{Name: "delete", Label: "Delete", Href: "/students/" + id, Method: "DELETE", Danger: true},
		}
	}))

	v := tbl.View()
	require.True(t, v.HasActions)
	assert.Equal(t, ActionsLabel, v.Columns[len(v.Columns)-1].Label)
	assert.Equal(t, len(studentColumns)+1, v.ColSpan)
	require.Len(t, v.Rows, 2)
	assert.Len(t, v.Rows[0].Actions, 2)
	assert.Equal(t, "/students/S002", v.Rows[1].Actions[0].Href)
	assert.Len(t, v.Rows[0].Cells, len(studentColumns))
}

func TestTable_CellsFormatted(t *testing.T) {
	tbl := New(studentColumns, makeStudents(1))
	v := tbl.View()
	require.Len(t, v.Rows, 1)
	assert.Equal(t, Cell{Text: "Active", Variant: VariantDefault}, v.Rows[0].Cells[3])
	assert.Equal(t, Cell{Text: "1"}, v.Rows[0].Cells[2])
}

func TestTable_Restore(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  State
	}{
		{
			name:  "valid",
			state: State{Search: "Student", Sort: sortBy("grade", Desc), Page: 2, PageSize: 10},
			want:  State{Search: "Student", Sort: sortBy("grade", Desc), Page: 2, PageSize: 10},
		},
		{
			name:  "unsortable column dropped",
			state: State{Sort: sortBy("status", Asc), Page: 1, PageSize: 10},
			want:  State{Page: 1, PageSize: 10},
		},
		{
			name:  "unknown direction is asc",
			state: State{Sort: sortBy("name", "sideways"), Page: 1, PageSize: 10},
			want:  State{Sort: sortBy("name", Asc), Page: 1, PageSize: 10},
		},
		{
			name:  "page clamped",
			state: State{Page: 99, PageSize: 10},
			want:  State{Page: 3, PageSize: 10},
		},
		{
			name:  "page size defaulted",
			state: State{Page: 0},
			want:  State{Page: 1, PageSize: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := New(studentColumns, makeStudents(25), WithState(tt.state))
			assert.Equal(t, tt.want, tbl.State())
		})
	}
}

func TestTable_Reset(t *testing.T) {
	tbl := New(studentColumns, makeStudents(25), WithPageSize(5))
	tbl.SetSearchText("Student")
	require.NoError(t, tbl.SetSort("name"))
	tbl.SetPage(3)

	tbl.Reset()
	assert.Equal(t, State{Page: 1, PageSize: 5}, tbl.State())
}
