package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/trezcool/masomo-console/apps/api/echo"
	"github.com/trezcool/masomo-console/core/school"
	"github.com/trezcool/masomo-console/core/table"
)

func listPage(t *testing.T, app testApp, path, token string) ListResponse {
	t.Helper()
	req, rec := newAuthRequest(http.MethodGet, path, token)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ListResponse
	unmarshall(t, rec, &resp)
	return resp
}

func rowIDs(resp ListResponse) []string {
	ids := make([]string, len(resp.Rows))
	for i, row := range resp.Rows {
		ids[i] = row.Cells[0].Text
	}
	return ids
}

func Test_schoolApi_list(t *testing.T) {
	app := setup(t)
	token := app.token(t, app.admin)

	resp := listPage(t, app, "/v1/students", token)
	assert.Equal(t, "Students", resp.Screen.Title)
	assert.Equal(t, 25, resp.Total)
	assert.Equal(t, 25, resp.Unfiltered)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 10, resp.PageSize)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 8, resp.ColSpan)
	assert.True(t, resp.HasActions)
	assert.Equal(t, "Showing 1 to 10 of 25 entries", resp.Summary)
	require.Len(t, resp.Rows, 10)
	assert.Equal(t, table.Cell{Text: "$250", Tone: table.TonePositive}, resp.Rows[0].Cells[5])
	assert.Equal(t, []table.Action{
		{Name: school.ActionView, Label: "View", Href: "/v1/students/S001", Method: http.MethodGet},
		{Name: school.ActionEdit, Label: "Edit", Href: "/v1/students/S001", Method: http.MethodPut},
		{Name: school.ActionDelete, Label: "Delete", Href: "/v1/students/S001", Method: http.MethodDelete, Danger: true},
	}, resp.Rows[0].Actions)

	tests := []struct {
		name       string
		path       string
		wantIDs    []string
		wantPage   int
		wantTotal  int
		wantSort   *table.Sort
		wantSearch string
	}{
		{
			name:      "last page",
			path:      "/v1/students?page=3",
			wantIDs:   []string{"S021", "S022", "S023", "S024", "S025"},
			wantPage:  3,
			wantTotal: 25,
		},
		{
			name:      "page past the end is clamped",
			path:      "/v1/students?page=9",
			wantIDs:   []string{"S021", "S022", "S023", "S024", "S025"},
			wantPage:  3,
			wantTotal: 25,
		},
		{
			name:      "page size",
			path:      "/v1/students?page_size=3&page=2",
			wantIDs:   []string{"S004", "S005", "S006"},
			wantPage:  2,
			wantTotal: 25,
		},
		{
			name:      "ordering",
			path:      "/v1/students?ordering=-balance&page_size=3",
			wantIDs:   []string{"S015", "S007", "S022"},
			wantPage:  1,
			wantTotal: 25,
			wantSort:  &table.Sort{Key: "balance", Direction: table.Desc},
		},
		{
			name:      "unsortable ordering is dropped",
			path:      "/v1/students?ordering=phone&page_size=2",
			wantIDs:   []string{"S001", "S002"},
			wantPage:  1,
			wantTotal: 25,
		},
		{
			name:       "search",
			path:       "/v1/students?search=WEB%20dev",
			wantIDs:    []string{"S001", "S003", "S006", "S009", "S013", "S016", "S021", "S025"},
			wantPage:   1,
			wantTotal:  8,
			wantSearch: "WEB dev",
		},
		{
			name:      "next",
			path:      "/v1/students?action=next",
			wantIDs:   []string{"S011", "S012", "S013", "S014", "S015", "S016", "S017", "S018", "S019", "S020"},
			wantPage:  2,
			wantTotal: 25,
		},
		{
			name:      "sort toggles and keeps the page",
			path:      "/v1/students?ordering=name&page=2&page_size=2&action=sort:name",
			wantIDs:   []string{"S023", "S022"},
			wantPage:  2,
			wantTotal: 25,
			wantSort:  &table.Sort{Key: "name", Direction: table.Desc},
		},
		{
			name:      "reset",
			path:      "/v1/students?search=web&ordering=-name&page=2&action=reset",
			wantIDs:   []string{"S001", "S002", "S003", "S004", "S005", "S006", "S007", "S008", "S009", "S010"},
			wantPage:  1,
			wantTotal: 25,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := listPage(t, app, tt.path, token)
			assert.Equal(t, tt.wantIDs, rowIDs(resp))
			assert.Equal(t, tt.wantPage, resp.Page)
			assert.Equal(t, tt.wantTotal, resp.Total)
			assert.Equal(t, tt.wantSort, resp.Sort)
			assert.Equal(t, tt.wantSearch, resp.Search)
		})
	}

	t.Run("no match", func(t *testing.T) {
		resp := listPage(t, app, "/v1/students?search=zzz", token)
		assert.Empty(t, resp.Rows)
		assert.Equal(t, 0, resp.From)
		assert.Equal(t, 1, resp.TotalPages)
		assert.Equal(t, table.PlaceholderText, resp.Placeholder)
		assert.Empty(t, resp.Summary)
	})
}

func Test_schoolApi_listErrors(t *testing.T) {
	app := setup(t)
	token := app.token(t, app.admin)

	tests := []httpTest{
		{
			name:     "anonymous",
			path:     "/v1/students",
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
		{
			name:     "teacher",
			path:     "/v1/students",
			token:    app.token(t, app.teacher),
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, httpErr{Error: "permission denied"}),
		},
		{
			name:     "unknown screen",
			path:     "/v1/rooms",
			token:    token,
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "not found"}),
		},
		{
			name:     "invalid page",
			path:     "/v1/students?page=abc",
			token:    token,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"page": "must be a positive number"}),
		},
		{
			name:     "page size too big",
			path:     "/v1/students?page_size=1000",
			token:    token,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"page_size": "must be between 1 and 100"}),
		},
		{
			name:     "unknown action",
			path:     "/v1/students?action=jump",
			token:    token,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"action": `unknown action "jump"`}),
		},
		{
			name:     "sort on an unsortable column",
			path:     "/v1/students?action=sort:phone",
			token:    token,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"action": `sorting by "phone": column is not sortable`}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, tt.path, tt.token)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_schoolApi_crud(t *testing.T) {
	app := setup(t)
	token := app.token(t, app.admin)

	tests := []httpTest{
		{
			name:     "create",
			method:   http.MethodPost,
			path:     "/v1/courses",
			body:     []byte(`{"name": " DevOps ", "duration": "3 months", "price": 800, "students_count": 0}`),
			wantCode: http.StatusCreated,
			wantData: marchallObj(t, school.Course{ID: "C007", Name: "DevOps", Duration: "3 months", Price: 800}),
		},
		{
			name:     "create invalid",
			method:   http.MethodPost,
			path:     "/v1/courses",
			body:     []byte(`{"duration": "3 months", "price": -1}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "retrieve",
			method:   http.MethodGet,
			path:     "/v1/courses/C007",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, school.Course{ID: "C007", Name: "DevOps", Duration: "3 months", Price: 800}),
		},
		{
			name:     "update",
			method:   http.MethodPut,
			path:     "/v1/courses/C007",
			body:     []byte(`{"name": "DevOps", "duration": "4 months", "price": 950, "students_count": 2}`),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, school.Course{ID: "C007", Name: "DevOps", Duration: "4 months", Price: 950, StudentsCount: 2}),
		},
		{
			name:     "update missing",
			method:   http.MethodPut,
			path:     "/v1/courses/C999",
			body:     []byte(`{"name": "DevOps", "duration": "4 months", "price": 950}`),
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "not found"}),
		},
		{
			name:     "destroy",
			method:   http.MethodDelete,
			path:     "/v1/courses/C007",
			wantCode: http.StatusNoContent,
		},
		{
			name:     "retrieve destroyed",
			method:   http.MethodGet,
			path:     "/v1/courses/C007",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "not found"}),
		},
		{
			name:     "destroy missing",
			method:   http.MethodDelete,
			path:     "/v1/courses/C007",
			wantCode: http.StatusNotFound,
		},
		{
			name:     "destroy multiple",
			method:   http.MethodDelete,
			path:     "/v1/payments?id=P001&id=P002",
			wantCode: http.StatusNoContent,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	resp := listPage(t, app, "/v1/payments", token)
	assert.Equal(t, 10, resp.Total)
	assert.Equal(t, "P003", resp.Rows[0].Cells[0].Text)

	// ids are never recycled
	req, rec := newAuthRequest(http.MethodPost, "/v1/courses", token, []byte(`{"name": "Robotics", "duration": "2 months", "price": 500}`))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	var course school.Course
	unmarshall(t, rec, &course)
	assert.Equal(t, "C008", course.ID)
}

func Test_schoolApi_dashboard(t *testing.T) {
	app := setup(t)

	req, rec := newAuthRequest(http.MethodGet, "/v1/dashboard", app.token(t, app.admin))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var d school.Dashboard
	unmarshall(t, rec, &d)
	assert.Equal(t, 25, d.TotalStudents)
	assert.Equal(t, 18, d.ActiveStudents)
	assert.Equal(t, 6, d.TotalTeachers)
	assert.Equal(t, 7300.0, d.PaymentsTotal)
	assert.Len(t, d.UpcomingLessons, 5)

	req, rec = newAuthRequest(http.MethodGet, "/v1/screens", app.token(t, app.admin))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var screens map[string][]school.Screen
	unmarshall(t, rec, &screens)
	assert.Len(t, screens[school.PortalAdmin], 7)
	assert.Len(t, screens[school.PortalTeacher], 2)
}

func Test_schoolApi_teacher(t *testing.T) {
	app := setup(t)
	token := app.token(t, app.teacher)

	resp := listPage(t, app, "/v1/classroom/students", token)
	assert.Equal(t, "My Students", resp.Screen.Title)
	assert.Equal(t, 8, resp.Total)
	assert.Equal(t, 5, resp.ColSpan)
	assert.False(t, resp.HasActions)
	assert.Empty(t, resp.Rows[0].Actions)

	resp = listPage(t, app, "/v1/classroom/attendances?ordering=-present", token)
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "WD-A", resp.Rows[0].Cells[1].Text)
	assert.Equal(t, table.Cell{Text: "3", Tone: table.TonePositive}, resp.Rows[0].Cells[2])
	assert.Empty(t, resp.Summary)

	req, rec := newAuthRequest(http.MethodGet, "/v1/classroom/dashboard", token)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var d school.TeacherDashboard
	unmarshall(t, rec, &d)
	assert.Equal(t, chen, d.Teacher)
	assert.Equal(t, 8, d.Students)
	assert.Len(t, d.Groups, 2)

	tests := []httpTest{
		{
			name:     "admin screens are not teacher screens",
			path:     "/v1/classroom/payments",
			token:    token,
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "not found"}),
		},
		{
			name:     "admins without a teacher",
			path:     "/v1/classroom/students",
			token:    app.token(t, app.admin),
			wantCode: http.StatusForbidden,
		},
		{
			name:     "anonymous",
			path:     "/v1/classroom/dashboard",
			wantCode: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, tt.path, tt.token)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
