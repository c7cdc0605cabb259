package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/trezcool/masomo-console/apps/api/echo"
	"github.com/trezcool/masomo-console/core/user"
	"github.com/trezcool/masomo-console/tests"
)

const (
	chen     = "Dr. Robert Chen"
	password = "Pa55word!"
)

// baseDeps holds the dependencies every test app shares. Repositories are not shared: see setup.
var baseDeps testutil.Deps

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type testApp struct {
	Server
	deps    testutil.Deps
	admin   user.User
	teacher user.User
}

// setup serves a new app over fresh repositories, holding an admin & a teacher account.
func setup(t *testing.T) testApp {
	deps := baseDeps.Fresh()

	app := testApp{
		Server: NewServer(
			ServerDeps{
				Conf:       deps.Conf,
				Logger:     deps.Logger,
				UserSvc:    deps.UsrSvc,
				School:     deps.School,
				Validate:   deps.Validate,
				Translator: deps.Translator,
			},
		),
		deps: deps,
	}
	app.admin = testutil.CreateUser(t, deps.UsrRepo, "Admin", "admin", "admin@test.cd", password, []string{user.RoleAdmin}, true)
	app.teacher = testutil.CreateUser(t, deps.UsrRepo, chen, "robert.chen", "", password, []string{user.RoleTeacher}, true, chen)
	return app
}

func (app testApp) token(t *testing.T, usr user.User) string {
	return getToken(t, app, usr)
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, app testApp, usr user.User) string {
	claims := GetUserClaims(app.deps.Conf, usr)
	token, err := GenerateToken(app.deps.Conf, claims)
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func unmarshall(t *testing.T, rec *httptest.ResponseRecorder, obj interface{}) {
	if err := json.Unmarshal(rec.Body.Bytes(), obj); err != nil {
		t.Fatalf("unmarshall(%s): %v", rec.Body.String(), err)
	}
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
