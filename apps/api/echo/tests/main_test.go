package tests

import (
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masomo-console/tests"
)

func TestMain(m *testing.M) {
	// set up config, logger & validators
	baseDeps = testutil.NewDeps()

	// run tests
	os.Exit(m.Run())
}

func Test_setup(t *testing.T) {
	first, second := setup(t), setup(t)

	req, rec := newAuthRequest(http.MethodDelete, "/v1/payments?id=P001", first.token(t, first.admin))
	first.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	assert.Equal(t, 11, listPage(t, first, "/v1/payments", first.token(t, first.admin)).Total)
	assert.Equal(t, 12, listPage(t, second, "/v1/payments", second.token(t, second.admin)).Total)
	assert.Same(t, first.deps.Validate, second.deps.Validate)
}
