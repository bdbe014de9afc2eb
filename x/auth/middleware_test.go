package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/totegamma/rowguard/core"
)

func invokeWithHeaders(t *testing.T, headers map[string]string, handler echo.HandlerFunc, middlewares ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	wrapped := handler
	for i := len(middlewares) - 1; i >= 0; i-- {
		wrapped = middlewares[i](wrapped)
	}

	return rec, wrapped(c)
}

func TestReceiveGatewayAuthPropagation(t *testing.T) {
	var seen *core.User
	handler := func(c echo.Context) error {
		seen = core.RequesterFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	}

	headers := map[string]string{
		RequesterPrincipalHeader:  "alice",
		RequesterAttributesHeader: `{"roles":["admin"],"teams":["ml-team"]}`,
	}
	rec, err := invokeWithHeaders(t, headers, handler, ReceiveGatewayAuthPropagation)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	if assert.NotNil(t, seen) {
		assert.Equal(t, "alice", seen.Principal)
		assert.Equal(t, []string{"admin"}, seen.Attributes["roles"])
		assert.Equal(t, []string{"ml-team"}, seen.Attributes["teams"])
	}
}

func TestReceiveGatewayAuthPropagationAnonymous(t *testing.T) {
	var seen *core.User
	handler := func(c echo.Context) error {
		seen = core.RequesterFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	}

	rec, err := invokeWithHeaders(t, nil, handler, ReceiveGatewayAuthPropagation)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, seen)
}

func TestReceiveGatewayAuthPropagationBadAttributes(t *testing.T) {
	handler := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	headers := map[string]string{
		RequesterPrincipalHeader:  "alice",
		RequesterAttributesHeader: `not json`,
	}
	rec, err := invokeWithHeaders(t, headers, handler, ReceiveGatewayAuthPropagation)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequiresAccess(t *testing.T) {
	handler := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	cases := []struct {
		name      string
		condition string
		headers   map[string]string
		expect    int
	}{
		{
			name:      "matching attribute grants",
			condition: "user with admin in roles",
			headers: map[string]string{
				RequesterPrincipalHeader:  "alice",
				RequesterAttributesHeader: `{"roles":["admin"]}`,
			},
			expect: http.StatusOK,
		},
		{
			name:      "missing attribute denies",
			condition: "user with admin in roles",
			headers: map[string]string{
				RequesterPrincipalHeader:  "bob",
				RequesterAttributesHeader: `{"roles":["user"]}`,
			},
			expect: http.StatusForbidden,
		},
		{
			name:      "negated condition grants",
			condition: "user with banned not in roles",
			headers: map[string]string{
				RequesterPrincipalHeader:  "bob",
				RequesterAttributesHeader: `{"roles":["user"]}`,
			},
			expect: http.StatusOK,
		},
		{
			name:      "anonymous denies",
			condition: "user with admin in roles",
			headers:   nil,
			expect:    http.StatusForbidden,
		},
		{
			name:      "owners form is not a route condition",
			condition: "user in owners roles",
			headers: map[string]string{
				RequesterPrincipalHeader:  "alice",
				RequesterAttributesHeader: `{"roles":["admin"]}`,
			},
			expect: http.StatusForbidden,
		},
		{
			name:      "garbage condition denies",
			condition: "anything goes",
			headers: map[string]string{
				RequesterPrincipalHeader:  "alice",
				RequesterAttributesHeader: `{"roles":["admin"]}`,
			},
			expect: http.StatusForbidden,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := invokeWithHeaders(t, tc.headers, handler, ReceiveGatewayAuthPropagation, RequiresAccess(tc.condition))
			assert.NoError(t, err)
			assert.Equal(t, tc.expect, rec.Code)
		})
	}
}
