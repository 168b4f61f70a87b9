package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cyclegear/storefront/internal/auth"
	"github.com/cyclegear/storefront/internal/cart"
	"github.com/cyclegear/storefront/internal/catalog"
	"github.com/cyclegear/storefront/internal/search"
	"github.com/cyclegear/storefront/internal/session"
)

type testEnv struct {
	T *testing.T
	E *echo.Echo
	A *AuthHandler
	C *CartHandler
	P *ProductHandler
	S *SearchHandler

	Sessions *session.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sessions, err := session.New(db)
	require.NoError(t, err)

	cat := catalog.New()
	cartStore := cart.New(nil)
	authStore := auth.New(auth.SeedDirectory(), sessions, nil, time.Millisecond)
	authStore.Restore(context.Background())

	return &testEnv{
		T:        t,
		E:        echo.New(),
		A:        &AuthHandler{Auth: authStore},
		C:        &CartHandler{Cart: cartStore, Catalog: cat},
		P:        &ProductHandler{Catalog: cat},
		S:        &SearchHandler{Index: search.Index},
		Sessions: sessions,
	}
}

func (env *testEnv) doJSONRequest(method, target string, body any) (*httptest.ResponseRecorder, echo.Context) {
	env.T.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(env.T, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func httpError(t *testing.T, err error) *echo.HTTPError {
	t.Helper()

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	return he
}
