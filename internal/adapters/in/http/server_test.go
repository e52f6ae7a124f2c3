package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requests below fail request-level validation, so a zero-value Server is
// enough; no command handler is ever reached.
func newTestContext(t *testing.T, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) Error {
	t.Helper()
	var errResp Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	return errResp
}

func TestCreateProduct_AbsentPrice(t *testing.T) {
	t.Run("should reject request body without price", func(t *testing.T) {
		ctx, rec := newTestContext(t, http.MethodPost, `{"name":"Fried Chicken"}`)

		s := &Server{}
		require.NoError(t, s.CreateProduct(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		errResp := decodeError(t, rec)
		assert.Contains(t, errResp.Message, "price")
	})

	t.Run("should reject explicit null price", func(t *testing.T) {
		ctx, rec := newTestContext(t, http.MethodPost, `{"name":"Fried Chicken","price":null}`)

		s := &Server{}
		require.NoError(t, s.CreateProduct(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestChangeProductPrice_AbsentPrice(t *testing.T) {
	t.Run("should reject request body without price", func(t *testing.T) {
		ctx, rec := newTestContext(t, http.MethodPut, `{}`)
		ctx.SetParamNames("productId")
		ctx.SetParamValues(uuid.NewString())

		s := &Server{}
		require.NoError(t, s.ChangeProductPrice(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		errResp := decodeError(t, rec)
		assert.Contains(t, errResp.Message, "price")
	})
}

func TestCreateMenu_AbsentPrice(t *testing.T) {
	t.Run("should reject request body without price", func(t *testing.T) {
		body := `{"name":"Two Fried Chickens","menuGroupId":"` + uuid.NewString() + `",` +
			`"displayed":true,"menuProducts":[{"productId":"` + uuid.NewString() + `","quantity":2}]}`
		ctx, rec := newTestContext(t, http.MethodPost, body)

		s := &Server{}
		require.NoError(t, s.CreateMenu(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		errResp := decodeError(t, rec)
		assert.Contains(t, errResp.Message, "price")
	})
}

func TestChangeMenuPrice_AbsentPrice(t *testing.T) {
	t.Run("should reject request body without price", func(t *testing.T) {
		ctx, rec := newTestContext(t, http.MethodPut, `{}`)
		ctx.SetParamNames("menuId")
		ctx.SetParamValues(uuid.NewString())

		s := &Server{}
		require.NoError(t, s.ChangeMenuPrice(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		errResp := decodeError(t, rec)
		assert.Contains(t, errResp.Message, "price")
	})
}

func TestCreateOrder_AbsentLineItemPrice(t *testing.T) {
	t.Run("should reject line item without price", func(t *testing.T) {
		body := `{"type":"TAKEOUT","orderLineItems":[{"menuId":"` + uuid.NewString() + `","quantity":1}]}`
		ctx, rec := newTestContext(t, http.MethodPost, body)

		s := &Server{}
		require.NoError(t, s.CreateOrder(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		errResp := decodeError(t, rec)
		assert.Contains(t, errResp.Message, "price")
	})
}
