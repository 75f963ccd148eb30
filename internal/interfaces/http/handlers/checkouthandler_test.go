package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	checkoutUsecases "github.com/doramashorts/backend/internal/application/checkout/usecases"
	"github.com/doramashorts/backend/internal/interfaces/http/handlers/testutil"
	"github.com/doramashorts/backend/internal/shared/errors"
)

func TestCheckoutHandler_HandleMessage(t *testing.T) {
	body := map[string]string{"origin": "https://checkout.doramashorts.com", "data": "payment_success"}

	t.Run("accepted", func(t *testing.T) {
		uc := &mockHandleCheckoutUC{result: &checkoutUsecases.HandleCheckoutMessageResult{Accepted: true, ResyncAfterMS: 1500}}
		h := NewCheckoutHandler(uc, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPost, "/api/checkout/messages", body)
		c.Request.Header.Set("Origin", "https://doramashorts.com")
		testutil.SetAuthContext(c, 7)

		h.HandleMessage(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"accepted":true`)
		assert.Contains(t, w.Body.String(), `"resync_after_ms":1500`)
		assert.Equal(t, "https://doramashorts.com", uc.got.RelayOrigin)
		assert.Equal(t, uint(7), uc.got.UserID)
	})

	t.Run("dropped message", func(t *testing.T) {
		uc := &mockHandleCheckoutUC{result: &checkoutUsecases.HandleCheckoutMessageResult{}}
		h := NewCheckoutHandler(uc, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPost, "/api/checkout/messages", map[string]string{
			"origin": "https://evil.example",
			"data":   "payment_success",
		})
		testutil.SetAuthContext(c, 7)

		h.HandleMessage(c)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Contains(t, w.Body.String(), `"accepted":false`)
	})

	t.Run("malformed body is dropped without reaching the use case", func(t *testing.T) {
		uc := &mockHandleCheckoutUC{}
		h := NewCheckoutHandler(uc, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPost, "/api/checkout/messages", []int{1, 2})
		testutil.SetAuthContext(c, 7)

		h.HandleMessage(c)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Zero(t, uc.calls)
	})

	t.Run("purchase id forwarded", func(t *testing.T) {
		uc := &mockHandleCheckoutUC{result: &checkoutUsecases.HandleCheckoutMessageResult{Accepted: true}}
		h := NewCheckoutHandler(uc, testutil.NewMockLogger())
		c, _ := testutil.NewTestContext(http.MethodPost, "/api/checkout/messages", map[string]string{
			"origin":      "https://checkout.doramashorts.com",
			"data":        "payment_success",
			"purchase_id": "pur_abc123",
		})
		testutil.SetAuthContext(c, 7)

		h.HandleMessage(c)

		assert.Equal(t, "pur_abc123", uc.got.PurchaseSID)
	})

	t.Run("no pending request", func(t *testing.T) {
		uc := &mockHandleCheckoutUC{err: errors.NewNotFoundError("no pending payment request")}
		h := NewCheckoutHandler(uc, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPost, "/api/checkout/messages", body)
		testutil.SetAuthContext(c, 7)

		h.HandleMessage(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		uc := &mockHandleCheckoutUC{}
		h := NewCheckoutHandler(uc, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPost, "/api/checkout/messages", body)

		h.HandleMessage(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Zero(t, uc.calls)
	})
}
