package paypal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"patitas-eternas/internal/domain/payments"
	"patitas-eternas/internal/platform/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder_SendsCaptureIntent(t *testing.T) {
	var got createOrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/checkout/orders", r.URL.Path)
		assert.Equal(t, httpclient.BasicAuth("cid", "sec"), r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"5O190127TN364715T","status":"CREATED"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL+"/", "cid", "sec", time.Second)
	require.NoError(t, err)

	res, err := c.CreateOrder(context.Background(), payments.Order{
		Amount: 150, Currency: "MXN", Description: payments.DefaultDescription,
	})
	require.NoError(t, err)
	assert.Equal(t, payments.OrderResult{ID: "5O190127TN364715T", Status: "CREATED"}, res)

	assert.Equal(t, "CAPTURE", got.Intent)
	require.Len(t, got.PurchaseUnits, 1)
	assert.Equal(t, amount{CurrencyCode: "MXN", Value: "150.00"}, got.PurchaseUnits[0].Amount)
	assert.Equal(t, "Patitas Eternas", got.ApplicationContext.BrandName)
	assert.Equal(t, "BILLING", got.ApplicationContext.LandingPage)
	assert.Equal(t, "PAY_NOW", got.ApplicationContext.UserAction)
}

func TestGetOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/checkout/orders/OK-1":
			_, _ = w.Write([]byte(`{"id":"OK-1","status":"COMPLETED"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"name":"RESOURCE_NOT_FOUND"}`))
		}
	}))
	defer srv.Close()

	c, err := New(srv.URL, "cid", "sec", time.Second)
	require.NoError(t, err)

	res, err := c.GetOrder(context.Background(), "OK-1")
	require.NoError(t, err)
	assert.True(t, res.Confirmed())

	_, err = c.GetOrder(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpclient.StatusOf(err))
}

func TestNew_RequiresCredentials(t *testing.T) {
	_, err := New("https://api-m.sandbox.paypal.com", "", "sec", time.Second)
	assert.Error(t, err)
	_, err = New("", "cid", "sec", time.Second)
	assert.Error(t, err)
}
