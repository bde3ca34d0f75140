package paypal

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"patitas-eternas/internal/domain/payments"
	"patitas-eternas/internal/platform/httpclient"
)

const brandName = "Patitas Eternas"

// Client habla con la API de órdenes v2 de PayPal usando credenciales Basic.
type Client struct {
	http *httpclient.Client
}

func New(baseURL, clientID, secret string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(clientID) == "" || strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("paypal: missing client credentials")
	}
	hc, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, fmt.Errorf("paypal: %w", err)
	}
	if hc.BaseURL == "" {
		return nil, fmt.Errorf("paypal: missing api url")
	}
	hc.Headers = map[string]string{
		"Authorization": httpclient.BasicAuth(clientID, secret),
	}
	return &Client{http: hc}, nil
}

type amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type purchaseUnit struct {
	Amount      amount `json:"amount"`
	Description string `json:"description"`
}

type applicationContext struct {
	BrandName   string `json:"brand_name"`
	LandingPage string `json:"landing_page"`
	UserAction  string `json:"user_action"`
}

type createOrderRequest struct {
	Intent             string             `json:"intent"`
	PurchaseUnits      []purchaseUnit     `json:"purchase_units"`
	ApplicationContext applicationContext `json:"application_context"`
}

type orderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (c *Client) CreateOrder(ctx context.Context, o payments.Order) (payments.OrderResult, error) {
	body := createOrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []purchaseUnit{{
			Amount: amount{
				CurrencyCode: o.Currency,
				Value:        formatAmount(o.Amount),
			},
			Description: o.Description,
		}},
		ApplicationContext: applicationContext{
			BrandName:   brandName,
			LandingPage: "BILLING",
			UserAction:  "PAY_NOW",
		},
	}

	var out orderResponse
	if err := c.http.DoJSON(ctx, http.MethodPost, "/v2/checkout/orders", nil, body, &out); err != nil {
		return payments.OrderResult{}, fmt.Errorf("paypal: create order: %w", err)
	}
	return payments.OrderResult{ID: out.ID, Status: out.Status}, nil
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (payments.OrderResult, error) {
	var out orderResponse
	path := "/v2/checkout/orders/" + url.PathEscape(orderID)
	if err := c.http.DoJSON(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return payments.OrderResult{}, fmt.Errorf("paypal: get order: %w", err)
	}
	return payments.OrderResult{ID: out.ID, Status: out.Status}, nil
}

// formatAmount: PayPal espera un string con dos decimales para MXN.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
