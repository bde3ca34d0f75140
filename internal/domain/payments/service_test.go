package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"patitas-eternas/internal/authz"
	"patitas-eternas/internal/platform/validation"
	"patitas-eternas/internal/ports/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID map[string]Payment
}

func (r *testRepo) Create(_ context.Context, p Payment) (string, error) {
	p.ID = fmt.Sprintf("pay-%d", len(r.byID)+1)
	r.byID[p.ID] = p
	return p.ID, nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Payment, error) {
	p, ok := r.byID[id]
	if !ok {
		return Payment{}, storage.ErrNotFound
	}
	return p, nil
}

type fakeGateway struct {
	created []Order
	orders  map[string]string
	err     error
}

func (g *fakeGateway) CreateOrder(_ context.Context, o Order) (OrderResult, error) {
	if g.err != nil {
		return OrderResult{}, g.err
	}
	g.created = append(g.created, o)
	return OrderResult{ID: "ORDER-1", Status: "CREATED"}, nil
}

func (g *fakeGateway) GetOrder(_ context.Context, id string) (OrderResult, error) {
	if g.err != nil {
		return OrderResult{}, g.err
	}
	st, ok := g.orders[id]
	if !ok {
		return OrderResult{}, errors.New("404 from gateway")
	}
	return OrderResult{ID: id, Status: st}, nil
}

type sumObserver struct{ total float64 }

func (o *sumObserver) DonationCaptured(amount float64) { o.total += amount }

func num(v float64) validation.Number { return validation.Number{Value: v, Present: true} }

func newTestService(gw Gateway) (*Service, *testRepo, *sumObserver) {
	repo := &testRepo{byID: map[string]Payment{}}
	obs := &sumObserver{}
	svc := NewService(repo, gw, obs)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc, repo, obs
}

func TestCreateOrder_DefaultsToMXN(t *testing.T) {
	gw := &fakeGateway{}
	svc, _, _ := newTestService(gw)

	res, err := svc.CreateOrder(context.Background(), authz.Anonymous(), CreateOrderRequest{Amount: num(150)})
	require.NoError(t, err)
	assert.Equal(t, "ORDER-1", res.ID)
	require.Len(t, gw.created, 1)
	assert.Equal(t, Order{Amount: 150, Currency: "MXN", Description: DefaultDescription}, gw.created[0])
}

func TestCreateOrder_RejectsNonPositiveAmount(t *testing.T) {
	gw := &fakeGateway{}
	svc, _, _ := newTestService(gw)

	for _, amount := range []validation.Number{num(0), num(-5), {}, {Present: true, Invalid: true}} {
		_, err := svc.CreateOrder(context.Background(), authz.Anonymous(), CreateOrderRequest{Amount: amount})
		ve, ok := validation.As(err)
		require.True(t, ok)
		assert.True(t, ve.Has("amount"))
	}
	for _, raw := range []string{`{"amount":"Inf"}`, `{"amount":"NaN"}`} {
		var req CreateOrderRequest
		require.NoError(t, json.Unmarshal([]byte(raw), &req))
		_, err := svc.CreateOrder(context.Background(), authz.Anonymous(), req)
		ve, ok := validation.As(err)
		require.True(t, ok, raw)
		assert.True(t, ve.Has("amount"), raw)
	}
	assert.Empty(t, gw.created)
}

func TestCreateOrder_GatewayErrors(t *testing.T) {
	svc, _, _ := newTestService(nil)
	_, err := svc.CreateOrder(context.Background(), authz.Anonymous(), CreateOrderRequest{Amount: num(10)})
	assert.ErrorIs(t, err, ErrGatewayUnavailable)

	svc, _, _ = newTestService(&fakeGateway{err: errors.New("boom")})
	_, err = svc.CreateOrder(context.Background(), authz.Anonymous(), CreateOrderRequest{Amount: num(10)})
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestCapture_StoresConfirmedPayment(t *testing.T) {
	gw := &fakeGateway{orders: map[string]string{"O-1": "COMPLETED", "O-2": "APPROVED"}}
	svc, repo, obs := newTestService(gw)
	donor := authz.Caller{ID: "u-7", Role: authz.RoleUser}

	p, err := svc.Capture(context.Background(), donor, CaptureRequest{
		OrderID: "O-1", PaymentID: "CAP-1", Amount: validation.Number{Value: 200, Present: true, FromString: true},
	})
	require.NoError(t, err)

	stored := repo.byID[p.ID]
	assert.Equal(t, 200.0, stored.Amount)
	assert.Equal(t, "MXN", stored.Currency)
	assert.Equal(t, MethodPayPal, stored.PaymentMethod)
	assert.Equal(t, StatusCompleted, stored.Status)
	assert.Equal(t, DefaultDescription, stored.Description)
	assert.Equal(t, "u-7", stored.UserID)

	_, err = svc.Capture(context.Background(), authz.Anonymous(), CaptureRequest{
		OrderID: "O-2", PaymentID: "CAP-2", Amount: num(50), Description: "Para Luna",
	})
	require.NoError(t, err)
	assert.Equal(t, 250.0, obs.total)
}

func TestCapture_RejectsUnconfirmedOrder(t *testing.T) {
	gw := &fakeGateway{orders: map[string]string{"O-1": "CREATED"}}
	svc, repo, obs := newTestService(gw)

	_, err := svc.Capture(context.Background(), authz.Anonymous(), CaptureRequest{
		OrderID: "O-1", PaymentID: "CAP-1", Amount: num(10),
	})
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Empty(t, repo.byID)
	assert.Zero(t, obs.total)
}

func TestCapture_RequiresFields(t *testing.T) {
	svc, _, _ := newTestService(&fakeGateway{})

	_, err := svc.Capture(context.Background(), authz.Anonymous(), CaptureRequest{OrderID: "  "})
	ve, ok := validation.As(err)
	require.True(t, ok)
	for _, f := range []string{"orderId", "paymentId", "amount"} {
		assert.True(t, ve.Has(f), f)
	}
}
