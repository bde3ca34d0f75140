package applications

import (
	"context"
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
	seq       int
	byID      map[string]Application
	failAfter int // Update falla a partir de esta llamada (0 = nunca)
	updates   int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Application{}}
}

func (r *testRepo) Create(_ context.Context, a Application) (string, error) {
	r.seq++
	a.ID = fmt.Sprintf("app-%d", r.seq)
	r.byID[a.ID] = a
	return a.ID, nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Application, error) {
	if id == "" || id == "bad" {
		return Application{}, storage.ErrMalformedID
	}
	a, ok := r.byID[id]
	if !ok {
		return Application{}, storage.ErrNotFound
	}
	return a, nil
}

func (r *testRepo) List(_ context.Context, f ListFilter) ([]Application, error) {
	var out []Application
	for _, a := range r.byID {
		if f.Matches(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, id string, patch Patch) (Application, error) {
	r.updates++
	if r.failAfter > 0 && r.updates >= r.failAfter {
		return Application{}, errors.New("repo: write failed")
	}
	a, err := r.GetByID(ctx, id)
	if err != nil {
		return Application{}, err
	}
	patch.Apply(&a)
	r.byID[id] = a
	return a, nil
}

type fakePets struct {
	status  map[string]string
	failing bool
}

func (p *fakePets) Exists(_ context.Context, id string) (bool, error) {
	_, ok := p.status[id]
	return ok, nil
}

func (p *fakePets) MarkAdopted(_ context.Context, id string) error {
	if p.failing {
		return errors.New("pets: write failed")
	}
	if _, ok := p.status[id]; !ok {
		return storage.ErrNotFound
	}
	p.status[id] = "adopted"
	return nil
}

type countingObserver struct {
	submitted int
	changes   []string
	adopted   int
}

func (o *countingObserver) ApplicationSubmitted() { o.submitted++ }
func (o *countingObserver) ApplicationStatusChanged(s string) { o.changes = append(o.changes, s) }
func (o *countingObserver) PetAdopted() { o.adopted++ }

var (
	admin = authz.Caller{ID: "admin-1", Role: authz.RoleAdmin}
	ana   = authz.Caller{ID: "ana", Role: authz.RoleUser}
	beto  = authz.Caller{ID: "beto", Role: authz.RoleUser}
)

type fixture struct {
	svc  *Service
	repo *testRepo
	pets *fakePets
	obs  *countingObserver
	now  time.Time
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	repo := newTestRepo()
	pets := &fakePets{status: map[string]string{"luna": "available"}}
	obs := &countingObserver{}
	svc := NewService(repo, pets, obs)
	now := time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return fixture{svc: svc, repo: repo, pets: pets, obs: obs, now: now}
}

func validRequest() SubmitRequest {
	return SubmitRequest{
		PetID:       "luna",
		Name:        "Ana López",
		Email:       "Ana@Example.com",
		Phone:       "5512345678",
		Address:     "Av. Reforma 100",
		HousingType: "apartment",
		Experience:  "Tuve gatos toda mi vida",
		Reason:      "Quiero darle un hogar tranquilo",
	}
}

func TestSubmit_DefaultsAndAttribution(t *testing.T) {
	f := newFixture(t)

	a, err := f.svc.Submit(context.Background(), ana, validRequest())
	require.NoError(t, err)
	assert.Equal(t, StatusPending, a.Status)
	assert.Equal(t, "ana", a.UserID)
	assert.Equal(t, "ana@example.com", a.Email)
	assert.False(t, a.HasOtherPets)
	assert.Equal(t, f.now, a.SubmittedAt)
	assert.Equal(t, 1, f.obs.submitted)

	anon, err := f.svc.Submit(context.Background(), authz.Anonymous(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, anon.UserID)
}

func TestSubmit_Validation(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.Email = "no-es-correo"
	req.Phone = "123"
	req.HousingType = "castle"
	req.Experience = "corta"
	req.Reason = string(make([]rune, 501))
	_, err := f.svc.Submit(context.Background(), ana, req)

	ve, ok := validation.As(err)
	require.True(t, ok)
	for _, field := range []string{"email", "phone", "housingType", "experience", "reason"} {
		assert.True(t, ve.Has(field), field)
	}
	assert.False(t, ve.Has("name"))
}

func TestSubmit_UnknownPetRejected(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.PetID = "fantasma"
	_, err := f.svc.Submit(context.Background(), ana, req)

	ve, ok := validation.As(err)
	require.True(t, ok)
	assert.True(t, ve.Has("petId"))
	assert.Empty(t, f.repo.byID)
}

func TestListAndGet_Ownership(t *testing.T) {
	f := newFixture(t)
	mine, err := f.svc.Submit(context.Background(), ana, validRequest())
	require.NoError(t, err)
	_, err = f.svc.Submit(context.Background(), beto, validRequest())
	require.NoError(t, err)

	_, err = f.svc.List(context.Background(), authz.Anonymous())
	assert.ErrorIs(t, err, authz.ErrUnauthenticated)

	own, err := f.svc.List(context.Background(), ana)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, mine.ID, own[0].ID)

	all, err := f.svc.List(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = f.svc.Get(context.Background(), ana, mine.ID)
	assert.NoError(t, err)

	_, err = f.svc.Get(context.Background(), beto, mine.ID)
	assert.ErrorIs(t, err, authz.ErrForbidden)

	// no-admin: inexistente se ve igual que ajena
	_, err = f.svc.Get(context.Background(), beto, "app-999")
	assert.ErrorIs(t, err, authz.ErrForbidden)

	_, err = f.svc.Get(context.Background(), admin, "app-999")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.Get(context.Background(), admin, "bad")
	assert.ErrorIs(t, err, ErrMalformedID)

	_, err = f.svc.Get(context.Background(), authz.Anonymous(), mine.ID)
	assert.ErrorIs(t, err, authz.ErrUnauthenticated)
}

func TestUpdateStatus_ApprovalAdoptsPet(t *testing.T) {
	f := newFixture(t)
	a, err := f.svc.Submit(context.Background(), ana, validRequest())
	require.NoError(t, err)

	later := f.now.Add(48 * time.Hour)
	f.svc.now = func() time.Time { return later }

	got, err := f.svc.UpdateStatus(context.Background(), admin, a.ID, StatusRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, got.Status)
	assert.Equal(t, later, got.UpdatedAt)
	assert.Equal(t, "adopted", f.pets.status["luna"])
	assert.Equal(t, 1, f.obs.adopted)
	assert.Equal(t, []string{"approved"}, f.obs.changes)
}

func TestUpdateStatus_RejectAndRependLeavePetAlone(t *testing.T) {
	f := newFixture(t)
	a, err := f.svc.Submit(context.Background(), ana, validRequest())
	require.NoError(t, err)

	for _, st := range []string{"rejected", "pending", "rejected"} {
		got, err := f.svc.UpdateStatus(context.Background(), admin, a.ID, StatusRequest{Status: st})
		require.NoError(t, err)
		assert.Equal(t, Status(st), got.Status)
		assert.Equal(t, "available", f.pets.status["luna"])
	}
	assert.Zero(t, f.obs.adopted)
}

func TestUpdateStatus_GuardAndValidation(t *testing.T) {
	f := newFixture(t)
	a, err := f.svc.Submit(context.Background(), ana, validRequest())
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(context.Background(), ana, a.ID, StatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, authz.ErrForbidden)

	_, err = f.svc.UpdateStatus(context.Background(), authz.Anonymous(), "app-999", StatusRequest{})
	assert.ErrorIs(t, err, authz.ErrUnauthenticated)

	_, err = f.svc.UpdateStatus(context.Background(), admin, "app-999", StatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.UpdateStatus(context.Background(), admin, a.ID, StatusRequest{Status: "archived"})
	ve, ok := validation.As(err)
	require.True(t, ok)
	assert.True(t, ve.Has("status"))
	assert.Equal(t, StatusPending, f.repo.byID[a.ID].Status)
}

func TestUpdateStatus_CompensatesWhenPetWriteFails(t *testing.T) {
	f := newFixture(t)
	a, err := f.svc.Submit(context.Background(), ana, validRequest())
	require.NoError(t, err)
	f.pets.failing = true

	_, err = f.svc.UpdateStatus(context.Background(), admin, a.ID, StatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, ErrTransitionFailed)

	stored := f.repo.byID[a.ID]
	assert.Equal(t, StatusPending, stored.Status)
	assert.Equal(t, a.UpdatedAt, stored.UpdatedAt)
	assert.Equal(t, "available", f.pets.status["luna"])
	assert.Empty(t, f.obs.changes)
}

func TestUpdateStatus_CompensationFailureReportsBoth(t *testing.T) {
	f := newFixture(t)
	a, err := f.svc.Submit(context.Background(), ana, validRequest())
	require.NoError(t, err)
	f.pets.failing = true
	f.repo.failAfter = 2 // la primera escritura pasa, la compensación falla

	_, err = f.svc.UpdateStatus(context.Background(), admin, a.ID, StatusRequest{Status: "approved"})
	require.ErrorIs(t, err, ErrTransitionFailed)
	assert.Contains(t, err.Error(), "rollback")
	assert.Equal(t, StatusApproved, f.repo.byID[a.ID].Status)
}
