package applications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"patitas-eternas/internal/authz"
	"patitas-eternas/internal/middleware"
	"patitas-eternas/internal/platform/validation"
	"patitas-eternas/internal/ports/storage"
)

var (
	ErrNotFound    = storage.ErrNotFound
	ErrMalformedID = storage.ErrMalformedID

	// ErrTransitionFailed: la solicitud se aprobó pero la mascota no pudo marcarse
	// como adoptada. Ver UpdateStatus para la compensación.
	ErrTransitionFailed = errors.New("approval could not adopt the pet")
)

// PetDirectory es lo que este módulo necesita de pets (evita import directo).
type PetDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
	MarkAdopted(ctx context.Context, id string) error
}

// Observer recibe eventos de negocio (métricas). Puede ser nil.
type Observer interface {
	ApplicationSubmitted()
	ApplicationStatusChanged(status string)
	PetAdopted()
}

type Service struct {
	repo Repository
	pets PetDirectory
	obs  Observer
	now  func() time.Time
}

func NewService(repo Repository, pets PetDirectory, obs Observer) *Service {
	return &Service{
		repo: repo,
		pets: pets,
		obs:  obs,
		now:  time.Now,
	}
}

// Submit la puede hacer cualquiera; si hay sesión queda atribuida al caller.
// La mascota referenciada tiene que existir.
func (s *Service) Submit(ctx context.Context, caller authz.Caller, req SubmitRequest) (Application, error) {
	if err := authz.Check(caller, authz.ActionSubmitApplication); err != nil {
		return Application{}, err
	}

	a, err := ValidateSubmit(req, s.now())
	if err != nil {
		return Application{}, err
	}

	ok, err := s.pets.Exists(ctx, a.PetID)
	if err != nil {
		return Application{}, fmt.Errorf("applications: check pet: %w", err)
	}
	if !ok {
		verr := &validation.Error{}
		verr.Add("petId", "La mascota no existe")
		return Application{}, verr
	}

	if caller.Authenticated() {
		a.UserID = caller.ID
	}

	id, err := s.repo.Create(ctx, a)
	if err != nil {
		return Application{}, fmt.Errorf("applications: create: %w", err)
	}
	a.ID = id

	if s.obs != nil {
		s.obs.ApplicationSubmitted()
	}
	return a, nil
}

// List: admin ve todas, el resto solo las propias.
func (s *Service) List(ctx context.Context, caller authz.Caller) ([]Application, error) {
	if err := authz.Check(caller, authz.ActionListApplications); err != nil {
		return nil, err
	}

	var f ListFilter
	if !caller.IsAdmin() {
		uid := caller.ID
		f.UserID = &uid
	}

	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("applications: list: %w", err)
	}
	if items == nil {
		items = []Application{}
	}
	return items, nil
}

// Get aplica guard antes del lookup. Para no-admins, "no existe" y "no es tuya"
// responden igual (ErrForbidden).
func (s *Service) Get(ctx context.Context, caller authz.Caller, id string) (Application, error) {
	if err := authz.Check(caller, authz.ActionReadApplication); err != nil {
		return Application{}, err
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) && !caller.IsAdmin() {
			return Application{}, authz.ErrForbidden
		}
		return Application{}, err
	}

	if err := authz.CanReadApplication(caller, a.UserID); err != nil {
		return Application{}, err
	}
	return a, nil
}

// UpdateStatus: solo admin. Se persiste primero la solicitud; si el nuevo status
// es approved, después la mascota pasa a adopted. Si esa segunda escritura falla
// se restaura el status anterior de la solicitud y se devuelve ErrTransitionFailed.
func (s *Service) UpdateStatus(ctx context.Context, caller authz.Caller, id string, req StatusRequest) (Application, error) {
	if err := authz.Check(caller, authz.ActionUpdateApplication); err != nil {
		return Application{}, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Application{}, err
	}

	status, err := ValidateStatus(req)
	if err != nil {
		return Application{}, err
	}

	updated, err := s.repo.Update(ctx, id, Patch{Status: &status, UpdatedAt: s.now()})
	if err != nil {
		return Application{}, fmt.Errorf("applications: update status: %w", err)
	}

	if status == StatusApproved {
		if petErr := s.pets.MarkAdopted(ctx, current.PetID); petErr != nil {
			return Application{}, s.compensate(ctx, current, petErr)
		}
		if s.obs != nil {
			s.obs.PetAdopted()
		}
	}

	if s.obs != nil {
		s.obs.ApplicationStatusChanged(string(status))
	}
	return updated, nil
}

// compensate deja la solicitud como estaba antes de la aprobación.
func (s *Service) compensate(ctx context.Context, prev Application, petErr error) error {
	log := middleware.LoggerFrom(ctx).With(map[string]any{
		"application_id": prev.ID,
		"pet_id":         prev.PetID,
	})

	restore := prev.Status
	_, rbErr := s.repo.Update(ctx, prev.ID, Patch{Status: &restore, UpdatedAt: prev.UpdatedAt})
	if rbErr != nil {
		log.Error("approval compensation failed; application left approved", map[string]any{
			"pet_err":      petErr,
			"rollback_err": rbErr,
		})
		return fmt.Errorf("%w: pet: %v; rollback: %v", ErrTransitionFailed, petErr, rbErr)
	}

	log.Warn("approval rolled back: pet could not be marked adopted", map[string]any{"err": petErr})
	return fmt.Errorf("%w: %v", ErrTransitionFailed, petErr)
}
