// Package authz decide si un caller puede ejecutar una acción.
// No hay sesión global: cada handler recibe el Caller derivado de los claims del request.
package authz

import (
	"errors"
	"strings"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole normaliza el rol que viene del IdP. Cualquier valor desconocido es "user".
func ParseRole(s string) Role {
	if strings.EqualFold(strings.TrimSpace(s), string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleUser
}

// Caller es la identidad explícita del request. ID vacío = anónimo.
type Caller struct {
	ID   string
	Role Role
}

func Anonymous() Caller { return Caller{} }

func (c Caller) Authenticated() bool { return strings.TrimSpace(c.ID) != "" }

func (c Caller) IsAdmin() bool { return c.Authenticated() && c.Role == RoleAdmin }

type Action string

const (
	ActionReadPets          Action = "pets:read"
	ActionManagePets        Action = "pets:manage"
	ActionSubmitApplication Action = "applications:submit"
	ActionListApplications  Action = "applications:list"
	ActionReadApplication   Action = "applications:read"
	ActionUpdateApplication Action = "applications:update_status"
	ActionUploadImage       Action = "images:upload"
	ActionReadImage         Action = "images:read"
	ActionDeleteImage       Action = "images:delete"
	ActionRegister          Action = "users:register"
	ActionDonate            Action = "payments:donate"
)

type Decision int

const (
	Allow Decision = iota
	DenyUnauthenticated
	DenyForbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyUnauthenticated:
		return "deny-unauthenticated"
	case DenyForbidden:
		return "deny-forbidden"
	default:
		return "unknown"
	}
}

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

type requirement int

const (
	anyone requirement = iota
	authenticated
	adminOnly
)

var policy = map[Action]requirement{
	ActionReadPets:          anyone,
	ActionManagePets:        adminOnly,
	ActionSubmitApplication: anyone,
	ActionListApplications:  authenticated,
	ActionReadApplication:   authenticated, // + ownership, ver CanReadApplication
	ActionUpdateApplication: adminOnly,
	ActionUploadImage:       authenticated,
	ActionReadImage:         anyone,
	ActionDeleteImage:       adminOnly,
	ActionRegister:          anyone,
	ActionDonate:            anyone,
}

// Decide aplica la tabla de políticas. Acciones desconocidas se niegan.
func Decide(c Caller, a Action) Decision {
	req, ok := policy[a]
	if !ok {
		if !c.Authenticated() {
			return DenyUnauthenticated
		}
		return DenyForbidden
	}

	switch req {
	case anyone:
		return Allow
	case authenticated:
		if !c.Authenticated() {
			return DenyUnauthenticated
		}
		return Allow
	default:
		if !c.Authenticated() {
			return DenyUnauthenticated
		}
		if !c.IsAdmin() {
			return DenyForbidden
		}
		return Allow
	}
}

// Check es Decide expresado como error (nil, ErrUnauthenticated o ErrForbidden).
func Check(c Caller, a Action) error {
	return decisionErr(Decide(c, a))
}

// CanReadApplication: admin ve todo; el resto solo lo propio.
// ownerID vacío (solicitud anónima) solo la ve un admin.
func CanReadApplication(c Caller, ownerID string) error {
	if err := Check(c, ActionReadApplication); err != nil {
		return err
	}
	if c.IsAdmin() {
		return nil
	}
	if ownerID == "" || ownerID != c.ID {
		return ErrForbidden
	}
	return nil
}

func decisionErr(d Decision) error {
	switch d {
	case Allow:
		return nil
	case DenyUnauthenticated:
		return ErrUnauthenticated
	default:
		return ErrForbidden
	}
}
