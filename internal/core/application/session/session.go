// Package session models who is acting on the dispatch console and what
// they may do. Operators act on any courier; a courier acts only on their
// own orders; an operator impersonating a courier gets write access only
// when the deployment explicitly allows it.
package session

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
)

// Authorization errors.
var (
	// ErrNotAuthorized is returned when the session may not perform the
	// requested action.
	ErrNotAuthorized = errors.New("session is not authorized for this action")
	// ErrImpersonationIsReadOnly is returned when an impersonated session
	// attempts a write and the deployment keeps impersonation read-only.
	ErrImpersonationIsReadOnly = errors.New("impersonated sessions are read-only")
)

// Role identifies the kind of actor behind a session.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleOperator is a dispatch console operator with fleet-wide access.
	RoleOperator

	// RoleCourier is a courier restricted to their own orders.
	RoleCourier
)

// String returns the human-readable name of the role.
func (r Role) String() string {
	switch r {
	case RoleOperator:
		return "Operator"
	case RoleCourier:
		return "Courier"
	default:
		return "Unknown"
	}
}

// Policy holds the deployment-level authorization switches.
type Policy struct {
	// AllowImpersonatedWrites lets an operator who is viewing the console
	// as a courier also act as that courier. Off by default.
	AllowImpersonatedWrites bool
}

// Session describes the current actor. The zero value is an anonymous
// session that fails every authorization check.
type Session struct {
	role         Role
	courierID    *kernel.UUID
	impersonated bool
}

// NewOperatorSession creates a session for a console operator.
func NewOperatorSession() Session {
	return Session{role: RoleOperator}
}

// NewCourierSession creates a session for a courier acting on their own
// behalf.
func NewCourierSession(courierID kernel.UUID) (Session, error) {
	if err := courierID.Validate(); err != nil {
		return Session{}, err
	}
	return Session{role: RoleCourier, courierID: &courierID}, nil
}

// NewImpersonatedSession creates a session for an operator viewing the
// console as a specific courier.
func NewImpersonatedSession(courierID kernel.UUID) (Session, error) {
	if err := courierID.Validate(); err != nil {
		return Session{}, err
	}
	return Session{role: RoleOperator, courierID: &courierID, impersonated: true}, nil
}

// Role returns the actor's role.
func (s Session) Role() Role {
	return s.role
}

// CourierID returns the courier the session is bound to, or nil for a plain
// operator session.
func (s Session) CourierID() *kernel.UUID {
	if s.courierID == nil {
		return nil
	}
	id := *s.courierID
	return &id
}

// IsImpersonated reports whether an operator is viewing as a courier.
func (s Session) IsImpersonated() bool {
	return s.impersonated
}

// CanActFor decides whether the session may perform a courier-scoped write
// (accepting an order, completing a delivery, requesting an advance) on
// behalf of the given courier.
func (s Session) CanActFor(courierID kernel.UUID, policy Policy) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	switch s.role {
	case RoleOperator:
		if !s.impersonated {
			return nil
		}
		if !policy.AllowImpersonatedWrites {
			return ErrImpersonationIsReadOnly
		}
		if s.courierID != nil && s.courierID.IsEqual(courierID) {
			return nil
		}
		return ErrNotAuthorized
	case RoleCourier:
		if s.courierID != nil && s.courierID.IsEqual(courierID) {
			return nil
		}
		return ErrNotAuthorized
	case RoleUnknown:
	}

	return ErrNotAuthorized
}

// CanManageFleet decides whether the session may perform operator-scoped
// writes (creating entities, manual dispatch, resolving advances).
// Impersonated operators keep fleet rights only when impersonated writes
// are allowed.
func (s Session) CanManageFleet(policy Policy) error {
	if s.role != RoleOperator {
		return ErrNotAuthorized
	}
	if s.impersonated && !policy.AllowImpersonatedWrites {
		return ErrImpersonationIsReadOnly
	}
	return nil
}
