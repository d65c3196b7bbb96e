/*
 * This file is part of aarovia.
 *
 * aarovia is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * aarovia is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with aarovia.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package pkg

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// AccessControlConfig holds the engine settings.
type AccessControlConfig struct {
	// Initializer becomes the first admin when the store holds no admin yet.
	Initializer Address
	// StrictRecordOwnership restricts record access management by non-admins to the principal that registered the record.
	StrictRecordOwnership bool
	// Seed is applied once, right after the initializer is installed in an empty store.
	Seed *Seed
}

// AccessControlClient is the decision interface used by the API and the CLI.
type AccessControlClient interface {
	AssignRole(ctx context.Context, caller, principal Address, role Role) error
	AddAdmin(ctx context.Context, caller, principal Address) error
	RemoveAdmin(ctx context.Context, caller, principal Address) error
	GrantEmergencyAccess(ctx context.Context, caller, principal Address) error
	RevokeEmergencyAccess(ctx context.Context, caller, principal Address) error
	GrantRecordAccess(ctx context.Context, caller Address, recordID RecordID, grantee Address) error
	RevokeRecordAccess(ctx context.Context, caller Address, recordID RecordID, grantee Address) error
	RegisterRecord(ctx context.Context, caller Address, patientID PatientID, recordID RecordID) error
	GrantConsent(ctx context.Context, caller Address, request GrantConsentRequest) error
	RevokeConsent(ctx context.Context, caller Address, patientID PatientID, grantee Address) error

	IsAdmin(principal Address) bool
	GetRole(principal Address) Role
	HasEmergencyAccess(principal Address) bool
	HasRecordAccess(recordID RecordID, grantee Address) bool
	GetPatientRecords(patientID PatientID) ([]RecordID, error)
	IsConsentValid(patientID PatientID, grantee Address) bool
	GetConsent(patientID PatientID, grantee Address) Consent
	CheckAccess(recordID RecordID, patientID PatientID, recordType RecordType, requester Address) bool
	Decide(recordID RecordID, patientID PatientID, recordType RecordType, requester Address) Decision
}

// AccessPath names the rule that granted an access check.
type AccessPath string

const (
	PathNone        AccessPath = "none"
	PathAdmin       AccessPath = "admin"
	PathEmergency   AccessPath = "emergency"
	PathRecordGrant AccessPath = "record-grant"
	PathConsent     AccessPath = "consent"
)

// Decision is the outcome of an access check.
type Decision struct {
	Allowed bool       `json:"allowed"`
	Path    AccessPath `json:"path"`
}

// AccessControl is the access decision engine. Mutations are serialized; queries read an immutable snapshot
// and never wait for a mutation.
type AccessControl struct {
	Config    AccessControlConfig
	Store     Store
	Publisher EventPublisher
	Metrics   *Metrics
	// Clock returns the current time; time.Now when nil.
	Clock func() time.Time

	mu    sync.Mutex
	state atomic.Pointer[State]
}

func logger() *logrus.Entry {
	return logrus.StandardLogger().WithField("module", "access-control")
}

// NewAccessControl creates an engine. Start must be called before use.
func NewAccessControl(config AccessControlConfig, store Store, publisher EventPublisher) *AccessControl {
	return &AccessControl{
		Config:    config,
		Store:     store,
		Publisher: publisher,
	}
}

// Start loads the persisted state. When the store holds no admin yet, the initializer becomes admin
// and the seed, if any, is applied. A store that already has an admin is never seeded again.
func (ac *AccessControl) Start(ctx context.Context) error {
	bootstrapped, err := ac.load(ctx)
	if err != nil {
		return err
	}
	if bootstrapped && ac.Config.Seed != nil {
		return ac.ApplySeed(ctx, ac.Config.Seed)
	}
	return nil
}

func (ac *AccessControl) load(ctx context.Context) (bool, error) {
	ac.mu.Lock()
	defer ac.mu.Unlock()

	state, err := ac.Store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("could not load access control state: %w", err)
	}

	for _, p := range state.Principals() {
		if p.Admin {
			ac.state.Store(state)
			logger().Debugf("loaded state with existing admin %s", p.Address)
			return false, nil
		}
	}

	if ac.Config.Initializer.IsZero() {
		return false, errors.New("no admin in store and no initializer address configured")
	}
	initializer := Principal{Address: ac.Config.Initializer, Role: RoleAdmin, Admin: true, EmergencyAccess: state.Principal(ac.Config.Initializer).EmergencyAccess}
	if err := ac.Store.SavePrincipal(ctx, initializer); err != nil {
		return false, fmt.Errorf("could not store initializer: %w", err)
	}
	state.PutPrincipal(initializer)
	ac.state.Store(state)
	logger().Infof("initialized access control with admin %s", initializer.Address)
	return true, nil
}

// Shutdown is a placeholder; the engine holds no resources of its own.
func (ac *AccessControl) Shutdown() error {
	return nil
}

func (ac *AccessControl) now() time.Time {
	if ac.Clock != nil {
		return ac.Clock()
	}
	return time.Now()
}

func (ac *AccessControl) snapshot() *State {
	if s := ac.state.Load(); s != nil {
		return s
	}
	return NewState()
}

// Snapshot returns the current state. It must not be modified.
func (ac *AccessControl) Snapshot() *State {
	return ac.snapshot()
}

type mutation func(current *State, now time.Time) (*State, Event, error)

// mutate runs fn under the writer lock. The new state becomes visible only when fn succeeds,
// and events are published before the lock is released so subscribers see commit order.
func (ac *AccessControl) mutate(operation string, fn mutation) error {
	ac.mu.Lock()
	defer ac.mu.Unlock()

	next, event, err := fn(ac.snapshot(), ac.now())
	ac.Metrics.recordMutation(operation, err)
	if err != nil {
		logger().WithError(err).Debugf("%s rejected", operation)
		return err
	}
	ac.state.Store(next)

	if ac.Publisher != nil {
		if err := ac.Publisher.Publish(event); err != nil {
			logger().WithError(err).Warnf("could not publish %s event", event.Name)
		}
	}
	logger().Debugf("%s committed by %s", operation, event.Actor)
	return nil
}

func requireAdmin(s *State, caller Address) error {
	if !s.Principal(caller).Admin {
		return ErrNotAdmin
	}
	return nil
}

func requirePatient(s *State, caller Address) error {
	if s.Principal(caller).Role != RolePatient {
		return ErrNotPatient
	}
	return nil
}

func (ac *AccessControl) requireRecordManager(s *State, caller Address, recordID RecordID) error {
	p := s.Principal(caller)
	if p.Admin {
		return nil
	}
	if p.Role != RolePatient {
		return ErrRecordAccessDenied
	}
	if ac.Config.StrictRecordOwnership {
		record, ok := s.Record(recordID)
		if !ok || record.Owner != caller {
			return ErrNotRecordOwner
		}
	}
	return nil
}

// AssignRole overwrites the role of principal. RoleNone revokes the role.
func (ac *AccessControl) AssignRole(ctx context.Context, caller, principal Address, role Role) error {
	return ac.mutate("AssignRole", func(s *State, now time.Time) (*State, Event, error) {
		if err := requireAdmin(s, caller); err != nil {
			return nil, Event{}, err
		}
		if !role.Valid() {
			return nil, Event{}, ErrInvalidRole
		}
		p := s.Principal(principal)
		p.Role = role
		if err := ac.Store.SavePrincipal(ctx, p); err != nil {
			return nil, Event{}, fmt.Errorf("could not store role: %w", err)
		}
		event := newEvent(EventRoleAssigned, caller, now)
		event.Principal = &principal
		event.Role = &role
		return s.withPrincipal(p), event, nil
	})
}

// AddAdmin adds principal to the admin set and gives it the admin role.
func (ac *AccessControl) AddAdmin(ctx context.Context, caller, principal Address) error {
	return ac.mutate("AddAdmin", func(s *State, now time.Time) (*State, Event, error) {
		if err := requireAdmin(s, caller); err != nil {
			return nil, Event{}, err
		}
		p := s.Principal(principal)
		p.Admin = true
		p.Role = RoleAdmin
		if err := ac.Store.SavePrincipal(ctx, p); err != nil {
			return nil, Event{}, fmt.Errorf("could not store admin: %w", err)
		}
		event := newEvent(EventAdminAdded, caller, now)
		event.Principal = &principal
		return s.withPrincipal(p), event, nil
	})
}

// RemoveAdmin removes principal from the admin set. An admin can not remove itself, even when other admins exist.
func (ac *AccessControl) RemoveAdmin(ctx context.Context, caller, principal Address) error {
	return ac.mutate("RemoveAdmin", func(s *State, now time.Time) (*State, Event, error) {
		if err := requireAdmin(s, caller); err != nil {
			return nil, Event{}, err
		}
		if principal == caller {
			return nil, Event{}, ErrSelfRemoval
		}
		p := s.Principal(principal)
		p.Admin = false
		if err := ac.Store.SavePrincipal(ctx, p); err != nil {
			return nil, Event{}, fmt.Errorf("could not store admin removal: %w", err)
		}
		event := newEvent(EventAdminRemoved, caller, now)
		event.Principal = &principal
		return s.withPrincipal(p), event, nil
	})
}

func (ac *AccessControl) GrantEmergencyAccess(ctx context.Context, caller, principal Address) error {
	return ac.setEmergencyAccess(ctx, "GrantEmergencyAccess", EventEmergencyAccessGranted, caller, principal, true)
}

func (ac *AccessControl) RevokeEmergencyAccess(ctx context.Context, caller, principal Address) error {
	return ac.setEmergencyAccess(ctx, "RevokeEmergencyAccess", EventEmergencyAccessRevoked, caller, principal, false)
}

func (ac *AccessControl) setEmergencyAccess(ctx context.Context, operation string, name EventName, caller, principal Address, granted bool) error {
	return ac.mutate(operation, func(s *State, now time.Time) (*State, Event, error) {
		if err := requireAdmin(s, caller); err != nil {
			return nil, Event{}, err
		}
		p := s.Principal(principal)
		p.EmergencyAccess = granted
		if err := ac.Store.SavePrincipal(ctx, p); err != nil {
			return nil, Event{}, fmt.Errorf("could not store emergency access: %w", err)
		}
		event := newEvent(name, caller, now)
		event.Principal = &principal
		return s.withPrincipal(p), event, nil
	})
}

// GrantRecordAccess shares a single record with grantee regardless of consent.
func (ac *AccessControl) GrantRecordAccess(ctx context.Context, caller Address, recordID RecordID, grantee Address) error {
	return ac.setRecordAccess(ctx, "GrantRecordAccess", EventRecordAccessGranted, caller, recordID, grantee, true)
}

// RevokeRecordAccess clears a record grant. The grant is kept as inactive.
func (ac *AccessControl) RevokeRecordAccess(ctx context.Context, caller Address, recordID RecordID, grantee Address) error {
	return ac.setRecordAccess(ctx, "RevokeRecordAccess", EventRecordAccessRevoked, caller, recordID, grantee, false)
}

func (ac *AccessControl) setRecordAccess(ctx context.Context, operation string, name EventName, caller Address, recordID RecordID, grantee Address, active bool) error {
	return ac.mutate(operation, func(s *State, now time.Time) (*State, Event, error) {
		if err := ac.requireRecordManager(s, caller, recordID); err != nil {
			return nil, Event{}, err
		}
		access := RecordAccess{RecordID: recordID, Grantee: grantee, Active: active}
		if err := ac.Store.SaveRecordAccess(ctx, access); err != nil {
			return nil, Event{}, fmt.Errorf("could not store record access: %w", err)
		}
		event := newEvent(name, caller, now)
		event.RecordID = &recordID
		event.Principal = &grantee
		return s.withRecordAccess(access), event, nil
	})
}

// RegisterRecord adds recordID to the index of the patient. The caller is remembered as the owner of the record.
func (ac *AccessControl) RegisterRecord(ctx context.Context, caller Address, patientID PatientID, recordID RecordID) error {
	return ac.mutate("RegisterRecord", func(s *State, now time.Time) (*State, Event, error) {
		p := s.Principal(caller)
		if !p.Admin && p.Role != RolePatient {
			return nil, Event{}, ErrRecordAccessDenied
		}
		if _, exists := s.Record(recordID); exists {
			return nil, Event{}, ErrRecordRegistered
		}
		record := PatientRecord{PatientID: patientID, RecordID: recordID, Owner: caller, RegisteredAt: now}
		if err := ac.Store.SavePatientRecord(ctx, record); err != nil {
			return nil, Event{}, fmt.Errorf("could not store patient record: %w", err)
		}
		event := newEvent(EventRecordRegistered, caller, now)
		event.PatientID = &patientID
		event.RecordID = &recordID
		return s.withPatientRecord(record), event, nil
	})
}

// GrantConsent creates or replaces the consent of a patient for grantee. Only principals with the patient role
// may grant consent.
func (ac *AccessControl) GrantConsent(ctx context.Context, caller Address, request GrantConsentRequest) error {
	return ac.mutate("GrantConsent", func(s *State, now time.Time) (*State, Event, error) {
		if err := requirePatient(s, caller); err != nil {
			return nil, Event{}, err
		}
		if len(request.RecordTypes) == 0 {
			return nil, Event{}, ErrNoRecordTypes
		}
		for _, t := range request.RecordTypes {
			if !t.Valid() {
				return nil, Event{}, ErrInvalidRecordType
			}
		}
		if !request.Type.Valid() {
			return nil, Event{}, ErrInvalidConsentType
		}
		if request.Grantee.IsZero() {
			return nil, Event{}, ErrZeroGrantee
		}
		if !request.ExpiresAt.IsZero() && !request.ExpiresAt.After(now) {
			return nil, Event{}, ErrExpiryNotInFuture
		}

		consent := Consent{
			PatientID:   request.PatientID,
			Grantee:     request.Grantee,
			Type:        request.Type,
			RecordTypes: NewRecordTypeSet(request.RecordTypes...),
			ExpiresAt:   request.ExpiresAt,
			Active:      true,
			GrantedAt:   now,
		}
		if err := ac.Store.SaveConsent(ctx, consent); err != nil {
			return nil, Event{}, fmt.Errorf("could not store consent: %w", err)
		}
		event := newEvent(EventConsentGranted, caller, now)
		event.PatientID = &consent.PatientID
		event.Principal = &consent.Grantee
		event.ConsentType = &consent.Type
		return s.withConsent(consent), event, nil
	})
}

// RevokeConsent deactivates the consent of a patient for grantee. Revoking a consent that was never granted
// or is already revoked is an error.
func (ac *AccessControl) RevokeConsent(ctx context.Context, caller Address, patientID PatientID, grantee Address) error {
	return ac.mutate("RevokeConsent", func(s *State, now time.Time) (*State, Event, error) {
		if err := requirePatient(s, caller); err != nil {
			return nil, Event{}, err
		}
		consent, ok := s.Consent(patientID, grantee)
		if !ok || !consent.Active {
			return nil, Event{}, ErrNoActiveConsent
		}
		consent.Active = false
		if err := ac.Store.SaveConsent(ctx, consent); err != nil {
			return nil, Event{}, fmt.Errorf("could not store consent revocation: %w", err)
		}
		event := newEvent(EventConsentRevoked, caller, now)
		event.PatientID = &patientID
		event.Principal = &grantee
		event.ConsentType = &consent.Type
		return s.withConsent(consent), event, nil
	})
}

func (ac *AccessControl) IsAdmin(principal Address) bool {
	return ac.snapshot().Principal(principal).Admin
}

func (ac *AccessControl) GetRole(principal Address) Role {
	return ac.snapshot().Principal(principal).Role
}

func (ac *AccessControl) HasEmergencyAccess(principal Address) bool {
	return ac.snapshot().Principal(principal).EmergencyAccess
}

func (ac *AccessControl) HasRecordAccess(recordID RecordID, grantee Address) bool {
	return ac.snapshot().RecordAccess(recordID, grantee)
}

// GetPatientRecords returns the records of a patient in registration order.
func (ac *AccessControl) GetPatientRecords(patientID PatientID) ([]RecordID, error) {
	records := ac.snapshot().PatientRecords(patientID)
	if len(records) == 0 {
		return nil, ErrPatientNotFound
	}
	return records, nil
}

// IsConsentValid is computed at query time; expired consents are never swept.
func (ac *AccessControl) IsConsentValid(patientID PatientID, grantee Address) bool {
	consent, _ := ac.snapshot().Consent(patientID, grantee)
	return consent.ValidAt(ac.now())
}

// GetConsent returns the zero Consent when none was granted. Check Active before relying on it.
func (ac *AccessControl) GetConsent(patientID PatientID, grantee Address) Consent {
	consent, _ := ac.snapshot().Consent(patientID, grantee)
	return consent
}

func (ac *AccessControl) CheckAccess(recordID RecordID, patientID PatientID, recordType RecordType, requester Address) bool {
	return ac.Decide(recordID, patientID, recordType, requester).Allowed
}

// Decide evaluates an access check and reports which rule granted it.
func (ac *AccessControl) Decide(recordID RecordID, patientID PatientID, recordType RecordType, requester Address) Decision {
	d := decide(ac.snapshot(), ac.now(), recordID, patientID, recordType, requester)
	ac.Metrics.recordDecision(d)
	return d
}

// decide applies the rules in order of precedence. Admin, emergency and record grants ignore the record type;
// only consent is scoped by it.
func decide(s *State, now time.Time, recordID RecordID, patientID PatientID, recordType RecordType, requester Address) Decision {
	p := s.Principal(requester)
	switch {
	case p.Admin:
		return Decision{Allowed: true, Path: PathAdmin}
	case p.EmergencyAccess:
		return Decision{Allowed: true, Path: PathEmergency}
	case s.RecordAccess(recordID, requester):
		return Decision{Allowed: true, Path: PathRecordGrant}
	}
	if consent, ok := s.Consent(patientID, requester); ok && consent.ValidAt(now) && consent.RecordTypes.Contains(recordType) {
		return Decision{Allowed: true, Path: PathConsent}
	}
	return Decision{Allowed: false, Path: PathNone}
}

var _ AccessControlClient = (*AccessControl)(nil)
