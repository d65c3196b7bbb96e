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
	"maps"
	"slices"
)

type recordAccessKey struct {
	recordID RecordID
	grantee  Address
}

type consentKey struct {
	patientID PatientID
	grantee   Address
}

// State is a snapshot of everything the access control engine knows.
// A State handed out by the engine is never modified; mutations produce a new State that shares unchanged maps.
type State struct {
	principals     map[Address]Principal
	recordAccess   map[recordAccessKey]bool
	records        map[RecordID]PatientRecord
	patientRecords map[PatientID][]RecordID
	consents       map[consentKey]Consent
}

// NewState returns an empty State.
func NewState() *State {
	return &State{
		principals:     map[Address]Principal{},
		recordAccess:   map[recordAccessKey]bool{},
		records:        map[RecordID]PatientRecord{},
		patientRecords: map[PatientID][]RecordID{},
		consents:       map[consentKey]Consent{},
	}
}

// PutPrincipal, PutRecordAccess, PutPatientRecord and PutConsent modify the State in place.
// They are meant for stores assembling a State in Load, not for snapshots already handed to the engine.

func (s *State) PutPrincipal(p Principal) {
	s.principals[p.Address] = p
}

func (s *State) PutRecordAccess(a RecordAccess) {
	s.recordAccess[recordAccessKey{a.RecordID, a.Grantee}] = a.Active
}

func (s *State) PutPatientRecord(r PatientRecord) {
	s.records[r.RecordID] = r
	s.patientRecords[r.PatientID] = append(slices.Clip(s.patientRecords[r.PatientID]), r.RecordID)
}

func (s *State) PutConsent(c Consent) {
	s.consents[consentKey{c.PatientID, c.Grantee}] = c
}

// Principal returns what is known about the address. Unknown addresses have RoleNone and no privileges.
func (s *State) Principal(address Address) Principal {
	if p, ok := s.principals[address]; ok {
		return p
	}
	return Principal{Address: address}
}

// Principals lists every known principal.
func (s *State) Principals() []Principal {
	result := make([]Principal, 0, len(s.principals))
	for _, p := range s.principals {
		result = append(result, p)
	}
	return result
}

// RecordAccess reports whether grantee holds an active grant on the record.
func (s *State) RecordAccess(recordID RecordID, grantee Address) bool {
	return s.recordAccess[recordAccessKey{recordID, grantee}]
}

// RecordAccessGrants lists every record grant, active or revoked.
func (s *State) RecordAccessGrants() []RecordAccess {
	result := make([]RecordAccess, 0, len(s.recordAccess))
	for k, active := range s.recordAccess {
		result = append(result, RecordAccess{RecordID: k.recordID, Grantee: k.grantee, Active: active})
	}
	return result
}

// Record returns the registration of a record.
func (s *State) Record(recordID RecordID) (PatientRecord, bool) {
	r, ok := s.records[recordID]
	return r, ok
}

// PatientRecords returns the ids registered for the patient, in registration order.
func (s *State) PatientRecords(patientID PatientID) []RecordID {
	return slices.Clone(s.patientRecords[patientID])
}

// Consent returns the consent for the pair, and whether one was ever granted.
func (s *State) Consent(patientID PatientID, grantee Address) (Consent, bool) {
	c, ok := s.consents[consentKey{patientID, grantee}]
	return c, ok
}

// Consents lists every consent, active or revoked.
func (s *State) Consents() []Consent {
	result := make([]Consent, 0, len(s.consents))
	for _, c := range s.consents {
		result = append(result, c)
	}
	return result
}

// Clone returns a State that shares nothing with s.
func (s *State) Clone() *State {
	c := &State{
		principals:     maps.Clone(s.principals),
		recordAccess:   maps.Clone(s.recordAccess),
		records:        maps.Clone(s.records),
		patientRecords: make(map[PatientID][]RecordID, len(s.patientRecords)),
		consents:       maps.Clone(s.consents),
	}
	for k, v := range s.patientRecords {
		c.patientRecords[k] = slices.Clone(v)
	}
	return c
}

func (s *State) withPrincipal(p Principal) *State {
	next := *s
	next.principals = maps.Clone(s.principals)
	next.principals[p.Address] = p
	return &next
}

func (s *State) withRecordAccess(a RecordAccess) *State {
	next := *s
	next.recordAccess = maps.Clone(s.recordAccess)
	next.recordAccess[recordAccessKey{a.RecordID, a.Grantee}] = a.Active
	return &next
}

func (s *State) withPatientRecord(r PatientRecord) *State {
	next := *s
	next.records = maps.Clone(s.records)
	next.patientRecords = maps.Clone(s.patientRecords)
	next.PutPatientRecord(r)
	return &next
}

func (s *State) withConsent(c Consent) *State {
	next := *s
	next.consents = maps.Clone(s.consents)
	next.consents[consentKey{c.PatientID, c.Grantee}] = c
	return &next
}
