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
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	uuid "github.com/satori/go.uuid"
)

// AddressLength is the size in bytes of a principal identity.
const AddressLength = 20

// Address identifies a principal. It is an opaque fixed-size identity, not a human name.
type Address [AddressLength]byte

// ZeroAddress is the empty identity.
var ZeroAddress Address

// ParseAddress parses a hex encoded address, with or without the 0x prefix.
func ParseAddress(value string) (Address, error) {
	var a Address
	raw := strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X")
	if len(raw) != AddressLength*2 {
		return a, fmt.Errorf("invalid address %q: expected %d hex characters", value, AddressLength*2)
	}
	if _, err := hex.Decode(a[:], []byte(raw)); err != nil {
		return a, fmt.Errorf("invalid address %q: %w", value, err)
	}
	return a, nil
}

// IsZero reports whether a is the empty identity.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// PatientID identifies a patient. It is distinct from the address of the patient's wallet.
type PatientID uuid.UUID

// ParsePatientID parses the canonical string form of a PatientID.
func ParsePatientID(value string) (PatientID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return PatientID{}, fmt.Errorf("invalid patient id %q: %w", value, err)
	}
	return PatientID(id), nil
}

func (p PatientID) String() string {
	return uuid.UUID(p).String()
}

func (p PatientID) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *PatientID) UnmarshalText(text []byte) error {
	parsed, err := ParsePatientID(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// RecordID identifies a medical record.
type RecordID uuid.UUID

// ParseRecordID parses the canonical string form of a RecordID.
func ParseRecordID(value string) (RecordID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return RecordID{}, fmt.Errorf("invalid record id %q: %w", value, err)
	}
	return RecordID(id), nil
}

func (r RecordID) String() string {
	return uuid.UUID(r).String()
}

func (r RecordID) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *RecordID) UnmarshalText(text []byte) error {
	parsed, err := ParseRecordID(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Role is the single role a principal holds at any time.
type Role uint8

const (
	RoleNone Role = iota
	RolePatient
	RoleDoctor
	RoleNurse
	RoleLab
	RolePharmacy
	RoleEmergency
	RoleAdmin
)

var roleNames = [...]string{"none", "patient", "doctor", "nurse", "lab", "pharmacy", "emergency", "admin"}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	return int(r) < len(roleNames)
}

func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("role(%d)", uint8(r))
	}
	return roleNames[r]
}

// ParseRole returns the role with the given name.
func ParseRole(value string) (Role, error) {
	for i, name := range roleNames {
		if strings.EqualFold(name, value) {
			return Role(i), nil
		}
	}
	return RoleNone, fmt.Errorf("unknown role %q", value)
}

func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid role %d", uint8(r))
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// RecordType classifies medical records for consent scoping.
type RecordType uint8

const (
	RecordTypeNone RecordType = iota
	RecordTypeGeneral
	RecordTypeDiagnostic
	RecordTypePrescription
	RecordTypeLabResult
	RecordTypeImaging
	RecordTypeSurgery
	RecordTypeMental
	RecordTypeGenetic
)

var recordTypeNames = [...]string{"none", "general", "diagnostic", "prescription", "lab-result", "imaging", "surgery", "mental", "genetic"}

// Valid reports whether t is a declared record type other than RecordTypeNone.
func (t RecordType) Valid() bool {
	return t != RecordTypeNone && int(t) < len(recordTypeNames)
}

func (t RecordType) String() string {
	if int(t) >= len(recordTypeNames) {
		return fmt.Sprintf("recordType(%d)", uint8(t))
	}
	return recordTypeNames[t]
}

// ParseRecordType returns the record type with the given name. "encounter" is accepted for general records.
func ParseRecordType(value string) (RecordType, error) {
	if strings.EqualFold(value, "encounter") {
		return RecordTypeGeneral, nil
	}
	for i, name := range recordTypeNames {
		if strings.EqualFold(name, value) {
			return RecordType(i), nil
		}
	}
	return RecordTypeNone, fmt.Errorf("unknown record type %q", value)
}

func (t RecordType) MarshalText() ([]byte, error) {
	if int(t) >= len(recordTypeNames) {
		return nil, fmt.Errorf("invalid record type %d", uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *RecordType) UnmarshalText(text []byte) error {
	parsed, err := ParseRecordType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// RecordTypeSet is a set of record types, one bit per type.
type RecordTypeSet uint16

// NewRecordTypeSet returns the set holding the given types.
func NewRecordTypeSet(types ...RecordType) RecordTypeSet {
	var s RecordTypeSet
	for _, t := range types {
		s |= 1 << t
	}
	return s
}

// Contains reports whether t is a member of s.
func (s RecordTypeSet) Contains(t RecordType) bool {
	if int(t) >= len(recordTypeNames) {
		return false
	}
	return s&(1<<t) != 0
}

func (s RecordTypeSet) IsEmpty() bool {
	return s == 0
}

// Types lists the members of s in declaration order.
func (s RecordTypeSet) Types() []RecordType {
	var types []RecordType
	for i := range recordTypeNames {
		if s.Contains(RecordType(i)) {
			types = append(types, RecordType(i))
		}
	}
	return types
}

func (s RecordTypeSet) MarshalJSON() ([]byte, error) {
	types := s.Types()
	if types == nil {
		types = []RecordType{}
	}
	return json.Marshal(types)
}

func (s *RecordTypeSet) UnmarshalJSON(data []byte) error {
	var types []RecordType
	if err := json.Unmarshal(data, &types); err != nil {
		return err
	}
	*s = NewRecordTypeSet(types...)
	return nil
}

// ConsentType classifies a consent. It does not gate record types by itself.
type ConsentType uint8

const (
	ConsentFull ConsentType = iota
	ConsentLimited
	ConsentEmergency
	ConsentResearch
)

var consentTypeNames = [...]string{"full", "limited", "emergency", "research"}

func (c ConsentType) Valid() bool {
	return int(c) < len(consentTypeNames)
}

func (c ConsentType) String() string {
	if !c.Valid() {
		return fmt.Sprintf("consentType(%d)", uint8(c))
	}
	return consentTypeNames[c]
}

// ParseConsentType returns the consent type with the given name.
func ParseConsentType(value string) (ConsentType, error) {
	for i, name := range consentTypeNames {
		if strings.EqualFold(name, value) {
			return ConsentType(i), nil
		}
	}
	return ConsentFull, fmt.Errorf("unknown consent type %q", value)
}

func (c ConsentType) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid consent type %d", uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *ConsentType) UnmarshalText(text []byte) error {
	parsed, err := ParseConsentType(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Principal holds everything the engine knows about a single address.
type Principal struct {
	Address         Address `json:"address"`
	Role            Role    `json:"role"`
	Admin           bool    `json:"admin"`
	EmergencyAccess bool    `json:"emergencyAccess"`
}

// RecordAccess shares one record with one grantee, independent of consent.
// A revoked grant keeps its entry with Active cleared.
type RecordAccess struct {
	RecordID RecordID `json:"recordId"`
	Grantee  Address  `json:"grantee"`
	Active   bool     `json:"active"`
}

// PatientRecord links a record to the patient it belongs to.
type PatientRecord struct {
	PatientID    PatientID `json:"patientId"`
	RecordID     RecordID  `json:"recordId"`
	Owner        Address   `json:"owner"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// Consent is the permission a patient gives a grantee to read records of the listed types.
// There is at most one Consent per patient/grantee pair; granting again overwrites it.
type Consent struct {
	PatientID   PatientID     `json:"patientId"`
	Grantee     Address       `json:"grantee"`
	Type        ConsentType   `json:"consentType"`
	RecordTypes RecordTypeSet `json:"recordTypes"`
	// ExpiresAt is the zero time for a consent that never expires.
	ExpiresAt time.Time `json:"expiresAt"`
	Active    bool      `json:"active"`
	GrantedAt time.Time `json:"grantedAt"`
}

// ValidAt reports whether the consent is active and not expired at the given moment.
func (c Consent) ValidAt(now time.Time) bool {
	if !c.Active {
		return false
	}
	return c.ExpiresAt.IsZero() || now.Before(c.ExpiresAt)
}

// GrantConsentRequest carries the parameters of a consent grant.
type GrantConsentRequest struct {
	PatientID   PatientID
	Grantee     Address
	Type        ConsentType
	RecordTypes []RecordType
	// ExpiresAt is the zero time for a consent that never expires.
	ExpiresAt time.Time
}
