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

import "errors"

// ErrorKind categorizes the rejections of the access control engine.
type ErrorKind string

const (
	KindAuthorization ErrorKind = "authorization"
	KindValidation    ErrorKind = "validation"
	KindNotFound      ErrorKind = "not_found"
)

// Error is a caller-visible rejection with a fixed reason.
type Error struct {
	Kind   ErrorKind
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound) works for every not-found reason.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Reason == "" || t.Reason == e.Reason)
}

var (
	// ErrUnauthorized matches every authorization rejection.
	ErrUnauthorized = &Error{Kind: KindAuthorization}

	// ErrInvalid matches every validation rejection.
	ErrInvalid = &Error{Kind: KindValidation}

	// ErrNotFound matches every not-found rejection.
	ErrNotFound = &Error{Kind: KindNotFound}
)

var (
	ErrNotAdmin           = &Error{KindAuthorization, "caller is not an admin"}
	ErrSelfRemoval        = &Error{KindAuthorization, "cannot remove self as admin"}
	ErrNotPatient         = &Error{KindAuthorization, "caller is not a patient"}
	ErrRecordAccessDenied = &Error{KindAuthorization, "caller is not authorized to manage record access"}
	ErrNotRecordOwner     = &Error{KindAuthorization, "caller does not own record"}
	ErrNoRecordTypes      = &Error{KindValidation, "must specify at least one record type"}
	ErrInvalidRecordType  = &Error{KindValidation, "invalid record type"}
	ErrInvalidConsentType = &Error{KindValidation, "invalid consent type"}
	ErrInvalidRole        = &Error{KindValidation, "invalid role"}
	ErrZeroGrantee        = &Error{KindValidation, "cannot grant consent to zero address"}
	ErrExpiryNotInFuture  = &Error{KindValidation, "expiry must be in the future"}
	ErrRecordRegistered   = &Error{KindValidation, "record already registered"}
	ErrNoActiveConsent    = &Error{KindNotFound, "no active consent found"}
	ErrPatientNotFound    = &Error{KindNotFound, "patient not found"}
)

// KindOf returns the kind of err, or the empty kind when err is not an engine rejection.
func KindOf(err error) ErrorKind {
	for _, sentinel := range []*Error{ErrUnauthorized, ErrInvalid, ErrNotFound} {
		if errors.Is(err, sentinel) {
			return sentinel.Kind
		}
	}
	return ""
}
