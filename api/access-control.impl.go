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

package api

//go:generate oapi-codegen -generate types,server -package api -o generated.go ../docs/_static/aarovia.yaml

import (
	"context"
	"math"
	"net/http"

	"github.com/TanujTS/aarovia-sub001/pkg"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func logger() *logrus.Entry {
	return logrus.StandardLogger().WithField("module", "api")
}

// Wrapper implements the generated ServerInterface on top of the access control engine.
type Wrapper struct {
	Ac pkg.AccessControlClient
}

// unknownConsentType is handed to the engine for names that do not parse, so the engine reports
// validation problems in its own order.
const unknownConsentType = pkg.ConsentType(math.MaxUint8)

// GetPrincipal returns the role and flags of an address. Unknown addresses have no role.
func (w Wrapper) GetPrincipal(ctx echo.Context, address string) error {
	principal, err := pkg.ParseAddress(address)
	if err != nil {
		return badRequest(ctx, err)
	}
	return ctx.JSON(http.StatusOK, PrincipalResponse{
		Address:         principal.String(),
		Role:            w.Ac.GetRole(principal).String(),
		Admin:           w.Ac.IsAdmin(principal),
		EmergencyAccess: w.Ac.HasEmergencyAccess(principal),
	})
}

func (w Wrapper) AssignRole(ctx echo.Context, address string) error {
	caller, ok := Caller(ctx)
	if !ok {
		return unauthenticated(ctx)
	}
	principal, err := pkg.ParseAddress(address)
	if err != nil {
		return badRequest(ctx, err)
	}
	request := new(AssignRoleRequest)
	if err := ctx.Bind(request); err != nil {
		logger().WithError(err).Debug("could not unmarshal role request")
		return badRequest(ctx, err)
	}
	role, err := pkg.ParseRole(request.Role)
	if err != nil {
		return errorResponse(ctx, pkg.ErrInvalidRole)
	}
	if err := w.Ac.AssignRole(ctx.Request().Context(), caller, principal, role); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (w Wrapper) AddAdmin(ctx echo.Context, address string) error {
	return w.principalMutation(ctx, address, w.Ac.AddAdmin)
}

func (w Wrapper) RemoveAdmin(ctx echo.Context, address string) error {
	return w.principalMutation(ctx, address, w.Ac.RemoveAdmin)
}

func (w Wrapper) GrantEmergencyAccess(ctx echo.Context, address string) error {
	return w.principalMutation(ctx, address, w.Ac.GrantEmergencyAccess)
}

func (w Wrapper) RevokeEmergencyAccess(ctx echo.Context, address string) error {
	return w.principalMutation(ctx, address, w.Ac.RevokeEmergencyAccess)
}

type principalOperation func(ctx context.Context, caller, principal pkg.Address) error

func (w Wrapper) principalMutation(ctx echo.Context, address string, operation principalOperation) error {
	caller, ok := Caller(ctx)
	if !ok {
		return unauthenticated(ctx)
	}
	principal, err := pkg.ParseAddress(address)
	if err != nil {
		return badRequest(ctx, err)
	}
	if err := operation(ctx.Request().Context(), caller, principal); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (w Wrapper) GrantRecordAccess(ctx echo.Context, recordId string, grantee string) error {
	return w.recordAccessMutation(ctx, recordId, grantee, w.Ac.GrantRecordAccess)
}

func (w Wrapper) RevokeRecordAccess(ctx echo.Context, recordId string, grantee string) error {
	return w.recordAccessMutation(ctx, recordId, grantee, w.Ac.RevokeRecordAccess)
}

type recordAccessOperation func(ctx context.Context, caller pkg.Address, recordID pkg.RecordID, grantee pkg.Address) error

func (w Wrapper) recordAccessMutation(ctx echo.Context, recordId string, grantee string, operation recordAccessOperation) error {
	caller, ok := Caller(ctx)
	if !ok {
		return unauthenticated(ctx)
	}
	recordID, err := pkg.ParseRecordID(recordId)
	if err != nil {
		return badRequest(ctx, err)
	}
	granteeAddress, err := pkg.ParseAddress(grantee)
	if err != nil {
		return badRequest(ctx, err)
	}
	if err := operation(ctx.Request().Context(), caller, recordID, granteeAddress); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (w Wrapper) GetPatientRecords(ctx echo.Context, patientId string) error {
	patientID, err := pkg.ParsePatientID(patientId)
	if err != nil {
		return badRequest(ctx, err)
	}
	records, err := w.Ac.GetPatientRecords(patientID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	response := PatientRecordsResponse{PatientId: patientID.String(), Records: make([]string, 0, len(records))}
	for _, r := range records {
		response.Records = append(response.Records, r.String())
	}
	return ctx.JSON(http.StatusOK, response)
}

func (w Wrapper) RegisterRecord(ctx echo.Context, patientId string, recordId string) error {
	caller, ok := Caller(ctx)
	if !ok {
		return unauthenticated(ctx)
	}
	patientID, err := pkg.ParsePatientID(patientId)
	if err != nil {
		return badRequest(ctx, err)
	}
	recordID, err := pkg.ParseRecordID(recordId)
	if err != nil {
		return badRequest(ctx, err)
	}
	if err := w.Ac.RegisterRecord(ctx.Request().Context(), caller, patientID, recordID); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// GetConsent returns the consent including revoked and expired ones; valid tells whether it grants access now.
func (w Wrapper) GetConsent(ctx echo.Context, patientId string, grantee string) error {
	consent, err := w.findConsent(ctx, patientId, grantee)
	if err != nil {
		return err
	}
	if consent == nil {
		return nil
	}
	response := ConsentResponse{
		PatientId:   consent.PatientID.String(),
		Grantee:     consent.Grantee.String(),
		ConsentType: consent.Type.String(),
		RecordTypes: make([]string, 0),
		Active:      consent.Active,
		Valid:       w.Ac.IsConsentValid(consent.PatientID, consent.Grantee),
		GrantedAt:   consent.GrantedAt,
	}
	for _, t := range consent.RecordTypes.Types() {
		response.RecordTypes = append(response.RecordTypes, t.String())
	}
	if !consent.ExpiresAt.IsZero() {
		response.ExpiresAt = &consent.ExpiresAt
	}
	return ctx.JSON(http.StatusOK, response)
}

func (w Wrapper) GetFHIRConsent(ctx echo.Context, patientId string, grantee string) error {
	consent, err := w.findConsent(ctx, patientId, grantee)
	if err != nil {
		return err
	}
	if consent == nil {
		return nil
	}
	resource, err := pkg.FHIRConsent(*consent, w.Ac.IsConsentValid(consent.PatientID, consent.Grantee))
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Blob(http.StatusOK, "application/fhir+json", []byte(resource))
}

// findConsent writes the error response itself and returns a nil consent when there is nothing to render.
func (w Wrapper) findConsent(ctx echo.Context, patientId string, grantee string) (*pkg.Consent, error) {
	patientID, err := pkg.ParsePatientID(patientId)
	if err != nil {
		return nil, badRequest(ctx, err)
	}
	granteeAddress, err := pkg.ParseAddress(grantee)
	if err != nil {
		return nil, badRequest(ctx, err)
	}
	consent := w.Ac.GetConsent(patientID, granteeAddress)
	if consent.GrantedAt.IsZero() {
		kind := string(pkg.KindNotFound)
		return nil, ctx.JSON(http.StatusNotFound, ErrorResponse{Kind: &kind, Reason: "consent not found"})
	}
	return &consent, nil
}

func (w Wrapper) GrantConsent(ctx echo.Context, patientId string, grantee string) error {
	caller, ok := Caller(ctx)
	if !ok {
		return unauthenticated(ctx)
	}
	patientID, err := pkg.ParsePatientID(patientId)
	if err != nil {
		return badRequest(ctx, err)
	}
	granteeAddress, err := pkg.ParseAddress(grantee)
	if err != nil {
		return badRequest(ctx, err)
	}
	body := new(GrantConsentRequest)
	if err := ctx.Bind(body); err != nil {
		logger().WithError(err).Debug("could not unmarshal consent request")
		return badRequest(ctx, err)
	}

	request := pkg.GrantConsentRequest{PatientID: patientID, Grantee: granteeAddress}
	for _, name := range body.RecordTypes {
		recordType, err := pkg.ParseRecordType(name)
		if err != nil {
			recordType = pkg.RecordTypeNone
		}
		request.RecordTypes = append(request.RecordTypes, recordType)
	}
	if request.Type, err = pkg.ParseConsentType(body.ConsentType); err != nil {
		request.Type = unknownConsentType
	}
	if body.ExpiresAt != nil {
		request.ExpiresAt = *body.ExpiresAt
	}

	if err := w.Ac.GrantConsent(ctx.Request().Context(), caller, request); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (w Wrapper) RevokeConsent(ctx echo.Context, patientId string, grantee string) error {
	caller, ok := Caller(ctx)
	if !ok {
		return unauthenticated(ctx)
	}
	patientID, err := pkg.ParsePatientID(patientId)
	if err != nil {
		return badRequest(ctx, err)
	}
	granteeAddress, err := pkg.ParseAddress(grantee)
	if err != nil {
		return badRequest(ctx, err)
	}
	if err := w.Ac.RevokeConsent(ctx.Request().Context(), caller, patientID, granteeAddress); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CheckAccess evaluates an access check for the requester in the body. It needs no caller identity.
func (w Wrapper) CheckAccess(ctx echo.Context) error {
	body := new(CheckRequest)
	if err := ctx.Bind(body); err != nil {
		logger().WithError(err).Debug("could not unmarshal check request")
		return badRequest(ctx, err)
	}
	recordID, err := pkg.ParseRecordID(body.RecordId)
	if err != nil {
		return badRequest(ctx, err)
	}
	patientID, err := pkg.ParsePatientID(body.PatientId)
	if err != nil {
		return badRequest(ctx, err)
	}
	recordType, err := pkg.ParseRecordType(body.RecordType)
	if err != nil {
		return errorResponse(ctx, pkg.ErrInvalidRecordType)
	}
	requester, err := pkg.ParseAddress(body.Requester)
	if err != nil {
		return badRequest(ctx, err)
	}

	decision := w.Ac.Decide(recordID, patientID, recordType, requester)
	return ctx.JSON(http.StatusOK, CheckResponse{Allowed: decision.Allowed, Path: string(decision.Path)})
}

func unauthenticated(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Reason: "missing caller identity"})
}

func badRequest(ctx echo.Context, err error) error {
	kind := string(pkg.KindValidation)
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Kind: &kind, Reason: err.Error()})
}

// errorResponse maps engine rejections to their status code. Other errors are logged and hidden.
func errorResponse(ctx echo.Context, err error) error {
	kind := pkg.KindOf(err)
	var status int
	switch kind {
	case pkg.KindAuthorization:
		status = http.StatusForbidden
	case pkg.KindValidation:
		status = http.StatusBadRequest
	case pkg.KindNotFound:
		status = http.StatusNotFound
	default:
		logger().WithError(err).Errorf("%s %s failed", ctx.Request().Method, ctx.Path())
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Reason: "internal error"})
	}
	k := string(kind)
	return ctx.JSON(status, ErrorResponse{Kind: &k, Reason: err.Error()})
}

var _ ServerInterface = Wrapper{}
