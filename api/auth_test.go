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

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/TanujTS/aarovia-sub001/pkg"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	validator := NewTokenValidator(secret)

	t.Run("an issued token validates to its caller", func(t *testing.T) {
		token, err := validator.Issue(doctor, time.Minute)
		require.NoError(t, err)

		caller, err := validator.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, doctor, caller)
	})

	t.Run("a token signed with another secret is rejected", func(t *testing.T) {
		token, _ := NewTokenValidator("other").Issue(doctor, time.Minute)

		_, err := validator.Validate(token)
		assert.Error(t, err)
	})

	t.Run("an expired token is rejected", func(t *testing.T) {
		token, _ := validator.Issue(doctor, -time.Minute)

		_, err := validator.Validate(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("a subject that is no address is rejected", func(t *testing.T) {
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "alice"}).SignedString([]byte(secret))

		_, err := validator.Validate(token)
		assert.ErrorContains(t, err, "invalid token subject")
	})

	t.Run("other signing methods are rejected", func(t *testing.T) {
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{Subject: doctor.String()}).SignedString([]byte(secret))

		_, err := validator.Validate(token)
		assert.Error(t, err)
	})

	t.Run("the issuer is checked when configured", func(t *testing.T) {
		strict := NewTokenValidator(secret)
		strict.Issuer = "aarovia"
		token, _ := validator.Issue(doctor, time.Minute)

		_, err := strict.Validate(token)
		assert.Error(t, err)

		token, _ = strict.Issue(doctor, time.Minute)
		_, err = strict.Validate(token)
		assert.NoError(t, err)
	})
}

func TestTokenValidator_Middleware(t *testing.T) {
	validator := NewTokenValidator(secret)
	server := echo.New()
	server.Use(validator.Middleware())
	server.GET("/whoami", func(ctx echo.Context) error {
		caller, ok := Caller(ctx)
		if !ok {
			return ctx.String(http.StatusOK, "anonymous")
		}
		return ctx.String(http.StatusOK, caller.String())
	})

	request := func(authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if authorization != "" {
			req.Header.Set(echo.HeaderAuthorization, authorization)
		}
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		return rec
	}

	t.Run("requests without token are anonymous", func(t *testing.T) {
		rec := request("")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("a valid token sets the caller", func(t *testing.T) {
		token, _ := validator.Issue(patient, time.Minute)
		rec := request("Bearer " + token)
		assert.Equal(t, patient.String(), rec.Body.String())
	})

	t.Run("a bad token is unauthorized", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, request("Bearer nonsense").Code)
	})

	t.Run("other schemes are unauthorized", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, request("Basic dXNlcjpwYXNz").Code)
	})

	t.Run("the caller is absent from a fresh context", func(t *testing.T) {
		ctx := server.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		_, ok := Caller(ctx)
		assert.False(t, ok)
		ctx.Set(callerContextKey, pkg.ZeroAddress)
		_, ok = Caller(ctx)
		assert.True(t, ok)
	})
}
