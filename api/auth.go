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
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/TanujTS/aarovia-sub001/pkg"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const callerContextKey = "aarovia.caller"

// TokenValidator validates HS256 bearer tokens whose subject is the caller address.
type TokenValidator struct {
	secret []byte
	// Issuer is checked when not empty and set on issued tokens.
	Issuer string
}

func NewTokenValidator(secret string) *TokenValidator {
	return &TokenValidator{secret: []byte(secret)}
}

// Validate parses tokenString and returns the caller address it carries.
func (tv *TokenValidator) Validate(tokenString string) (pkg.Address, error) {
	options := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if tv.Issuer != "" {
		options = append(options, jwt.WithIssuer(tv.Issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return tv.secret, nil
	}, options...)
	if err != nil {
		return pkg.ZeroAddress, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return pkg.ZeroAddress, errors.New("invalid token claims")
	}
	caller, err := pkg.ParseAddress(claims.Subject)
	if err != nil {
		return pkg.ZeroAddress, fmt.Errorf("invalid token subject: %w", err)
	}
	return caller, nil
}

// Issue signs a token for caller that is valid for ttl.
func (tv *TokenValidator) Issue(caller pkg.Address, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   caller.String(),
		Issuer:    tv.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tv.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Middleware resolves the caller from the Authorization header. Requests without the header pass through
// anonymously; requests with a bad token are rejected.
func (tv *TokenValidator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(ctx)
			}
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Reason: "expected bearer token"})
			}
			caller, err := tv.Validate(tokenString)
			if err != nil {
				logger().WithError(err).Debug("rejected bearer token")
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Reason: "invalid bearer token"})
			}
			ctx.Set(callerContextKey, caller)
			return next(ctx)
		}
	}
}

// Caller returns the address resolved by the token middleware.
func Caller(ctx echo.Context) (pkg.Address, bool) {
	caller, ok := ctx.Get(callerContextKey).(pkg.Address)
	return caller, ok
}
