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

package pkg_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/TanujTS/aarovia-sub001/pkg"
	"github.com/TanujTS/aarovia-sub001/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	t.Run("it parses with and without prefix", func(t *testing.T) {
		a, err := pkg.ParseAddress("0x00000000000000000000000000000000000000a1")
		require.NoError(t, err)
		b, err := pkg.ParseAddress("00000000000000000000000000000000000000A1")
		require.NoError(t, err)

		assert.Equal(t, a, b)
		assert.Equal(t, "0x00000000000000000000000000000000000000a1", a.String())
		assert.False(t, a.IsZero())
	})

	t.Run("it rejects wrong lengths", func(t *testing.T) {
		_, err := pkg.ParseAddress("0xa1")
		assert.Error(t, err)
	})

	t.Run("it rejects non hex characters", func(t *testing.T) {
		_, err := pkg.ParseAddress("0x00000000000000000000000000000000000000zz")
		assert.Error(t, err)
	})

	t.Run("the zero address is zero", func(t *testing.T) {
		assert.True(t, pkg.ZeroAddress.IsZero())
	})
}

func TestParseRecordType(t *testing.T) {
	t.Run("encounter is an alias for general", func(t *testing.T) {
		rt, err := pkg.ParseRecordType("encounter")
		require.NoError(t, err)
		assert.Equal(t, pkg.RecordTypeGeneral, rt)
	})

	t.Run("names are case insensitive", func(t *testing.T) {
		rt, err := pkg.ParseRecordType("Lab-Result")
		require.NoError(t, err)
		assert.Equal(t, pkg.RecordTypeLabResult, rt)
	})

	t.Run("unknown names fail", func(t *testing.T) {
		_, err := pkg.ParseRecordType("x-ray")
		assert.EqualError(t, err, `unknown record type "x-ray"`)
	})

	t.Run("none parses but is not valid", func(t *testing.T) {
		rt, err := pkg.ParseRecordType("none")
		require.NoError(t, err)
		assert.False(t, rt.Valid())
	})
}

func TestRole(t *testing.T) {
	t.Run("every declared role round trips through its name", func(t *testing.T) {
		for r := pkg.RoleNone; r <= pkg.RoleAdmin; r++ {
			parsed, err := pkg.ParseRole(r.String())
			require.NoError(t, err)
			assert.Equal(t, r, parsed)
		}
	})

	t.Run("undeclared roles are invalid", func(t *testing.T) {
		assert.False(t, pkg.Role(8).Valid())
		_, err := pkg.Role(8).MarshalText()
		assert.Error(t, err)
	})
}

func TestParseConsentType(t *testing.T) {
	ct, err := pkg.ParseConsentType("research")
	require.NoError(t, err)
	assert.Equal(t, pkg.ConsentResearch, ct)

	_, err = pkg.ParseConsentType("forever")
	assert.Error(t, err)
	assert.False(t, pkg.ConsentType(4).Valid())
}

func TestRecordTypeSet(t *testing.T) {
	set := pkg.NewRecordTypeSet(pkg.RecordTypeMental, pkg.RecordTypeGeneral, pkg.RecordTypeMental)

	t.Run("it holds its members once, in declaration order", func(t *testing.T) {
		assert.Equal(t, []pkg.RecordType{pkg.RecordTypeGeneral, pkg.RecordTypeMental}, set.Types())
		assert.True(t, set.Contains(pkg.RecordTypeMental))
		assert.False(t, set.Contains(pkg.RecordTypeGenetic))
		assert.False(t, set.Contains(pkg.RecordType(200)))
	})

	t.Run("it marshals as a list of names", func(t *testing.T) {
		data, err := json.Marshal(set)
		require.NoError(t, err)
		assert.JSONEq(t, `["general","mental"]`, string(data))

		var parsed pkg.RecordTypeSet
		require.NoError(t, json.Unmarshal([]byte(`["encounter","mental"]`), &parsed))
		assert.Equal(t, set, parsed)
	})

	t.Run("the empty set marshals as an empty list", func(t *testing.T) {
		data, _ := json.Marshal(pkg.RecordTypeSet(0))
		assert.Equal(t, "[]", string(data))
		assert.True(t, pkg.RecordTypeSet(0).IsEmpty())
	})
}

func TestConsent_ValidAt(t *testing.T) {
	expiry := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	consent := pkg.Consent{Active: true, ExpiresAt: expiry}

	assert.True(t, consent.ValidAt(expiry.Add(-time.Nanosecond)))
	assert.False(t, consent.ValidAt(expiry))
	assert.False(t, pkg.Consent{Active: false}.ValidAt(expiry))
	assert.True(t, pkg.Consent{Active: true}.ValidAt(expiry.AddDate(500, 0, 0)))
}

func TestConsent_JSON(t *testing.T) {
	consent := pkg.Consent{
		PatientID:   test.PatientID("patient"),
		Grantee:     test.Address("doctor"),
		Type:        pkg.ConsentEmergency,
		RecordTypes: pkg.NewRecordTypeSet(pkg.RecordTypeImaging),
		Active:      true,
	}
	data, err := json.Marshal(consent)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "emergency", fields["consentType"])
	assert.Equal(t, []interface{}{"imaging"}, fields["recordTypes"])
	assert.Equal(t, test.PatientID("patient").String(), fields["patientId"])
	assert.Equal(t, test.Address("doctor").String(), fields["grantee"])
}
