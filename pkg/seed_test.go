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
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TanujTS/aarovia-sub001/pkg"
	"github.com/TanujTS/aarovia-sub001/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDocument() string {
	return `
admins:
  - "` + test.Address("second admin").String() + `"
emergencyAccess:
  - "` + test.Address("responder").String() + `"
roles:
  - address: "` + test.Address("lab").String() + `"
    role: lab
  - address: "` + test.Address("second admin").String() + `"
    role: doctor
`
}

func TestReadSeed(t *testing.T) {
	t.Run("it reads a seed document", func(t *testing.T) {
		seed, err := pkg.ReadSeed(strings.NewReader(seedDocument()))
		require.NoError(t, err)

		assert.Equal(t, []pkg.Address{test.Address("second admin")}, seed.Admins)
		assert.Equal(t, []pkg.Address{test.Address("responder")}, seed.EmergencyAccess)
		require.Len(t, seed.Roles, 2)
		assert.Equal(t, pkg.RoleLab, seed.Roles[0].Role)
	})

	t.Run("an empty document is an empty seed", func(t *testing.T) {
		seed, err := pkg.ReadSeed(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, seed.Admins)
	})

	t.Run("unknown roles fail", func(t *testing.T) {
		_, err := pkg.ReadSeed(strings.NewReader("roles:\n  - address: \"" + test.Address("x").String() + "\"\n    role: wizard\n"))
		assert.Error(t, err)
	})

	t.Run("it reads a seed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		require.NoError(t, os.WriteFile(path, []byte(seedDocument()), 0o600))

		seed, err := pkg.ReadSeedFile(path)
		require.NoError(t, err)
		assert.Len(t, seed.Roles, 2)
	})

	t.Run("a missing file fails", func(t *testing.T) {
		_, err := pkg.ReadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestAccessControl_ApplySeed(t *testing.T) {
	ctx := context.Background()

	t.Run("it applies roles before admins", func(t *testing.T) {
		f := newFixture(t)
		seed, _ := pkg.ReadSeed(strings.NewReader(seedDocument()))

		require.NoError(t, f.ac.ApplySeed(ctx, seed))

		assert.Equal(t, pkg.RoleLab, f.ac.GetRole(test.Address("lab")))
		assert.True(t, f.ac.IsAdmin(test.Address("second admin")))
		assert.Equal(t, pkg.RoleAdmin, f.ac.GetRole(test.Address("second admin")))
		assert.True(t, f.ac.HasEmergencyAccess(test.Address("responder")))
	})

	t.Run("it fails when the initializer is no longer admin", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.ac.AddAdmin(ctx, admin, nurse))
		require.NoError(t, f.ac.RemoveAdmin(ctx, nurse, admin))

		err := f.ac.ApplySeed(ctx, &pkg.Seed{Admins: []pkg.Address{doctor}})

		assert.ErrorIs(t, err, pkg.ErrNotAdmin)
	})
}

func TestAccessControl_StartWithSeed(t *testing.T) {
	ctx := context.Background()
	seed := &pkg.Seed{
		EmergencyAccess: []pkg.Address{responder},
		Roles:           []pkg.SeedRole{{Address: doctor, Role: pkg.RoleDoctor}},
	}
	start := func(t *testing.T, store pkg.Store) *pkg.AccessControl {
		t.Helper()
		ac := pkg.NewAccessControl(pkg.AccessControlConfig{Initializer: admin, Seed: seed}, store, nil)
		require.NoError(t, ac.Start(ctx))
		return ac
	}

	t.Run("an empty store is seeded", func(t *testing.T) {
		ac := start(t, pkg.NewMemoryStore())

		assert.True(t, ac.HasEmergencyAccess(responder))
		assert.Equal(t, pkg.RoleDoctor, ac.GetRole(doctor))
	})

	t.Run("a restart keeps revocations made after seeding", func(t *testing.T) {
		store := pkg.NewMemoryStore()
		ac := start(t, store)
		require.NoError(t, ac.RevokeEmergencyAccess(ctx, admin, responder))
		require.NoError(t, ac.AssignRole(ctx, admin, doctor, pkg.RoleNurse))

		restarted := start(t, store)

		assert.False(t, restarted.HasEmergencyAccess(responder))
		assert.Equal(t, pkg.RoleNurse, restarted.GetRole(doctor))
	})

	t.Run("a restart succeeds after the initializer lost admin", func(t *testing.T) {
		store := pkg.NewMemoryStore()
		ac := start(t, store)
		require.NoError(t, ac.AddAdmin(ctx, admin, nurse))
		require.NoError(t, ac.RemoveAdmin(ctx, nurse, admin))

		restarted := start(t, store)

		assert.False(t, restarted.IsAdmin(admin))
		assert.True(t, restarted.IsAdmin(nurse))
	})
}
