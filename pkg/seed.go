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
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Seed describes principals to set up when the engine starts, e.g.:
//
//	admins:
//	  - "0x00000000000000000000000000000000000000a1"
//	emergencyAccess:
//	  - "0x00000000000000000000000000000000000000e1"
//	roles:
//	  - address: "0x00000000000000000000000000000000000000d1"
//	    role: doctor
type Seed struct {
	Admins          []Address  `yaml:"admins"`
	EmergencyAccess []Address  `yaml:"emergencyAccess"`
	Roles           []SeedRole `yaml:"roles"`
}

type SeedRole struct {
	Address Address `yaml:"address"`
	Role    Role    `yaml:"role"`
}

// ReadSeed decodes a YAML seed document.
func ReadSeed(r io.Reader) (*Seed, error) {
	seed := &Seed{}
	if err := yaml.NewDecoder(r).Decode(seed); err != nil && err != io.EOF {
		return nil, fmt.Errorf("could not parse seed: %w", err)
	}
	return seed, nil
}

// ReadSeedFile decodes the YAML seed file at path.
func ReadSeedFile(path string) (*Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSeed(f)
}

// ApplySeed performs the seed through the regular operations with the initializer as caller,
// so the initializer must still be an admin. Roles are assigned before admins are added.
// Start calls it only for a freshly bootstrapped store.
func (ac *AccessControl) ApplySeed(ctx context.Context, seed *Seed) error {
	caller := ac.Config.Initializer
	for _, r := range seed.Roles {
		if err := ac.AssignRole(ctx, caller, r.Address, r.Role); err != nil {
			return fmt.Errorf("seed role %s for %s: %w", r.Role, r.Address, err)
		}
	}
	for _, a := range seed.Admins {
		if err := ac.AddAdmin(ctx, caller, a); err != nil {
			return fmt.Errorf("seed admin %s: %w", a, err)
		}
	}
	for _, a := range seed.EmergencyAccess {
		if err := ac.GrantEmergencyAccess(ctx, caller, a); err != nil {
			return fmt.Errorf("seed emergency access %s: %w", a, err)
		}
	}
	logger().Infof("applied seed: %d roles, %d admins, %d emergency grants", len(seed.Roles), len(seed.Admins), len(seed.EmergencyAccess))
	return nil
}
