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

package test

import (
	"crypto/sha256"

	"github.com/TanujTS/aarovia-sub001/pkg"
	uuid "github.com/satori/go.uuid"
)

var namespace = uuid.NewV5(uuid.NamespaceURL, "urn:aarovia:test")

// Address derives a stable address from a name, so tests can talk about "doctor" and "patient".
func Address(name string) pkg.Address {
	var a pkg.Address
	sum := sha256.Sum256([]byte(name))
	copy(a[:], sum[:])
	return a
}

func PatientID(name string) pkg.PatientID {
	return pkg.PatientID(uuid.NewV5(namespace, "patient:"+name))
}

func RecordID(name string) pkg.RecordID {
	return pkg.RecordID(uuid.NewV5(namespace, "record:"+name))
}
