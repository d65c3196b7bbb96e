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
	"sync"
)

// Store persists the access control state. Every Save call describes the complete new value of one entity,
// so implementations can upsert by key.
type Store interface {
	// Load returns the persisted state. An empty store returns an empty State.
	Load(ctx context.Context) (*State, error)
	SavePrincipal(ctx context.Context, principal Principal) error
	SaveRecordAccess(ctx context.Context, access RecordAccess) error
	SavePatientRecord(ctx context.Context, record PatientRecord) error
	SaveConsent(ctx context.Context, consent Consent) error
}

// MemoryStore keeps the state in process memory. It is lost on restart.
type MemoryStore struct {
	mu    sync.Mutex
	state *State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{state: NewState()}
}

// Detach copies the state of store into a new MemoryStore. Saves to the copy never reach store.
func Detach(ctx context.Context, store Store) (*MemoryStore, error) {
	state, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &MemoryStore{state: state}, nil
}

func (m *MemoryStore) Load(_ context.Context) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone(), nil
}

func (m *MemoryStore) SavePrincipal(_ context.Context, principal Principal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.PutPrincipal(principal)
	return nil
}

func (m *MemoryStore) SaveRecordAccess(_ context.Context, access RecordAccess) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.PutRecordAccess(access)
	return nil
}

func (m *MemoryStore) SavePatientRecord(_ context.Context, record PatientRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.PutPatientRecord(record)
	return nil
}

func (m *MemoryStore) SaveConsent(_ context.Context, consent Consent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.PutConsent(consent)
	return nil
}
