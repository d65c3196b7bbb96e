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

package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/TanujTS/aarovia-sub001/pkg"
	"github.com/sirupsen/logrus"
)

func logger() *logrus.Entry {
	return logrus.StandardLogger().WithField("module", "audit")
}

// JSONLStore appends every access control event as one JSON line and answers queries by scanning the file.
type JSONLStore struct {
	path string
	mu   sync.Mutex
	f    *os.File
}

// NewJSONLStore creates or opens the file at path, creating missing directories.
func NewJSONLStore(path string) (*JSONLStore, error) {
	if path == "" {
		return nil, os.ErrInvalid
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	return &JSONLStore{path: path, f: f}, nil
}

// Append writes e as a single line.
func (s *JSONLStore) Append(_ context.Context, e *pkg.Event) error {
	if e == nil {
		return nil
	}
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return os.ErrClosed
	}
	_, err = s.f.Write(data)
	return err
}

// Handle is a pkg.EventHandlerCallback. Write failures are logged, they never fail the mutation.
func (s *JSONLStore) Handle(e *pkg.Event) {
	if err := s.Append(context.Background(), e); err != nil {
		logger().WithError(err).Errorf("could not write audit entry for %s event %s", e.Name, e.UUID)
	}
}

// Query returns the events for which match returns true, in the order they were written.
func (s *JSONLStore) Query(_ context.Context, match func(e *pkg.Event) bool) ([]*pkg.Event, error) {
	s.mu.Lock()
	if s.f != nil {
		_ = s.f.Sync()
	}
	s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []*pkg.Event
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		if len(line) == 0 {
			continue
		}
		var e pkg.Event
		if err := json.Unmarshal(line, &e); err != nil {
			logger().WithError(err).Warn("skipping unreadable audit line")
			continue
		}
		if match == nil || match(&e) {
			out = append(out, &e)
		}
	}
	return out, nil
}

// QueryByPatient returns the events concerning a patient.
func (s *JSONLStore) QueryByPatient(ctx context.Context, patientID pkg.PatientID) ([]*pkg.Event, error) {
	return s.Query(ctx, func(e *pkg.Event) bool {
		return e.PatientID != nil && *e.PatientID == patientID
	})
}

// QueryByPrincipal returns the events a principal took part in, as actor or as subject.
func (s *JSONLStore) QueryByPrincipal(ctx context.Context, address pkg.Address) ([]*pkg.Event, error) {
	return s.Query(ctx, func(e *pkg.Event) bool {
		return e.Actor == address || (e.Principal != nil && *e.Principal == address)
	})
}

func (s *JSONLStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}
