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
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"
)

// EventName identifies the kind of a state change.
type EventName string

const (
	EventRoleAssigned           EventName = "RoleAssigned"
	EventAdminAdded             EventName = "AdminAdded"
	EventAdminRemoved           EventName = "AdminRemoved"
	EventEmergencyAccessGranted EventName = "EmergencyAccessGranted"
	EventEmergencyAccessRevoked EventName = "EmergencyAccessRevoked"
	EventRecordAccessGranted    EventName = "RecordAccessGranted"
	EventRecordAccessRevoked    EventName = "RecordAccessRevoked"
	EventRecordRegistered       EventName = "RecordRegistered"
	EventConsentGranted         EventName = "ConsentGranted"
	EventConsentRevoked         EventName = "ConsentRevoked"
)

// Event is emitted after every successful mutation. Only the fields relevant for the event name are set.
type Event struct {
	UUID        string       `json:"uuid"`
	Name        EventName    `json:"name"`
	Actor       Address      `json:"actor"`
	Principal   *Address     `json:"principal,omitempty"`
	PatientID   *PatientID   `json:"patientId,omitempty"`
	RecordID    *RecordID    `json:"recordId,omitempty"`
	Role        *Role        `json:"role,omitempty"`
	ConsentType *ConsentType `json:"consentType,omitempty"`
	Timestamp   time.Time    `json:"timestamp"`
}

func newEvent(name EventName, actor Address, at time.Time) Event {
	return Event{
		UUID:      uuid.NewV4().String(),
		Name:      name,
		Actor:     actor,
		Timestamp: at,
	}
}

// EventPublisher delivers events to whoever is interested in state changes.
type EventPublisher interface {
	Publish(event Event) error
}

// EventHandlerCallback handles a single event. It must not call back into mutating engine operations.
type EventHandlerCallback func(event *Event)

// EventBus is an in-process EventPublisher. Handlers run synchronously in subscription order.
type EventBus struct {
	mu       sync.RWMutex
	handlers []subscription
}

type subscription struct {
	// names is nil for subscriptions to every event
	names    map[EventName]bool
	callback EventHandlerCallback
}

func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe registers callback for the given event names, or for all events when no names are given.
func (b *EventBus) Subscribe(callback EventHandlerCallback, names ...EventName) {
	sub := subscription{callback: callback}
	if len(names) > 0 {
		sub.names = make(map[EventName]bool, len(names))
		for _, n := range names {
			sub.names[n] = true
		}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, sub)
}

func (b *EventBus) Publish(event Event) error {
	b.mu.RLock()
	handlers := b.handlers
	b.mu.RUnlock()

	for _, h := range handlers {
		if h.names != nil && !h.names[event.Name] {
			continue
		}
		e := event
		h.callback(&e)
	}
	return nil
}
