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
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts access decisions and mutations.
type Metrics struct {
	decisions *prometheus.CounterVec
	mutations *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "aarovia",
				Name:      "access_decisions_total",
				Help:      "Total number of access checks, by granting path",
			},
			[]string{"path", "allowed"},
		),
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "aarovia",
				Name:      "access_control_mutations_total",
				Help:      "Total number of state changing operations, by outcome",
			},
			[]string{"operation", "result"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.decisions, m.mutations)
	}
	return m
}

func (m *Metrics) recordDecision(d Decision) {
	if m == nil {
		return
	}
	allowed := "false"
	if d.Allowed {
		allowed = "true"
	}
	m.decisions.WithLabelValues(string(d.Path), allowed).Inc()
}

func (m *Metrics) recordMutation(operation string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = string(KindOf(err))
		if result == "" {
			result = "error"
		}
	}
	m.mutations.WithLabelValues(operation, result).Inc()
}
