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
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/cbroglie/mustache"
)

const fhirConsentTemplate = `
{
  "resourceType": "Consent",
  "status": "{{status}}",
  "scope": {
    "coding": [
      {
        "system": "http://terminology.hl7.org/CodeSystem/consentscope",
        "code": "patient-privacy"
      }
    ]
  },
  "category": [
    {
      "coding": [
        {
          "system": "urn:aarovia:consent-type",
          "code": "{{consentType}}"
        }
      ]
    }
  ],
  "patient": {
    "identifier": {
      "system": "urn:aarovia:patient",
      "value": "{{patientId}}"
    }
  },
  "dateTime": "{{grantedAt}}",
  "policyRule": {
    "coding": [
      {
        "system": "http://terminology.hl7.org/CodeSystem/v3-ActCode",
        "code": "OPTIN"
      }
    ]
  },
  "provision": {
    "type": "permit",
    "actor": [
      {
        "role": {
          "coding": [
            {
              "system": "http://terminology.hl7.org/CodeSystem/v3-ParticipationType",
              "code": "PRCP"
            }
          ]
        },
        "reference": {
          "identifier": {
            "system": "urn:aarovia:address",
            "value": "{{grantee}}"
          }
        }
      }
    ],
    "period": {
      "start": "{{period.Start}}"
{{#period.End}}
      ,"end": "{{period.End}}"
{{/period.End}}
    },
    "action": [
      {
        "coding": [
          {
            "system": "http://terminology.hl7.org/CodeSystem/consentaction",
            "code": "access"
          }
        ]
      }
    ],
    "class": [
      {{#recordTypes}}
      {
        "system": "urn:aarovia:record-type",
        "code": "{{.}}"
      },
      {{/recordTypes}}
    ]
  }
}
`

var trailingComma = regexp.MustCompile(`\},(\s*)]`)

// FHIRConsent renders the consent as a FHIR R4 Consent resource. Its status is "active" when valid is set,
// "inactive" otherwise. Callers pass the validity as judged by the engine clock.
func FHIRConsent(consent Consent, valid bool) (string, error) {
	status := "inactive"
	if valid {
		status = "active"
	}

	var recordTypes []string
	for _, t := range consent.RecordTypes.Types() {
		recordTypes = append(recordTypes, t.String())
	}

	viewModel := map[string]interface{}{
		"status":      status,
		"consentType": consent.Type.String(),
		"patientId":   consent.PatientID.String(),
		"grantee":     consent.Grantee.String(),
		"grantedAt":   consent.GrantedAt.UTC().Format(time.RFC3339),
		"recordTypes": recordTypes,
		"period": map[string]string{
			"Start": consent.GrantedAt.UTC().Format(time.RFC3339),
		},
	}
	if !consent.ExpiresAt.IsZero() {
		(viewModel["period"].(map[string]string))["End"] = consent.ExpiresAt.UTC().Format(time.RFC3339)
	}

	res, err := mustache.Render(fhirConsentTemplate, viewModel)
	if err != nil {
		return "", fmt.Errorf("could not render FHIR consent: %w", err)
	}

	// mustache can not leave out the separator after the last list element: [{},{},]
	res = trailingComma.ReplaceAllString(res, `}$1]`)

	return cleanupJSON(res)
}

// cleanupJSON compacts the rendered template and fails on invalid JSON
func cleanupJSON(value string) (string, error) {
	var parsedValue interface{}
	if err := json.Unmarshal([]byte(value), &parsedValue); err != nil {
		return "", err
	}
	cleanValue, err := json.Marshal(parsedValue)
	if err != nil {
		return "", err
	}
	return string(cleanValue), nil
}
