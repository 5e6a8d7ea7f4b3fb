// Copyright 2024 ChatLift Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package platform

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"github.com/chatlift/chatlift-cli/api"
)

func TestListTemplates(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	var tests = []struct {
		name           string
		status         string
		withComponents bool
		expectedFields string
	}{
		{"approved", api.TemplateStatusApproved, false, "name,status"},
		{"rejected with contents", api.TemplateStatusRejected, true, "name,status,components"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpmock.Reset()

			var query map[string][]string
			httpmock.RegisterResponder("GET", fmt.Sprintf("/v18.0/%s/message_templates", testBusinessAccountId),
				func(req *http.Request) (*http.Response, error) {
					query = req.URL.Query()
					return httpmock.NewJsonResponse(200, map[string]interface{}{
						"data": []map[string]interface{}{
							{"name": "order_update", "status": tt.status},
						},
					})
				},
			)

			templates, err := client.ListTemplates(tt.status, tt.withComponents)

			assert.NoError(t, err)
			assert.Equal(t, 1, httpmock.GetTotalCallCount())
			assert.Len(t, templates.Data, 1)
			assert.Equal(t, "order_update", templates.Data[0].Name)
			assert.Equal(t, tt.status, templates.Data[0].Status)

			assert.Equal(t, []string{tt.expectedFields}, query["fields"])
			assert.Equal(t, []string{tt.status}, query["status"])
		})
	}
}

func TestListTemplatesUpstreamError(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", fmt.Sprintf("/v18.0/%s/message_templates", testBusinessAccountId),
		func(req *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(401, map[string]interface{}{
				"error": map[string]interface{}{"message": "invalid token"},
			})
		},
	)

	_, err := client.ListTemplates(api.TemplateStatusApproved, false)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestListTemplatesWithoutBusinessAccount(t *testing.T) {
	client := NewClient(nil, testPhoneNumberId, "")

	_, err := client.ListTemplates(api.TemplateStatusApproved, false)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chatlift configure remote")
}

func TestPhoneNumberStatus(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "/v18.0/"+testPhoneNumberId,
		func(req *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"id":                   testPhoneNumberId,
				"display_phone_number": "+1 555-000-0001",
				"verified_name":        "ChatLift",
				"quality_rating":       "GREEN",
			})
		},
	)

	status, err := client.PhoneNumberStatus()

	assert.NoError(t, err)
	assert.Equal(t, testPhoneNumberId, status.Id)
	assert.Equal(t, "ChatLift", status.VerifiedName)
	assert.Equal(t, "GREEN", status.QualityRating)
}
