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

func TestConversationAnalytics(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	var requestedFields string
	httpmock.RegisterResponder("GET", "/v18.0/"+testBusinessAccountId,
		func(req *http.Request) (*http.Response, error) {
			requestedFields = req.URL.Query().Get("fields")
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"conversation_analytics": map[string]interface{}{"data": []interface{}{}},
				"id":                     testBusinessAccountId,
			})
		},
	)

	result, err := client.ConversationAnalytics(&api.AnalyticsRequest{
		StartDate: "2023-12-01T00:00:00",
		EndDate:   "2023-12-31T00:00:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
	assert.Contains(t, result, "conversation_analytics")

	// Granularity defaults to MONTHLY and dates are converted to UNIX seconds
	assert.Equal(t,
		"conversation_analytics.start(1701388800).end(1703980800).granularity(MONTHLY)"+
			".phone_numbers([]).dimensions(['CONVERSATION_CATEGORY','CONVERSATION_TYPE','COUNTRY','PHONE'])",
		requestedFields)
}

func TestConversationAnalyticsUpstreamError(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "/v18.0/"+testBusinessAccountId,
		func(req *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(400, map[string]interface{}{
				"error": map[string]interface{}{"message": "(#100) Invalid parameter"},
			})
		},
	)

	_, err := client.ConversationAnalytics(&api.AnalyticsRequest{
		StartDate: "2023-12-01T00:00:00",
		EndDate:   "2023-12-31T00:00:00",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid parameter")
}

func TestConversationAnalyticsMissingDates(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	_, err := client.ConversationAnalytics(&api.AnalyticsRequest{})

	assert.Error(t, err)
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestMessagingAnalytics(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	var requestedFields string
	httpmock.RegisterResponder("GET", "/v18.0/"+testBusinessAccountId,
		func(req *http.Request) (*http.Response, error) {
			requestedFields = req.URL.Query().Get("fields")
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"analytics": map[string]interface{}{"phone_numbers": []interface{}{}},
			})
		},
	)

	result, err := client.MessagingAnalytics(&api.AnalyticsRequest{
		StartDate:   "2023-12-01T00:00:00",
		EndDate:     "2023-12-31T00:00:00",
		Granularity: api.GranularityMonthly,
	})

	assert.NoError(t, err)
	assert.Contains(t, result, "analytics")
	assert.Equal(t, "analytics.start(1701388800).end(1703980800).granularity(MONTHLY)", requestedFields)
}

func TestTemplateAnalytics(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	var query map[string][]string
	httpmock.RegisterResponder("GET", fmt.Sprintf("/v18.0/%s/template_analytics", testBusinessAccountId),
		func(req *http.Request) (*http.Response, error) {
			query = req.URL.Query()
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"data": []interface{}{},
			})
		},
	)

	result, err := client.TemplateAnalytics(&api.TemplateAnalyticsRequest{
		AnalyticsRequest: api.AnalyticsRequest{
			StartDate: "2023-12-01T00:00:00",
			EndDate:   "2023-12-31T00:00:00",
		},
		TemplateIds: []string{"1234", "5678"},
	})

	assert.NoError(t, err)
	assert.Contains(t, result, "data")

	assert.Equal(t, []string{"1701388800"}, query["start"])
	assert.Equal(t, []string{"1703980800"}, query["end"])
	assert.Equal(t, []string{api.GranularityDaily}, query["granularity"])
	assert.Equal(t, []string{"['SENT','DELIVERED','READ','CLICKED']"}, query["metric_types"])
	assert.Equal(t, []string{"['1234','5678']"}, query["template_ids"])
}

func TestTemplateAnalyticsWithoutTemplateIds(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	_, err := client.TemplateAnalytics(&api.TemplateAnalyticsRequest{
		AnalyticsRequest: api.AnalyticsRequest{
			StartDate: "2023-12-01T00:00:00",
			EndDate:   "2023-12-31T00:00:00",
		},
	})

	assert.Error(t, err)
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}
