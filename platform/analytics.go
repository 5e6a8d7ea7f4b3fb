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
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/chatlift/chatlift-cli/api"
	"github.com/go-resty/resty/v2"
)

// Analytics results are forwarded verbatim, the Graph payload shape varies
// with the requested dimensions.
type AnalyticsResult map[string]interface{}

// ConversationAnalytics queries the `conversation_analytics` fields of the
// business account over the request time range.
func (c *Client) ConversationAnalytics(request *api.AnalyticsRequest) (AnalyticsResult, error) {
	if err := c.requireBusinessAccount(); err != nil {
		return nil, err
	}

	start, end, err := request.UnixRange()
	if err != nil {
		return nil, err
	}

	granularity := request.Granularity
	if granularity == "" {
		granularity = api.GranularityMonthly
	}

	fields := fmt.Sprintf(
		"conversation_analytics.start(%d).end(%d).granularity(%s).phone_numbers([]).dimensions(['CONVERSATION_CATEGORY','CONVERSATION_TYPE','COUNTRY','PHONE'])",
		start, end, granularity,
	)

	resp, err := c.rest.R().
		SetQueryParam("fields", fields).
		Get("/" + c.businessAccountId)

	return decodeAnalyticsResponse(resp, err)
}

// MessagingAnalytics queries the `analytics` fields (sent/delivered message
// counts) of the business account over the request time range.
func (c *Client) MessagingAnalytics(request *api.AnalyticsRequest) (AnalyticsResult, error) {
	if err := c.requireBusinessAccount(); err != nil {
		return nil, err
	}

	start, end, err := request.UnixRange()
	if err != nil {
		return nil, err
	}

	granularity := request.Granularity
	if granularity == "" {
		granularity = api.GranularityDaily
	}

	fields := fmt.Sprintf("analytics.start(%d).end(%d).granularity(%s)", start, end, granularity)

	resp, err := c.rest.R().
		SetQueryParam("fields", fields).
		Get("/" + c.businessAccountId)

	return decodeAnalyticsResponse(resp, err)
}

// TemplateAnalytics queries the `template_analytics` edge for the requested
// template IDs. The Graph API only supports DAILY granularity here.
func (c *Client) TemplateAnalytics(request *api.TemplateAnalyticsRequest) (AnalyticsResult, error) {
	if err := c.requireBusinessAccount(); err != nil {
		return nil, err
	}

	start, end, err := request.UnixRange()
	if err != nil {
		return nil, err
	}

	if len(request.TemplateIds) < 1 {
		return nil, fmt.Errorf("at least one template ID is required")
	}

	granularity := request.Granularity
	if granularity == "" {
		granularity = api.GranularityDaily
	}

	quoted := []string{}
	for _, id := range request.TemplateIds {
		quoted = append(quoted, fmt.Sprintf("'%s'", id))
	}

	resp, err := c.rest.R().
		SetQueryParam("start", fmt.Sprintf("%d", start)).
		SetQueryParam("end", fmt.Sprintf("%d", end)).
		SetQueryParam("granularity", granularity).
		SetQueryParam("metric_types", "['SENT','DELIVERED','READ','CLICKED']").
		SetQueryParam("template_ids", "["+strings.Join(quoted, ",")+"]").
		Get(fmt.Sprintf("/%s/template_analytics", c.businessAccountId))

	return decodeAnalyticsResponse(resp, err)
}

func decodeAnalyticsResponse(resp *resty.Response, err error) (AnalyticsResult, error) {
	if err != nil {
		return nil, err
	}

	if http.StatusOK == resp.StatusCode() {
		result := AnalyticsResult{}
		if err := json.Unmarshal(resp.Body(), &result); err != nil {
			return nil, fmt.Errorf("unable to decode analytics response: %v", err)
		}
		return result, nil
	}

	return nil, newUpstreamError(resp)
}
