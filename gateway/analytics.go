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

package gateway

import (
	"net/http"

	"github.com/chatlift/chatlift-cli/api"
	"github.com/chatlift/chatlift-cli/platform"
)

func checkDateRange(request *api.AnalyticsRequest) error {
	if request.StartDate == "" || request.EndDate == "" {
		return NewHTTPError(http.StatusBadRequest, "Start date and end date are required in ISO format in the request body", nil)
	}
	if _, _, err := request.UnixRange(); err != nil {
		return NewHTTPError(http.StatusBadRequest, err.Error(), err)
	}
	return nil
}

func analyticsHandler(query func(*api.AnalyticsRequest) (platform.AnalyticsResult, error)) http.HandlerFunc {
	return errorHandler(func(w http.ResponseWriter, r *http.Request) error {
		request := api.AnalyticsRequest{}
		if err := decodeJSONBody(w, r, &request); err != nil {
			return err
		}

		if err := checkDateRange(&request); err != nil {
			return err
		}

		result, err := query(&request)
		if err != nil {
			return err
		}

		return encodeJSONResponse(w, result)
	})
}

func conversationAnalytics(p Platform) http.HandlerFunc {
	return analyticsHandler(p.ConversationAnalytics)
}

func messagingAnalytics(p Platform) http.HandlerFunc {
	return analyticsHandler(p.MessagingAnalytics)
}

func templateAnalytics(p Platform) http.HandlerFunc {
	return errorHandler(func(w http.ResponseWriter, r *http.Request) error {
		request := api.TemplateAnalyticsRequest{}
		if err := decodeJSONBody(w, r, &request); err != nil {
			return err
		}

		if err := checkDateRange(&request.AnalyticsRequest); err != nil {
			return err
		}

		if len(request.TemplateIds) < 1 {
			return NewHTTPError(http.StatusBadRequest, "At least one template ID is required in the request body", nil)
		}

		result, err := p.TemplateAnalytics(&request)
		if err != nil {
			return err
		}

		return encodeJSONResponse(w, result)
	})
}
