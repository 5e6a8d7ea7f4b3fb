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

	"github.com/gorilla/mux"

	"github.com/chatlift/chatlift-cli/api"
	"github.com/chatlift/chatlift-cli/platform"
)

// Platform is the subset of the Graph API client the gateway routes need.
type Platform interface {
	SendToAll(request *api.SendRequest) []*api.SendOutcome
	ConversationAnalytics(request *api.AnalyticsRequest) (platform.AnalyticsResult, error)
	MessagingAnalytics(request *api.AnalyticsRequest) (platform.AnalyticsResult, error)
	TemplateAnalytics(request *api.TemplateAnalyticsRequest) (platform.AnalyticsResult, error)
	ListTemplates(status string, withComponents bool) (*api.TemplateList, error)
	PhoneNumberStatus() (*api.PhoneNumberStatus, error)
}

// CreateRouter creates a http handler handling all the gateway routes
func CreateRouter(p Platform) http.Handler {
	router := mux.NewRouter()

	router.Path("/").Methods(http.MethodGet, http.MethodHead).HandlerFunc(welcome())
	router.Path("/send").Methods(http.MethodPost).HandlerFunc(sendMessages(p))
	router.Path("/conversation_analytics").Methods(http.MethodPost).HandlerFunc(conversationAnalytics(p))
	router.Path("/messaging_analytics").Methods(http.MethodPost).HandlerFunc(messagingAnalytics(p))
	router.Path("/template_analytics").Methods(http.MethodPost).HandlerFunc(templateAnalytics(p))
	router.Path("/approved_templates").Methods(http.MethodGet, http.MethodHead).HandlerFunc(listTemplates(p, api.TemplateStatusApproved, false))
	router.Path("/rejected_templates").Methods(http.MethodGet, http.MethodHead).HandlerFunc(listTemplates(p, api.TemplateStatusRejected, false))
	router.Path("/approved_template_contents").Methods(http.MethodGet, http.MethodHead).HandlerFunc(listTemplates(p, api.TemplateStatusApproved, true))
	router.Path("/rejected_template_contents").Methods(http.MethodGet, http.MethodHead).HandlerFunc(listTemplates(p, api.TemplateStatusRejected, true))
	router.Path("/phone_number_status").Methods(http.MethodGet, http.MethodHead).HandlerFunc(phoneNumberStatus(p))

	router.NotFoundHandler = notFound()

	return router
}
