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

package cmd

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"github.com/chatlift/chatlift-cli/api"
	"github.com/chatlift/chatlift-cli/platform"
)

func TestRunSendCmd(t *testing.T) {
	rest := resty.New()
	rest.SetHostURL("https://graph.test/v18.0")
	httpmock.ActivateNonDefault(rest.GetClient())
	defer httpmock.DeactivateAndReset()

	client := platform.NewClient(rest, "139913512540275", "118254494612532")

	httpmock.RegisterResponder(
		"POST",
		"/v18.0/139913512540275/messages",
		func(req *http.Request) (*http.Response, error) {
			message := api.TemplateMessage{}
			if err := json.NewDecoder(req.Body).Decode(&message); err != nil {
				return httpmock.NewStringResponse(http.StatusBadRequest, err.Error()), nil
			}
			if message.To == "15550000002" {
				return httpmock.NewStringResponse(http.StatusBadRequest, `{"error":{"message":"invalid recipient"}}`), nil
			}
			return httpmock.NewStringResponse(http.StatusOK, `{"messaging_product":"whatsapp","messages":[{"id":"wamid.ok"}]}`), nil
		},
	)

	request := &api.SendRequest{
		Recipients:   []string{"15550000001", "15550000002", "15550000003"},
		TemplateName: "order_update",
	}

	failed := runSendCmd(client, request)

	assert.Equal(t, 1, failed)
	assert.Equal(t, 3, httpmock.GetTotalCallCount())
}
