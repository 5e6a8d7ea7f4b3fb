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

	"github.com/chatlift/chatlift-cli/api"
	"github.com/chatlift/chatlift-cli/helper"
)

var log = helper.GetSugarLogger([]string{"platform"})

// SendTemplateMessage posts a single template message to the Graph API.
func (c *Client) SendTemplateMessage(message *api.TemplateMessage) (*api.MessageResponse, error) {
	if err := c.requirePhoneNumber(); err != nil {
		return nil, err
	}

	resp, err := c.rest.R().
		SetBody(message).
		SetResult(&api.MessageResponse{}).
		Post(fmt.Sprintf("/%s/messages", c.phoneNumberId))

	if err != nil {
		return nil, err
	}

	if http.StatusOK == resp.StatusCode() {
		return resp.Result().(*api.MessageResponse), nil
	}

	return nil, newUpstreamError(resp)
}

// SendToAll dispatches the request template to every recipient, one Graph
// call per recipient, and reports a per-recipient outcome. A failed
// recipient does not stop the dispatch of the remaining ones.
func (c *Client) SendToAll(request *api.SendRequest) []*api.SendOutcome {
	outcomes := []*api.SendOutcome{}

	for i, recipient := range request.Recipients {
		message := api.NewTemplateMessage(recipient, request.TemplateName, request.BodyParameters(i))

		outcome := &api.SendOutcome{Recipient: recipient}
		response, err := c.SendTemplateMessage(message)
		if err != nil {
			log.Warnf("failed to send %q to %s: %v", request.TemplateName, recipient, err)
			outcome.Error = err.Error()
		} else if len(response.Messages) > 0 {
			outcome.MessageId = response.Messages[0].Id
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes
}
