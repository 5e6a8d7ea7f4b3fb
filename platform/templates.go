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
)

// ListTemplates fetches the message templates of the business account with
// the given status (APPROVED, REJECTED). With withComponents the template
// contents are included.
func (c *Client) ListTemplates(status string, withComponents bool) (*api.TemplateList, error) {
	if err := c.requireBusinessAccount(); err != nil {
		return nil, err
	}

	fields := "name,status"
	if withComponents {
		fields = "name,status,components"
	}

	resp, err := c.rest.R().
		SetQueryParam("fields", fields).
		SetQueryParam("status", status).
		SetResult(&api.TemplateList{}).
		Get(fmt.Sprintf("/%s/message_templates", c.businessAccountId))

	if err != nil {
		return nil, err
	}

	if http.StatusOK == resp.StatusCode() {
		return resp.Result().(*api.TemplateList), nil
	}

	return nil, newUpstreamError(resp)
}
