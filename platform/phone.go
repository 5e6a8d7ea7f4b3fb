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
	"net/http"

	"github.com/chatlift/chatlift-cli/api"
)

// PhoneNumberStatus fetches the Graph phone number object, including its
// verified name and quality rating.
func (c *Client) PhoneNumberStatus() (*api.PhoneNumberStatus, error) {
	if err := c.requirePhoneNumber(); err != nil {
		return nil, err
	}

	resp, err := c.rest.R().
		SetQueryParam("fields", "id,display_phone_number,verified_name,quality_rating,code_verification_status").
		SetResult(&api.PhoneNumberStatus{}).
		Get("/" + c.phoneNumberId)

	if err != nil {
		return nil, err
	}

	if http.StatusOK == resp.StatusCode() {
		return resp.Result().(*api.PhoneNumberStatus), nil
	}

	return nil, newUpstreamError(resp)
}
