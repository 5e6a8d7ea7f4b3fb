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
	"errors"
	"fmt"

	"github.com/chatlift/chatlift-cli/api"
	"github.com/chatlift/chatlift-cli/helper"
	"github.com/go-resty/resty/v2"
)

const defaultGraphUrl = "https://graph.facebook.com"
const defaultApiVersion = "v18.0"

// Client talks to the WhatsApp Business Cloud (Graph) API. Operations on
// the phone number (messages, status) use the phone number ID, the
// account-wide operations (templates, analytics) use the WhatsApp Business
// Account ID.
type Client struct {
	rest              *resty.Client
	phoneNumberId     string
	businessAccountId string
}

// NewClient wraps an already configured resty client. Used directly by the
// tests, production code goes through GraphClient.
func NewClient(rest *resty.Client, phoneNumberId string, businessAccountId string) *Client {
	return &Client{
		rest:              rest,
		phoneNumberId:     phoneNumberId,
		businessAccountId: businessAccountId,
	}
}

// GraphClient builds a Client from the current remote configuration.
func GraphClient(verbose bool) (*Client, error) {
	token := helper.CurrentConfig("access_token")
	if token == "" {
		return nil, errors.New("access token is not defined, maybe try `chatlift configure remote`")
	}

	baseUrl := helper.CurrentConfig("url")
	if baseUrl == "" {
		baseUrl = defaultGraphUrl
	}

	apiVersion := helper.CurrentConfig("api_version")
	if apiVersion == "" {
		apiVersion = defaultApiVersion
	}

	rest := resty.New()
	rest.SetHostURL(fmt.Sprintf("%s/%s", baseUrl, apiVersion))
	rest.SetHeader("Authorization", "Bearer "+token)
	rest.SetDebug(verbose)

	return NewClient(rest, helper.CurrentConfig("phone_number_id"), helper.CurrentConfig("business_account_id")), nil
}

// UpstreamError is returned when the Graph API answers with a non 2xx
// status. The upstream body is kept verbatim so callers can surface it.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	graphErr := api.GraphError{}
	if err := json.Unmarshal(e.Body, &graphErr); err == nil && graphErr.Error.Message != "" {
		return graphErr.Error.String()
	}
	return fmt.Sprintf("[%d] %s", e.StatusCode, e.Body)
}

func newUpstreamError(resp *resty.Response) *UpstreamError {
	return &UpstreamError{StatusCode: resp.StatusCode(), Body: resp.Body()}
}

func (c *Client) requirePhoneNumber() error {
	if c.phoneNumberId == "" {
		return errors.New("phone number ID is not defined, maybe try `chatlift configure remote`")
	}
	return nil
}

func (c *Client) requireBusinessAccount() error {
	if c.businessAccountId == "" {
		return errors.New("business account ID is not defined, maybe try `chatlift configure remote`")
	}
	return nil
}
