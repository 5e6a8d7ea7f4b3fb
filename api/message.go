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

package api

import "strings"

// SendRequest is the body accepted by the gateway /send route and by the
// `chatlift send` command.
//
// `template_variables` carries up to three body parameters for the template:
// `variable1` is a comma separated list of per-recipient values (recipient i
// receives the i-th entry, empty past the end), `variable2` and `variable3`
// are shared by every recipient.
type SendRequest struct {
	Recipients        []string          `json:"recipients"`
	TemplateName      string            `json:"template_name"`
	TemplateVariables map[string]string `json:"template_variables,omitempty"`
}

// BodyParameters returns the three template body parameters for recipient i.
func (r *SendRequest) BodyParameters(i int) []string {
	perRecipient := strings.Split(r.TemplateVariables["variable1"], ",")

	first := ""
	if i < len(perRecipient) {
		first = perRecipient[i]
	}

	return []string{first, r.TemplateVariables["variable2"], r.TemplateVariables["variable3"]}
}

// TemplateMessage is the message object posted to the Graph API
// `/{phone_number_id}/messages` endpoint.
type TemplateMessage struct {
	MessagingProduct string   `json:"messaging_product"`
	RecipientType    string   `json:"recipient_type"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Template         Template `json:"template"`
}

type Template struct {
	Name       string       `json:"name"`
	Language   Language     `json:"language"`
	Components []*Component `json:"components"`
}

type Language struct {
	Code string `json:"code"`
}

type Component struct {
	Type       string       `json:"type"`
	Parameters []*Parameter `json:"parameters"`
}

type Parameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// DefaultLanguageCode is the template language sent with every message.
const DefaultLanguageCode = "en_US"

// NewTemplateMessage builds the Graph message payload for a single recipient
// with the given template body parameters.
func NewTemplateMessage(to string, templateName string, bodyParameters []string) *TemplateMessage {
	parameters := []*Parameter{}
	for _, text := range bodyParameters {
		parameters = append(parameters, &Parameter{Type: "text", Text: text})
	}

	return &TemplateMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "template",
		Template: Template{
			Name:     templateName,
			Language: Language{Code: DefaultLanguageCode},
			Components: []*Component{
				{Type: "body", Parameters: parameters},
			},
		},
	}
}

// MessageResponse is the Graph API response to a message POST.
type MessageResponse struct {
	MessagingProduct string `json:"messaging_product"`
	Messages         []struct {
		Id string `json:"id"`
	} `json:"messages"`
}

// SendOutcome reports the dispatch result for a single recipient.
type SendOutcome struct {
	Recipient string `json:"recipient"`
	MessageId string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// SendResult is the gateway response to /send.
type SendResult struct {
	Message  string         `json:"message"`
	Outcomes []*SendOutcome `json:"outcomes"`
}
