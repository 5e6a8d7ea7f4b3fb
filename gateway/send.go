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
)

func sendMessages(p Platform) http.HandlerFunc {
	return errorHandler(func(w http.ResponseWriter, r *http.Request) error {
		request := api.SendRequest{}
		if err := decodeJSONBody(w, r, &request); err != nil {
			return err
		}

		if len(request.Recipients) < 1 || request.TemplateName == "" {
			return NewHTTPError(http.StatusBadRequest, "Recipients and template name are required in the request body", nil)
		}

		outcomes := p.SendToAll(&request)

		return encodeJSONResponse(w, &api.SendResult{
			Message:  "Messages dispatched",
			Outcomes: outcomes,
		})
	})
}
