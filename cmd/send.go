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
	"fmt"
	"log"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chatlift/chatlift-cli/api"
	"github.com/chatlift/chatlift-cli/platform"
)

var sendRecipients []string
var sendVariable1, sendVariable2, sendVariable3 string

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send TEMPLATE",
	Short: "Send a template message to one or more recipients",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := platform.GraphClient(Verbose)
		if err != nil {
			log.Fatal(err)
		}

		request := &api.SendRequest{
			Recipients:   sendRecipients,
			TemplateName: args[0],
			TemplateVariables: map[string]string{
				"variable1": sendVariable1,
				"variable2": sendVariable2,
				"variable3": sendVariable3,
			},
		}

		failed := runSendCmd(client, request)
		if failed > 0 {
			log.Fatalf("%d of %d messages failed", failed, len(request.Recipients))
		}
	},
}

func runSendCmd(client *platform.Client, request *api.SendRequest) int {
	outcomes := client.SendToAll(request)

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Error != "" {
			failed++
			color.Red("%s  FAILED  %s", outcome.Recipient, outcome.Error)
		} else {
			color.Green("%s  SENT  %s", outcome.Recipient, outcome.MessageId)
		}
	}
	fmt.Printf("%d messages dispatched\n", len(outcomes))

	return failed
}

func init() {
	sendCmd.Flags().StringSliceVarP(&sendRecipients, "to", "t", []string{}, "recipient phone number (repeatable)")
	sendCmd.Flags().StringVar(&sendVariable1, "variable1", "", "comma separated per-recipient first body parameter")
	sendCmd.Flags().StringVar(&sendVariable2, "variable2", "", "second body parameter, shared by every recipient")
	sendCmd.Flags().StringVar(&sendVariable3, "variable3", "", "third body parameter, shared by every recipient")
	sendCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(sendCmd)
}
