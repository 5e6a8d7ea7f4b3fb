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

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/chatlift/chatlift-cli/api"
	"github.com/chatlift/chatlift-cli/helper"
	"github.com/chatlift/chatlift-cli/platform"
)

var analyticsStart, analyticsEnd, analyticsGranularity string
var analyticsTemplateIds []string

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Fetch analytics of the business account",
}

func analyticsRequestFromFlags() *api.AnalyticsRequest {
	request := &api.AnalyticsRequest{
		StartDate:   analyticsStart,
		EndDate:     analyticsEnd,
		Granularity: analyticsGranularity,
	}

	start, err := api.ParseISOTime(request.StartDate)
	if err != nil {
		log.Fatal(err)
	}
	end, err := api.ParseISOTime(request.EndDate)
	if err != nil {
		log.Fatal(err)
	}

	if Verbose {
		log.Printf("fetching analytics from %s to %s", humanize.Time(start), humanize.Time(end))
	}

	return request
}

var conversationAnalyticsCmd = &cobra.Command{
	Use:   "conversation",
	Short: "Conversation analytics by category, type, country and phone number",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := platform.GraphClient(Verbose)
		if err != nil {
			log.Fatal(err)
		}

		result, err := client.ConversationAnalytics(analyticsRequestFromFlags())
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(helper.PrettyPrint(result))
	},
}

var messagingAnalyticsCmd = &cobra.Command{
	Use:   "messaging",
	Short: "Sent and delivered message counts",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := platform.GraphClient(Verbose)
		if err != nil {
			log.Fatal(err)
		}

		result, err := client.MessagingAnalytics(analyticsRequestFromFlags())
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(helper.PrettyPrint(result))
	},
}

var templateAnalyticsCmd = &cobra.Command{
	Use:   "template",
	Short: "Sent, delivered, read and clicked counts per template",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := platform.GraphClient(Verbose)
		if err != nil {
			log.Fatal(err)
		}

		request := &api.TemplateAnalyticsRequest{
			AnalyticsRequest: *analyticsRequestFromFlags(),
			TemplateIds:      analyticsTemplateIds,
		}

		result, err := client.TemplateAnalytics(request)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(helper.PrettyPrint(result))
	},
}

func init() {
	analyticsCmd.PersistentFlags().StringVar(&analyticsStart, "start", "", "start of the time range (ISO timestamp)")
	analyticsCmd.PersistentFlags().StringVar(&analyticsEnd, "end", "", "end of the time range (ISO timestamp)")
	analyticsCmd.PersistentFlags().StringVar(&analyticsGranularity, "granularity", "", "data point granularity")
	analyticsCmd.MarkPersistentFlagRequired("start")
	analyticsCmd.MarkPersistentFlagRequired("end")

	templateAnalyticsCmd.Flags().StringSliceVar(&analyticsTemplateIds, "template-id", []string{}, "template ID to report on (repeatable)")
	templateAnalyticsCmd.MarkFlagRequired("template-id")

	analyticsCmd.AddCommand(conversationAnalyticsCmd)
	analyticsCmd.AddCommand(messagingAnalyticsCmd)
	analyticsCmd.AddCommand(templateAnalyticsCmd)

	rootCmd.AddCommand(analyticsCmd)
}
