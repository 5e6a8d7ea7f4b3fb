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
	"strings"

	"github.com/fatih/color"
	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"

	"github.com/chatlift/chatlift-cli/api"
	"github.com/chatlift/chatlift-cli/helper"
	"github.com/chatlift/chatlift-cli/platform"
)

var templatesStatus string
var templatesWithContents bool

// templatesCmd represents the templates command
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the message templates of the business account",
	Run: func(cmd *cobra.Command, args []string) {
		status, err := templateStatusFromFlag(templatesStatus)
		if err != nil {
			log.Fatal(err)
		}

		client, err := platform.GraphClient(Verbose)
		if err != nil {
			log.Fatal(err)
		}

		templates, err := client.ListTemplates(status, templatesWithContents)
		if err != nil {
			log.Fatal(err)
		}

		if templatesWithContents {
			fmt.Println(helper.PrettyPrint(templates.Data))
			return
		}

		fmt.Println(formatTemplateTable(templates.Data))
	},
}

func templateStatusFromFlag(value string) (string, error) {
	switch strings.ToLower(value) {
	case "approved":
		return api.TemplateStatusApproved, nil
	case "rejected":
		return api.TemplateStatusRejected, nil
	}
	return "", fmt.Errorf("%q is not a valid template status (approved, rejected)", value)
}

func formatTemplateTable(templates []*api.MessageTemplate) string {
	output := []string{"NAME|STATUS"}

	for _, template := range templates {
		status := template.Status
		if status == api.TemplateStatusApproved {
			status = color.GreenString(status)
		} else {
			status = color.RedString(status)
		}
		output = append(output, strings.Join([]string{template.Name, status}, "|"))
	}

	return columnize.SimpleFormat(output)
}

func init() {
	templatesCmd.Flags().StringVar(&templatesStatus, "status", "approved", "template status to list (approved, rejected)")
	templatesCmd.Flags().BoolVar(&templatesWithContents, "contents", false, "include the template components")

	rootCmd.AddCommand(templatesCmd)
}
