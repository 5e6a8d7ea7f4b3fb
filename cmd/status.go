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
	"github.com/chatlift/chatlift-cli/platform"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the status of the configured phone number",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := platform.GraphClient(Verbose)
		if err != nil {
			log.Fatal(err)
		}

		status, err := client.PhoneNumberStatus()
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(formatStatusTable(status))
	},
}

func formatStatusTable(status *api.PhoneNumberStatus) string {
	quality := status.QualityRating
	switch quality {
	case "GREEN":
		quality = color.GreenString(quality)
	case "YELLOW":
		quality = color.YellowString(quality)
	case "RED":
		quality = color.RedString(quality)
	}

	output := []string{
		"PHONE NUMBER|VERIFIED NAME|QUALITY|VERIFICATION",
		strings.Join([]string{
			status.DisplayPhoneNumber,
			status.VerifiedName,
			quality,
			status.CodeVerificationStatus,
		}, "|"),
	}

	return columnize.SimpleFormat(output)
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
