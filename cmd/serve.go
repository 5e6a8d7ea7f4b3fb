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
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chatlift/chatlift-cli/gateway"
	"github.com/chatlift/chatlift-cli/helper"
	"github.com/chatlift/chatlift-cli/platform"
)

// serveCmd runs the HTTP gateway in front of the Graph API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP gateway in front of the WhatsApp Business Cloud API",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := platform.GraphClient(Verbose)
		if err != nil {
			log.Fatal(err)
		}

		port := viper.GetInt("port")
		router := gateway.CreateRouter(client)

		logger := helper.GetSugarLogger([]string{"cmd", "serve"})
		logger.Infof("gateway listening on port %d", port)

		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), router))
	},
}

func init() {
	serveCmd.Flags().Int("port", 5000, "port the gateway listens on")
	viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))

	rootCmd.AddCommand(serveCmd)
}
