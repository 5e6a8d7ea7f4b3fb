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

package configure

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/docker/docker/pkg/term"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chatlift/chatlift-cli/helper"
)

// Remote is one named Graph API configuration in the user config file.
type Remote struct {
	Url               string
	ApiVersion        string
	AccessToken       string
	PhoneNumberId     string
	BusinessAccountId string
}

const defaultGraphUrl = "https://graph.facebook.com"
const defaultApiVersion = "v18.0"

func NewRemoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remote [name]",
		Short: "Add a WhatsApp Business remote",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			name := "default"
			if len(args) > 0 {
				name = args[0]
			}

			if err := runConfigureRemoteCmd(name, os.Stdin, readTokenWithoutEcho); err != nil {
				log.Fatalln(err)
			}

			fmt.Printf("%s remote has been added to %s\n", name, helper.CfgFile)
		},
	}
}

func createRemoteFromReader(stdin io.Reader, readToken func(*bufio.Reader) string) *Remote {
	reader := bufio.NewReader(stdin)
	remote := Remote{}

	remote.Url = promptWithDefault(reader, "Graph API URL", defaultGraphUrl)
	remote.ApiVersion = promptWithDefault(reader, "API version", defaultApiVersion)

	fmt.Print("Access token: ")
	remote.AccessToken = readToken(reader)
	fmt.Print("\n")

	remote.PhoneNumberId = promptWithDefault(reader, "Phone number ID", "")
	remote.BusinessAccountId = promptWithDefault(reader, "Business account ID", "")

	return &remote
}

func promptWithDefault(reader *bufio.Reader, label string, defaultValue string) string {
	if defaultValue != "" {
		fmt.Printf("%s (%s): ", label, defaultValue)
	} else {
		fmt.Printf("%s: ", label)
	}

	value, _ := reader.ReadString('\n')
	value = strings.TrimRight(value, "\r\n")
	if len(value) < 1 {
		return defaultValue
	}
	return value
}

// readTokenWithoutEcho reads a line with terminal echo disabled so the token
// does not end up in the scrollback.
func readTokenWithoutEcho(reader *bufio.Reader) string {
	fd := os.Stdin.Fd()

	oldState, err := term.SaveState(fd)
	if err != nil {
		log.Fatal(err)
	}
	term.DisableEcho(fd, oldState)
	defer term.RestoreTerminal(fd, oldState)

	line, _, err := reader.ReadLine()
	if err != nil {
		log.Fatal(err)
	}
	return string(line)
}

func runConfigureRemoteCmd(name string, stdin io.Reader, readToken func(*bufio.Reader) string) error {
	remote := createRemoteFromReader(stdin, readToken)

	viper.Set(fmt.Sprintf("%s.url", name), remote.Url)
	viper.Set(fmt.Sprintf("%s.api_version", name), remote.ApiVersion)
	viper.Set(fmt.Sprintf("%s.access_token", name), remote.AccessToken)
	viper.Set(fmt.Sprintf("%s.phone_number_id", name), remote.PhoneNumberId)
	viper.Set(fmt.Sprintf("%s.business_account_id", name), remote.BusinessAccountId)

	currentRemote := viper.GetString("remote")
	if len(currentRemote) < 1 {
		viper.Set("remote", name)
	}

	if err := viper.WriteConfigAs(helper.CfgFile); err != nil {
		fmt.Printf("Unable to write config : %s", err)
		return err
	}

	return nil
}
