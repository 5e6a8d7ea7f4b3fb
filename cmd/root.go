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
	"os"
	"path"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chatlift/chatlift-cli/cmd/configure"
	"github.com/chatlift/chatlift-cli/helper"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chatlift",
	Short: "WhatsApp Business Cloud API gateway and packaging CLI",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&helper.CfgFile, "config", "", "config file (default is $HOME/.chatlift.toml)")
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(configure.NewConfigureCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	configName := ".chatlift"

	if helper.CfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(helper.CfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".chatlift" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(configName)

		helper.CfgFile = path.Join(home, configName+".toml")
	}

	viper.SetEnvPrefix("chatlift")
	viper.AutomaticEnv() // read in environment variables that match

	// A missing config file is fine, the env can carry the whole configuration.
	if err := viper.ReadInConfig(); Verbose && err != nil {
		log.Println(err)
	}

	if Verbose {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
}
