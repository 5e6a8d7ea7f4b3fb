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
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/chatlift/chatlift-cli/deployment"
	"github.com/chatlift/chatlift-cli/helper"
)

var packageRecipeFile string
var packageContextDir string
var packageTag string
var packagePush bool

// packageCmd validates, generates and builds the image
var packageCmd = &cobra.Command{
	Use:   "package",
	Short: "Validate the recipe, render the Dockerfile and build the image",
	Run: func(cmd *cobra.Command, args []string) {
		fs := afero.NewOsFs()

		violations, err := runValidateCmd(fs, packageRecipeFile, packageContextDir)
		if err != nil {
			log.Fatal(err)
		}
		if len(violations) > 0 {
			for _, violation := range violations {
				color.Red(violation.String())
			}
			log.Fatal("recipe validation failed")
		}

		if _, err := runGenerateCmd(fs, packageRecipeFile, "Dockerfile", packageTag); err != nil {
			log.Fatal(err)
		}

		tag := helper.Kebabify(packageTag)
		out, err := deployment.BuildImage(packageContextDir, tag)
		fmt.Print(out)
		if err != nil {
			log.Fatal(err)
		}

		if packagePush {
			out, err := deployment.PushImage(tag)
			fmt.Print(out)
			if err != nil {
				log.Fatal(err)
			}
		}
	},
}

func init() {
	packageCmd.Flags().StringVarP(&packageRecipeFile, "file", "f", deployment.DefaultRecipeFilename, "recipe file to package")
	packageCmd.Flags().StringVar(&packageContextDir, "context", ".", "build context directory")
	packageCmd.Flags().StringVar(&packageTag, "tag", "chatlift gateway", "image tag to build")
	packageCmd.Flags().BoolVar(&packagePush, "push", false, "push the image after building it")

	rootCmd.AddCommand(packageCmd)
}
