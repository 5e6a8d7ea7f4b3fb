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
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/chatlift/chatlift-cli/deployment"
)

var validateRecipeFile string
var validateContextDir string

// validateCmd checks the build recipe against its build context
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the build recipe against its build context",
	Run: func(cmd *cobra.Command, args []string) {
		violations, err := runValidateCmd(afero.NewOsFs(), validateRecipeFile, validateContextDir)
		if err != nil {
			log.Fatal(err)
		}

		if len(violations) > 0 {
			for _, violation := range violations {
				color.Red(violation.String())
			}
			os.Exit(1)
		}

		color.Green("Recipe is valid")
	},
}

func runValidateCmd(fs afero.Fs, recipeFile string, contextDir string) ([]*deployment.Violation, error) {
	recipe, err := loadRecipe(fs, recipeFile)
	if err != nil {
		return nil, err
	}

	return deployment.Validate(fs, contextDir, recipe)
}

func init() {
	validateCmd.Flags().StringVarP(&validateRecipeFile, "file", "f", deployment.DefaultRecipeFilename, "recipe file to validate")
	validateCmd.Flags().StringVar(&validateContextDir, "context", ".", "build context directory")

	rootCmd.AddCommand(validateCmd)
}
