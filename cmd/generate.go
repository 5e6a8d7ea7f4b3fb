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

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/chatlift/chatlift-cli/deployment"
	"github.com/chatlift/chatlift-cli/helper"
)

var generateRecipeFile string
var generateServiceName string

// generateCmd renders the build recipe into a Dockerfile
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the build recipe into a Dockerfile and a compose service block",
	Run: func(cmd *cobra.Command, args []string) {
		service, err := runGenerateCmd(afero.NewOsFs(), generateRecipeFile, "Dockerfile", generateServiceName)
		helper.CheckErrorf(err, "unable to generate the Dockerfile")

		fmt.Println("Dockerfile written")
		fmt.Println(service)
	},
}

func runGenerateCmd(fs afero.Fs, recipeFile string, outputFile string, serviceName string) (string, error) {
	recipe, err := loadRecipe(fs, recipeFile)
	if err != nil {
		return "", err
	}

	if err := deployment.WriteDockerfile(fs, recipe, outputFile); err != nil {
		return "", err
	}

	return deployment.GenerateComposeService(serviceName, recipe)
}

// loadRecipe reads the recipe file when it exists and falls back to the
// embedded defaults otherwise.
func loadRecipe(fs afero.Fs, recipeFile string) (*deployment.BuildRecipe, error) {
	if exists, err := afero.Exists(fs, recipeFile); err != nil {
		return nil, err
	} else if !exists {
		if recipeFile != deployment.DefaultRecipeFilename {
			return nil, fmt.Errorf("recipe file %s does not exist", recipeFile)
		}
		return deployment.CreateDefaultRecipe(), nil
	}

	return deployment.CreateRecipeFromYaml(fs, recipeFile)
}

func init() {
	generateCmd.Flags().StringVarP(&generateRecipeFile, "file", "f", deployment.DefaultRecipeFilename, "recipe file to render")
	generateCmd.Flags().StringVar(&generateServiceName, "name", "chatlift gateway", "compose service name")

	rootCmd.AddCommand(generateCmd)
}
