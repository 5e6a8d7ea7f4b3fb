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

package deployment

import (
	"github.com/imdario/mergo"
	"github.com/jinzhu/copier"
	"github.com/markbates/pkger"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// DefaultRecipeFilename is the recipe file `generate`, `validate` and
// `package` look for in the build context.
const DefaultRecipeFilename = "chatlift.yaml"

// BuildRecipe describes how the gateway application is packaged into a
// container image, as loaded from a `chatlift.yaml` file.
//
// Port is documentation-only (EXPOSE), it does not bind anything. The
// dependency installer, the container engine and the interpreter named by
// Entrypoint remain external collaborators, the recipe only sequences them.
type BuildRecipe struct {
	BaseImage  string   `yaml:"base_image" json:"base_image"`
	Workdir    string   `yaml:"workdir" json:"workdir"`
	Manifest   string   `yaml:"manifest" json:"manifest"`
	AppFiles   string   `yaml:"app_files" json:"app_files"`
	Port       int      `yaml:"port" json:"port"`
	Entrypoint []string `yaml:"entrypoint,flow" json:"entrypoint"`
}

func createRecipeFromYamlContent(yamlContent []byte) (*BuildRecipe, error) {
	recipe := BuildRecipe{}
	if err := yaml.UnmarshalStrict(yamlContent, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// CreateDefaultRecipe creates a recipe with the defaults defined in
// "/deployment/default_chatlift.yaml"
func CreateDefaultRecipe() *BuildRecipe {
	yamlFile, err := pkger.Open("/deployment/default_chatlift.yaml")
	if err != nil {
		// The default recipe file should be part of the package if it is not there, it's a huge problem
		panic(err)
	}
	defer yamlFile.Close()

	yamlFileStats, err := yamlFile.Stat()
	if err != nil {
		panic(err)
	}

	yamlContent := make([]byte, yamlFileStats.Size())
	yamlFile.Read(yamlContent)
	defaultRecipe, err := createRecipeFromYamlContent(yamlContent)
	if err != nil {
		panic(err)
	}

	return defaultRecipe
}

// ExtendDefaultRecipe extends the default build recipe with the given recipe
//
// the given recipe is left untouched.
func ExtendDefaultRecipe(recipe *BuildRecipe) *BuildRecipe {
	defaultRecipe := CreateDefaultRecipe()
	extendedRecipe := BuildRecipe{}
	copier.Copy(&extendedRecipe, recipe)
	mergo.Merge(&extendedRecipe, defaultRecipe)
	return &extendedRecipe
}

// CreateRecipeFromYaml creates a new instance of BuildRecipe from a given
// `chatlift.yaml` file, extended with the defaults.
func CreateRecipeFromYaml(fs afero.Fs, filename string) (*BuildRecipe, error) {
	yamlContent, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, err
	}
	loadedRecipe, err := createRecipeFromYamlContent(yamlContent)
	if err != nil {
		return nil, err
	}
	return ExtendDefaultRecipe(loadedRecipe), nil
}
