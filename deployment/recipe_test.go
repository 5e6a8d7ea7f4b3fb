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
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestCreateDefaultRecipe(t *testing.T) {
	recipe := CreateDefaultRecipe()

	assert.Equal(t, "python:3.9-slim", recipe.BaseImage)
	assert.Equal(t, "/app", recipe.Workdir)
	assert.Equal(t, "requirements.txt", recipe.Manifest)
	assert.Equal(t, ".", recipe.AppFiles)
	assert.Equal(t, 5000, recipe.Port)
	assert.Equal(t, []string{"python", "app.py"}, recipe.Entrypoint)
}

func TestExtendDefaultRecipe(t *testing.T) {
	recipe := BuildRecipe{
		BaseImage: "python:3.11-alpine",
		Port:      8080,
	}

	extended := ExtendDefaultRecipe(&recipe)

	assert.Equal(t, "python:3.11-alpine", extended.BaseImage)
	assert.Equal(t, 8080, extended.Port)
	assert.Equal(t, "/app", extended.Workdir)
	assert.Equal(t, "requirements.txt", extended.Manifest)
	assert.Equal(t, []string{"python", "app.py"}, extended.Entrypoint)

	// The input recipe is left untouched
	assert.Equal(t, "", recipe.Workdir)
	assert.Nil(t, recipe.Entrypoint)
}

func TestCreateRecipeFromYaml(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := afero.WriteFile(fs, "chatlift.yaml", []byte(`base_image: python:3.12-slim
entrypoint: ["python", "gateway.py"]
`), 0644)
	assert.NoError(t, err)

	recipe, err := CreateRecipeFromYaml(fs, "chatlift.yaml")
	assert.NoError(t, err)

	assert.Equal(t, "python:3.12-slim", recipe.BaseImage)
	assert.Equal(t, []string{"python", "gateway.py"}, recipe.Entrypoint)
	assert.Equal(t, "/app", recipe.Workdir)
	assert.Equal(t, 5000, recipe.Port)
}

func TestCreateRecipeFromYamlUnknownKey(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := afero.WriteFile(fs, "chatlift.yaml", []byte("bsae_image: python:3.12-slim\n"), 0644)
	assert.NoError(t, err)

	_, err = CreateRecipeFromYaml(fs, "chatlift.yaml")
	assert.Error(t, err)
}

func TestCreateRecipeFromYamlMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := CreateRecipeFromYaml(fs, "chatlift.yaml")
	assert.Error(t, err)
}
