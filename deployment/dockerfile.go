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
	"bytes"
	"encoding/json"
	"text/template"

	"github.com/spf13/afero"

	"github.com/chatlift/chatlift-cli/helper"
)

const dockerfileTemplate = `FROM {{.BaseImage}}

WORKDIR {{.Workdir}}

COPY {{.Manifest}} ./

RUN pip install --no-cache-dir -r {{.Manifest}}

COPY {{.AppFiles}} ./

EXPOSE {{.Port}}

CMD {{jsonify .Entrypoint}}
`

const composeServiceTemplate = `services:
  {{kebabify .Name}}:
    build: .
    image: {{kebabify .Name}}:latest
    ports:
      - "{{.Recipe.Port}}:{{.Recipe.Port}}"
`

func renderTemplate(name string, tmplContent string, data interface{}) (string, error) {
	t := template.New(name).Funcs(template.FuncMap{
		"kebabify": helper.Kebabify,
		"jsonify": func(v interface{}) (string, error) {
			encoded, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return string(encoded), nil
		},
	})

	t, err := t.Parse(tmplContent)
	if err != nil {
		return "", err
	}

	rendered := bytes.Buffer{}
	if err := t.Execute(&rendered, data); err != nil {
		return "", err
	}

	return rendered.String(), nil
}

// GenerateDockerfile renders the recipe to Dockerfile content.
func GenerateDockerfile(recipe *BuildRecipe) (string, error) {
	return renderTemplate("Dockerfile", dockerfileTemplate, recipe)
}

type composeService struct {
	Name   string
	Recipe *BuildRecipe
}

// GenerateComposeService renders a docker-compose service block exposing the
// recipe port.
func GenerateComposeService(name string, recipe *BuildRecipe) (string, error) {
	return renderTemplate("compose", composeServiceTemplate, &composeService{Name: name, Recipe: recipe})
}

// WriteDockerfile renders the recipe and writes the result to outputPath.
func WriteDockerfile(fs afero.Fs, recipe *BuildRecipe, outputPath string) error {
	dockerfile, err := GenerateDockerfile(recipe)
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, outputPath, []byte(dockerfile), 0644)
}
