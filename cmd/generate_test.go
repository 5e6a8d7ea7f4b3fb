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
	"testing"

	"github.com/bradleyjkemp/cupaloy/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestGenerateCmd(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := afero.WriteFile(fs, "chatlift.yaml", []byte(`base_image: python:3.11-slim
port: 8080
`), 0644)
	assert.NoError(t, err)

	service, err := runGenerateCmd(fs, "chatlift.yaml", "Dockerfile", "chatlift gateway")
	assert.NoError(t, err)

	assert.Equal(t, `services:
  chatlift-gateway:
    build: .
    image: chatlift-gateway:latest
    ports:
      - "8080:8080"
`, service)

	dockerfile, err := afero.ReadFile(fs, "Dockerfile")
	assert.NoError(t, err)
	cupaloy.SnapshotT(t, string(dockerfile))
}

func TestGenerateCmdWithoutRecipeFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := runGenerateCmd(fs, "chatlift.yaml", "Dockerfile", "chatlift gateway")
	assert.NoError(t, err)

	dockerfile, err := afero.ReadFile(fs, "Dockerfile")
	assert.NoError(t, err)
	assert.Contains(t, string(dockerfile), "FROM python:3.9-slim")
}

func TestGenerateCmdMissingCustomRecipeFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := runGenerateCmd(fs, "other.yaml", "Dockerfile", "chatlift gateway")
	assert.Error(t, err)
}
