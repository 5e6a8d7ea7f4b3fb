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

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestValidateCmd(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.NoError(t, afero.WriteFile(fs, "requirements.txt", []byte("flask\n"), 0644))
	assert.NoError(t, afero.WriteFile(fs, "app.py", []byte("\n"), 0644))

	violations, err := runValidateCmd(fs, "chatlift.yaml", ".")

	assert.NoError(t, err)
	assert.Empty(t, violations)
}

func TestValidateCmdWithViolations(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.NoError(t, afero.WriteFile(fs, "chatlift.yaml", []byte(`base_image: python
port: 99999
`), 0644))
	assert.NoError(t, afero.WriteFile(fs, "requirements.txt", []byte("flask\n"), 0644))

	violations, err := runValidateCmd(fs, "chatlift.yaml", ".")

	assert.NoError(t, err)
	assert.Len(t, violations, 3)

	fields := []string{}
	for _, violation := range violations {
		fields = append(fields, violation.Field)
	}
	assert.ElementsMatch(t, []string{"base_image", "port", "entrypoint"}, fields)
}
