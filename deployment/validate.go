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
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	ignore "github.com/codeskyblue/dockerignore"
	"github.com/spf13/afero"
)

// Violation is a single structural problem found in a build recipe.
type Violation struct {
	Field   string
	Message string
}

func (v *Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

func newViolation(field string, format string, args ...interface{}) *Violation {
	return &Violation{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Image references are `name:tag` or `name@sha256:digest`, the name being
// slash separated lowercase components with an optional registry host.
var imageNameRegex = regexp.MustCompile(
	`^([a-zA-Z0-9-]+(\.[a-zA-Z0-9-]+)+(:[0-9]+)?/)?[a-z0-9]+([._-][a-z0-9]+)*(/[a-z0-9]+([._-][a-z0-9]+)*)*$`,
)
var imageTagRegex = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9._-]{0,127}$`)
var imageDigestRegex = regexp.MustCompile(`^sha256:[a-f0-9]{64}$`)

func validateImageReference(reference string) error {
	name := reference

	if at := strings.Index(reference, "@"); at >= 0 {
		name = reference[:at]
		if !imageDigestRegex.MatchString(reference[at+1:]) {
			return fmt.Errorf("%q has an invalid digest", reference)
		}
	} else if colon := strings.LastIndex(reference, ":"); colon >= 0 && !strings.Contains(reference[colon:], "/") {
		name = reference[:colon]
		if !imageTagRegex.MatchString(reference[colon+1:]) {
			return fmt.Errorf("%q has an invalid tag", reference)
		}
	} else {
		return fmt.Errorf("%q is not pinned to a tag or digest", reference)
	}

	if !imageNameRegex.MatchString(name) {
		return fmt.Errorf("%q is not a valid image name", reference)
	}

	return nil
}

func readIgnorePatterns(fs afero.Fs, contextDir string) ([]string, error) {
	ignoreFile, err := fs.Open(filepath.Join(contextDir, ".dockerignore"))
	if err != nil {
		// No .dockerignore, nothing is excluded
		return nil, nil
	}
	defer ignoreFile.Close()

	return ignore.ReadIgnore(ignoreFile)
}

func fileInContext(fs afero.Fs, contextDir string, relPath string, patterns []string) (bool, error) {
	isIgnored, err := ignore.Matches(relPath, patterns)
	if err != nil {
		return false, err
	}
	if isIgnored {
		return false, nil
	}

	return afero.Exists(fs, filepath.Join(contextDir, relPath))
}

// Validate checks the structural facts of a recipe against its build
// context: a syntactically valid pinned base image, an existing dependency
// manifest and entry script (`.dockerignore` patterns excluded), a TCP port
// and a non-empty entry command. All violations are collected, not just the
// first one.
func Validate(fs afero.Fs, contextDir string, recipe *BuildRecipe) ([]*Violation, error) {
	violations := []*Violation{}

	if recipe.BaseImage == "" {
		violations = append(violations, newViolation("base_image", "a base image is required"))
	} else if err := validateImageReference(recipe.BaseImage); err != nil {
		violations = append(violations, newViolation("base_image", "%v", err))
	}

	if recipe.Port < 0 || recipe.Port > 65535 {
		violations = append(violations, newViolation("port", "%d is not a valid TCP port number (0-65535)", recipe.Port))
	}

	patterns, err := readIgnorePatterns(fs, contextDir)
	if err != nil {
		return nil, err
	}

	if recipe.Manifest == "" {
		violations = append(violations, newViolation("manifest", "a dependency manifest is required"))
	} else {
		exists, err := fileInContext(fs, contextDir, recipe.Manifest, patterns)
		if err != nil {
			return nil, err
		}
		if !exists {
			violations = append(violations, newViolation("manifest", "%q does not exist in the build context", recipe.Manifest))
		}
	}

	if len(recipe.Entrypoint) == 0 || recipe.Entrypoint[0] == "" {
		violations = append(violations, newViolation("entrypoint", "an entry command naming an interpreter is required"))
	} else if len(recipe.Entrypoint) > 1 {
		script := recipe.Entrypoint[1]
		exists, err := fileInContext(fs, contextDir, script, patterns)
		if err != nil {
			return nil, err
		}
		if !exists {
			violations = append(violations, newViolation("entrypoint", "entry script %q does not exist in the build context", script))
		}
	}

	return violations, nil
}
