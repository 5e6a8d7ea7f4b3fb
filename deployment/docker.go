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
	"os/exec"

	"github.com/chatlift/chatlift-cli/helper"
)

var log = helper.GetSugarLogger([]string{"deployment"})

// BuildImage builds the image for the given context directory by shelling
// out to the docker CLI. The combined docker output is returned either way.
func BuildImage(contextDir string, tag string) (string, error) {
	log.Infof("building docker image %s", tag)

	cmd := exec.Command("docker", "build", "-t", tag, contextDir)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("docker build of %s failed: %v", tag, err)
	}

	return string(out), nil
}

// PushImage pushes a previously built image.
func PushImage(tag string) (string, error) {
	log.Infof("pushing docker image %s", tag)

	cmd := exec.Command("docker", "push", tag)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("docker push of %s failed: %v", tag, err)
	}

	return string(out), nil
}
