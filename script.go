// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrEmptyScript = errors.New("script has no steps")

// Script is a replayable list of operations, stored as YAML:
//
//	name: rotations
//	steps:
//	  - op: load
//	    keys: [3, 1, 2]
//	  - op: find
//	    key: 2
//	    expect: "2"
//	  - op: check
type Script struct {
	Name  string      `yaml:"name"`
	Steps []Operation `yaml:"steps"`
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, ErrEmptyScript
	}
	for i, step := range script.Steps {
		if step.Op == "" {
			return nil, fmt.Errorf("step %d: missing op", i+1)
		}
		op := strings.ToLower(strings.TrimSpace(step.Op))
		if alias, ok := commandAliases[op]; ok {
			op = alias
		}
		script.Steps[i].Op = op
	}
	return &script, nil
}

// RunScript applies every step in order, writing one line per step to out,
// and stops at the first failing step.
func RunScript(s *Session, script *Script, out io.Writer) error {
	if script.Name != "" {
		fmt.Fprintf(out, "%s▶ %s%s\n", Info, script.Name, Reset)
	}
	for i, step := range script.Steps {
		result, err := s.Apply(step)
		if err != nil {
			fmt.Fprintf(out, "%s[%d] %s: %v%s\n", Error, i+1, step.Op, err, Reset)
			return fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
		if step.Op == "print" {
			fmt.Fprintf(out, "[%d] print:\n%s\n", i+1, result)
			continue
		}
		fmt.Fprintf(out, "[%d] %s: %s\n", i+1, step.Op, result)
	}
	return nil
}
