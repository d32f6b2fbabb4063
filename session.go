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
	"strconv"
	"strings"
	"time"

	"github.com/cybrota/avlbst/avl"
	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("bad arguments")
	ErrCheckFailed    = errors.New("tree check failed")
	ErrExpectation    = errors.New("expectation not met")
)

// Operation is one step against a session's tree, typed in the explorer or
// listed in a replay script.
type Operation struct {
	Op     string  `yaml:"op"`
	Key    int     `yaml:"key,omitempty"`
	Keys   []int   `yaml:"keys,omitempty"`
	Value  *string `yaml:"value,omitempty"`  // insert only; nil stores the key's decimal form
	Expect *string `yaml:"expect,omitempty"` // find only; value the key must hold
}

// LogEntry records an executed command and its outcome.
type LogEntry struct {
	Line   string
	Result string
	Err    error
}

// Session owns a tree of int keys and string values plus the bookkeeping
// the CLI needs around it: a version bumped on every structural or value
// change, cached drawings per version, and a log of executed commands.
type Session struct {
	tree     *avl.Tree[int, string]
	version  uint64
	renderer *Renderer
	renders  *cache.Cache
	log      []LogEntry
}

func NewSession(cfg *Config) *Session {
	return &Session{
		tree:     avl.New[int, string](),
		renderer: NewRenderer(cfg.Render),
		renders:  NewRenderCache(time.Duration(cfg.Explorer.RenderCacheMinutes) * time.Minute),
	}
}

func (s *Session) Tree() *avl.Tree[int, string] { return s.tree }

func (s *Session) Version() uint64 { return s.version }

// Log returns executed commands, oldest first.
func (s *Session) Log() []LogEntry { return s.log }

// Render returns the drawing of the current tree.
func (s *Session) Render() string {
	if drawing, ok := GetRendering(s.renders, s.version); ok {
		return drawing
	}
	drawing := s.renderer.Render(s.tree)
	CacheRendering(s.renders, s.version, drawing)
	return drawing
}

// Exec parses and applies a single command line such as "insert 5 five".
func (s *Session) Exec(line string) (string, error) {
	op, err := ParseCommand(line)
	if err == nil {
		var result string
		result, err = s.Apply(op)
		s.log = append(s.log, LogEntry{Line: line, Result: result, Err: err})
		return result, err
	}
	s.log = append(s.log, LogEntry{Line: line, Err: err})
	return "", err
}

// Apply runs op against the tree.
func (s *Session) Apply(op Operation) (string, error) {
	switch op.Op {
	case "insert":
		value := strconv.Itoa(op.Key)
		if op.Value != nil {
			value = *op.Value
		}
		existed := s.tree.Contains(op.Key)
		s.tree.Insert(op.Key, value)
		s.version++
		if existed {
			return fmt.Sprintf("updated %d = %q", op.Key, value), nil
		}
		return fmt.Sprintf("inserted %d = %q", op.Key, value), nil

	case "load":
		for _, k := range op.Keys {
			s.tree.Insert(k, strconv.Itoa(k))
		}
		s.version++
		return fmt.Sprintf("loaded %d keys, size %d", len(op.Keys), s.tree.Len()), nil

	case "remove":
		if !s.tree.Remove(op.Key) {
			return fmt.Sprintf("%d not present, nothing removed", op.Key), nil
		}
		s.version++
		return fmt.Sprintf("removed %d", op.Key), nil

	case "find":
		value, ok := s.tree.Find(op.Key)
		if op.Expect != nil && (!ok || value != *op.Expect) {
			return "", fmt.Errorf("%w: find %d: want %q, found %q (present=%t)", ErrExpectation, op.Key, *op.Expect, value, ok)
		}
		if !ok {
			return fmt.Sprintf("%d not found", op.Key), nil
		}
		return fmt.Sprintf("%d = %q", op.Key, value), nil

	case "check":
		return s.check()

	case "clear":
		s.tree.Clear()
		s.version++
		return "cleared", nil

	case "print":
		return s.Render(), nil

	case "help":
		return commandReference, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCommand, op.Op)
}

func (s *Session) check() (string, error) {
	if err := s.tree.Verify(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCheckFailed, err)
	}
	h, bound := s.tree.Height(), avl.HeightBound(s.tree.Len())
	if h > bound {
		return "", fmt.Errorf("%w: height %d exceeds bound %d", ErrCheckFailed, h, bound)
	}
	return fmt.Sprintf("ok: %d keys, height %d (bound %d)", s.tree.Len(), h, bound), nil
}

var commandAliases = map[string]string{
	"i":      "insert",
	"add":    "insert",
	"put":    "insert",
	"rm":     "remove",
	"del":    "remove",
	"delete": "remove",
	"get":    "find",
	"verify": "check",
	"show":   "print",
	"?":      "help",
}

// ParseCommand turns a command line into an Operation. Arguments are split
// with shell quoting rules, so values may contain spaces when quoted.
func ParseCommand(line string) (Operation, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return Operation{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(args) == 0 {
		return Operation{}, fmt.Errorf("%w: empty command", ErrUsage)
	}

	name := strings.ToLower(args[0])
	if alias, ok := commandAliases[name]; ok {
		name = alias
	}
	op := Operation{Op: name}
	rest := args[1:]

	switch name {
	case "insert":
		if len(rest) < 1 || len(rest) > 2 {
			return op, fmt.Errorf("%w: usage: insert <key> [value]", ErrUsage)
		}
		if op.Key, err = parseKey(rest[0]); err != nil {
			return op, err
		}
		if len(rest) == 2 {
			op.Value = &rest[1]
		}
	case "load":
		if len(rest) == 0 {
			return op, fmt.Errorf("%w: usage: load <key>...", ErrUsage)
		}
		op.Keys = make([]int, 0, len(rest))
		for _, arg := range rest {
			k, err := parseKey(arg)
			if err != nil {
				return op, err
			}
			op.Keys = append(op.Keys, k)
		}
	case "remove", "find":
		if len(rest) != 1 {
			return op, fmt.Errorf("%w: usage: %s <key>", ErrUsage, name)
		}
		if op.Key, err = parseKey(rest[0]); err != nil {
			return op, err
		}
	case "check", "clear", "print", "help":
		if len(rest) != 0 {
			return op, fmt.Errorf("%w: %s takes no arguments", ErrUsage, name)
		}
	default:
		return op, fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
	return op, nil
}

func parseKey(s string) (int, error) {
	k, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: key %q is not an integer", ErrUsage, s)
	}
	return k, nil
}
