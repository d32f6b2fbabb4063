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
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/avlbst/avl"
)

// Renderer draws a tree top-down, one node per line, children indented
// below their parent and tagged L or R.
type Renderer struct {
	cfg RenderConfig

	key, value, branch       lipgloss.Style
	leftHeavy, even, rightHv lipgloss.Style
}

func NewRenderer(cfg RenderConfig) *Renderer {
	r := &Renderer{cfg: cfg}
	if !cfg.Color {
		return r
	}

	p := GetPalette()
	r.key = lipgloss.NewStyle().Foreground(lipglossColor(p.Key)).Bold(true)
	r.value = lipgloss.NewStyle().Foreground(lipglossColor(p.Value)).Italic(true)
	r.branch = lipgloss.NewStyle().Foreground(lipglossColor(p.Branch))
	r.leftHeavy = lipgloss.NewStyle().Foreground(lipglossColor(p.LeftHeavy))
	r.even = lipgloss.NewStyle().Foreground(lipglossColor(p.Even))
	r.rightHv = lipgloss.NewStyle().Foreground(lipglossColor(p.RightHeavy))
	return r
}

// Render returns the drawing of tree, or "(empty)".
func (r *Renderer) Render(tree *avl.Tree[int, string]) string {
	root := tree.Root()
	if root == nil {
		return "(empty)"
	}

	var b strings.Builder
	b.WriteString(r.label(root))
	b.WriteByte('\n')
	r.writeChildren(&b, root, "")
	return strings.TrimSuffix(b.String(), "\n")
}

func (r *Renderer) writeChildren(b *strings.Builder, n *avl.Node[int, string], prefix string) {
	type edge struct {
		tag   string
		child *avl.Node[int, string]
	}
	var edges []edge
	if n.Left() != nil {
		edges = append(edges, edge{"L", n.Left()})
	}
	if n.Right() != nil {
		edges = append(edges, edge{"R", n.Right()})
	}

	for i, e := range edges {
		connector, indent := "├─", "│  "
		if i == len(edges)-1 {
			connector, indent = "└─", "   "
		}
		b.WriteString(prefix)
		b.WriteString(r.paint(r.branch, connector+e.tag))
		b.WriteByte(' ')
		b.WriteString(r.label(e.child))
		b.WriteByte('\n')
		r.writeChildren(b, e.child, prefix+r.paint(r.branch, indent))
	}
}

func (r *Renderer) label(n *avl.Node[int, string]) string {
	parts := []string{r.paint(r.key, fmt.Sprint(n.Key()))}
	if r.cfg.ShowValues {
		parts = append(parts, "=", r.paint(r.value, fmt.Sprintf("%q", n.Value())))
	}
	if r.cfg.ShowBalance {
		parts = append(parts, r.balance(n.Balance()))
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) balance(b int8) string {
	switch {
	case b < 0:
		return r.paint(r.leftHeavy, fmt.Sprintf("[%d]", b))
	case b > 0:
		return r.paint(r.rightHv, fmt.Sprintf("[+%d]", b))
	default:
		return r.paint(r.even, "[0]")
	}
}

func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if !r.cfg.Color {
		return s
	}
	return style.Render(s)
}
