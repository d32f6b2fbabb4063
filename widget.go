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

	"github.com/cybrota/avlbst/avl"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
)

// Style names registered with termui's markup parser for palette colours.
const (
	styleKey        = "avlkey"
	styleValue      = "avlvalue"
	styleLeftHeavy  = "avlleft"
	styleEven       = "avleven"
	styleRightHeavy = "avlright"
	styleBranch     = "avlbranch"
)

// nodeLabel is the text of one widget row.
type nodeLabel string

func (l nodeLabel) String() string { return string(l) }

// registerPaletteStyles makes the palette usable as [text](fg:avlkey) markup.
func registerPaletteStyles(p *Palette) {
	ui.StyleParserColorMap[styleKey] = p.Key
	ui.StyleParserColorMap[styleValue] = p.Value
	ui.StyleParserColorMap[styleLeftHeavy] = p.LeftHeavy
	ui.StyleParserColorMap[styleEven] = p.Even
	ui.StyleParserColorMap[styleRightHeavy] = p.RightHeavy
	ui.StyleParserColorMap[styleBranch] = p.Branch
}

// widgetNodes converts a tree into termui tree nodes, left child first.
func widgetNodes(tree *avl.Tree[int, string], cfg RenderConfig) []*widgets.TreeNode {
	if tree.Root() == nil {
		return nil
	}
	return []*widgets.TreeNode{widgetNode(tree.Root(), "", cfg)}
}

func widgetNode(n *avl.Node[int, string], tag string, cfg RenderConfig) *widgets.TreeNode {
	node := &widgets.TreeNode{
		Value:    nodeLabel(widgetLabel(n, tag, cfg)),
		Expanded: true,
	}
	if n.Left() != nil {
		node.Nodes = append(node.Nodes, widgetNode(n.Left(), "L", cfg))
	}
	if n.Right() != nil {
		node.Nodes = append(node.Nodes, widgetNode(n.Right(), "R", cfg))
	}
	return node
}

func widgetLabel(n *avl.Node[int, string], tag string, cfg RenderConfig) string {
	markup := func(style, s string) string {
		if !cfg.Color || s == "" {
			return s
		}
		return fmt.Sprintf("[%s](fg:%s)", s, style)
	}

	var parts []string
	if tag != "" {
		parts = append(parts, markup(styleBranch, tag))
	}
	parts = append(parts, markup(styleKey, fmt.Sprint(n.Key())))
	if cfg.ShowValues {
		// brackets would end a styled span early
		value := strings.NewReplacer("[", "(", "]", ")").Replace(n.Value())
		parts = append(parts, "=", markup(styleValue, fmt.Sprintf("%q", value)))
	}
	if cfg.ShowBalance {
		b := n.Balance()
		switch {
		case b < 0:
			parts = append(parts, "bal", markup(styleLeftHeavy, fmt.Sprint(b)))
		case b > 0:
			parts = append(parts, "bal", markup(styleRightHeavy, fmt.Sprintf("+%d", b)))
		default:
			parts = append(parts, "bal", markup(styleEven, "0"))
		}
	}
	return strings.Join(parts, " ")
}

// NewTreeWidget builds a scrollable, collapsible termui view of tree.
func NewTreeWidget(tree *avl.Tree[int, string], cfg RenderConfig) *widgets.Tree {
	p := GetPalette()
	if cfg.Color {
		registerPaletteStyles(p)
	}

	w := widgets.NewTree()
	w.Title = fmt.Sprintf(" Tree · %d keys, height %d ", tree.Len(), tree.Height())
	w.TitleStyle = ui.NewStyle(p.Title)
	w.BorderStyle = ui.NewStyle(p.Border)
	w.TextStyle = ui.NewStyle(p.Key)
	w.SelectedRowStyle = ui.NewStyle(ui.ColorBlack, p.BorderFocus)
	w.WrapText = false
	if !cfg.Color {
		w.TitleStyle = ui.StyleClear
		w.BorderStyle = ui.StyleClear
		w.TextStyle = ui.StyleClear
		w.SelectedRowStyle = ui.NewStyle(ui.ColorClear, ui.ColorClear, ui.ModifierReverse)
	}
	w.SetNodes(widgetNodes(tree, cfg))
	return w
}

// runTreeWidget shows tree full screen until q, esc or ctrl+c.
func runTreeWidget(tree *avl.Tree[int, string], cfg RenderConfig) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	defer ui.Close()

	w := NewTreeWidget(tree, cfg)
	termWidth, termHeight := ui.TerminalDimensions()
	w.SetRect(0, 0, termWidth, termHeight)
	ui.Render(w)

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<Escape>", "<C-c>":
			return nil
		case "<Resize>":
			if payload, ok := e.Payload.(ui.Resize); ok {
				w.SetRect(0, 0, payload.Width, payload.Height)
				ui.Clear()
			}
		}
		// the widget indexes its rows by selection, so an empty tree has nothing to move through
		if tree.Len() > 0 {
			navigateTreeWidget(w, e.ID)
		}
		ui.Render(w)
	}
	return nil
}

func navigateTreeWidget(w *widgets.Tree, id string) {
	switch id {
	case "j", "<Down>":
		w.ScrollDown()
	case "k", "<Up>":
		w.ScrollUp()
	case "<PageDown>":
		w.ScrollPageDown()
	case "<PageUp>":
		w.ScrollPageUp()
	case "g", "<Home>":
		w.ScrollTop()
	case "G", "<End>":
		w.ScrollBottom()
	case "<Enter>", "<Space>":
		w.ToggleExpand()
	case "E":
		w.ExpandAll()
	case "C":
		w.CollapseAll()
	}
}
