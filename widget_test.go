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
	"image"
	"strings"
	"testing"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
)

func widgetLabels(w *widgets.Tree) []string {
	var labels []string
	w.Walk(func(n *widgets.TreeNode) bool {
		labels = append(labels, n.Value.String())
		return true
	})
	return labels
}

func bufferRow(buf *ui.Buffer, y, width int) string {
	var b strings.Builder
	for x := 1; x < width-1; x++ {
		b.WriteRune(buf.GetCell(image.Pt(x, y)).Rune)
	}
	return strings.TrimSpace(b.String())
}

func TestTreeWidgetNodes(t *testing.T) {
	cases := []struct {
		name string
		cfg  RenderConfig
		keys []int
		want []string
	}{
		{
			name: "empty tree",
			cfg:  RenderConfig{ShowBalance: true},
			want: nil,
		},
		{
			name: "left heavy",
			cfg:  RenderConfig{ShowBalance: true},
			keys: []int{4, 2, 5, 1},
			want: []string{"4 bal -1", "L 2 bal -1", "L 1 bal 0", "R 5 bal 0"},
		},
		{
			name: "right heavy with values",
			cfg:  RenderConfig{ShowValues: true, ShowBalance: true},
			keys: []int{1, 2},
			want: []string{`1 = "v1" bal +1`, `R 2 = "v2" bal 0`},
		},
		{
			name: "keys only",
			cfg:  RenderConfig{},
			keys: []int{2, 1, 3},
			want: []string{"2", "L 1", "R 3"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := NewTreeWidget(treeOf(tc.keys...), tc.cfg)
			got := widgetLabels(w)
			if strings.Join(got, "|") != strings.Join(tc.want, "|") {
				t.Errorf("labels = %q; want %q", got, tc.want)
			}
		})
	}
}

func TestTreeWidgetColorMarkup(t *testing.T) {
	w := NewTreeWidget(treeOf(4, 2, 5, 1), RenderConfig{ShowBalance: true, Color: true})
	labels := widgetLabels(w)

	want := "[4](fg:avlkey) bal [-1](fg:avlleft)"
	if labels[0] != want {
		t.Errorf("root label = %q; want %q", labels[0], want)
	}

	p := GetPalette()
	if got := ui.StyleParserColorMap[styleLeftHeavy]; got != p.LeftHeavy {
		t.Errorf("left-heavy style colour = %d; want %d", got, p.LeftHeavy)
	}
	cells := ui.ParseStyles(labels[0], ui.StyleClear)
	if cells[0].Rune != '4' || cells[0].Style.Fg != p.Key {
		t.Errorf("first cell = %q fg %d; want '4' fg %d", cells[0].Rune, cells[0].Style.Fg, p.Key)
	}
}

func TestTreeWidgetDraw(t *testing.T) {
	const width, height = 30, 6
	w := NewTreeWidget(treeOf(2, 1, 3), RenderConfig{ShowBalance: true})
	if !strings.Contains(w.Title, "3 keys, height 2") {
		t.Errorf("Title = %q; want key count and height", w.Title)
	}
	w.SetRect(0, 0, width, height)

	buf := ui.NewBuffer(w.GetRect())
	w.Draw(buf)
	if row := bufferRow(buf, 1, width); !strings.HasSuffix(row, "2 bal 0") {
		t.Errorf("row 1 = %q; want root", row)
	}
	if row := bufferRow(buf, 2, width); row != "L 1 bal 0" {
		t.Errorf("row 2 = %q; want %q", row, "L 1 bal 0")
	}
	if row := bufferRow(buf, 3, width); row != "R 3 bal 0" {
		t.Errorf("row 3 = %q; want %q", row, "R 3 bal 0")
	}

	w.CollapseAll()
	buf = ui.NewBuffer(w.GetRect())
	w.Draw(buf)
	if row := bufferRow(buf, 2, width); row != "" {
		t.Errorf("row 2 after CollapseAll = %q; want empty", row)
	}
}

func TestNavigateTreeWidget(t *testing.T) {
	w := NewTreeWidget(treeOf(4, 2, 5, 1), RenderConfig{ShowBalance: true})
	w.SetRect(0, 0, 30, 8)

	navigateTreeWidget(w, "<Down>")
	navigateTreeWidget(w, "<Enter>")
	if got := w.SelectedNode().Value.String(); got != "L 2 bal -1" {
		t.Fatalf("selected = %q; want %q", got, "L 2 bal -1")
	}
	if w.SelectedNode().Expanded {
		t.Errorf("enter did not collapse the selected node")
	}

	navigateTreeWidget(w, "G")
	if got := w.SelectedNode().Value.String(); got != "R 5 bal 0" {
		t.Errorf("bottom row = %q; want %q with 1 hidden", got, "R 5 bal 0")
	}

	navigateTreeWidget(w, "E")
	navigateTreeWidget(w, "G")
	if got := w.SelectedNode().Value.String(); got != "R 5 bal 0" {
		t.Errorf("bottom row after expand = %q; want %q", got, "R 5 bal 0")
	}
	navigateTreeWidget(w, "k")
	if got := w.SelectedNode().Value.String(); got != "L 1 bal 0" {
		t.Errorf("row above bottom = %q; want %q", got, "L 1 bal 0")
	}
}
