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
	"testing"

	"github.com/cybrota/avlbst/avl"
)

func treeOf(keys ...int) *avl.Tree[int, string] {
	tree := avl.New[int, string]()
	for _, k := range keys {
		tree.Insert(k, "v"+string(rune('0'+k%10)))
	}
	return tree
}

func TestRenderer(t *testing.T) {
	cases := []struct {
		name string
		cfg  RenderConfig
		keys []int
		want string
	}{
		{
			name: "empty tree",
			cfg:  RenderConfig{ShowBalance: true},
			want: "(empty)",
		},
		{
			name: "balances",
			cfg:  RenderConfig{ShowBalance: true},
			keys: []int{4, 2, 6, 1, 3},
			want: "4 [-1]\n" +
				"├─L 2 [0]\n" +
				"│  ├─L 1 [0]\n" +
				"│  └─R 3 [0]\n" +
				"└─R 6 [0]",
		},
		{
			name: "single right child",
			cfg:  RenderConfig{ShowBalance: true},
			keys: []int{1, 2},
			want: "1 [+1]\n└─R 2 [0]",
		},
		{
			name: "values without balances",
			cfg:  RenderConfig{ShowValues: true},
			keys: []int{2, 1},
			want: "2 = \"v2\"\n└─L 1 = \"v1\"",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewRenderer(tc.cfg).Render(treeOf(tc.keys...))
			if got != tc.want {
				t.Errorf("Render() =\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}
