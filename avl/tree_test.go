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

package avl

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TreeTestCase struct {
	Name          string
	InitialKeys   []string
	KeysToInsert  []string
	KeysToDelete  []string
	ExpectedOrder []string // In-order traversal expectation after operations
}

func TestTreeOperations(t *testing.T) {
	testCases := []TreeTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []string{"apple", "banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Insertion with Balancing (Right-Heavy)",
			InitialKeys:   []string{"apple"},
			KeysToInsert:  []string{"banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Deletion with Balancing (Left-Heavy)",
			InitialKeys:   []string{"cherry", "banana", "apple"},
			KeysToDelete:  []string{"cherry"},
			ExpectedOrder: []string{"apple", "banana"},
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []string{"dog", "cat"},
			KeysToInsert:  []string{"elephant", "bird"},
			KeysToDelete:  []string{"cat"},
			ExpectedOrder: []string{"bird", "dog", "elephant"},
		},
		{
			Name:          "Delete Everything",
			InitialKeys:   []string{"b", "a", "c"},
			KeysToDelete:  []string{"b", "a", "c"},
			ExpectedOrder: []string{},
		},
		{
			Name:          "Delete Missing Key",
			InitialKeys:   []string{"b", "a"},
			KeysToDelete:  []string{"zebra"},
			ExpectedOrder: []string{"a", "b"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := New[string, int]()
			for i, key := range tc.InitialKeys {
				tree.Insert(key, i)
			}
			for i, key := range tc.KeysToInsert {
				tree.Insert(key, i)
			}
			for _, key := range tc.KeysToDelete {
				tree.Remove(key)
			}
			if got := tree.Keys(); !slices.Equal(got, tc.ExpectedOrder) {
				t.Errorf("in-order keys = %v; want %v", got, tc.ExpectedOrder)
			}
			if err := tree.Verify(); err != nil {
				t.Errorf("Verify() = %v", err)
			}
		})
	}
}

// preorder lists "key:balance" for every node, root first.
func preorder[K cmp.Ordered, V any](tree *Tree[K, V]) []string {
	var out []string
	var walk func(n *Node[K, V])
	walk = func(n *Node[K, V]) {
		if n == nil {
			return
		}
		out = append(out, fmt.Sprintf("%v:%d", n.Key(), n.Balance()))
		walk(n.Left())
		walk(n.Right())
	}
	walk(tree.Root())
	return out
}

func buildTree(keys ...int) *Tree[int, string] {
	tree := New[int, string]()
	for _, k := range keys {
		tree.Insert(k, fmt.Sprint(k))
	}
	return tree
}

func TestInsertRotations(t *testing.T) {
	balanced := []string{"2:0", "1:0", "3:0"}
	cases := []struct {
		name string
		keys []int
		want []string
	}{
		{"right-right single rotation", []int{1, 2, 3}, balanced},
		{"left-left single rotation", []int{3, 2, 1}, balanced},
		{"left-right double rotation", []int{3, 1, 2}, balanced},
		{"right-left double rotation", []int{1, 3, 2}, balanced},
		{
			"left-right with heavy grandchild",
			[]int{5, 2, 8, 1, 4, 3},
			[]string{"4:0", "2:0", "1:0", "3:0", "5:1", "8:0"},
		},
		{
			"right-left with heavy grandchild",
			[]int{1, 4, -2, 5, 2, 3},
			[]string{"2:0", "1:-1", "-2:0", "4:0", "3:0", "5:0"},
		},
		{
			"growth absorbed by parent",
			[]int{2, 1, 3, 4},
			[]string{"2:1", "1:0", "3:1", "4:0"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tree := buildTree(tc.keys...)
			assert.Equal(t, tc.want, preorder(tree))
			assert.Equal(t, len(tc.keys), tree.Len())
			require.NoError(t, tree.Verify())
		})
	}
}

func TestRootOfThreeAfterSingleRotation(t *testing.T) {
	tree := buildTree(1, 2, 3)
	root := tree.Root()
	require.NotNil(t, root)
	assert.Equal(t, 2, root.Key())
	assert.Nil(t, root.Parent())
	assert.Equal(t, 1, root.Left().Key())
	assert.Equal(t, 3, root.Right().Key())
	assert.Same(t, root, root.Left().Parent())
	assert.Same(t, root, root.Right().Parent())
}

func TestInsertExistingKeyUpdatesInPlace(t *testing.T) {
	tree := buildTree(50, 25, 75, 10, 30, 60, 90, 5)
	before := preorder(tree)

	tree.Insert(30, "thirty")

	assert.Equal(t, before, preorder(tree))
	assert.Equal(t, 8, tree.Len())
	v, ok := tree.Find(30)
	require.True(t, ok)
	assert.Equal(t, "thirty", v)
}

func TestRemove(t *testing.T) {
	cases := []struct {
		name   string
		keys   []int
		remove int
		want   []string
	}{
		{"leaf, shrink absorbed", []int{2, 1, 3}, 3, []string{"2:-1", "1:0"}},
		{"one child spliced up", []int{2, 1, 3, 4}, 3, []string{"2:0", "1:0", "4:0"}},
		{"two children, predecessor is left child", []int{2, 1, 3}, 2, []string{"1:1", "3:0"}},
		{
			"two children, predecessor deep in left subtree",
			[]int{4, 2, 6, 1, 3, 5, 7}, 4,
			[]string{"3:0", "2:-1", "1:0", "6:0", "5:0", "7:0"},
		},
		{"rotation keeps height", []int{2, 1, 4, 3, 5}, 1, []string{"4:-1", "2:1", "3:0", "5:0"}},
		{"rotation shrinks subtree", []int{2, 1, 3, 4}, 1, []string{"3:0", "2:0", "4:0"}},
		{"right-left double rotation", []int{3, 2, 5, 4}, 2, []string{"4:0", "3:0", "5:0"}},
		{"left-right double rotation", []int{3, 1, 4, 2}, 4, []string{"2:0", "1:0", "3:0"}},
		{"only node", []int{7}, 7, nil},
		{"root with one child", []int{7, 9}, 7, []string{"9:0"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tree := buildTree(tc.keys...)
			require.True(t, tree.Remove(tc.remove))
			assert.Equal(t, tc.want, preorder(tree))
			assert.False(t, tree.Contains(tc.remove))
			assert.Equal(t, len(tc.keys)-1, tree.Len())
			require.NoError(t, tree.Verify())
		})
	}
}

func TestRemoveAbsentKeyIsNoop(t *testing.T) {
	tree := buildTree(4, 2, 6, 1)
	before := preorder(tree)

	assert.False(t, tree.Remove(42))
	assert.Equal(t, before, preorder(tree))
	assert.Equal(t, 4, tree.Len())

	empty := New[int, string]()
	assert.False(t, empty.Remove(1))
	assert.Nil(t, empty.Root())
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 2025} {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewSource(seed))
			tree := New[int, int]()
			want := make(map[int]int)

			for i := 0; i < 3000; i++ {
				key := rng.Intn(400)
				if rng.Intn(3) == 0 {
					_, had := want[key]
					delete(want, key)
					require.Equal(t, had, tree.Remove(key), "remove %d", key)
				} else {
					want[key] = i
					tree.Insert(key, i)
				}
				require.NoError(t, tree.Verify(), "after op %d on key %d", i, key)
				require.Equal(t, len(want), tree.Len())
			}

			keys := make([]int, 0, len(want))
			for k := range want {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			assert.Equal(t, keys, tree.Keys())
			for k, v := range want {
				got, ok := tree.Find(k)
				require.True(t, ok, "key %d missing", k)
				assert.Equal(t, v, got)
			}
		})
	}
}

func TestInsertThenRemoveSubset(t *testing.T) {
	const n = 500
	rng := rand.New(rand.NewSource(3))
	keys := rng.Perm(n)

	tree := New[int, string]()
	for _, k := range keys {
		tree.Insert(k, fmt.Sprint(k))
	}
	removed := keys[:200]
	for _, k := range removed {
		require.True(t, tree.Remove(k))
	}

	require.NoError(t, tree.Verify())
	assert.Equal(t, n-len(removed), tree.Len())
	for _, k := range removed {
		assert.False(t, tree.Contains(k))
	}
	for _, k := range keys[200:] {
		v, ok := tree.Find(k)
		require.True(t, ok)
		assert.Equal(t, fmt.Sprint(k), v)
	}
}

func TestHeightBound(t *testing.T) {
	ascending := New[int, struct{}]()
	random := New[int, struct{}]()
	perm := rand.New(rand.NewSource(11)).Perm(4096)

	for n := 1; n <= len(perm); n++ {
		ascending.Insert(n, struct{}{})
		random.Insert(perm[n-1], struct{}{})
		bound := HeightBound(n)
		if h := ascending.Height(); h > bound {
			t.Fatalf("ascending: height %d exceeds bound %d at n=%d", h, bound, n)
		}
		if h := random.Height(); h > bound {
			t.Fatalf("random: height %d exceeds bound %d at n=%d", h, bound, n)
		}
	}
}

func TestVerifyDetectsCorruption(t *testing.T) {
	t.Run("balance factor", func(t *testing.T) {
		tree := buildTree(2, 1, 3)
		tree.Root().setBalance(1)
		assert.True(t, errors.Is(tree.Verify(), ErrBalanceFactor))
	})

	t.Run("unbalanced", func(t *testing.T) {
		tree := buildTree(2, 1, 3, 4)
		four := tree.Root().Right().Right()
		four.right = newNode(5, "5", four)
		four.setBalance(1)
		tree.size++
		assert.ErrorIs(t, tree.Verify(), ErrUnbalanced)
	})

	t.Run("parent link", func(t *testing.T) {
		tree := buildTree(2, 1, 3)
		tree.Root().Left().parent = nil
		assert.ErrorIs(t, tree.Verify(), ErrParentLink)
	})

	t.Run("ordering", func(t *testing.T) {
		tree := buildTree(2, 1, 3)
		tree.Root().Left().key = 9
		assert.ErrorIs(t, tree.Verify(), ErrOrdering)
	})

	t.Run("size", func(t *testing.T) {
		tree := buildTree(2, 1, 3)
		tree.size = 5
		assert.ErrorIs(t, tree.Verify(), ErrSize)
	})
}

func TestHeightBoundValues(t *testing.T) {
	cases := map[int]int{0: 2, 1: 3, 2: 3, 10: 6, 1000: 15}
	for n, want := range cases {
		if got := HeightBound(n); got != want {
			t.Errorf("HeightBound(%d) = %d; want %d", n, got, want)
		}
	}
}
