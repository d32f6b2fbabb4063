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
	"iter"
)

// Tree is an ordered map from K to V kept height-balanced on every mutation.
// The zero value is an empty tree ready to use. A Tree is not safe for
// concurrent use; callers sharing one must synchronize externally.
type Tree[K cmp.Ordered, V any] struct {
	root *Node[K, V]
	size int
}

// New returns an empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Root returns the root node, or nil when the tree is empty.
func (t *Tree[K, V]) Root() *Node[K, V] { return t.root }

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int { return t.size }

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[K, V]) Height() int { return height(t.root) }

// Clear drops every node.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.size = 0
}

// Find returns the value stored under key.
func (t *Tree[K, V]) Find(key K) (V, bool) {
	if n := t.find(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.find(key) != nil
}

// Min returns the node holding the smallest key, or nil.
func (t *Tree[K, V]) Min() *Node[K, V] {
	if t.root == nil {
		return nil
	}
	return leftmost(t.root)
}

// Max returns the node holding the largest key, or nil.
func (t *Tree[K, V]) Max() *Node[K, V] {
	if t.root == nil {
		return nil
	}
	return rightmost(t.root)
}

// All iterates over the key/value pairs in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := t.Min(); n != nil; n = successor(n) {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Keys returns every key in ascending order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// Walk calls fn on every node in order until fn returns false.
func (t *Tree[K, V]) Walk(fn func(*Node[K, V]) bool) {
	for n := t.Min(); n != nil; n = successor(n) {
		if !fn(n) {
			return
		}
	}
}

func (t *Tree[K, V]) find(key K) *Node[K, V] {
	n := t.root
	for n != nil {
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// replaceChild puts child where old hung below parent, or at the root when
// parent is nil. child may be nil.
func (t *Tree[K, V]) replaceChild(parent, old, child *Node[K, V]) {
	switch {
	case parent == nil:
		t.root = child
	case parent.left == old:
		parent.left = child
	default:
		parent.right = child
	}
	if child != nil {
		child.parent = parent
	}
}

// swapNodes exchanges the positions of a and b, rewiring every link that
// pointed at either of them. Keys and values travel with their nodes.
func (t *Tree[K, V]) swapNodes(a, b *Node[K, V]) {
	if a == nil || b == nil || a == b {
		return
	}
	aParent, aLeft, aRight, aWasLeft := a.parent, a.left, a.right, a.isLeftChild()
	bParent, bLeft, bRight, bWasLeft := b.parent, b.left, b.right, b.isLeftChild()

	a.parent, a.left, a.right = bParent, bLeft, bRight
	b.parent, b.left, b.right = aParent, aLeft, aRight

	// Adjacent nodes: the copied links above point a node at itself.
	switch {
	case aRight == b:
		b.right = a
		a.parent = b
	case bRight == a:
		a.right = b
		b.parent = a
	case aLeft == b:
		b.left = a
		a.parent = b
	case bLeft == a:
		a.left = b
		b.parent = a
	}

	if aParent != nil && aParent != b {
		if aWasLeft {
			aParent.left = b
		} else {
			aParent.right = b
		}
	}
	if aLeft != nil && aLeft != b {
		aLeft.parent = b
	}
	if aRight != nil && aRight != b {
		aRight.parent = b
	}

	if bParent != nil && bParent != a {
		if bWasLeft {
			bParent.left = a
		} else {
			bParent.right = a
		}
	}
	if bLeft != nil && bLeft != a {
		bLeft.parent = a
	}
	if bRight != nil && bRight != a {
		bRight.parent = a
	}

	switch t.root {
	case a:
		t.root = b
	case b:
		t.root = a
	}
}

func leftmost[K cmp.Ordered, V any](n *Node[K, V]) *Node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[K cmp.Ordered, V any](n *Node[K, V]) *Node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// predecessor returns the node with the next smaller key, or nil.
func predecessor[K cmp.Ordered, V any](n *Node[K, V]) *Node[K, V] {
	if n.left != nil {
		return rightmost(n.left)
	}
	for n.parent != nil && n.isLeftChild() {
		n = n.parent
	}
	return n.parent
}

// successor returns the node with the next larger key, or nil.
func successor[K cmp.Ordered, V any](n *Node[K, V]) *Node[K, V] {
	if n.right != nil {
		return leftmost(n.right)
	}
	for n.parent != nil && !n.isLeftChild() {
		n = n.parent
	}
	return n.parent
}

// height counts the nodes on the longest path down from n. An empty subtree
// has height 0.
func height[K cmp.Ordered, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	return max(height(n.left), height(n.right)) + 1
}
