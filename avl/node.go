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

// Package avl implements a height-balanced binary search tree that keeps a
// signed balance factor on every node and repairs it with rotations after
// each insertion and removal.
package avl

import "cmp"

// Node is a single cell of a Tree. Left and right links own their subtrees;
// the parent link is only used to walk back towards the root.
type Node[K cmp.Ordered, V any] struct {
	key   K
	value V

	parent, left, right *Node[K, V]
	balance             int8 // height(right) - height(left)
}

func newNode[K cmp.Ordered, V any](key K, value V, parent *Node[K, V]) *Node[K, V] {
	return &Node[K, V]{key: key, value: value, parent: parent}
}

// Key returns the node's key.
func (n *Node[K, V]) Key() K { return n.key }

// Value returns the payload stored with the key.
func (n *Node[K, V]) Value() V { return n.value }

// Parent returns the parent node, or nil for the root.
func (n *Node[K, V]) Parent() *Node[K, V] { return n.parent }

// Left returns the left child, or nil.
func (n *Node[K, V]) Left() *Node[K, V] { return n.left }

// Right returns the right child, or nil.
func (n *Node[K, V]) Right() *Node[K, V] { return n.right }

// Balance returns height(right subtree) - height(left subtree). Outside of a
// mutating call it is always -1, 0 or 1.
func (n *Node[K, V]) Balance() int8 { return n.balance }

func (n *Node[K, V]) setBalance(b int8) { n.balance = b }

func (n *Node[K, V]) updateBalance(diff int8) { n.balance += diff }

func (n *Node[K, V]) isLeftChild() bool {
	return n.parent != nil && n.parent.left == n
}

// side reports which way the parent has to lean to reach n: -1 for a left
// child, +1 for a right child and 0 for the root.
func (n *Node[K, V]) side() int8 {
	switch {
	case n.parent == nil:
		return 0
	case n.parent.left == n:
		return -1
	default:
		return 1
	}
}
