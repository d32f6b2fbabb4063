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
	"fmt"
)

// Remove deletes key from the tree and reports whether it was present.
// Removing an absent key is a no-op.
func (t *Tree[K, V]) Remove(key K) bool {
	n := t.find(key)
	if n == nil {
		return false
	}

	// Trade places with the in-order predecessor so the node we unlink has
	// at most one child.
	if n.left != nil && n.right != nil {
		t.swap(predecessor(n), n)
	}

	p := n.parent
	diff := -n.side()

	child := n.left
	if child == nil {
		child = n.right
	}
	t.replaceChild(p, n, child)
	n.parent, n.left, n.right = nil, nil, nil
	t.size--

	t.removeFix(p, diff)
	return true
}

// removeFix walks up from n after one of its subtrees lost a level. diff is
// the correction n has to absorb: +1 when the left side shrank, -1 when the
// right side did.
func (t *Tree[K, V]) removeFix(n *Node[K, V], diff int8) {
	for n != nil {
		p := n.parent
		nextDiff := -n.side()

		switch b := n.balance + diff; b {
		case -2:
			if !t.fixLeftHeavy(n) {
				return
			}
		case 2:
			if !t.fixRightHeavy(n) {
				return
			}
		case -1, 1:
			n.setBalance(b)
			return
		case 0:
			n.setBalance(0)
		default:
			panic(fmt.Sprintf("avl: balance %d out of range during removal", b))
		}
		n, diff = p, nextDiff
	}
}

// tallerChild returns the child on the heavy side of a node whose pending
// balance is b. The stored balance factors already encode which subtree is
// higher, so no height walk is needed.
func tallerChild[K cmp.Ordered, V any](n *Node[K, V], b int8) *Node[K, V] {
	if b < 0 {
		return n.left
	}
	return n.right
}

// fixLeftHeavy rotates a node whose left side is two levels taller and
// reports whether the subtree came out one level shorter.
func (t *Tree[K, V]) fixLeftHeavy(n *Node[K, V]) bool {
	c := tallerChild(n, -2)
	switch c.balance {
	case -1:
		t.rotateRight(n)
		n.setBalance(0)
		c.setBalance(0)
		return true
	case 0:
		t.rotateRight(n)
		n.setBalance(-1)
		c.setBalance(1)
		return false
	default:
		g := c.right
		t.rotateLeft(c)
		t.rotateRight(n)
		switch g.balance {
		case 1:
			n.setBalance(0)
			c.setBalance(-1)
		case 0:
			n.setBalance(0)
			c.setBalance(0)
		case -1:
			n.setBalance(1)
			c.setBalance(0)
		}
		g.setBalance(0)
		return true
	}
}

// fixRightHeavy is the mirror image of fixLeftHeavy.
func (t *Tree[K, V]) fixRightHeavy(n *Node[K, V]) bool {
	c := tallerChild(n, 2)
	switch c.balance {
	case 1:
		t.rotateLeft(n)
		n.setBalance(0)
		c.setBalance(0)
		return true
	case 0:
		t.rotateLeft(n)
		n.setBalance(1)
		c.setBalance(-1)
		return false
	default:
		g := c.left
		t.rotateRight(c)
		t.rotateLeft(n)
		switch g.balance {
		case -1:
			n.setBalance(0)
			c.setBalance(1)
		case 0:
			n.setBalance(0)
			c.setBalance(0)
		case 1:
			n.setBalance(-1)
			c.setBalance(0)
		}
		g.setBalance(0)
		return true
	}
}
