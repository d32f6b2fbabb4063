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

import "cmp"

// shape names the path grandparent -> parent -> new node taken when an
// insertion pushes the grandparent's balance to +/-2.
type shape uint8

const (
	leftLeft shape = iota
	leftRight
	rightLeft
	rightRight
)

func shapeOf[K cmp.Ordered, V any](g, p, n *Node[K, V]) shape {
	switch {
	case p == g.left && n == p.left:
		return leftLeft
	case p == g.left:
		return leftRight
	case n == p.right:
		return rightRight
	default:
		return rightLeft
	}
}

// Insert stores value under key. An existing key has its value replaced in
// place and the tree shape is not touched.
func (t *Tree[K, V]) Insert(key K, value V) {
	if t.root == nil {
		t.root = newNode(key, value, nil)
		t.size++
		return
	}

	p := t.root
	var n *Node[K, V]
	for n == nil {
		switch c := cmp.Compare(key, p.key); {
		case c == 0:
			p.value = value
			return
		case c < 0:
			if p.left == nil {
				n = newNode(key, value, p)
				p.left = n
			} else {
				p = p.left
			}
		default:
			if p.right == nil {
				n = newNode(key, value, p)
				p.right = n
			} else {
				p = p.right
			}
		}
	}
	t.size++

	// The new leaf filled the short side of p: p's height is unchanged.
	if p.balance != 0 {
		p.setBalance(0)
		return
	}
	p.setBalance(n.side())
	t.insertFix(p, n)
}

// insertFix walks up from p, whose subtree just grew by one through child n,
// until the growth is absorbed or a rotation restores the old height.
func (t *Tree[K, V]) insertFix(p, n *Node[K, V]) {
	for {
		g := p.parent
		if g == nil {
			return
		}
		dir := p.side()
		g.updateBalance(dir)

		switch g.balance {
		case 0:
			return
		case dir:
			p, n = g, p
			continue
		}

		t.rebalanceInsert(g, p, n)
		return
	}
}

// rebalanceInsert fixes a grandparent g left at +/-2 by an insertion that
// arrived through p and n. The subtree ends up at its pre-insert height.
func (t *Tree[K, V]) rebalanceInsert(g, p, n *Node[K, V]) {
	switch shapeOf(g, p, n) {
	case leftLeft:
		t.rotateRight(g)
		g.setBalance(0)
		p.setBalance(0)
	case rightRight:
		t.rotateLeft(g)
		g.setBalance(0)
		p.setBalance(0)
	case leftRight:
		t.rotateLeft(p)
		t.rotateRight(g)
		switch n.balance {
		case -1:
			n.setBalance(0)
			p.setBalance(0)
			g.setBalance(1)
		case 0:
			p.setBalance(0)
			g.setBalance(0)
		case 1:
			n.setBalance(0)
			p.setBalance(-1)
			g.setBalance(0)
		}
	case rightLeft:
		t.rotateRight(p)
		t.rotateLeft(g)
		switch n.balance {
		case -1:
			n.setBalance(0)
			p.setBalance(1)
			g.setBalance(0)
		case 0:
			p.setBalance(0)
			g.setBalance(0)
		case 1:
			n.setBalance(0)
			p.setBalance(0)
			g.setBalance(-1)
		}
	}
}
