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

// rotateRight lifts n's left child into n's place:
//
//	     n          l
//	    / \        / //	   l   c  ->  a   n
//	  / \            / //	 a   b          b   c
//
// Balance factors are left alone; the caller knows which case it is fixing
// and sets them afterwards.
func (t *Tree[K, V]) rotateRight(n *Node[K, V]) {
	l := n.left
	if l == nil {
		panic("avl: rotateRight on node without a left child")
	}
	t.replaceChild(n.parent, n, l)

	n.left = l.right
	if l.right != nil {
		l.right.parent = n
	}
	l.right = n
	n.parent = l
}

// rotateLeft is the mirror image of rotateRight.
func (t *Tree[K, V]) rotateLeft(n *Node[K, V]) {
	r := n.right
	if r == nil {
		panic("avl: rotateLeft on node without a right child")
	}
	t.replaceChild(n.parent, n, r)

	n.right = r.left
	if r.left != nil {
		r.left.parent = n
	}
	r.left = n
	n.parent = r
}
