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

// swap exchanges the tree positions of a and b together with their balance
// factors, so each position keeps the balance that describes its shape.
func (t *Tree[K, V]) swap(a, b *Node[K, V]) {
	t.swapNodes(a, b)
	a.balance, b.balance = b.balance, a.balance
}
