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
	"math"
)

// Verify walks the whole tree and returns the first broken invariant it
// finds, wrapped around one of the Err* sentinels. A nil result means keys
// are ordered, parent links are consistent and every stored balance equals
// the real height difference, which is at most one.
func (t *Tree[K, V]) Verify() error {
	if t.root != nil && t.root.parent != nil {
		return fmt.Errorf("%w: root %v has a parent", ErrParentLink, t.root.key)
	}
	count := 0
	if _, err := verify(t.root, nil, nil, &count); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: counted %d, size %d", ErrSize, count, t.size)
	}
	return nil
}

// verify checks the subtree at n against the open key interval (lo, hi) and
// returns its height.
func verify[K cmp.Ordered, V any](n *Node[K, V], lo, hi *K, count *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	*count++

	if lo != nil && n.key <= *lo {
		return 0, fmt.Errorf("%w: %v is not greater than %v", ErrOrdering, n.key, *lo)
	}
	if hi != nil && n.key >= *hi {
		return 0, fmt.Errorf("%w: %v is not less than %v", ErrOrdering, n.key, *hi)
	}
	for _, c := range []*Node[K, V]{n.left, n.right} {
		if c != nil && c.parent != n {
			return 0, fmt.Errorf("%w: child %v of %v", ErrParentLink, c.key, n.key)
		}
	}

	lh, err := verify(n.left, lo, &n.key, count)
	if err != nil {
		return 0, err
	}
	rh, err := verify(n.right, &n.key, hi, count)
	if err != nil {
		return 0, err
	}

	diff := rh - lh
	if diff < -1 || diff > 1 {
		return 0, fmt.Errorf("%w: at %v (left %d, right %d)", ErrUnbalanced, n.key, lh, rh)
	}
	if int(n.balance) != diff {
		return 0, fmt.Errorf("%w: %v stores %d, heights give %d", ErrBalanceFactor, n.key, n.balance, diff)
	}
	return max(lh, rh) + 1, nil
}

// HeightBound returns ceil(1.44 * log2(n+2)), an upper bound on the height of
// any AVL tree holding n keys.
func HeightBound(n int) int {
	return int(math.Ceil(1.44 * math.Log2(float64(n+2))))
}
