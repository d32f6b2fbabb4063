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

import "errors"

// Invariant violations reported by Verify.
var (
	// ErrOrdering indicates a key sits on the wrong side of an ancestor.
	ErrOrdering = errors.New("avl: keys out of order")

	// ErrParentLink indicates a child whose parent link does not point back.
	ErrParentLink = errors.New("avl: broken parent link")

	// ErrBalanceFactor indicates a stored balance that disagrees with the
	// subtree heights.
	ErrBalanceFactor = errors.New("avl: stored balance factor is wrong")

	// ErrUnbalanced indicates subtree heights differing by more than one.
	ErrUnbalanced = errors.New("avl: subtree heights differ by more than one")

	// ErrSize indicates the node count disagrees with Len.
	ErrSize = errors.New("avl: node count does not match size")
)
