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
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/cybrota/avlbst/avl"
	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"
)

// progressStep is how many operations pass between progress bar updates.
const progressStep = 1024

// Workload is a generated sequence of distinct keys to insert followed by a
// subset of them to remove.
type Workload struct {
	Inserts []int
	Removes []int
}

// GenerateWorkload draws up to cfg.Size distinct keys from a space ten times
// that size. A bloom filter screens candidates; a false positive only costs
// a redraw, so the keys stay distinct.
func GenerateWorkload(cfg BenchConfig) Workload {
	rng := rand.New(rand.NewSource(cfg.Seed))
	seen := bloom.New(cfg.BloomSize, cfg.BloomHashes)
	space := max(cfg.Size*10, 16)

	// A saturated filter rejects everything; give up rather than spin.
	maxDraws := cfg.Size*100 + 100

	inserts := make([]int, 0, cfg.Size)
	for draws := 0; len(inserts) < cfg.Size && draws < maxDraws; draws++ {
		k := rng.Intn(space)
		s := strconv.Itoa(k)
		if seen.TestString(s) {
			continue
		}
		seen.AddString(s)
		inserts = append(inserts, k)
	}

	removes := make([]int, int(float64(len(inserts))*cfg.RemoveRatio))
	for i, j := range rng.Perm(len(inserts))[:len(removes)] {
		removes[i] = inserts[j]
	}
	return Workload{Inserts: inserts, Removes: removes}
}

type BenchReport struct {
	Inserted   int
	Removed    int
	Size       int
	Height     int
	Bound      int
	InsertTime time.Duration
	RemoveTime time.Duration
}

func (r *BenchReport) String() string {
	return fmt.Sprintf(
		"inserted %d keys in %v, removed %d in %v\nfinal size %d, height %d (AVL bound %d)",
		r.Inserted, r.InsertTime, r.Removed, r.RemoveTime, r.Size, r.Height, r.Bound,
	)
}

// RunBench replays w against a fresh tree and verifies it afterwards.
// Progress goes to progressOut when it is non-nil.
func RunBench(w Workload, progressOut io.Writer) (*BenchReport, error) {
	var bar *progressbar.ProgressBar
	if progressOut != nil {
		bar = progressbar.NewOptions(len(w.Inserts)+len(w.Removes),
			progressbar.OptionSetWriter(progressOut),
			progressbar.OptionSetDescription("🌳 Running workload..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(progressOut, "\n✅ Workload completed!\n")
			}),
		)
	}
	tick := func(done int) {
		if bar != nil && done%progressStep == 0 {
			bar.Add(progressStep)
		}
	}

	tree := avl.New[int, struct{}]()
	report := &BenchReport{}

	start := time.Now()
	for i, k := range w.Inserts {
		tree.Insert(k, struct{}{})
		tick(i + 1)
	}
	report.InsertTime = time.Since(start)
	report.Inserted = len(w.Inserts)

	start = time.Now()
	for i, k := range w.Removes {
		if tree.Remove(k) {
			report.Removed++
		}
		tick(len(w.Inserts) + i + 1)
	}
	report.RemoveTime = time.Since(start)

	if bar != nil {
		bar.Finish()
	}

	report.Size = tree.Len()
	report.Height = tree.Height()
	report.Bound = avl.HeightBound(report.Size)

	if err := tree.Verify(); err != nil {
		return report, fmt.Errorf("%w: %w", ErrCheckFailed, err)
	}
	if report.Height > report.Bound {
		return report, fmt.Errorf("%w: height %d exceeds bound %d", ErrCheckFailed, report.Height, report.Bound)
	}
	return report, nil
}
