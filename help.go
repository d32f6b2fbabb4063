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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

const commandReference = `# Commands
* **insert** <key> [value] (aliases: i, add, put): insert a key or update its value
* **load** <key>...: insert several keys, each valued with its own key
* **remove** <key> (aliases: rm, del, delete): remove a key; absent keys are ignored
* **find** <key> (alias: get): look a key up
* **check** (alias: verify): verify ordering, parent links, balance factors and the height bound
* **print** (alias: show): draw the tree
* **clear**: drop every key
* **help** (alias: ?): show this reference

Quote values containing spaces: insert 7 "seven days".

# Explorer keys
* **enter**: run the command line
* **ctrl+y**: copy the current drawing to the clipboard
* **f1**: toggle this help
* **pgup / pgdown**: scroll the tree
* **esc / ctrl+c**: quit
`

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avlbst %s**

Explore a height-balanced binary search tree: insert and remove keys, watch
the rotations, and check that every balance factor stays in {-1, 0, +1}.

Built with Go %s

# Subcommands
* **explore** (default): interactive explorer
* **print** <key>...: insert keys and draw the resulting tree; --widget browses it full screen (j/k move, enter folds, q quits)
* **replay** <script.yaml>: run a YAML script of operations
* **bench**: random insert/remove workload with invariant check
* **settings**: show (and create) ~/.avlbst.yaml
* **version**

%s
# License
Licensed under the Apache License, Version 2.0
`, version, runtime.Version(), commandReference)
	result := markdown.Render(message, 80, 3)
	return string(result)
}
