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
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var version = "dev"

func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		return defaults()
	}
	return config
}

func main() {
	banner := fmt.Sprintf("avlbst %s%s%s: a height-balanced binary search tree explorer", Green, version, Reset)

	explore := func(cmd *cobra.Command, args []string) {
		session := NewSession(loadConfigOrDefault())
		for _, arg := range args {
			if _, err := session.Exec("insert " + arg); err != nil {
				log.Fatalf("Error loading key %q: %v", arg, err)
			}
		}
		if err := runExplorer(session); err != nil {
			log.Fatalf("Error running explorer: %v", err)
		}
	}

	var cmdExplore = &cobra.Command{
		Use:   "explore [key...]",
		Short: "Launches the interactive tree explorer",
		Long:  fmt.Sprintf("%s\n\n%s", banner, "Explore opens an interactive session; optional keys are inserted first"),
		Run:   explore,
	}

	var cmdPrint = &cobra.Command{
		Use:   "print <key>...",
		Short: "Insert keys in order and draw the resulting tree",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			if values, _ := cmd.Flags().GetBool("values"); values {
				config.Render.ShowValues = true
			}
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				config.Render.Color = false
			}

			keys := make([]int, 0, len(args))
			for _, arg := range args {
				k, err := strconv.Atoi(arg)
				if err != nil {
					log.Fatalf("Invalid key %q: not an integer", arg)
				}
				keys = append(keys, k)
			}

			session := NewSession(config)
			if _, err := session.Apply(Operation{Op: "load", Keys: keys}); err != nil {
				log.Fatalf("Error loading keys: %v", err)
			}
			if widget, _ := cmd.Flags().GetBool("widget"); widget {
				if err := runTreeWidget(session.Tree(), config.Render); err != nil {
					log.Fatalf("Error running tree view: %v", err)
				}
			} else {
				fmt.Println(session.Render())
			}

			status, err := session.Apply(Operation{Op: "check"})
			if err != nil {
				log.Fatalf("%v", err)
			}
			fmt.Println(status)
		},
	}
	cmdPrint.Flags().Bool("values", false, "show values next to keys")
	cmdPrint.Flags().Bool("no-color", false, "disable colored output")
	cmdPrint.Flags().Bool("widget", false, "browse the tree in a full-screen collapsible view")

	var cmdReplay = &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Run a YAML script of tree operations",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			script, err := LoadScript(args[0])
			if err != nil {
				log.Fatalf("Error loading script: %v", err)
			}
			session := NewSession(loadConfigOrDefault())
			if err := RunScript(session, script, os.Stdout); err != nil {
				log.Fatalf("Replay failed: %v", err)
			}
			fmt.Println(session.Render())
		},
	}

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Run a random insert/remove workload and check the tree",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			flags := cmd.Flags()
			if flags.Changed("size") {
				config.Bench.Size, _ = flags.GetInt("size")
			}
			if flags.Changed("remove-ratio") {
				config.Bench.RemoveRatio, _ = flags.GetFloat64("remove-ratio")
			}
			if flags.Changed("seed") {
				config.Bench.Seed, _ = flags.GetInt64("seed")
			}
			if noProgress, _ := flags.GetBool("no-progress"); noProgress {
				config.Bench.Progress = false
			}
			config.normalize()

			workload := GenerateWorkload(config.Bench)
			if len(workload.Inserts) < config.Bench.Size {
				log.Printf("%sBloom filter saturated: generated %d of %d keys%s", Warning, len(workload.Inserts), config.Bench.Size, Reset)
			}

			var progressOut io.Writer
			if config.Bench.Progress {
				progressOut = os.Stderr
			}
			report, err := RunBench(workload, progressOut)
			if report != nil {
				fmt.Println(report)
			}
			if err != nil {
				log.Fatalf("Benchmark failed: %v", err)
			}
			fmt.Printf("%s✅ all invariants hold%s\n", Green, Reset)
		},
	}
	cmdBench.Flags().Int("size", defaultConfig.Bench.Size, "number of distinct keys to insert")
	cmdBench.Flags().Float64("remove-ratio", defaultConfig.Bench.RemoveRatio, "fraction of inserted keys to remove afterwards")
	cmdBench.Flags().Int64("seed", defaultConfig.Bench.Seed, "random seed")
	cmdBench.Flags().Bool("no-progress", false, "hide the progress bar")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlbst usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show configuration settings, creating the file if needed",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlbst version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlbst",
		Version: version,
		Long:    banner,
		Args:    cobra.NoArgs,
		// Default to the explorer when no subcommand is provided
		Run: explore,
	}
	rootCmd.AddCommand(cmdExplore, cmdPrint, cmdReplay, cmdBench, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

