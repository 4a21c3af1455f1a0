// Copyright 2026 The omics-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// omics-profile runs tight loops over the coordinate types so that their
// allocation and conversion costs can be profiled in isolation.
package main

import (
	"log"
	"runtime"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/omics-go/omics/coordinate"
)

var (
	profileMode string
	iterations  int
)

// Sinks keep the loop bodies observable so the compiler cannot elide them.
var (
	contigSink   coordinate.Contig
	intervalSink coordinate.Interval
)

func main() {
	root := &cobra.Command{
		Use:           "omics-profile",
		Short:         "Profiling workloads for the coordinate types",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&profileMode, "profile", "", `write a profile to the working directory: "cpu" or "mem"`)
	root.PersistentFlags().IntVarP(&iterations, "iterations", "n", 5000000, "number of loop iterations")
	root.AddCommand(contigCommand(), intervalCommand())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

// startProfile begins the requested profile and returns its stop function.
func startProfile() (stop func(), err error) {
	switch profileMode {
	case "":
		return func() {}, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop, nil
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop, nil
	default:
		return nil, &unknownModeError{mode: profileMode}
	}
}

type unknownModeError struct {
	mode string
}

func (e *unknownModeError) Error() string {
	return "unknown profile mode " + e.mode + `: want "cpu" or "mem"`
}

func contigCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "contig",
		Short: "Contig workloads",
	}
	command.AddCommand(&cobra.Command{
		Use:   "alloc",
		Short: "Allocate contigs in a tight loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			stop, err := startProfile()
			if err != nil {
				return err
			}
			defer stop()

			for i := 0; i < iterations; i++ {
				contig, err := coordinate.NewContig("seq0")
				if err != nil {
					return err
				}
				contigSink = contig
			}
			runtime.KeepAlive(contigSink)
			return nil
		},
	})
	return command
}

func intervalCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "interval",
		Short: "Interval workloads",
	}
	command.AddCommand(&cobra.Command{
		Use:   "convert",
		Short: "Convert intervals between systems in a tight loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			stop, err := startProfile()
			if err != nil {
				return err
			}
			defer stop()

			iv, err := coordinate.ParseInterval("seq0:+:1000-2000", coordinate.Interbase)
			if err != nil {
				return err
			}
			for i := 0; i < iterations; i++ {
				base, err := iv.ToBase()
				if err != nil {
					return err
				}
				back, err := base.ToInterbase()
				if err != nil {
					return err
				}
				intervalSink = back
			}
			runtime.KeepAlive(intervalSink)
			return nil
		},
	})
	return command
}
