// Copyright 2025 go-highway Authors
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

// Command divgen generates the fixed-lane-count array appliers of the
// divide package (Divide4, Divide8, ...).
//
// Usage via go:generate:
//
//	//go:generate go run ../../../cmd/divgen -o zz_lanes_gen.go -p divide
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		output  string
		pkg     string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:           "divgen",
		Short:         "Generate fixed-lane divide appliers",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			g := &Generator{
				Package:  pkg,
				Filename: filepath.Base(output),
				Domains:  DefaultDomains,
			}
			var buf bytes.Buffer
			if err := g.Generate(&buf); err != nil {
				return err
			}
			if output == "-" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			if verbose {
				cmd.Printf("divgen: wrote %s (%d domains)\n", output, len(g.Domains))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "zz_lanes_gen.go", "Output file, or - for stdout")
	cmd.Flags().StringVarP(&pkg, "package", "p", "divide", "Package name of the generated file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Report the written file")
	return cmd
}
