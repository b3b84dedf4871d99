// Copyright © 2018-2021 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/shenwei356/abruijn"
	"github.com/spf13/cobra"
)

// VERSION is the tool's release version.
const VERSION = "0.1.0"

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "abruijn",
	Short: "Compacted A-Bruijn graph builder",
	Long: fmt.Sprintf(`abruijn - compacted A-Bruijn graph builder

Builds a gap-tolerant A-Bruijn graph from a set of solid k-mers and emits
the unitig sequences (FASTA) and the unitig graph (GFA 1.0).

Version: %s

Author: Wei Shen <shenwei356@gmail.com>

`, VERSION),
}

// Execute adds all child commands to the root command and parses flags.
// Called once by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	defaultThreads := runtime.NumCPU()
	if defaultThreads > 2 {
		defaultThreads = 2
	}

	RootCmd.PersistentFlags().IntP("threads", "j", defaultThreads, "number of CPUs to use (accepted for parity with the wider toolkit; the graph builder itself is single-threaded)")
	RootCmd.PersistentFlags().BoolP("verbose", "", false, "print verbose information")
	RootCmd.PersistentFlags().StringP("graph", "g", "", "output path for the unitig GFA 1.0 graph")
	RootCmd.PersistentFlags().StringP("unitigs", "u", "", "output path for the unitig FASTA")
	RootCmd.PersistentFlags().StringP("kmer", "k", "", "optional output path for the per-k-mer GFA graph")
	RootCmd.PersistentFlags().Uint8P("edge-weight-threshold", "t", abruijn.MaxDeepDefault, "maximum depth of consecutive non-solid k-mers the oracle will jump across (historical flag name for max_deep)")
}
