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
	"github.com/shenwei356/abruijn"
	"github.com/spf13/cobra"
)

// readsCmd derives solidity straight from FASTA reads (C8's reads
// source): a k-mer abundance counter feeds the threshold in
// --abudance-min. The flag's spelling is kept exactly as the upstream
// counter tool defines it.
var readsCmd = &cobra.Command{
	Use:   "reads",
	Short: "build the graph from FASTA reads",
	Long: `build the graph from FASTA reads

Counts k-mer abundance over one FASTA input (optionally .gz/.bz2/.xz/.zst
compressed) and derives solidity as count(x) >= --abudance-min, then
builds the unitig graph exactly as the count subcommand does.
`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		input := getFlagString(cmd, "input")
		if input == "" {
			checkError(errRequiredFlag("--input"))
		}
		k := int(getFlagUint8(cmd, "kmer-size"))
		abundanceMin := uint32(getFlagUint8(cmd, "abudance-min"))

		if opt.Verbose {
			log.Infof("counting %d-mers in %s (abundance-min=%d)", k, input, abundanceMin)
		}

		store, err := abruijn.CountReadsFile(input, k, abundanceMin)
		checkError(err)

		if opt.Verbose {
			log.Infof("derived solidity bitfield k=%d", store.K())
		}

		runPipeline(cmd, store)
	},
}

func init() {
	RootCmd.AddCommand(readsCmd)

	readsCmd.Flags().StringP("input", "i", "", "reads path (fasta, optionally .gz/.bz2/.xz/.zst)")
	// no shorthand: -k is already claimed by the persistent --kmer output flag.
	readsCmd.Flags().Uint8("kmer-size", 31, "k-mer size in [2,31]; even values are silently decremented")
	readsCmd.Flags().Uint8P("abudance-min", "a", 1, "minimum k-mer abundance to be considered solid")
}
