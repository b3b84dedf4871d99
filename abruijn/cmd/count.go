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

// countCmd builds the graph straight from a pre-computed solidity
// bitfield (C8's bitfield source).
var countCmd = &cobra.Command{
	Use:   "count",
	Short: "build the graph from a solidity bitfield",
	Long: `build the graph from a solidity bitfield

Reads a (k, bitset) pair as produced by the companion k-mer counter and
builds the unitig graph directly, without re-deriving solidity from reads.
`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		input := getFlagString(cmd, "input")
		if input == "" {
			checkError(errRequiredFlag("--input"))
		}

		infh, inFile, err := inStream(input)
		if err != nil {
			checkError(&abruijn.CantReadFileError{Path: input, Err: err})
		}

		store, err := abruijn.ReadSolidityBitfield(infh)
		inFile.Close()
		if err != nil {
			checkError(&abruijn.ReadingError{Path: input, Err: err})
		}

		if opt.Verbose {
			log.Infof("loaded solidity bitfield k=%d from %s", store.K(), input)
		}

		runPipeline(cmd, store)
	},
}

func init() {
	RootCmd.AddCommand(countCmd)

	countCmd.Flags().StringP("input", "i", "", "solidity bitfield path")
}
