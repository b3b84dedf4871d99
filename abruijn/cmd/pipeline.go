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

	"github.com/dgryski/go-farm"
	"github.com/shenwei356/abruijn"
	"github.com/spf13/cobra"
)

// runPipeline drives C3 through C7 once a solidity Store (C2) has been
// produced by whichever input adaptor the subcommand used: build the
// oracle, extract unitigs, build the unitig graph, and write the FASTA
// and GFA 1.0 outputs named by the persistent --unitigs/--graph/--kmer
// flags.
func runPipeline(cmd *cobra.Command, store *abruijn.Store) {
	opt := getOptions(cmd)
	maxDeep := int(getFlagUint8(cmd, "edge-weight-threshold"))
	graphFile := getFlagString(cmd, "graph")
	unitigsFile := getFlagString(cmd, "unitigs")
	kmerFile := getFlagString(cmd, "kmer")

	if unitigsFile == "" {
		checkError(errRequiredFlag("--unitigs"))
	}
	if graphFile == "" {
		checkError(errRequiredFlag("--graph"))
	}

	if opt.Verbose {
		log.Infof("k=%d, solidity space=%d bits, max_deep=%d", store.K(), store.Len(), maxDeep)
		log.Infof("solidity checksum: %x", farm.Hash64WithSeed(store.Bytes(), store.Len()))
	}

	oracle := abruijn.NewOracle(store, maxDeep)

	tigs := abruijn.ExtractUnitigs(oracle)
	if opt.Verbose {
		log.Infof("extracted %d unitigs", len(tigs))
	}

	graph := abruijn.BuildUnitigGraph(oracle, tigs)
	links := graph.Links()
	if opt.Verbose {
		log.Infof("enumerated %d unitig links", len(links))
	}

	unitigsOut, _, outFile, err := outStream(unitigsFile, false)
	if err != nil {
		checkError(&abruijn.CantWriteFileError{Path: unitigsFile, Err: err})
	}
	checkError(wrapWriteErr(unitigsFile, abruijn.WriteFASTA(unitigsOut, tigs)))
	checkError(wrapWriteErr(unitigsFile, unitigsOut.Flush()))
	outFile.Close()

	graphOut, _, graphFh, err := outStream(graphFile, false)
	if err != nil {
		checkError(&abruijn.CantWriteFileError{Path: graphFile, Err: err})
	}
	checkError(wrapWriteErr(graphFile, abruijn.WriteUnitigGFA(graphOut, tigs, links)))
	checkError(wrapWriteErr(graphFile, graphOut.Flush()))
	graphFh.Close()

	if kmerFile != "" {
		kmerOut, _, kmerFh, err := outStream(kmerFile, false)
		if err != nil {
			checkError(&abruijn.CantWriteFileError{Path: kmerFile, Err: err})
		}
		checkError(wrapWriteErr(kmerFile, abruijn.WriteKmerGFA(kmerOut, oracle)))
		checkError(wrapWriteErr(kmerFile, kmerOut.Flush()))
		kmerFh.Close()
	}
}

func wrapWriteErr(path string, err error) error {
	if err == nil {
		return nil
	}
	return &abruijn.WritingError{Path: path, Err: err}
}

func errRequiredFlag(name string) error {
	return fmt.Errorf("missing required flag %s", name)
}
