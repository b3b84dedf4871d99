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
	"bytes"
	"io"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/shenwei356/abruijn"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/stable"
	"github.com/spf13/cobra"
	"github.com/twotwotwo/sorts/sortutil"
)

var circularTag = []byte("circular:Z:true")

// statsCmd summarizes a unitig FASTA file as emitted by count/reads: a
// length/N50/circular-count table, the assembly-QC analogue of the
// wider toolkit's "info" command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "summary statistics of a unitig FASTA file",
	Long: `summary statistics of a unitig FASTA file

Re-reads the FASTA written by --unitigs and reports the number of
unitigs, total and longest length, N50 and the count of circular tigs
(those whose header carries circular:Z:true).
`,
	Run: func(cmd *cobra.Command, args []string) {
		input := getFlagString(cmd, "input")
		if input == "" {
			checkError(errRequiredFlag("--input"))
		}
		outFile := getFlagString(cmd, "out-file")

		reader, err := fastx.NewDefaultReader(input)
		if err != nil {
			checkError(&abruijn.CantReadFileError{Path: input, Err: err})
		}

		var lengths []int
		var circular, total int

		for {
			record, err := reader.Read()
			if err != nil {
				if err == io.EOF {
					break
				}
				checkError(&abruijn.ReadingError{Path: input, Err: err})
			}
			n := len(record.Seq.Seq)
			lengths = append(lengths, n)
			total += n
			if bytes.Contains(record.Name, circularTag) {
				circular++
			}
		}

		sortutil.Ints(lengths)
		for i, j := 0, len(lengths)-1; i < j; i, j = i+1, j-1 {
			lengths[i], lengths[j] = lengths[j], lengths[i] // descending, for N50 accumulation
		}

		longest := 0
		if len(lengths) > 0 {
			longest = lengths[0]
		}
		n50 := computeN50(lengths, total)

		outfh, gw, outFh, err := outStream(outFile, strings.HasSuffix(strings.ToLower(outFile), ".gz"))
		if err != nil {
			checkError(&abruijn.CantWriteFileError{Path: outFile, Err: err})
		}
		defer outFh.Close()

		style := &stable.TableStyle{
			Name:      "plain",
			HeaderRow: stable.RowStyle{Begin: "", Sep: "  ", End: ""},
			DataRow:   stable.RowStyle{Begin: "", Sep: "  ", End: ""},
			Padding:   "",
		}
		columns := []stable.Column{
			{Header: "unitigs", Align: stable.AlignRight},
			{Header: "total-len", Align: stable.AlignRight},
			{Header: "longest", Align: stable.AlignRight},
			{Header: "N50", Align: stable.AlignRight},
			{Header: "circular", Align: stable.AlignRight},
		}
		tbl := stable.New()
		tbl.HeaderWithFormat(columns)
		tbl.AddRow([]interface{}{
			humanize.Comma(int64(len(lengths))),
			humanize.Comma(int64(total)),
			humanize.Comma(int64(longest)),
			humanize.Comma(int64(n50)),
			humanize.Comma(int64(circular)),
		})
		outfh.Write(tbl.Render(style))
		outfh.Flush()
		if gw != nil {
			gw.Close()
		}
	},
}

func init() {
	RootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringP("input", "i", "", "unitig FASTA path, as written by --unitigs")
	statsCmd.Flags().StringP("out-file", "o", "-", `out file ("-" for stdout, suffix .gz for gzipped out)`)
}

// computeN50 returns the length L such that the unitigs at least as long
// as L cover at least half of total, given lengths sorted descending.
func computeN50(lengthsDesc []int, total int) int {
	if total == 0 {
		return 0
	}
	sum := 0
	for _, l := range lengthsDesc {
		sum += l
		if 2*sum >= total {
			return l
		}
	}
	return 0
}
