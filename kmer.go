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

// Package abruijn builds a compacted A-Bruijn graph from a set of solid
// k-mers and emits unitig sequences (FASTA) and the unitig graph (GFA 1.0).
package abruijn

import (
	"bytes"
	"errors"
	"math/bits"
)

// MaxK is the largest k-mer size a KCode can hold (2 bits/base in a uint64).
const MaxK = 31

// ErrIllegalBase means that a byte outside ACGTacgt was encountered.
var ErrIllegalBase = errors.New("abruijn: illegal base")

// ErrKOverflow means k is outside [2, 31].
var ErrKOverflow = errors.New("abruijn: k (2-31) overflow")

// ErrKMismatch means two KCodes were compared/combined at different k.
var ErrKMismatch = errors.New("abruijn: k mismatch")

// ErrNotConsecutiveKmers means the two k-mers given to an incremental
// encoder do not overlap by k-1 bases.
var ErrNotConsecutiveKmers = errors.New("abruijn: not consecutive k-mers")

// KCode packs a DNA string of length k (<=31) into the low 2k bits of a
// uint64, 2 bits per base: A=00, C=01, T=10, G=11. Bits above position
// 2k-1 are always zero.
type KCode uint64

// NormalizeK decrements an even k to k-1. Odd k guarantees revcomp(x) != x
// for every x, so canonical ordering is always well-defined.
func NormalizeK(k int) int {
	if k%2 == 0 {
		k--
	}
	return k
}

// KmerSpaceSize returns 4^k / 2, the size of the canonical index space and
// the length (in bits) of the solidity and visited bitsets.
func KmerSpaceSize(k int) uint64 {
	return uint64(1) << uint(2*k-1)
}

// Seq2Bit packs a length-k ASCII DNA string into a KCode.
func Seq2Bit(kmer []byte) (KCode, error) {
	k := len(kmer)
	if k < 2 || k > MaxK {
		return 0, ErrKOverflow
	}

	var code uint64
	for i := range kmer {
		b, err := base2bit(kmer[k-1-i])
		if err != nil {
			return 0, err
		}
		code |= b << uint(i*2)
	}
	return KCode(code), nil
}

func base2bit(b byte) (uint64, error) {
	switch b {
	case 'A', 'a':
		return 0, nil
	case 'C', 'c':
		return 1, nil
	case 'T', 't':
		return 2, nil
	case 'G', 'g':
		return 3, nil
	default:
		return 0, ErrIllegalBase
	}
}

// MustEncodeFromFormerKmer computes the KCode of kmer, given the code of the
// immediately preceding overlapping k-mer leftKmer (kmer[0:k-1] ==
// leftKmer[1:k]), without re-encoding the shared prefix. Assumes kmer and
// leftKmer are both otherwise valid.
func MustEncodeFromFormerKmer(kmer []byte, leftCode KCode, k int) (KCode, error) {
	b, err := base2bit(kmer[k-1])
	if err != nil {
		return 0, err
	}
	code := (uint64(leftCode) & ((uint64(1) << uint((k-1)*2)) - 1)) << 2
	code |= b
	return KCode(code), nil
}

// EncodeFromFormerKmer is MustEncodeFromFormerKmer with an adjacency check.
func EncodeFromFormerKmer(kmer, leftKmer []byte, leftCode KCode) (KCode, error) {
	if len(kmer) != len(leftKmer) {
		return 0, ErrKMismatch
	}
	if !bytes.Equal(kmer[0:len(kmer)-1], leftKmer[1:]) {
		return 0, ErrNotConsecutiveKmers
	}
	return MustEncodeFromFormerKmer(kmer, leftCode, len(kmer))
}

var bit2base = [4]byte{'A', 'C', 'T', 'G'}

// Kmer2Seq unpacks a KCode of length k back into its ASCII DNA string.
func Kmer2Seq(code KCode, k int) string {
	buf := make([]byte, k)
	c := uint64(code)
	for i := 0; i < k; i++ {
		buf[k-1-i] = bit2base[c&3]
		c >>= 2
	}
	return string(buf)
}

// Reverse returns the code of the reversed (not complemented) k-mer.
func Reverse(code KCode, k int) KCode {
	c := uint64(code)
	var r uint64
	for i := 0; i < k; i++ {
		r <<= 2
		r |= c & 3
		c >>= 2
	}
	return KCode(r)
}

// Complement returns the code of the complemented (not reversed) k-mer.
// Under this package's A=00,C=01,T=10,G=11 encoding, A<->T and C<->G are
// exactly the codes related by flipping bit 1 of each nucleotide pair
// (XOR 0b10), not a full 2-bit NOT.
func Complement(code KCode, k int) KCode {
	c := uint64(code)
	var r uint64
	for i := 0; i < k; i++ {
		r |= (c&3 ^ 2) << uint(i*2)
		c >>= 2
	}
	return KCode(r)
}

// RevComp returns the reverse-complement code, computed in a single pass
// rather than as Reverse(Complement(x)).
func RevComp(code KCode, k int) KCode {
	c := uint64(code)
	var r uint64
	for i := 0; i < k; i++ {
		r <<= 2
		r |= c&3 ^ 2
		c >>= 2
	}
	return KCode(r)
}

// Canonical returns min(x, revcomp(x, k)).
func Canonical(x KCode, k int) KCode {
	rc := RevComp(x, k)
	if rc < x {
		return rc
	}
	return x
}

// RemoveFirstBit drops the sign-carrying most-significant nucleotide bit of
// an already-canonical code, yielding its index into the solidity/visited
// bitsets, in [0, 4^k/2).
func RemoveFirstBit(x KCode, k int) uint64 {
	return uint64(x) & ((uint64(1) << uint(2*k-1)) - 1)
}

// ParityEven reports whether popcount(x) is even. Used only to pick an
// orientation sign when emitting GFA links.
func ParityEven(x KCode) bool {
	return bits.OnesCount64(uint64(x))&1 == 0
}

// IndexOf is RemoveFirstBit(Canonical(x, k), k), the bit position used by
// the solidity store and the visited set.
func IndexOf(x KCode, k int) uint64 {
	return RemoveFirstBit(Canonical(x, k), k)
}

// KmerCode pairs a packed code with the k it was encoded at.
type KmerCode struct {
	Code KCode
	K    int
}

// NewKmerCode encodes kmer into a KmerCode.
func NewKmerCode(kmer []byte) (KmerCode, error) {
	code, err := Seq2Bit(kmer)
	if err != nil {
		return KmerCode{}, err
	}
	return KmerCode{code, len(kmer)}, nil
}

// Equal reports whether two KmerCodes have the same k and code.
func (kcode KmerCode) Equal(other KmerCode) bool {
	return kcode.K == other.K && kcode.Code == other.Code
}

// Rev returns the KmerCode of the reversed sequence.
func (kcode KmerCode) Rev() KmerCode {
	return KmerCode{Reverse(kcode.Code, kcode.K), kcode.K}
}

// Comp returns the KmerCode of the complemented sequence.
func (kcode KmerCode) Comp() KmerCode {
	return KmerCode{Complement(kcode.Code, kcode.K), kcode.K}
}

// RevComp returns the KmerCode of the reverse-complement sequence.
func (kcode KmerCode) RevComp() KmerCode {
	return KmerCode{RevComp(kcode.Code, kcode.K), kcode.K}
}

// Canonical returns the canonical KmerCode.
func (kcode KmerCode) Canonical() KmerCode {
	return KmerCode{Canonical(kcode.Code, kcode.K), kcode.K}
}

// Bytes returns the k-mer as a byte slice.
func (kcode KmerCode) Bytes() []byte {
	return []byte(Kmer2Seq(kcode.Code, kcode.K))
}

// String returns the k-mer as a string.
func (kcode KmerCode) String() string {
	return Kmer2Seq(kcode.Code, kcode.K)
}

// KCodeSlice implements sort.Interface for ordering raw codes, used when a
// deterministic order over a set of codes must be imposed before emission.
type KCodeSlice []KCode

func (s KCodeSlice) Len() int           { return len(s) }
func (s KCodeSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s KCodeSlice) Less(i, j int) bool { return s[i] < s[j] }
