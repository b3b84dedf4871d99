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

package abruijn

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// MainVersion is the main version of the solidity bitfield format.
const MainVersion uint8 = 1

// MinorVersion is the minor version of the solidity bitfield format.
const MinorVersion uint8 = 0

// Magic is the 8-byte magic number of a serialized solidity bitfield.
var Magic = [8]byte{'.', 'a', 'b', 'r', 'u', 'i', 'j', 'n'}

// ErrInvalidFileFormat means the magic number did not match.
var ErrInvalidFileFormat = errors.New("abruijn: invalid solidity bitfield format")

// ErrCorruptInput means the bitfield's payload length does not match
// KmerSpaceSize(k).
var ErrCorruptInput = errors.New("abruijn: corrupt solidity bitfield (length mismatch)")

var be = binary.BigEndian

// SolidityHeader is the metadata prefixed to a serialized solidity bitfield.
type SolidityHeader struct {
	MainVersion  uint8
	MinorVersion uint8
	K            int
	Flag         uint32
}

func (h SolidityHeader) String() string {
	return fmt.Sprintf("abruijn solidity bitfield v%d.%d, K=%d, Flag=%d",
		h.MainVersion, h.MinorVersion, h.K, h.Flag)
}

// Store is the immutable solidity store (C2): a dense bitset of length
// KmerSpaceSize(k), addressed by IndexOf(x, k). Bit set means the
// corresponding canonical k-mer passed the abundance threshold upstream.
type Store struct {
	bits *bitset
	k    int
}

// NewStore builds a Store directly from a population function, used by the
// reads adaptor (C8) once per-k-mer abundance has been counted.
func NewStore(k int, solid func(uint64) bool) *Store {
	n := KmerSpaceSize(k)
	b := newBitset(n)
	for i := uint64(0); i < n; i++ {
		if solid(i) {
			b.set(i)
		}
	}
	return &Store{bits: b, k: k}
}

// K returns the k-mer size this store was built for.
func (s *Store) K() int {
	return s.k
}

// Len returns KmerSpaceSize(k).
func (s *Store) Len() uint64 {
	return s.bits.Len()
}

// IsSolid reports whether x's canonical form is marked solid.
func (s *Store) IsSolid(x KCode) bool {
	return s.bits.get(IndexOf(x, s.k))
}

// IsSolidIndex reports whether the bitset has bit i set, for i already an
// index produced by IndexOf (used when iterating the whole k-mer space by
// index rather than by KCode).
func (s *Store) IsSolidIndex(i uint64) bool {
	return s.bits.get(i)
}

// Bytes exposes the raw bit-packed payload, for callers that want to
// checksum or persist it directly rather than through
// WriteSolidityBitfield.
func (s *Store) Bytes() []byte {
	return s.bits.bits
}

// ReadSolidityBitfield reads a serialized solidity bitfield (header +
// bit-packed payload) produced by WriteSolidityBitfield or by the upstream
// counter this tool treats as an external collaborator. The persisted
// payload length is checked against KmerSpaceSize(k); a mismatch is
// reported as ErrCorruptInput.
func ReadSolidityBitfield(r io.Reader) (*Store, error) {
	var m [8]byte
	if err := binary.Read(r, be, &m); err != nil {
		return nil, err
	}
	if m != Magic {
		return nil, ErrInvalidFileFormat
	}

	var meta [4]uint8
	if err := binary.Read(r, be, &meta); err != nil {
		return nil, err
	}
	if meta[0] != MainVersion {
		return nil, fmt.Errorf("abruijn: solidity bitfield format v%d.%d is incompatible with this build (v%d.%d)",
			meta[0], meta[1], MainVersion, MinorVersion)
	}
	k := int(meta[2])
	if k < 2 || k > MaxK {
		return nil, ErrKOverflow
	}

	var flag uint32
	if err := binary.Read(r, be, &flag); err != nil {
		return nil, err
	}

	n := KmerSpaceSize(k)
	payload := make([]byte, (n+7)/8)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, ErrCorruptInput
	}
	// A payload longer than KmerSpaceSize(k) bits is a mismatch too.
	var extra [1]byte
	if _, err := io.ReadFull(r, extra[:]); err == nil {
		return nil, ErrCorruptInput
	}

	return &Store{bits: bitsetFromBytes(payload, n), k: k}, nil
}

// WriteSolidityBitfield writes the header and payload of s in the format
// ReadSolidityBitfield expects.
func WriteSolidityBitfield(w io.Writer, s *Store) error {
	if err := binary.Write(w, be, Magic); err != nil {
		return err
	}
	if err := binary.Write(w, be, [4]uint8{MainVersion, MinorVersion, uint8(s.k), 0}); err != nil {
		return err
	}
	if err := binary.Write(w, be, uint32(0)); err != nil {
		return err
	}
	_, err := w.Write(s.bits.bits)
	return err
}
