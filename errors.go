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

import "fmt"

// CantReadFileError wraps a failure to open a path for reading.
type CantReadFileError struct {
	Path string
	Err  error
}

func (e *CantReadFileError) Error() string {
	return fmt.Sprintf("abruijn: can't read file %q: %s", e.Path, e.Err)
}

func (e *CantReadFileError) Unwrap() error { return e.Err }

// CantWriteFileError wraps a failure to open a path for writing.
type CantWriteFileError struct {
	Path string
	Err  error
}

func (e *CantWriteFileError) Error() string {
	return fmt.Sprintf("abruijn: can't write file %q: %s", e.Path, e.Err)
}

func (e *CantWriteFileError) Unwrap() error { return e.Err }

// ReadingError wraps a failure encountered while reading an already-open
// file (as opposed to opening it).
type ReadingError struct {
	Path string
	Err  error
}

func (e *ReadingError) Error() string {
	return fmt.Sprintf("abruijn: error reading %q: %s", e.Path, e.Err)
}

func (e *ReadingError) Unwrap() error { return e.Err }

// WritingError wraps a failure encountered while writing an already-open
// file.
type WritingError struct {
	Path string
	Err  error
}

func (e *WritingError) Error() string {
	return fmt.Sprintf("abruijn: error writing %q: %s", e.Path, e.Err)
}

func (e *WritingError) Unwrap() error { return e.Err }

// NotReachableCodeError marks an internal invariant violation: a branch
// the algorithm's design proves can never execute, executed anyway.
type NotReachableCodeError struct {
	Context string
}

func (e *NotReachableCodeError) Error() string {
	return fmt.Sprintf("abruijn: not reachable: %s", e.Context)
}
