// Copyright 2017-2018 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package token

import "errors"

// Common errors.
var (
	ErrLine = errors.New("invalid line number")
)

// A File maps byte offsets accumulated across one or more Advance calls to
// 1-based line/column positions. Hosts that want to report diagnostics in
// terms of a line and column, rather than a raw byte offset, register the
// offset at which each new line starts with AddLine, one line at a time.
type File struct {
	name  string
	lines []Pos // byte offset of the first byte of each known line, 0-indexed by line-1
}

// NewFile returns a new, empty File for the given name. Line 1 always
// starts at offset 0.
func NewFile(name string) *File {
	f := &File{name: name}
	f.lines = append(f.lines, 0)
	return f
}

// Name returns the file name.
func (f *File) Name() string {
	return f.name
}

// AddLine records that a new line starts at the given offset.
//
// line is the 1-based line index. AddLine panics if pos is not strictly
// greater than the offset of the last recorded line, or if line is not
// equal to the last known line number plus one.
func (f *File) AddLine(pos Pos, line int) {
	l := len(f.lines)
	if (l > 0 && f.lines[l-1] >= pos) || l+1 != line {
		panic(ErrLine)
	}
	f.lines = append(f.lines, pos)
}

// Position returns the 1-based line and column for a given pos.
func (f *File) Position(pos Pos) Position {
	i, j := 0, len(f.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !(f.lines[h] > pos) {
			i = h + 1
		} else {
			j = h
		}
	}
	return Position{f.name, i, int(pos-f.lines[i-1]) + 1}
}

// LinePos returns the file offset of the start of the given 1-based line,
// or -1 if line is out of range.
func (f *File) LinePos(line int) Pos {
	if line < 1 || line > len(f.lines) {
		return -1
	}
	return f.lines[line-1]
}
