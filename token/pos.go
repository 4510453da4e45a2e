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

// Package token provides source position bookkeeping shared by the lexer
// and its hosts. Unlike a rune-oriented lexer, every Pos here is a byte
// offset: the lexer dispatches only on single-byte alphabet members and
// never decodes multi-byte sequences, so byte offsets are the natural unit.
package token

import (
	"fmt"

	"golang.org/x/text/width"
)

// Pos is a byte offset into some input. A negative Pos is invalid.
type Pos int

// IsValid returns true if p is a valid position (i.e. p >= 0).
func (p Pos) IsValid() bool {
	return p >= 0
}

// Position describes a source position resolved to a filename, 1-based
// line number and 1-based column (byte offset within the line).
type Position struct {
	Filename string
	Line     int
	Column   int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// CaretColumn computes the display column of byte offset pos within line,
// widening any East Asian "wide" or "fullwidth" rune to two display
// cells. Hosts use it to align a caret under a source line in a
// diagnostic, the way db47h-lex's token/file_test.go aligns one under a
// line containing multi-width runes.
func CaretColumn(line string, pos int) int {
	col := 0
	for i, r := range line {
		if i >= pos {
			break
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			col += 2
		default:
			col++
		}
	}
	return col
}
