// Copyright 2026 The symtab Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package scan extracts identifiers from text.
package scan

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// DefaultPrefixes are the runes that may introduce an identifier.
const DefaultPrefixes = "$"

// A Scanner reads identifiers from an io.Reader. Everything that is not
// part of an identifier is skipped.
//
// An identifier is a letter or '_', optionally preceded by one of the
// scanner's prefix runes, followed by letters, digits and '_'. Identifiers
// are returned in Unicode normalization form C.
type Scanner struct {
	s        *bufio.Scanner
	prefixes string
	line     int
	tokLine  int
	tok      []byte
	buf      []byte
}

// NewScanner returns a Scanner reading from r. If prefixes is empty,
// DefaultPrefixes is used.
func NewScanner(r io.Reader, prefixes string) *Scanner {
	if prefixes == "" {
		prefixes = DefaultPrefixes
	}
	sc := &Scanner{
		s:        bufio.NewScanner(r),
		prefixes: prefixes,
		line:     1,
	}
	sc.s.Split(sc.split)
	return sc
}

// Scan advances to the next identifier. It returns false at the end of the
// input or on error.
func (sc *Scanner) Scan() bool {
	if !sc.s.Scan() {
		return false
	}
	tok := sc.s.Bytes()
	if norm.NFC.QuickSpan(tok) == len(tok) {
		sc.tok = tok
	} else {
		sc.buf = norm.NFC.Append(sc.buf[:0], tok...)
		sc.tok = sc.buf
	}
	return true
}

// Bytes returns the current identifier. The slice is only valid until the
// next call to Scan.
func (sc *Scanner) Bytes() []byte { return sc.tok }

// Text returns the current identifier as a newly allocated string.
func (sc *Scanner) Text() string { return string(sc.tok) }

// Line reports the 1-based line of the current identifier.
func (sc *Scanner) Line() int { return sc.tokLine }

// Err returns the first non-EOF error encountered.
func (sc *Scanner) Err() error { return sc.s.Err() }

func (sc *Scanner) split(data []byte, atEOF bool) (advance int, token []byte, err error) {
	i := 0
	for i < len(data) {
		if !atEOF && !utf8.FullRune(data[i:]) {
			return i, nil, nil
		}
		r, w := utf8.DecodeRune(data[i:])
		if isStart(r) {
			break
		}
		if strings.ContainsRune(sc.prefixes, r) {
			rest := data[i+w:]
			if !atEOF && !utf8.FullRune(rest) {
				return i, nil, nil
			}
			if next, _ := utf8.DecodeRune(rest); isStart(next) {
				break
			}
		}
		if r == '\n' {
			sc.line++
		}
		i += w
	}
	if i == len(data) {
		return i, nil, nil
	}

	start := i
	r, w := utf8.DecodeRune(data[i:])
	i += w
	if !isStart(r) {
		// A prefix rune; the rune after it starts the identifier.
		_, w = utf8.DecodeRune(data[i:])
		i += w
	}
	for i < len(data) {
		if !atEOF && !utf8.FullRune(data[i:]) {
			return start, nil, nil
		}
		r, w := utf8.DecodeRune(data[i:])
		if !isPart(r) && !isCombining(r) {
			sc.tokLine = sc.line
			return i, data[start:i], nil
		}
		i += w
	}
	if !atEOF {
		return start, nil, nil
	}
	sc.tokLine = sc.line
	return i, data[start:i], nil
}

func isStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isPart(r rune) bool {
	return isStart(r) || unicode.IsDigit(r)
}

func isCombining(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// IsIdent reports whether s is a single identifier without a prefix rune.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !isStart(r) {
			return false
		}
		if !isPart(r) && !isCombining(r) {
			return false
		}
	}
	return true
}

// HasPrefix reports whether b starts with one of the runes in prefixes and
// returns the remainder.
func HasPrefix(b []byte, prefixes string) ([]byte, bool) {
	r, w := utf8.DecodeRune(b)
	if w == 0 || !strings.ContainsRune(prefixes, r) {
		return b, false
	}
	return b[w:], true
}
