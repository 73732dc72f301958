// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package thesaurus

import (
	"strconv"
	"strings"
)

// Entry is a thesaurus entry.
type Entry struct {
	// Headword is the entry's headword as it appears in the header line.
	Headword string

	// Count is the number of senses declared in the header line. It is zero
	// if the header does not declare a count.
	Count int

	// Senses are the entry's body lines in file order.
	Senses []*Sense
}

// Sense is a single body line of an entry.
type Sense struct {
	// Marker is the part of speech or sense category, e.g. "-" or "(adj)".
	Marker string

	// Words are the synonyms for the sense.
	Words []string
}

// Words returns the synonyms of all senses in file order.
func (e *Entry) Words() []string {
	var words []string
	for _, s := range e.Senses {
		words = append(words, s.Words...)
	}
	return words
}

// String returns a string representation of the Entry.
func (e *Entry) String() string {
	var b strings.Builder
	b.WriteString(e.Headword)
	b.WriteString("\n")
	for _, s := range e.Senses {
		b.WriteString(s.Marker)
		b.WriteString(" ")
		b.WriteString(strings.Join(s.Words, ", "))
		b.WriteString("\n")
	}
	return b.String()
}

func parseHeader(line string) *Entry {
	headword, count, _ := strings.Cut(line, "|")
	e := &Entry{
		Headword: headword,
	}
	// Senses are read from the body lines regardless of the declared count.
	if n, err := strconv.Atoi(strings.TrimSpace(count)); err == nil && n > 0 {
		e.Count = n
	}
	return e
}

func parseSense(line string) *Sense {
	fields := strings.Split(line, "|")
	return &Sense{
		Marker: fields[0],
		Words:  fields[1:],
	}
}
