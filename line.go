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

// LineKind is the kind of a line in a thesaurus data file.
type LineKind int

const (
	// OtherLine is a line that is neither a header nor a body line. Empty
	// lines are classified as OtherLine.
	OtherLine LineKind = iota

	// HeaderLine is a line that may start an entry.
	HeaderLine

	// BodyLine is a sense line of an entry. Body lines start with '-' or '('.
	BodyLine
)

// String implements [fmt.Stringer.String].
func (k LineKind) String() string {
	switch k {
	case HeaderLine:
		return "header"
	case BodyLine:
		return "body"
	default:
		return "other"
	}
}

// ClassifyLine returns the kind of the given line based on its first byte.
func ClassifyLine(line string) LineKind {
	if line == "" {
		return OtherLine
	}
	switch line[0] {
	case '-', '(':
		return BodyLine
	default:
		return HeaderLine
	}
}
