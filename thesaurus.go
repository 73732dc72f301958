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
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-thesaurus/internal/folding"
)

var (
	// ErrFileUnavailable indicates that the thesaurus data could not be opened
	// or read.
	ErrFileUnavailable = errors.New("thesaurus file unavailable")

	// ErrUnknownEncoding indicates that the requested encoding is not
	// supported.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// Options are options for loading thesaurus data.
type Options struct {
	// Encoding overrides the encoding declared on the first line of the data
	// file. Encoding names are WHATWG encoding labels (e.g. "utf-8",
	// "iso-8859-1"). If empty, the declared encoding is used and data without
	// a declaration is assumed to be UTF-8.
	Encoding string
}

// DefaultOptions is the default options for a Thesaurus.
var DefaultOptions = &Options{}

// Thesaurus is an in-memory thesaurus data file.
type Thesaurus struct {
	// contents is the decoded file contents starting with a newline so that
	// every headword, including the first, is preceded by one.
	contents string

	encoding string
	path     string
}

// Open opens the thesaurus data file at path and reads it into memory. Files
// with a .gz extension are decompressed with gzip and files with a .dz
// extension are decompressed with dictzip.
func Open(path string, options *Options) (*Thesaurus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %q: %w", ErrFileUnavailable, path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: creating dictzip reader for %q: %w", ErrFileUnavailable, path, err)
		}
		r = io.NewSectionReader(z, 0, math.MaxInt64)
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: creating gzip reader for %q: %w", ErrFileUnavailable, path, err)
		}
		defer z.Close()
		r = z
	}

	t, err := New(r, options)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	t.path = path
	return t, nil
}

// New returns a new Thesaurus by reading all data from r.
func New(r io.Reader, options *Options) (*Thesaurus, error) {
	if options == nil {
		options = DefaultOptions
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileUnavailable, err)
	}
	b = bytes.TrimPrefix(b, utf8BOM)

	t := &Thesaurus{}

	var enc encoding.Encoding
	if declared, name, rest, ok := declaredEncoding(b); ok {
		enc, t.encoding = declared, name
		b = rest
	}
	if options.Encoding != "" {
		enc, err = htmlindex.Get(options.Encoding)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, options.Encoding)
		}
		t.encoding = options.Encoding
	}

	var tr transform.Transformer = &folding.NewlineFolder{}
	if enc != nil {
		tr = transform.Chain(enc.NewDecoder(), tr)
	}
	decoded, _, err := transform.Bytes(tr, b)
	if err != nil {
		return nil, fmt.Errorf("decoding %s data: %w", t.encoding, err)
	}

	t.contents = "\n" + string(decoded)
	return t, nil
}

var utf8BOM = []byte("\ufeff")

// declaredEncoding returns the encoding declared on the first line of b, its
// name and the data following that line. ok is false if the first line is not
// an encoding declaration.
func declaredEncoding(b []byte) (encoding.Encoding, string, []byte, bool) {
	line, rest, _ := bytes.Cut(b, []byte{'\n'})
	name := strings.TrimSpace(string(line))
	// Encoding names never contain a '|' separator.
	if name == "" || strings.Contains(name, "|") {
		return nil, "", b, false
	}
	// A headword without a sense count may also look like an encoding name
	// (e.g. "greek"). A declaration is never followed by a body line.
	next, _, _ := bytes.Cut(rest, []byte{'\n'})
	if ClassifyLine(string(next)) == BodyLine {
		return nil, "", b, false
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, "", b, false
	}
	return enc, name, rest, true
}

// Encoding returns the name of the encoding the data was decoded from. It is
// empty if the data declared no encoding and was read as UTF-8.
func (t *Thesaurus) Encoding() string {
	return t.encoding
}

// Path returns the path the thesaurus was opened from. It is empty if the
// Thesaurus was created with New.
func (t *Thesaurus) Path() string {
	return t.path
}

// Lookup finds the entry for the first headword starting with term. The
// returned entry's senses are in file order.
func (t *Thesaurus) Lookup(term string) (*Entry, bool) {
	if term == "" {
		return nil, false
	}

	pos := strings.Index(t.contents, "\n"+term)
	if pos < 0 {
		return nil, false
	}

	header, rest, _ := strings.Cut(t.contents[pos+1:], "\n")
	e := parseHeader(header)
	for rest != "" {
		var line string
		line, rest, _ = strings.Cut(rest, "\n")
		if ClassifyLine(line) != BodyLine {
			break
		}
		e.Senses = append(e.Senses, parseSense(line))
	}
	return e, true
}

// FindSynonyms returns the synonyms for term ordered longest first. Adjacent
// duplicates are removed. It returns nil if term is not found.
func (t *Thesaurus) FindSynonyms(term string) []string {
	e, ok := t.Lookup(term)
	if !ok {
		return nil
	}
	return sortSynonyms(e.Words())
}

// LongestSynonym returns the longest synonym for term. It returns false if
// no synonyms were found.
func (t *Thesaurus) LongestSynonym(term string) (string, bool) {
	synonyms := t.FindSynonyms(term)
	if len(synonyms) == 0 {
		return "", false
	}
	return synonyms[0], true
}
