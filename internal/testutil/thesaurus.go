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

package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// MakeThesaurusOptions are options for MakeTempThesaurus.
type MakeThesaurusOptions struct {
	// Ext is an optional file extension for the data file. Defaults to
	// '.dat.dz' if DictZip is true, '.dat.gz' if Gzip is true. Otherwise
	// '.dat'.
	Ext string

	// DictZip indicates that the data file should be compressed with DictZip.
	DictZip bool

	// Gzip indicates that the data file should be compressed with gzip.
	Gzip bool
}

// GetExt returns the file extension for the data file.
func (o *MakeThesaurusOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		if o.DictZip {
			return ".dat.dz"
		}
		if o.Gzip {
			return ".dat.gz"
		}
	}
	return ".dat"
}

// MakeTempThesaurus writes data to a temporary thesaurus data file and
// returns its path. The file is removed when the test completes.
func MakeTempThesaurus(t *testing.T, data []byte, opts *MakeThesaurusOptions) string {
	t.Helper()
	if opts == nil {
		opts = &MakeThesaurusOptions{}
	}

	path := filepath.Join(t.TempDir(), "th_test"+opts.GetExt())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch {
	case opts.DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case opts.Gzip:
		z := gzip.NewWriter(f)
		if _, err := z.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.Write(data); err != nil {
			t.Fatal(err)
		}
	}

	return path
}
