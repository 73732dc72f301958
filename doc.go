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

// Package thesaurus implements a library for looking up synonyms in flat-file
// thesaurus data files in pure Go.
//
// Thesaurus data files (.dat) in the MyThes format used by OpenOffice and
// LibreOffice are plain text:
//  1. The first line names the character encoding of the file (e.g. UTF-8 or
//     ISO8859-1).
//  2. Each entry starts with a header line containing the headword, usually
//     followed by a '|' and the number of senses.
//  3. Each sense follows on its own body line starting with '-' or '('. Body
//     lines are '|' separated. The first field is a part of speech or sense
//     marker and the remaining fields are synonyms.
//
// For example:
//
//	UTF-8
//	granel|2
//	-|suelto|copioso
//	(adv)|abundante
//
// Data files may be compressed with gzip (.dat.gz) or dictzip (.dat.dz).
//
// Lookups do not use an index. The headword is found by searching the file
// contents for the first line starting with the query.
package thesaurus
