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
	"cmp"
	"slices"
	"unicode/utf8"
)

// sortSynonyms sorts words in place by descending length in characters and
// removes adjacent duplicates. Words of equal length keep their relative
// order so duplicates separated by other words of the same length are kept.
func sortSynonyms(words []string) []string {
	slices.SortStableFunc(words, func(a, b string) int {
		return cmp.Compare(utf8.RuneCountInString(b), utf8.RuneCountInString(a))
	})
	return slices.Compact(words)
}
