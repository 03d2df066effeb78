/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package maya

import "strings"

// foldName reduces a day sign or month name to its lookup key: lower case,
// no apostrophes, no surrounding spaces.
func foldName(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "'", ""))
}

// nameIndex maps folded names to their position. The result is built once
// at package initialization and only read afterwards.
func nameIndex(names []string) map[string]int {
	idx := make(map[string]int, len(names))
	for i, n := range names {
		idx[foldName(n)] = i
	}
	return idx
}
