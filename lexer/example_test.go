// This file is part of rslua-go - https://github.com/rslua-go/rslua
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

package lexer_test

import (
	"fmt"

	"github.com/rslua-go/rslua/lexer"
)

// Shows the token stream produced for a small snippet. The leading comment is
// not emitted as a token of its own; it is attached to the "local" token that
// follows it.
func ExampleRun() {
	code := `
-- swap two locals
local a, b = 1, 2
a, b = b, a
`
	toks, err := lexer.Run([]byte(code))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, t := range toks {
		switch {
		case t.Kind == lexer.Name:
			fmt.Printf("name(%s)\n", t.Value.Str)
		case t.Value.HasInt:
			fmt.Printf("int(%d)\n", t.Value.Int)
		default:
			fmt.Println(t.Kind)
		}
	}
	// Output:
	// local
	// name(a)
	// ,
	// name(b)
	// =
	// int(1)
	// ,
	// int(2)
	// name(a)
	// ,
	// name(b)
	// =
	// name(b)
	// ,
	// name(a)
	// eos
}
