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

package main

import (
	"sort"

	"github.com/rslua-go/rslua/ast"
)

// examples holds the built-in fixtures reachable via -example NAME. They
// exist to give the compiler package something to run end to end without
// requiring a parser front end.
var examples = map[string]*ast.Block{
	"fold": {Stats: []ast.Stmt{
		ast.LocalStat([]string{"a"}, []*ast.Expr{ast.Bin(ast.Add, ast.Int(1), ast.Int(2))}),
	}},
	"swap": {Stats: []ast.Stmt{
		ast.LocalStat([]string{"a", "b"}, []*ast.Expr{ast.Int(1), ast.Int(2)}),
		ast.AssignStat(
			[]ast.Assignable{ast.AssignableName("a"), ast.AssignableName("b")},
			[]*ast.Expr{ast.Name("b"), ast.Name("a")},
		),
	}},
	"compare": {Stats: []ast.Stmt{
		ast.LocalStat([]string{"a"}, []*ast.Expr{ast.Bin(ast.Lt, ast.Int(1), ast.Int(2))}),
	}},
	"andor": {Stats: []ast.Stmt{
		ast.LocalStat([]string{"a"}, []*ast.Expr{ast.Int(1)}),
		ast.LocalStat([]string{"b"}, []*ast.Expr{ast.Bin(ast.Or, ast.Name("a"), ast.Int(2))}),
	}},
}

// exampleNames returns the known -example values, sorted, for use in usage
// text and error messages.
func exampleNames() []string {
	names := make([]string, 0, len(examples))
	for name := range examples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
