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

package compiler_test

import (
	"fmt"
	"os"

	"github.com/rslua-go/rslua/ast"
	"github.com/rslua-go/rslua/compiler"
	"github.com/rslua-go/rslua/opcode"
)

func ExampleCompile() {
	block := &ast.Block{Stats: []ast.Stmt{
		ast.LocalStat([]string{"a", "b"}, []*ast.Expr{ast.Int(1), ast.Int(2)}),
		ast.AssignStat(
			[]ast.Assignable{ast.AssignableName("a"), ast.AssignableName("b")},
			[]*ast.Expr{ast.Name("b"), ast.Name("a")},
		),
	}}

	p, err := compiler.Compile(block)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	opcode.Disassemble(p, os.Stdout)

	// Output:
	//    0	loadk 0 k0(1)
	//    1	loadk 1 k1(2)
	//    2	move 2 1
	//    3	move 1 0
	//    4	move 0 2
	//    5	return 0 1
}
