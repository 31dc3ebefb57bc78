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

package opcode

// Op is a bytecode operation.
type Op uint8

const (
	Move Op = iota
	LoadK
	LoadBool
	LoadNil
	Add
	Sub
	Mul
	Div
	IDiv
	Mod
	Pow
	BAnd
	BOr
	BXor
	Shl
	Shr
	Concat
	Unm
	BNot
	Not
	Len
	Eq
	Lt
	Le
	Jmp
	TestSet
	Return
)

var opNames = [...]string{
	Move: "move", LoadK: "loadk", LoadBool: "loadbool", LoadNil: "loadnil",
	Add: "add", Sub: "sub", Mul: "mul", Div: "div", IDiv: "idiv", Mod: "mod",
	Pow: "pow", BAnd: "band", BOr: "bor", BXor: "bxor", Shl: "shl", Shr: "shr",
	Concat: "concat", Unm: "unm", BNot: "bnot", Not: "not", Len: "len",
	Eq: "eq", Lt: "lt", Le: "le", Jmp: "jmp", TestSet: "testset", Return: "return",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		if s := opNames[op]; s != "" {
			return s
		}
	}
	return "???"
}

// IsComparison reports whether op is one of the two-instruction comparison
// opcodes (Eq, Lt, Le) whose A field encodes expected truth polarity.
func (op Op) IsComparison() bool {
	return op == Eq || op == Lt || op == Le
}
