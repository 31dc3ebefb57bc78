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

package opcode_test

import (
	"os"

	"github.com/rslua-go/rslua/opcode"
)

// Hand-assembles the equivalent of "local a = 1 + 2" and disassembles it.
func ExampleDisassemble() {
	p := opcode.NewProto()
	one := p.AddConst(opcode.IntConst(1))
	two := p.AddConst(opcode.IntConst(2))
	p.CodeBinOp(opcode.Add, 0, opcode.RKConst(one), opcode.RKConst(two))
	p.AddLocal("a")
	p.CodeReturn(0, 0)

	opcode.Disassemble(p, os.Stdout)

	// Output:
	//    0	add 0 k0(1) k1(2)
	//    1	return 0 1
}
