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

import (
	"fmt"
	"io"
)

// Disassemble writes a mechanical, line-per-instruction decode of p's code
// to w: PC, opcode mnemonic, and operands in the form appropriate to that
// opcode's encoding.
func Disassemble(p *Proto, w io.Writer) {
	for pc, inst := range p.Code {
		fmt.Fprintf(w, "%4d\t%s", pc, inst.Op())
		writeOperands(w, p, pc, inst)
		fmt.Fprintln(w)
	}
}

func writeOperands(w io.Writer, p *Proto, pc int, inst Instruction) {
	op := inst.Op()
	switch op {
	case LoadK:
		fmt.Fprintf(w, " %d %s", inst.ArgA(), constRef(p, inst.ArgBx()))
	case LoadBool:
		fmt.Fprintf(w, " %d %d %d", inst.ArgA(), inst.ArgB(), inst.ArgC())
	case LoadNil:
		fmt.Fprintf(w, " %d %d", inst.ArgA(), inst.ArgB())
	case Move, Unm, BNot, Not, Len:
		fmt.Fprintf(w, " %d %d", inst.ArgA(), inst.ArgB())
	case Jmp:
		target := pc + 1 + int(inst.ArgSBx())
		if inst.ArgSBx() == NoJump {
			fmt.Fprint(w, " (unpatched)")
		} else {
			fmt.Fprintf(w, " -> %d", target)
		}
	case TestSet:
		fmt.Fprintf(w, " %d %d %d", inst.ArgA(), inst.ArgB(), inst.ArgC())
	case Eq, Lt, Le:
		fmt.Fprintf(w, " %d %s %s", inst.ArgA(), rkRef(p, inst.ArgB()), rkRef(p, inst.ArgC()))
	case Return:
		fmt.Fprintf(w, " %d %d", inst.ArgA(), inst.ArgB())
	default:
		fmt.Fprintf(w, " %d %s %s", inst.ArgA(), rkRef(p, inst.ArgB()), rkRef(p, inst.ArgC()))
	}
}

func rkRef(p *Proto, rk uint32) string {
	if IsConstRK(rk) {
		return constRef(p, RKIndex(rk))
	}
	return fmt.Sprintf("r%d", rk)
}

func constRef(p *Proto, index uint32) string {
	if int(index) < len(p.Consts) {
		return fmt.Sprintf("k%d(%s)", index, p.Consts[index])
	}
	return fmt.Sprintf("k%d(?)", index)
}
