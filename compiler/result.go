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

package compiler

import "github.com/rslua-go/rslua/opcode"

// resultKind discriminates the variant held by an exprResult.
type resultKind uint8

const (
	resConst resultKind = iota
	resReg
	resNil
	resTrue
	resFalse
	resJump
)

// reg describes a register holding an intermediate or named value.
type reg struct {
	index   uint32
	temp    bool // must be freed after one use
	mutable bool // false for named locals: must not be overwritten in place
}

func (r reg) isTemp() bool   { return r.temp }
func (r reg) isConst() bool  { return !r.mutable }
func (r reg) resolve(pc *opcode.ProtoContext) {
	if r.isTemp() {
		pc.FreeReg(1)
	}
}

// jump is the result of lowering a comparison: the comparison + trailing
// Jmp has already been emitted, and the caller either consumes the jump's
// polarity directly (not, via inverse) or forces materialization into a
// concrete boolean via resolve.
type jump struct {
	target     reg
	pc         int
	trueJumps  []int
	falseJumps []int
}

func (j jump) resolve(pc *opcode.ProtoContext) {
	p := pc.Proto
	p.CodeBool(j.target.index, false, 1)
	jmpPos := p.CodeBool(j.target.index, true, 0)
	p.FixJumpPos(jmpPos, j.pc)
	j.target.resolve(pc)
}

// inverse flips the truth polarity of the comparison guarding this jump, by
// toggling the A-flag of the instruction immediately preceding it.
func (j jump) inverse(pc *opcode.ProtoContext) {
	inst := pc.Proto.Instruction(j.pc - 1)
	inst.SetArgA(1 - inst.ArgA())
}

// exprResult is the tagged union every expression-lowering step produces.
type exprResult struct {
	kind resultKind
	k    opcode.Const
	reg  reg
	jump jump
}

func constResult(k opcode.Const) exprResult { return exprResult{kind: resConst, k: k} }
func nilResult() exprResult                 { return exprResult{kind: resNil} }
func trueResult() exprResult                { return exprResult{kind: resTrue} }
func falseResult() exprResult               { return exprResult{kind: resFalse} }

func regResult(index uint32) exprResult {
	return exprResult{kind: resReg, reg: reg{index: index, mutable: true}}
}

func tempRegResult(index uint32) exprResult {
	return exprResult{kind: resReg, reg: reg{index: index, temp: true, mutable: true}}
}

func constRegResult(index uint32) exprResult {
	return exprResult{kind: resReg, reg: reg{index: index, mutable: false}}
}

func jumpResult(target reg, pc int) exprResult {
	return exprResult{kind: resJump, jump: jump{target: target, pc: pc}}
}

// isStaticallyTrue/False classify results whose truthiness is known without
// running any code, used to drive and/or and not short-circuiting.
func (e exprResult) isStaticallyTrue() bool {
	return e.kind == resConst || e.kind == resTrue
}

func (e exprResult) isStaticallyFalse() bool {
	return e.kind == resNil || e.kind == resFalse
}

// getRK returns the RK operand encoding this result: a constant-table index
// (with MaskK set) for Const, or the register index otherwise.
func (e exprResult) getRK(p *opcode.Proto) uint32 {
	switch e.kind {
	case resConst:
		return opcode.RKConst(p.AddConst(e.k))
	case resReg:
		return opcode.RK(e.reg.index)
	case resJump:
		return opcode.RK(e.jump.target.index)
	default:
		panic("getRK called on a result with no register or constant form")
	}
}

// resolve frees any temp register this result holds, once its value has
// been consumed.
func (e exprResult) resolve(pc *opcode.ProtoContext) {
	switch e.kind {
	case resReg:
		e.reg.resolve(pc)
	case resJump:
		e.jump.resolve(pc)
	}
}
