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
	"math"
)

// ConstKind tags the alternative held by a Const.
type ConstKind uint8

const (
	ConstInt ConstKind = iota
	ConstFloat
	ConstStr
)

// Const is a deduplicated literal value living in a Proto's constant table.
// Equality is structural, and floats compare bit-exact: 0.0 and -0.0 are
// distinct keys, and NaN is never equal to anything (including itself),
// matching normal Go float semantics.
type Const struct {
	Kind ConstKind
	Int  int64
	Flt  float64
	Str  string
}

func IntConst(i int64) Const     { return Const{Kind: ConstInt, Int: i} }
func FloatConst(f float64) Const { return Const{Kind: ConstFloat, Flt: f} }
func StrConst(s string) Const    { return Const{Kind: ConstStr, Str: s} }

// key returns a value usable as a Go map key, for deduplication. Float
// constants key off their raw bit pattern rather than the float64 itself,
// since IEEE-754 equality treats 0.0 == -0.0 and a plain float64 key would
// merge them. NaN constants never reach the map: AddConst appends each one
// as a fresh entry.
func (c Const) key() interface{} {
	switch c.Kind {
	case ConstInt:
		return c.Int
	case ConstFloat:
		return math.Float64bits(c.Flt)
	default:
		return c.Str
	}
}

func (c Const) String() string {
	switch c.Kind {
	case ConstInt:
		return fmt.Sprintf("%d", c.Int)
	case ConstFloat:
		return fmt.Sprintf("%g", c.Flt)
	default:
		return fmt.Sprintf("%q", c.Str)
	}
}

// LocalVar is a named local register slot.
type LocalVar struct {
	Name string
}

// UpVar is a reference to a variable captured from an enclosing scope. It is
// carried in the data model but never populated by the current compiler.
type UpVar struct {
	Name string
}

// Proto is a compiled function prototype: its instruction stream, constant
// table, register-file bookkeeping, and nested prototypes.
type Proto struct {
	StackSize  uint32
	ParamCount uint32
	Code       []Instruction
	Consts     []Const
	Locals     []LocalVar
	UpVars     []UpVar
	Protos     []*Proto

	constMap map[interface{}]uint32
}

// NewProto returns an empty Proto with its stack size initialized to 2, the
// minimum stack size of a Lua function.
func NewProto() *Proto {
	return &Proto{StackSize: 2, constMap: make(map[interface{}]uint32)}
}

// AddConst interns k, returning its existing index if an equal constant was
// already added, or appending and returning a fresh one otherwise. A NaN
// float is never equal to an existing constant, so it always gets a fresh
// index.
func (p *Proto) AddConst(k Const) uint32 {
	if k.Kind == ConstFloat && math.IsNaN(k.Flt) {
		p.Consts = append(p.Consts, k)
		return uint32(len(p.Consts) - 1)
	}
	if p.constMap == nil {
		p.constMap = make(map[interface{}]uint32)
	}
	key := k.key()
	if idx, ok := p.constMap[key]; ok {
		return idx
	}
	idx := uint32(len(p.Consts))
	p.Consts = append(p.Consts, k)
	p.constMap[key] = idx
	return idx
}

// AddLocal appends a named local and returns its register index.
func (p *Proto) AddLocal(name string) uint32 {
	p.Locals = append(p.Locals, LocalVar{Name: name})
	return uint32(len(p.Locals) - 1)
}

// ResolveLocal returns the register index of a local named name, if any.
func (p *Proto) ResolveLocal(name string) (uint32, bool) {
	for i, l := range p.Locals {
		if l.Name == name {
			return uint32(i), true
		}
	}
	return 0, false
}

func (p *Proto) emit(i Instruction) int {
	p.Code = append(p.Code, i)
	return len(p.Code) - 1
}

// CodeReturn emits a Return instruction covering nret values starting at
// register first (nret == 0 means "return nothing").
func (p *Proto) CodeReturn(first, nret uint32) int {
	return p.emit(CreateABC(Return, first, nret+1, 0))
}

// CodeNil emits a LoadNil covering n registers starting at startReg.
func (p *Proto) CodeNil(startReg, n uint32) int {
	return p.emit(CreateABC(LoadNil, startReg, n-1, 0))
}

// CodeBool emits a LoadBool; a nonzero skip (the C operand) makes the VM
// skip the next instruction, 0 falls through to it.
func (p *Proto) CodeBool(reg uint32, v bool, skip uint32) int {
	var b uint32
	if v {
		b = 1
	}
	return p.emit(CreateABC(LoadBool, reg, b, skip))
}

// CodeConst emits a LoadK loading constant constIndex into reg.
func (p *Proto) CodeConst(reg, constIndex uint32) int {
	return p.emit(CreateABx(LoadK, reg, constIndex))
}

// CodeMove emits a Move copying src into reg.
func (p *Proto) CodeMove(reg, src uint32) int {
	return p.emit(CreateABC(Move, reg, src, 0))
}

// CodeBinOp emits an arithmetic/bitwise/concat ABC instruction.
func (p *Proto) CodeBinOp(op Op, target, left, right uint32) int {
	return p.emit(CreateABC(op, target, left, right))
}

// CodeComp emits a comparison instruction (Eq/Lt/Le) with polarity cond,
// followed immediately by the caller's responsibility to emit the trailing
// Jmp sentinel (see CodeJmp).
func (p *Proto) CodeComp(op Op, cond, left, right uint32) int {
	return p.emit(CreateABC(op, cond, left, right))
}

// CodeUnOp emits a unary ABC instruction.
func (p *Proto) CodeUnOp(op Op, target, src uint32) int {
	return p.emit(CreateABC(op, target, src, 0))
}

// CodeJmp emits a Jmp with sentinel sBx = NoJump, to be patched later.
// upvars is the number of open upvalues to close on the jump (0 here, since
// closures are out of scope), encoded in A.
func (p *Proto) CodeJmp(upvars uint32) int {
	return p.emit(CreateAsBx(Jmp, upvars, NoJump))
}

// CodeTestSet emits a TestSet used by short-circuit and/or lowering: if
// register toTest's truthiness matches test, it is copied into set and the
// following Jmp runs; otherwise that Jmp is skipped.
func (p *Proto) CodeTestSet(set, toTest, test uint32) int {
	return p.emit(CreateABC(TestSet, set, toTest, test))
}

// FixJumpPos patches the Jmp at pc so that its sBx lands on pos.
func (p *Proto) FixJumpPos(pos, pc int) {
	p.Code[pc].SetArgSBx(int32(pos - pc - 1))
}

// FixCondJumpPos patches the comparison-guarded Jmp at pc: if the preceding
// comparison's polarity (its own A flag, inspected via pc-1) is 0 the jump
// targets falsePos, otherwise truePos.
func (p *Proto) FixCondJumpPos(truePos, falsePos, pc int) {
	pos := falsePos
	if p.Code[pc-1].ArgA() != 0 {
		pos = truePos
	}
	p.FixJumpPos(pos, pc)
}

// Instruction returns a pointer to the instruction at index so callers can
// mutate it in place (e.g. Save, polarity flips).
func (p *Proto) Instruction(index int) *Instruction {
	return &p.Code[index]
}

// Save retargets the A operand of the most recently emitted instruction; the
// expression-lowering temp-retarget path uses this instead of emitting a
// redundant Move.
func (p *Proto) Save(target uint32) int {
	last := len(p.Code) - 1
	p.Code[last].Save(target)
	return last
}

// ProtoContext is the mutable compile-time envelope around a Proto: it
// tracks the current top of the register file while Proto itself holds the
// durable, emitted state.
type ProtoContext struct {
	Proto  *Proto
	RegTop uint32
}

// NewProtoContext wraps a fresh Proto in a new ProtoContext.
func NewProtoContext() *ProtoContext {
	return &ProtoContext{Proto: NewProto()}
}

func (pc *ProtoContext) checkStack(n uint32) {
	top := pc.RegTop + n
	if top > pc.Proto.StackSize {
		pc.Proto.StackSize = top
	}
}

// ReserveRegs bumps RegTop by n and returns the first reserved index,
// growing StackSize if this is a new high-water mark.
func (pc *ProtoContext) ReserveRegs(n uint32) uint32 {
	pc.checkStack(n)
	index := pc.RegTop
	pc.RegTop += n
	return index
}

// FreeReg releases n temp registers from the top of the register file. It is
// the caller's responsibility to free exactly what it reserved, in the
// opposite order.
func (pc *ProtoContext) FreeReg(n uint32) {
	pc.RegTop -= n
}

// GetRegTop returns the current top of the register file (the high-water
// mark is Proto.StackSize).
func (pc *ProtoContext) GetRegTop() uint32 {
	return pc.RegTop
}
