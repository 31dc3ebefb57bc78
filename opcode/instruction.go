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

const (
	sizeOp = 6
	sizeA  = 8
	sizeB  = 9
	sizeC  = 9
	sizeBx = sizeB + sizeC

	posOp = 0
	posA  = posOp + sizeOp
	posC  = posA + sizeA
	posB  = posC + sizeC
	posBx = posC

	maxArgA  = 1<<sizeA - 1
	maxArgB  = 1<<sizeB - 1
	maxArgC  = 1<<sizeC - 1
	maxArgBx = 1<<sizeBx - 1

	// MaxArgSBx is the bias applied to signed Bx (sBx) operands.
	MaxArgSBx = maxArgBx >> 1

	// MaskK is the RK operand's "is a constant index" bit.
	MaskK = 1 << (sizeB - 1)

	// MaxIndexRK is the largest constant-table index representable in an
	// RK operand (the remaining 8 bits below MaskK).
	MaxIndexRK = MaskK - 1

	// NoJump is the sentinel sBx value marking an unpatched or
	// chain-terminal jump.
	NoJump = -1
)

func mask(size uint) uint32 { return 1<<size - 1 }

// Instruction is a 32-bit packed bytecode word.
type Instruction uint32

// CreateABC packs an ABC-form instruction.
func CreateABC(op Op, a, b, c uint32) Instruction {
	return Instruction(uint32(op)<<posOp | a<<posA | c<<posC | b<<posB)
}

// CreateABx packs an ABx-form instruction (unsigned 18-bit Bx).
func CreateABx(op Op, a, bx uint32) Instruction {
	return Instruction(uint32(op)<<posOp | a<<posA | bx<<posBx)
}

// CreateAsBx packs an AsBx-form instruction (signed Bx, biased).
func CreateAsBx(op Op, a uint32, sbx int32) Instruction {
	bx := uint32(sbx + MaxArgSBx)
	return Instruction(uint32(op)<<posOp | a<<posA | bx<<posBx)
}

// Op returns the instruction's opcode.
func (i Instruction) Op() Op {
	return Op(uint32(i) & mask(sizeOp))
}

// ArgA returns the A operand.
func (i Instruction) ArgA() uint32 {
	return (uint32(i) >> posA) & mask(sizeA)
}

// ArgB returns the B operand.
func (i Instruction) ArgB() uint32 {
	return (uint32(i) >> posB) & mask(sizeB)
}

// ArgC returns the C operand.
func (i Instruction) ArgC() uint32 {
	return (uint32(i) >> posC) & mask(sizeC)
}

// ArgBx returns the unsigned Bx operand (ABx form).
func (i Instruction) ArgBx() uint32 {
	return (uint32(i) >> posBx) & mask(sizeBx)
}

// ArgSBx returns the signed, unbiased sBx operand (AsBx form).
func (i Instruction) ArgSBx() int32 {
	return int32(i.ArgBx()) - MaxArgSBx
}

// SetArgA rewrites the A field in place.
func (i *Instruction) SetArgA(a uint32) {
	*i = Instruction(uint32(*i)&^(mask(sizeA)<<posA) | (a&mask(sizeA))<<posA)
}

// SetArgSBx rewrites the sBx field in place (AsBx form).
func (i *Instruction) SetArgSBx(sbx int32) {
	bx := uint32(sbx + MaxArgSBx)
	*i = Instruction(uint32(*i)&^(mask(sizeBx)<<posBx) | (bx&mask(sizeBx))<<posBx)
}

// Save retargets the instruction's A operand to reg; used to redirect a
// temp's result into the caller-supplied output register in place, instead
// of emitting an extra Move.
func (i *Instruction) Save(reg uint32) {
	i.SetArgA(reg)
}

// RK builds an RK operand referring to register r.
func RK(r uint32) uint32 { return r }

// RKConst builds an RK operand referring to constant index k.
func RKConst(k uint32) uint32 { return k | MaskK }

// IsConstRK reports whether an RK operand refers to the constant table.
func IsConstRK(rk uint32) bool { return rk&MaskK != 0 }

// RKIndex extracts the register or constant index from an RK operand.
func RKIndex(rk uint32) uint32 { return rk &^ MaskK }
