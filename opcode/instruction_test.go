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
	"math"
	"testing"

	"github.com/rslua-go/rslua/opcode"
)

func TestCreateABC_roundTrip(t *testing.T) {
	i := opcode.CreateABC(opcode.Add, 3, 255, 511)
	if i.Op() != opcode.Add {
		t.Errorf("op = %v, want Add", i.Op())
	}
	if i.ArgA() != 3 {
		t.Errorf("A = %d, want 3", i.ArgA())
	}
	if i.ArgB() != 255 {
		t.Errorf("B = %d, want 255", i.ArgB())
	}
	if i.ArgC() != 511 {
		t.Errorf("C = %d, want 511", i.ArgC())
	}
}

func TestCreateABx_roundTrip(t *testing.T) {
	i := opcode.CreateABx(opcode.LoadK, 7, 200000)
	if i.Op() != opcode.LoadK {
		t.Errorf("op = %v, want LoadK", i.Op())
	}
	if i.ArgA() != 7 {
		t.Errorf("A = %d, want 7", i.ArgA())
	}
	if i.ArgBx() != 200000 {
		t.Errorf("Bx = %d, want 200000", i.ArgBx())
	}
}

func TestCreateAsBx_roundTrip(t *testing.T) {
	data := []int32{0, 1, -1, 1000, -1000, opcode.MaxArgSBx, -opcode.MaxArgSBx}
	for _, sbx := range data {
		i := opcode.CreateAsBx(opcode.Jmp, 0, sbx)
		if got := i.ArgSBx(); got != sbx {
			t.Errorf("sBx round-trip: got %d, want %d", got, sbx)
		}
	}
}

func TestSetArgSBx(t *testing.T) {
	i := opcode.CreateAsBx(opcode.Jmp, 2, opcode.NoJump)
	if i.ArgSBx() != opcode.NoJump {
		t.Fatalf("expected sentinel NoJump, got %d", i.ArgSBx())
	}
	i.SetArgSBx(42)
	if i.ArgSBx() != 42 {
		t.Errorf("after patch: got %d, want 42", i.ArgSBx())
	}
	if i.ArgA() != 2 {
		t.Errorf("A should be unaffected by SetArgSBx, got %d", i.ArgA())
	}
}

func TestSave_retargetsA(t *testing.T) {
	i := opcode.CreateABC(opcode.Add, 5, 1, 2)
	i.Save(9)
	if i.ArgA() != 9 {
		t.Errorf("A = %d, want 9", i.ArgA())
	}
	if i.ArgB() != 1 || i.ArgC() != 2 {
		t.Errorf("B/C should be unaffected by Save, got B=%d C=%d", i.ArgB(), i.ArgC())
	}
}

func TestRK(t *testing.T) {
	reg := opcode.RK(5)
	if opcode.IsConstRK(reg) {
		t.Errorf("register-form RK should not have MaskK set")
	}
	k := opcode.RKConst(5)
	if !opcode.IsConstRK(k) {
		t.Errorf("const-form RK should have MaskK set")
	}
	if opcode.RKIndex(k) != 5 {
		t.Errorf("RKIndex = %d, want 5", opcode.RKIndex(k))
	}
}

func TestConst_bitExactFloatEquality(t *testing.T) {
	p := opcode.NewProto()
	posZero := p.AddConst(opcode.FloatConst(0.0))
	negZero := p.AddConst(opcode.FloatConst(math.Copysign(0, -1)))
	if posZero == negZero {
		t.Errorf("0.0 and -0.0 should be distinct constants")
	}

	nan1 := p.AddConst(opcode.FloatConst(nanValue()))
	nan2 := p.AddConst(opcode.FloatConst(nanValue()))
	if nan1 == nan2 {
		t.Errorf("distinct NaN constants should never be deduplicated")
	}
}

func nanValue() float64 {
	var zero float64
	return zero / zero
}

func TestAddConst_dedup(t *testing.T) {
	p := opcode.NewProto()
	a := p.AddConst(opcode.IntConst(42))
	b := p.AddConst(opcode.IntConst(42))
	if a != b {
		t.Errorf("equal int constants should share an index: %d != %d", a, b)
	}
	c := p.AddConst(opcode.StrConst("42"))
	if c == a {
		t.Errorf("Int(42) and Str(\"42\") must not collide")
	}
}

func TestProtoContext_registerAllocation(t *testing.T) {
	pc := opcode.NewProtoContext()
	first := pc.ReserveRegs(3)
	if first != 0 {
		t.Errorf("first reserved index = %d, want 0", first)
	}
	if pc.GetRegTop() != 3 {
		t.Errorf("reg top = %d, want 3", pc.GetRegTop())
	}
	if pc.Proto.StackSize < 3 {
		t.Errorf("stack size = %d, want >= 3", pc.Proto.StackSize)
	}
	pc.FreeReg(1)
	if pc.GetRegTop() != 2 {
		t.Errorf("reg top after free = %d, want 2", pc.GetRegTop())
	}
}

func TestFixJumpPos(t *testing.T) {
	p := opcode.NewProto()
	jmpPC := p.CodeJmp(0)
	p.CodeReturn(0, 0)
	p.CodeReturn(0, 0)
	target := len(p.Code)
	p.FixJumpPos(target, jmpPC)
	if got := p.Code[jmpPC].ArgSBx(); got != int32(target-jmpPC-1) {
		t.Errorf("patched sBx = %d, want %d", got, target-jmpPC-1)
	}
}

func TestFixCondJumpPos_polarity(t *testing.T) {
	p := opcode.NewProto()
	p.CodeComp(opcode.Eq, 1, opcode.RK(0), opcode.RK(1))
	jmpPC := p.CodeJmp(0)
	p.FixCondJumpPos(100, 200, jmpPC)
	if got := p.Code[jmpPC].ArgSBx(); got != int32(100-jmpPC-1) {
		t.Errorf("polarity 1 should target truePos: got offset %d", got)
	}

	p2 := opcode.NewProto()
	p2.CodeComp(opcode.Eq, 0, opcode.RK(0), opcode.RK(1))
	jmpPC2 := p2.CodeJmp(0)
	p2.FixCondJumpPos(100, 200, jmpPC2)
	if got := p2.Code[jmpPC2].ArgSBx(); got != int32(200-jmpPC2-1) {
		t.Errorf("polarity 0 should target falsePos: got offset %d", got)
	}
}
