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

import (
	"math"

	"github.com/rslua-go/rslua/ast"
	"github.com/rslua-go/rslua/opcode"
)

// foldBinOp evaluates a binary arithmetic/bitwise op over two already-folded
// constants, or reports ok=false when op isn't one this layer folds (the
// caller falls back to codegen for those).
func foldBinOp(op ast.BinOp, l, r opcode.Const, line int) (opcode.Const, bool, error) {
	switch op {
	case ast.Add, ast.Minus, ast.Mul:
		return foldArith(op, l, r)
	case ast.Div:
		return foldDiv(l, r)
	case ast.Pow:
		return foldPow(l, r)
	case ast.IDiv:
		return foldIDiv(l, r, line)
	case ast.Mod:
		return foldMod(l, r, line)
	case ast.BAnd, ast.BOr, ast.BXor, ast.Shl, ast.Shr:
		return foldBitwise(op, l, r, line)
	default:
		return opcode.Const{}, false, nil
	}
}

func foldUnOp(op ast.UnOp, k opcode.Const, line int) (opcode.Const, bool, error) {
	switch op {
	case ast.UMinus:
		return foldMinus(k)
	case ast.BNot:
		return foldBNot(k, line)
	default:
		return opcode.Const{}, false, nil
	}
}

func asFloat(k opcode.Const) (float64, bool) {
	switch k.Kind {
	case opcode.ConstInt:
		return float64(k.Int), true
	case opcode.ConstFloat:
		return k.Flt, true
	default:
		return 0, false
	}
}

func asInt(k opcode.Const) (int64, bool) {
	if k.Kind != opcode.ConstInt {
		return 0, false
	}
	return k.Int, true
}

func foldArith(op ast.BinOp, l, r opcode.Const) (opcode.Const, bool, error) {
	if li, ok := asInt(l); ok {
		if ri, ok := asInt(r); ok {
			// Overflow wraps modulo 2^64: Go's fixed-width integer
			// arithmetic does this natively via uint64 addition/
			// subtraction/multiplication cast back to int64.
			var v uint64
			switch op {
			case ast.Add:
				v = uint64(li) + uint64(ri)
			case ast.Minus:
				v = uint64(li) - uint64(ri)
			case ast.Mul:
				v = uint64(li) * uint64(ri)
			}
			return opcode.IntConst(int64(v)), true, nil
		}
	}
	lf, ok1 := asFloat(l)
	rf, ok2 := asFloat(r)
	if !ok1 || !ok2 {
		return opcode.Const{}, false, nil
	}
	var v float64
	switch op {
	case ast.Add:
		v = lf + rf
	case ast.Minus:
		v = lf - rf
	case ast.Mul:
		v = lf * rf
	}
	return opcode.FloatConst(v), true, nil
}

func foldDiv(l, r opcode.Const) (opcode.Const, bool, error) {
	lf, ok1 := asFloat(l)
	rf, ok2 := asFloat(r)
	if !ok1 || !ok2 {
		return opcode.Const{}, false, nil
	}
	// Float division by zero follows IEEE-754: +-Inf or NaN, never an error.
	return opcode.FloatConst(lf / rf), true, nil
}

func foldPow(l, r opcode.Const) (opcode.Const, bool, error) {
	lf, ok1 := asFloat(l)
	rf, ok2 := asFloat(r)
	if !ok1 || !ok2 {
		return opcode.Const{}, false, nil
	}
	return opcode.FloatConst(math.Pow(lf, rf)), true, nil
}

func foldIDiv(l, r opcode.Const, line int) (opcode.Const, bool, error) {
	if li, ok := asInt(l); ok {
		if ri, ok := asInt(r); ok {
			if ri == 0 {
				return opcode.Const{}, false, newCompileError(line, "attempt to perform 'n//0'")
			}
			return opcode.IntConst(int64(uint64(floorDiv(li, ri)))), true, nil
		}
	}
	lf, ok1 := asFloat(l)
	rf, ok2 := asFloat(r)
	if !ok1 || !ok2 {
		return opcode.Const{}, false, nil
	}
	return opcode.FloatConst(math.Floor(lf / rf)), true, nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func foldMod(l, r opcode.Const, line int) (opcode.Const, bool, error) {
	if li, ok := asInt(l); ok {
		if ri, ok := asInt(r); ok {
			if ri == 0 {
				return opcode.Const{}, false, newCompileError(line, "attempt to perform 'n%%0'")
			}
			m := li % ri
			if m != 0 && (m < 0) != (ri < 0) {
				m += ri
			}
			return opcode.IntConst(m), true, nil
		}
	}
	lf, ok1 := asFloat(l)
	rf, ok2 := asFloat(r)
	if !ok1 || !ok2 {
		return opcode.Const{}, false, nil
	}
	m := math.Mod(lf, rf)
	if m != 0 && (m < 0) != (rf < 0) {
		m += rf
	}
	return opcode.FloatConst(m), true, nil
}

func toBitwiseInt(k opcode.Const, line int) (int64, error) {
	switch k.Kind {
	case opcode.ConstInt:
		return k.Int, nil
	case opcode.ConstFloat:
		if k.Flt == math.Trunc(k.Flt) && !math.IsInf(k.Flt, 0) {
			return int64(k.Flt), nil
		}
		return 0, newCompileError(line, "number has no integer representation")
	default:
		return 0, newCompileError(line, "attempt to perform bitwise operation on a string value")
	}
}

func foldBitwise(op ast.BinOp, l, r opcode.Const, line int) (opcode.Const, bool, error) {
	if l.Kind == opcode.ConstStr || r.Kind == opcode.ConstStr {
		return opcode.Const{}, false, nil
	}
	li, err := toBitwiseInt(l, line)
	if err != nil {
		return opcode.Const{}, false, err
	}
	ri, err := toBitwiseInt(r, line)
	if err != nil {
		return opcode.Const{}, false, err
	}
	var v uint64
	switch op {
	case ast.BAnd:
		v = uint64(li) & uint64(ri)
	case ast.BOr:
		v = uint64(li) | uint64(ri)
	case ast.BXor:
		v = uint64(li) ^ uint64(ri)
	case ast.Shl:
		v = shiftLeft(uint64(li), ri)
	case ast.Shr:
		v = shiftLeft(uint64(li), -ri)
	}
	return opcode.IntConst(int64(v)), true, nil
}

// shiftLeft implements Lua's logical shift: a negative count shifts right,
// and any count with |n| >= 64 yields zero.
func shiftLeft(v uint64, n int64) uint64 {
	switch {
	case n <= -64 || n >= 64:
		return 0
	case n >= 0:
		return v << uint(n)
	default:
		return v >> uint(-n)
	}
}

func foldMinus(k opcode.Const) (opcode.Const, bool, error) {
	switch k.Kind {
	case opcode.ConstInt:
		return opcode.IntConst(int64(-uint64(k.Int))), true, nil
	case opcode.ConstFloat:
		return opcode.FloatConst(-k.Flt), true, nil
	default:
		return opcode.Const{}, false, nil
	}
}

func foldBNot(k opcode.Const, line int) (opcode.Const, bool, error) {
	if k.Kind == opcode.ConstStr {
		return opcode.Const{}, false, nil
	}
	i, err := toBitwiseInt(k, line)
	if err != nil {
		return opcode.Const{}, false, err
	}
	return opcode.IntConst(^i), true, nil
}
