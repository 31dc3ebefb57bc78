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
	"github.com/rslua-go/rslua/ast"
	"github.com/rslua-go/rslua/opcode"
)

// expr lowers an AST expression, optionally targeting reg, into an
// exprResult. Literals resolve without emitting any code; a Name resolves
// to the register already holding that local; everything else delegates to
// foldingOrCode.
func (c *Compiler) expr(e *ast.Expr, reg *uint32) (exprResult, error) {
	switch e.Kind {
	case ast.ExprInt:
		return constResult(opcode.IntConst(e.Int)), nil
	case ast.ExprFloat:
		return constResult(opcode.FloatConst(e.Float)), nil
	case ast.ExprString:
		return constResult(opcode.StrConst(e.Str)), nil
	case ast.ExprNil:
		return nilResult(), nil
	case ast.ExprTrue:
		return trueResult(), nil
	case ast.ExprFalse:
		return falseResult(), nil
	case ast.ExprName:
		if src, ok := c.proto().ResolveLocal(e.Name); ok {
			return constRegResult(src), nil
		}
		return exprResult{}, newCompileError(e.Line, "unresolved name %q (globals and upvalues are not supported)", e.Name)
	case ast.ExprBin, ast.ExprUn:
		return c.foldingOrCode(e, reg)
	case ast.ExprParen:
		// Parentheses carry no codegen meaning of their own once parsed; the
		// inner expression may be any kind, including a literal or name, so
		// this redispatches through expr rather than assuming Bin/Un.
		return c.expr(e.Sub, reg)
	default:
		return exprResult{}, newCompileError(e.Line, "unsupported expression kind")
	}
}

// foldingOrCode tries constant folding first; on failure (not foldable, not
// an error) it falls through to codegen.
func (c *Compiler) foldingOrCode(e *ast.Expr, reg *uint32) (exprResult, error) {
	k, ok, err := c.tryConstFolding(e)
	if err != nil {
		return exprResult{}, err
	}
	if ok {
		return constResult(k), nil
	}
	return c.codeExpr(e, reg)
}

// tryConstFolding recursively evaluates e as a compile-time constant. It
// returns ok=false (no error) when e is not one of the foldable forms, or
// when a subexpression isn't itself foldable (e.g. a comparison, and/or,
// concat, or a name) — those are exactly the forms codeExpr must lower at
// runtime instead.
func (c *Compiler) tryConstFolding(e *ast.Expr) (opcode.Const, bool, error) {
	switch e.Kind {
	case ast.ExprInt:
		return opcode.IntConst(e.Int), true, nil
	case ast.ExprFloat:
		return opcode.FloatConst(e.Float), true, nil
	case ast.ExprString:
		return opcode.StrConst(e.Str), true, nil
	case ast.ExprParen:
		return c.tryConstFolding(e.Sub)
	case ast.ExprBin:
		if !isFoldableBinOp(e.BinOp) {
			return opcode.Const{}, false, nil
		}
		l, lok, err := c.tryConstFolding(e.Left)
		if err != nil || !lok {
			return opcode.Const{}, false, err
		}
		r, rok, err := c.tryConstFolding(e.Right)
		if err != nil || !rok {
			return opcode.Const{}, false, err
		}
		return foldBinOp(e.BinOp, l, r, e.Line)
	case ast.ExprUn:
		if e.UnOp != ast.UMinus && e.UnOp != ast.BNot {
			return opcode.Const{}, false, nil
		}
		k, ok, err := c.tryConstFolding(e.Sub)
		if err != nil || !ok {
			return opcode.Const{}, false, err
		}
		return foldUnOp(e.UnOp, k, e.Line)
	default:
		return opcode.Const{}, false, nil
	}
}

func isFoldableBinOp(op ast.BinOp) bool {
	switch op {
	case ast.Add, ast.Minus, ast.Mul, ast.Div, ast.IDiv, ast.Mod, ast.Pow,
		ast.BAnd, ast.BOr, ast.BXor, ast.Shl, ast.Shr:
		return true
	default:
		return false
	}
}

// codeExpr lowers the runtime (non-foldable) forms: binary ops, and unary
// not/minus/bnot/len.
func (c *Compiler) codeExpr(e *ast.Expr, reg *uint32) (exprResult, error) {
	switch e.Kind {
	case ast.ExprBin:
		return c.codeBinOp(e.BinOp, reg, e.Left, e.Right, e.Line)
	case ast.ExprUn:
		if e.UnOp == ast.Not {
			return c.codeNot(reg, e.Sub)
		}
		operand, err := c.expr(e.Sub, reg)
		if err != nil {
			return exprResult{}, err
		}
		return c.codeUnOp(unOpcode(e.UnOp), reg, operand)
	default:
		panic("codeExpr called on a foldable/leaf expression")
	}
}

func unOpcode(op ast.UnOp) opcode.Op {
	switch op {
	case ast.UMinus:
		return opcode.Unm
	case ast.BNot:
		return opcode.BNot
	case ast.Len:
		return opcode.Len
	default:
		panic("unOpcode called with Not, which has its own lowering path")
	}
}

// isInputReusable reports whether a register result produced while lowering
// the left operand can be handed straight to the right operand's lowering
// instead of allocating a fresh one. It can only be reused when left's
// result lives strictly below the suggested input register — otherwise
// lowering right into that same slot would clobber left's value before it's
// consumed.
func isInputReusable(r, input uint32) bool { return r < input }

func (c *Compiler) codeBinOp(op ast.BinOp, input *uint32, leftExpr, rightExpr *ast.Expr, line int) (exprResult, error) {
	if op == ast.And || op == ast.Or {
		return c.codeAndOr(op, input, leftExpr, rightExpr)
	}

	left, err := c.expr(leftExpr, input)
	if err != nil {
		return exprResult{}, err
	}
	left.resolve(c.context())

	var rightInput *uint32
	if input != nil {
		reusable := true
		switch left.kind {
		case resReg:
			reusable = isInputReusable(left.reg.index, *input)
		case resJump:
			reusable = isInputReusable(left.jump.target.index, *input)
		}
		if reusable {
			rightInput = input
		}
	}

	right, err := c.expr(rightExpr, rightInput)
	if err != nil {
		return exprResult{}, err
	}
	right.resolve(c.context())

	var targetReg uint32
	if input != nil {
		targetReg = *input
	} else {
		targetReg = c.context().ReserveRegs(1)
	}

	if op.IsComp() {
		return c.codeComp(op, targetReg, input != nil, left, right), nil
	}

	leftRK := left.getRK(c.proto())
	rightRK := right.getRK(c.proto())
	c.proto().CodeBinOp(binOpcode(op), targetReg, leftRK, rightRK)
	if input != nil {
		return regResult(targetReg), nil
	}
	return tempRegResult(targetReg), nil
}

func binOpcode(op ast.BinOp) opcode.Op {
	switch op {
	case ast.Add:
		return opcode.Add
	case ast.Minus:
		return opcode.Sub
	case ast.Mul:
		return opcode.Mul
	case ast.Div:
		return opcode.Div
	case ast.IDiv:
		return opcode.IDiv
	case ast.Mod:
		return opcode.Mod
	case ast.Pow:
		return opcode.Pow
	case ast.BAnd:
		return opcode.BAnd
	case ast.BOr:
		return opcode.BOr
	case ast.BXor:
		return opcode.BXor
	case ast.Shl:
		return opcode.Shl
	case ast.Shr:
		return opcode.Shr
	case ast.Concat:
		return opcode.Concat
	default:
		panic("binOpcode called with a non-arithmetic operator")
	}
}

// codeComp emits the two-instruction comparison protocol: the comparison
// itself (with the polarity implied by op, and operands possibly swapped
// for Gt/Ge) followed by an unpatched Jmp sentinel.
func (c *Compiler) codeComp(op ast.BinOp, target uint32, isInputReg bool, left, right exprResult) exprResult {
	leftRK := left.getRK(c.proto())
	rightRK := right.getRK(c.proto())
	switch op {
	case ast.Gt, ast.Ge:
		leftRK, rightRK = rightRK, leftRK
	}

	lookup := map[ast.BinOp]opcode.Op{
		ast.Lt: opcode.Lt, ast.Gt: opcode.Lt,
		ast.Le: opcode.Le, ast.Ge: opcode.Le,
		ast.Eq: opcode.Eq, ast.Ne: opcode.Eq,
	}
	cond := uint32(1)
	if op == ast.Ne {
		cond = 0
	}

	p := c.proto()
	p.CodeComp(lookup[op], cond, leftRK, rightRK)
	jmpPC := p.CodeJmp(0)

	r := reg{index: target, mutable: true, temp: !isInputReg}
	return jumpResult(r, jmpPC)
}

// codeAndOr implements short-circuit and/or. When the left operand's
// truthiness is known at compile time (a folded constant, or literal
// true/false), the whole expression degenerates to whichever side actually
// runs: And keeps right when left is truthy and the constant false
// otherwise; Or keeps left when truthy and right otherwise. When left is a
// genuine runtime value, TestSet tests it in the register that holds it and
// copies it into the target register on the short-circuit path (a
// comparison result is first resolved into a boolean), and the right
// operand is evaluated into the target register only when the test requires
// it; the skipped jump is patched to land immediately after.
func (c *Compiler) codeAndOr(op ast.BinOp, input *uint32, leftExpr, rightExpr *ast.Expr) (exprResult, error) {
	// target is decided before lowering left, and handed down as left's own
	// suggested register: this guarantees left's codegen (if it allocates
	// one at all) lands exactly on target, rather than on some other temp
	// that codeAndOr would then have to reconcile against a second,
	// independently-reserved register.
	var target uint32
	reservedHere := input == nil
	if input != nil {
		target = *input
	} else {
		target = c.context().ReserveRegs(1)
	}

	left, err := c.expr(leftExpr, &target)
	if err != nil {
		return exprResult{}, err
	}

	switch {
	case op == ast.And && left.isStaticallyTrue():
		left.resolve(c.context())
		if reservedHere {
			c.context().FreeReg(1)
		}
		return c.expr(rightExpr, input)
	case op == ast.And && left.isStaticallyFalse():
		left.resolve(c.context())
		if reservedHere {
			c.context().FreeReg(1)
		}
		return falseResult(), nil
	case op == ast.Or && left.isStaticallyTrue():
		if reservedHere {
			c.context().FreeReg(1)
		}
		return left, nil
	case op == ast.Or && left.isStaticallyFalse():
		left.resolve(c.context())
		if reservedHere {
			c.context().FreeReg(1)
		}
		return c.expr(rightExpr, input)
	}

	// left is a genuine runtime value. TestSet reads it directly out of
	// whichever register already holds it — a pending comparison must
	// first be resolved into a concrete boolean, but a plain register
	// value (including a named local's own register) needs no pre-copy:
	// TestSet itself copies src into target on the short-circuit branch.
	var src uint32
	switch left.kind {
	case resJump:
		left.jump.resolve(c.context())
		src = left.jump.target.index
	case resReg:
		src = left.reg.index
	}

	var testFlag uint32
	if op == ast.Or {
		testFlag = 1
	}
	p := c.proto()
	p.CodeTestSet(target, src, testFlag)
	jmpPC := p.CodeJmp(0)

	right, err := c.expr(rightExpr, &target)
	if err != nil {
		return exprResult{}, err
	}
	if err := c.materialize(target, right); err != nil {
		return exprResult{}, err
	}

	p.FixJumpPos(len(p.Code), jmpPC)

	// This result's value may have been written by either the TestSet
	// above (short-circuit branch) or the right-hand code just emitted
	// (fallthrough branch), depending on what runs at execution time.
	// Retargeting only the most recently emitted instruction — what the
	// generic register-reuse Save path does for an ordinary resReg —
	// would desync those two branches into different registers, so this
	// is marked non-const (forces a real Move when copied elsewhere)
	// rather than handed back through regResult/tempRegResult.
	return exprResult{kind: resReg, reg: reg{index: target, temp: input == nil}}, nil
}

// codeNot lowers logical not. A foldable operand is always truthy in this
// language (only runtime nil/false are falsy), so it folds directly to
// False. A Jump result is handled without emitting any code at all: negation
// is just polarity inversion. Const/True/Nil/False collapse statically;
// anything else needs a real Not instruction.
func (c *Compiler) codeNot(input *uint32, operand *ast.Expr) (exprResult, error) {
	if _, ok, err := c.tryConstFolding(operand); err != nil {
		return exprResult{}, err
	} else if ok {
		return falseResult(), nil
	}

	result, err := c.expr(operand, input)
	if err != nil {
		return exprResult{}, err
	}
	switch result.kind {
	case resJump:
		result.jump.inverse(c.context())
		return result, nil
	case resNil, resFalse:
		return trueResult(), nil
	case resConst, resTrue:
		return falseResult(), nil
	default:
		return c.codeUnOp(opcode.Not, input, result)
	}
}

func (c *Compiler) codeUnOp(op opcode.Op, input *uint32, operand exprResult) (exprResult, error) {
	src := operand.getRK(c.proto())
	// Free the operand's temp register, if any, before reserving the
	// target: this lets the target land on the same slot the operand just
	// vacated instead of always growing the register file.
	operand.resolve(c.context())

	var target uint32
	if input != nil {
		target = *input
	} else {
		target = c.context().ReserveRegs(1)
	}

	c.proto().CodeUnOp(op, target, src)

	if input != nil {
		return regResult(target), nil
	}
	return tempRegResult(target), nil
}

// materialize writes result's value into reg, exactly as exprAndSave does
// for a pre-determined target — used by codeAndOr, which must land both
// branches in the same register regardless of which kind of result each
// branch produced.
func (c *Compiler) materialize(reg uint32, result exprResult) error {
	p := c.proto()
	switch result.kind {
	case resConst:
		index := p.AddConst(result.k)
		p.CodeConst(reg, index)
	case resReg:
		if result.reg.isConst() {
			p.CodeMove(reg, result.reg.index)
		} else if result.reg.index != reg {
			p.Save(reg)
		}
	case resTrue:
		p.CodeBool(reg, true, 0)
	case resFalse:
		p.CodeBool(reg, false, 0)
	case resNil:
		p.CodeNil(reg, 1)
	case resJump:
		result.jump.resolve(c.context())
		if result.jump.target.index != reg {
			p.CodeMove(reg, result.jump.target.index)
		}
	}
	return nil
}

// exprAndSave lowers expr and ensures its value ends up in a concrete
// register: saveReg if given, otherwise a freshly reserved one. It mirrors
// the materialization table in the expression-lowering protocol: constants
// emit LoadK, locals emit Move, a mutable temp is retargeted in place via
// Save (no extra instruction), booleans/nil emit their Load* form, and a
// Jump is resolved into the paired LoadBool sequence.
func (c *Compiler) exprAndSave(e *ast.Expr, saveReg *uint32) (uint32, error) {
	var reg uint32
	if saveReg != nil {
		reg = *saveReg
	} else {
		reg = c.context().ReserveRegs(1)
	}

	// A scratch register is used when the target is predetermined, so that
	// expr's own register-reuse heuristics still apply; it's freed again
	// once the result has been copied into reg.
	tempReg := reg
	usedScratch := false
	if saveReg != nil {
		tempReg = c.context().ReserveRegs(1)
		usedScratch = true
	}

	result, err := c.expr(e, &tempReg)
	if err != nil {
		return 0, err
	}
	if err := c.materialize(reg, result); err != nil {
		return 0, err
	}

	if usedScratch {
		c.context().FreeReg(1)
	}
	return reg, nil
}
