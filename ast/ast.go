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

package ast

// BinOp identifies a binary expression operator.
type BinOp uint8

const (
	Add BinOp = iota
	Minus
	Mul
	Div
	IDiv
	Mod
	Pow
	Concat
	BAnd
	BOr
	BXor
	Shl
	Shr
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	And
	Or
)

// IsComp reports whether op is a comparison operator.
func (op BinOp) IsComp() bool {
	switch op {
	case Eq, Ne, Lt, Le, Gt, Ge:
		return true
	default:
		return false
	}
}

var binOpNames = [...]string{
	Add: "+", Minus: "-", Mul: "*", Div: "/", IDiv: "//", Mod: "%", Pow: "^",
	Concat: "..", BAnd: "&", BOr: "|", BXor: "~", Shl: "<<", Shr: ">>",
	Eq: "==", Ne: "~=", Lt: "<", Le: "<=", Gt: ">", Ge: ">=", And: "and", Or: "or",
}

func (op BinOp) String() string { return binOpNames[op] }

// UnOp identifies a unary expression operator.
type UnOp uint8

const (
	UMinus UnOp = iota
	Not
	BNot
	Len
)

var unOpNames = [...]string{UMinus: "-", Not: "not", BNot: "~", Len: "#"}

func (op UnOp) String() string { return unOpNames[op] }

// ExprKind discriminates the variant held by an Expr.
type ExprKind uint8

const (
	ExprInt ExprKind = iota
	ExprFloat
	ExprString
	ExprNil
	ExprTrue
	ExprFalse
	ExprName
	ExprBin
	ExprUn
	ExprParen
)

// Expr is a tagged union over every expression form the compiler backend
// accepts. Only the fields relevant to Kind are populated; this mirrors the
// original Rust enum's shape more closely than a deep interface hierarchy
// would, and keeps construction of test fixtures to plain struct literals.
type Expr struct {
	Kind ExprKind

	Int   int64
	Float float64
	Str   string
	Name  string

	BinOp BinOp
	Left  *Expr
	Right *Expr

	UnOp   UnOp
	Sub    *Expr // operand of UnExpr, or inner expr of ParenExpr
	Line   int
}

func Int(v int64) *Expr   { return &Expr{Kind: ExprInt, Int: v} }
func Float(v float64) *Expr { return &Expr{Kind: ExprFloat, Float: v} }
func String(v string) *Expr { return &Expr{Kind: ExprString, Str: v} }
func Nil() *Expr           { return &Expr{Kind: ExprNil} }
func True() *Expr          { return &Expr{Kind: ExprTrue} }
func False() *Expr         { return &Expr{Kind: ExprFalse} }
func Name(v string) *Expr  { return &Expr{Kind: ExprName, Name: v} }

func Bin(op BinOp, left, right *Expr) *Expr {
	return &Expr{Kind: ExprBin, BinOp: op, Left: left, Right: right}
}

func Un(op UnOp, sub *Expr) *Expr {
	return &Expr{Kind: ExprUn, UnOp: op, Sub: sub}
}

func Paren(sub *Expr) *Expr {
	return &Expr{Kind: ExprParen, Sub: sub}
}

// HasMultRet reports whether the expression can produce more than one value
// when used in an RHS list, i.e. a function call or varargs. Neither is part
// of this core, so it is always false for now; the hook exists so the
// compiler's adjustAssign can be written against the eventual contract
// without needing a stub that panics.
func (e *Expr) HasMultRet() bool { return false }

// StmtKind discriminates the variant held by a Stmt.
type StmtKind uint8

const (
	StmtLocal StmtKind = iota
	StmtAssign
)

// Assignable is an expression usable as an assignment target. Only Name is
// implemented; the other two forms are recognised by the compiler and
// rejected with a CompileError since table/field assignment is out of scope.
type AssignableKind uint8

const (
	AssignName AssignableKind = iota
	AssignParenExpr
	AssignSuffixedExpr
)

type Assignable struct {
	Kind AssignableKind
	Name string
}

func AssignableName(name string) Assignable {
	return Assignable{Kind: AssignName, Name: name}
}

// Stmt is a tagged union over the two statement forms this core lowers.
type Stmt struct {
	Kind StmtKind

	// LocalStat
	Names []string
	Exprs []*Expr

	// AssignStat
	Left  []Assignable
	Right []*Expr
}

func LocalStat(names []string, exprs []*Expr) Stmt {
	return Stmt{Kind: StmtLocal, Names: names, Exprs: exprs}
}

func AssignStat(left []Assignable, right []*Expr) Stmt {
	return Stmt{Kind: StmtAssign, Left: left, Right: right}
}

// Block is an ordered sequence of statements, the root input to the
// compiler. A full grammar would nest blocks inside control-flow
// constructs; this core only ever sees the top-level block.
type Block struct {
	Stats []Stmt
}
