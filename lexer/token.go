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

package lexer

import "fmt"

// Kind identifies the lexical category of a Token.
type Kind uint8

const (
	// literals and identifiers
	Name Kind = iota
	Int
	Flt
	String

	// keywords
	KwAnd
	KwBreak
	KwDo
	KwElse
	KwElseif
	KwEnd
	KwFalse
	KwFor
	KwFunction
	KwGoto
	KwIf
	KwIn
	KwLocal
	KwNil
	KwNot
	KwOr
	KwRepeat
	KwReturn
	KwThen
	KwTrue
	KwUntil
	KwWhile

	// punctuation / operators
	Add
	Minus
	Mul
	Div
	IDiv
	Mod
	Pow
	Len
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
	Assign
	Lp
	Rp
	Ls
	Rs
	Lb
	Rb
	DbColon
	Colon
	Semi
	Comma
	Attr
	Concat
	Dots

	// comments
	SComment
	MComment

	// end of stream
	Eos
)

var keywords = map[string]Kind{
	"and": KwAnd, "break": KwBreak, "do": KwDo, "else": KwElse,
	"elseif": KwElseif, "end": KwEnd, "false": KwFalse, "for": KwFor,
	"function": KwFunction, "goto": KwGoto, "if": KwIf, "in": KwIn,
	"local": KwLocal, "nil": KwNil, "not": KwNot, "or": KwOr,
	"repeat": KwRepeat, "return": KwReturn, "then": KwThen, "true": KwTrue,
	"until": KwUntil, "while": KwWhile,
}

// KeywordKind returns the keyword Kind for s, and true, if s is a reserved
// word. Otherwise it returns false.
func KeywordKind(s string) (Kind, bool) {
	k, ok := keywords[s]
	return k, ok
}

// IsComment reports whether k is one of the two comment kinds.
func (k Kind) IsComment() bool { return k == SComment || k == MComment }

var kindNames = [...]string{
	Name: "name", Int: "int", Flt: "float", String: "string",

	KwAnd: "and", KwBreak: "break", KwDo: "do", KwElse: "else",
	KwElseif: "elseif", KwEnd: "end", KwFalse: "false", KwFor: "for",
	KwFunction: "function", KwGoto: "goto", KwIf: "if", KwIn: "in",
	KwLocal: "local", KwNil: "nil", KwNot: "not", KwOr: "or",
	KwRepeat: "repeat", KwReturn: "return", KwThen: "then", KwTrue: "true",
	KwUntil: "until", KwWhile: "while",

	Add: "+", Minus: "-", Mul: "*", Div: "/", IDiv: "//", Mod: "%", Pow: "^",
	Len: "#", BAnd: "&", BOr: "|", BXor: "~", Shl: "<<", Shr: ">>",
	Eq: "==", Ne: "~=", Lt: "<", Le: "<=", Gt: ">", Ge: ">=", Assign: "=",
	Lp: "(", Rp: ")", Ls: "[", Rs: "]", Lb: "{", Rb: "}",
	DbColon: "::", Colon: ":", Semi: ";", Comma: ",", Attr: ".",
	Concat: "..", Dots: "...",

	SComment: "comment", MComment: "comment", Eos: "eos",
}

// String returns the token kind's canonical textual form, as used for
// operators and keywords; other kinds return a category label.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		if s := kindNames[k]; s != "" {
			return s
		}
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Position locates a token in the source buffer.
type Position struct {
	Line   int
	Col    int
	Length int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Value carries the payload of a literal token; the zero Value has no
// payload, which is correct for everything but Int/Flt/String/Name.
type Value struct {
	HasInt    bool
	Int       int64
	HasFloat  bool
	Float     float64
	HasString bool
	Str       string
}

// Token is one scanned unit: its Kind, an optional literal Value, its
// source Position, and any comment tokens that immediately preceded it
// (populated whether or not the lexer is configured to reserve comments).
type Token struct {
	Kind     Kind
	Value    Value
	Pos      Position
	Comments []Token
}
