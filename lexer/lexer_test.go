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

package lexer_test

import (
	"testing"

	"github.com/rslua-go/rslua/lexer"
)

func kinds(toks []lexer.Token) []lexer.Kind {
	ks := make([]lexer.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func sameKinds(a, b []lexer.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRun_punctuation(t *testing.T) {
	data := []struct {
		name string
		src  string
		want []lexer.Kind
	}{
		{"assign_eq", "a == b", []lexer.Kind{lexer.Name, lexer.Eq, lexer.Name, lexer.Eos}},
		{"assign", "a = b", []lexer.Kind{lexer.Name, lexer.Assign, lexer.Name, lexer.Eos}},
		{"shl_lt", "a << b < c", []lexer.Kind{lexer.Name, lexer.Shl, lexer.Name, lexer.Lt, lexer.Name, lexer.Eos}},
		{"shr_ge_gt", "a >> b >= c > d", []lexer.Kind{
			lexer.Name, lexer.Shr, lexer.Name, lexer.Ge, lexer.Name, lexer.Gt, lexer.Name, lexer.Eos,
		}},
		{"idiv_div", "a // b / c", []lexer.Kind{lexer.Name, lexer.IDiv, lexer.Name, lexer.Div, lexer.Name, lexer.Eos}},
		{"ne_bxor", "a ~= b ~ c", []lexer.Kind{lexer.Name, lexer.Ne, lexer.Name, lexer.BXor, lexer.Name, lexer.Eos}},
		{"colon_dbcolon", "::lab:: a:b", []lexer.Kind{
			lexer.DbColon, lexer.Name, lexer.DbColon, lexer.Name, lexer.Colon, lexer.Name, lexer.Eos,
		}},
		{"dots_concat_attr", "a...b..c.d", []lexer.Kind{
			lexer.Name, lexer.Dots, lexer.Name, lexer.Concat, lexer.Name, lexer.Attr, lexer.Name, lexer.Eos,
		}},
		{"keywords", "local x = nil", []lexer.Kind{lexer.KwLocal, lexer.Name, lexer.Assign, lexer.KwNil, lexer.Eos}},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			toks, err := lexer.Run([]byte(d.src))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := kinds(toks)
			if !sameKinds(got, d.want) {
				t.Errorf("%s: got %v, want %v", d.src, got, d.want)
			}
		})
	}
}

func TestRun_numbers(t *testing.T) {
	data := []struct {
		name    string
		src     string
		wantInt bool
		i       int64
		f       float64
	}{
		{"decimal_int", "42", true, 42, 0},
		{"hex_int", "0x2A", true, 42, 0},
		{"max_int", "0x7fffffffffffffff", true, 9223372036854775807, 0},
		{"overflow_to_float", "0x8000000000000000", false, 0, 9223372036854775808.0},
		{"float", "3.14", false, 0, 3.14},
		{"hex_float", "0x1.8p3", false, 0, 12.0},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			toks, err := lexer.Run([]byte(d.src))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(toks) < 1 {
				t.Fatalf("expected at least one token")
			}
			tok := toks[0]
			if d.wantInt {
				if tok.Kind != lexer.Int || !tok.Value.HasInt || tok.Value.Int != d.i {
					t.Errorf("got %+v, want int %d", tok, d.i)
				}
			} else {
				if tok.Kind != lexer.Flt || !tok.Value.HasFloat || tok.Value.Float != d.f {
					t.Errorf("got %+v, want float %v", tok, d.f)
				}
			}
		})
	}
}

func TestRun_shortStrings(t *testing.T) {
	data := []struct {
		name string
		src  string
		want string
	}{
		{"simple", `"hello"`, "hello"},
		{"newline_escape", `"a\nb"`, "a\nb"},
		{"hex_escape", `"\x41"`, "A"},
		{"dec_escape", `"\65"`, "A"},
		{"dec_escape_max", `"\255"`, "\xff"},
		{"utf8_escape", `"\u{48}"`, "H"},
		{"utf8_escape_max", "\"\\u{10FFFF}\"", string(rune(0x10FFFF))},
		{"z_escape", "\"a\\z\n   b\"", "ab"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			toks, err := lexer.Run([]byte(d.src))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tok := toks[0]
			if tok.Kind != lexer.String || tok.Value.Str != d.want {
				t.Errorf("got %q, want %q", tok.Value.Str, d.want)
			}
		})
	}
}

func TestRun_shortString_errors(t *testing.T) {
	data := []struct {
		name string
		src  string
	}{
		{"unfinished", `"abc`},
		{"unfinished_newline", "\"abc\n\""},
		{"dec_escape_too_large", `"\256"`},
		{"utf8_too_large", "\"\\u{110000}\""},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := lexer.Run([]byte(d.src))
			if err == nil {
				t.Errorf("expected an error for %q", d.src)
			}
		})
	}
}

func TestRun_longString(t *testing.T) {
	data := []struct {
		name string
		src  string
		want string
	}{
		{"plain", "[[hello]]", "hello"},
		{"eq_level", "[==[hello]==]", "hello"},
		{"mismatched_level_nested", "[==[a]]b]==]", "a]]b"},
		{"leading_newline_skipped", "[[\nhello]]", "hello"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			toks, err := lexer.Run([]byte(d.src))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tok := toks[0]
			if tok.Kind != lexer.String || tok.Value.Str != d.want {
				t.Errorf("got %q, want %q", tok.Value.Str, d.want)
			}
		})
	}
}

func TestRun_longString_mismatch_error(t *testing.T) {
	_, err := lexer.Run([]byte("[==[unfinished]=]"))
	if err == nil {
		t.Errorf("expected an error for mismatched long bracket levels")
	}
}

func TestRun_comments(t *testing.T) {
	toks, err := lexer.Run([]byte("-- a line comment\nlocal x"), lexer.WithComments())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := kinds(toks)
	want := []lexer.Kind{lexer.SComment, lexer.KwLocal, lexer.Name, lexer.Eos}
	if !sameKinds(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRun_commentsAttachedWhenDiscarded(t *testing.T) {
	toks, err := lexer.Run([]byte("-- a line comment\nlocal x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := kinds(toks)
	want := []lexer.Kind{lexer.KwLocal, lexer.Name, lexer.Eos}
	if !sameKinds(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if len(toks[0].Comments) != 1 {
		t.Errorf("expected the discarded comment to be attached to the first token, got %d comments", len(toks[0].Comments))
	}
}

func TestRun_longComment(t *testing.T) {
	toks, err := lexer.Run([]byte("--[[ a\nmultiline comment ]]local x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := kinds(toks)
	want := []lexer.Kind{lexer.KwLocal, lexer.Name, lexer.Eos}
	if !sameKinds(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRun_originStringRoundTrip(t *testing.T) {
	src := `"a\nb"`
	toks, err := lexer.Run([]byte(src), lexer.WithOriginString())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Value.Str != src {
		t.Errorf("got %q, want origin-preserving %q", toks[0].Value.Str, src)
	}
}
