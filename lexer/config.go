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

// config holds the lexer's runtime knobs.
type config struct {
	useOriginString bool
	reserveComments bool
}

// Option configures a Lexer, in the style of the functional-options pattern.
type Option func(*config)

// WithOriginString makes the lexer preserve raw quotes/brackets around
// string literals and keep escape sequences unevaluated, so that
// concatenating token source slices can reproduce the input byte-exact.
func WithOriginString() Option {
	return func(c *config) { c.useOriginString = true }
}

// WithComments makes the lexer emit comment tokens instead of discarding
// them. Discarded comments are still attached to the next non-comment token
// via Token.Comments.
func WithComments() Option {
	return func(c *config) { c.reserveComments = true }
}
