// Copyright 2024 The Zint Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package zint

import "github.com/pkg/errors"

// Condition is a set of error flags raised by operations. An operation
// either fully succeeds with a zero Condition or fails with one of these
// set; there is no partial result in the failure case.
type Condition int32

const (
	// DivideByZero is raised by division and remainder when the divisor is
	// zero.
	DivideByZero Condition = 1 << iota
	// ParseError is raised when a string does not match the decimal/hex
	// literal grammar.
	ParseError
	// InvalidOperation is raised by a logical (unsigned) right shift of a
	// negative value, which has no two's-complement meaning.
	InvalidOperation
)

// Sentinel errors underlying the conditions above. Wrapped errors returned
// from this package unwrap to one of these via errors.Cause.
var (
	ErrDivideByZero     = errors.New("division by zero")
	ErrSyntax           = errors.New("invalid number syntax")
	ErrInvalidOperation = errors.New("invalid operation")
)

func (c Condition) Any() bool              { return c != 0 }
func (c Condition) DivideByZero() bool     { return c&DivideByZero != 0 }
func (c Condition) ParseError() bool       { return c&ParseError != 0 }
func (c Condition) InvalidOperation() bool { return c&InvalidOperation != 0 }

// GoError converts a Condition to the error it stands for, or nil for the
// zero Condition.
func (c Condition) GoError() error {
	switch {
	case c.DivideByZero():
		return ErrDivideByZero
	case c.ParseError():
		return ErrSyntax
	case c.InvalidOperation():
		return ErrInvalidOperation
	default:
		return nil
	}
}

func (c Condition) String() string {
	switch {
	case c == 0:
		return ""
	case c.DivideByZero():
		return "divide-by-zero"
	case c.ParseError():
		return "parse-error"
	case c.InvalidOperation():
		return "invalid-operation"
	default:
		// A Condition with an unknown flag can only come from a bug in zint.
		panic("not a condition")
	}
}
