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

// ErrInt performs the fallible Int operations and collects errors along
// the way. If an error is already set, the operation is skipped and the
// zero value returned. Designed to be used for many operations in a row,
// with a single error check at the end.
type ErrInt struct {
	Err error
}

// Parse performs NewFromString(s).
func (e *ErrInt) Parse(s string) Int {
	if e.Err != nil {
		return Int{}
	}
	var r Int
	r, e.Err = NewFromString(s)
	return r
}

// Quo performs x.Quo(y).
func (e *ErrInt) Quo(x, y Int) Int {
	if e.Err != nil {
		return Int{}
	}
	var r Int
	r, e.Err = x.Quo(y)
	return r
}

// Rem performs x.Rem(y).
func (e *ErrInt) Rem(x, y Int) Int {
	if e.Err != nil {
		return Int{}
	}
	var r Int
	r, e.Err = x.Rem(y)
	return r
}

// QuoRem performs x.QuoRem(y).
func (e *ErrInt) QuoRem(x, y Int) (Int, Int) {
	if e.Err != nil {
		return Int{}, Int{}
	}
	var q, r Int
	q, r, e.Err = x.QuoRem(y)
	return q, r
}

// Srl performs x.Srl(n).
func (e *ErrInt) Srl(x Int, n uint) Int {
	if e.Err != nil {
		return Int{}
	}
	var r Int
	r, e.Err = x.Srl(n)
	return r
}
