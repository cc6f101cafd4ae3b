// Copyright 2025 go-highway Authors
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

package sort

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when k is outside the range an
	// operation accepts.
	ErrIndexOutOfRange = errors.New("sort: index out of range")

	// ErrLengthMismatch is returned when keys and values differ in length.
	ErrLengthMismatch = errors.New("sort: keys and values differ in length")

	// ErrInternal is returned when a kernel fails unexpectedly. The
	// contents of the slices are then unspecified.
	ErrInternal = errors.New("sort: internal failure")
)

// recoverInternal turns a panic escaping a kernel into ErrInternal.
func recoverInternal(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrInternal, r)
	}
}

func checkSelectIndex(k, n int) error {
	if k < 0 || k >= n {
		return fmt.Errorf("%w: k=%d with %d elements", ErrIndexOutOfRange, k, n)
	}
	return nil
}

func checkPartialIndex(k, n int) error {
	if k < 0 || k > n {
		return fmt.Errorf("%w: k=%d with %d elements", ErrIndexOutOfRange, k, n)
	}
	return nil
}

func checkLengths(keys, values int) error {
	if keys != values {
		return fmt.Errorf("%w: %d keys, %d values", ErrLengthMismatch, keys, values)
	}
	return nil
}
