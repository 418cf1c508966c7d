// This file is part of GopherPico.
//
// GopherPico is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherPico is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherPico.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate from
// test functions. The Expect functions record a test error and continue; the
// Demand functions end the test immediately.
package test

import (
	"fmt"
	"strings"
	"testing"
)

// optional tags are converted to a prefix for the failure message. useful for
// identifying the failing iteration of a test loop
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	s := strings.Builder{}
	for _, tag := range tags {
		s.WriteString(fmt.Sprintf("%v ", tag))
	}
	return fmt.Sprintf("[%s] ", strings.TrimSpace(s.String()))
}

// ExpectEquality is used to test equality between one value and another
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	if v != expectedValue {
		t.Errorf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is used to test inequality between one value and another.
// ie. the test passes if the values are not equal
func ExpectInequality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	if v == expectedValue {
		t.Errorf("%sinequality test of type %T failed: '%v' does equal '%v'", id(tags...), v, v, expectedValue)
		return false
	}
	return true
}

// expect tests argument v for a success condition suitable for its type:
//
//	bool  -> bool == true
//	error -> error == nil
//
// a value of nil is counted as a success. all other types are an immediate
// test fatality
func expect(t *testing.T, v any, tags ...any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
	}

	return false
}

// ExpectSuccess is used to test for a value which indicates a 'successful'
// value for the type. see the expect() function for the meaning of success
// for the supported types
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if !expect(t, v, tags...) {
		t.Errorf("%sa success value is expected for type %T (%v)", id(tags...), v, v)
		return false
	}
	return true
}

// ExpectFailure is used to test for a value which indicates an 'unsuccessful'
// value for the type. see the expect() function for the meaning of success
// for the supported types
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if expect(t, v, tags...) {
		t.Errorf("%sa failure value is expected for type %T", id(tags...), v)
		return false
	}
	return true
}

// ExpectImplements tests whether an instance is an implementation of type T
func ExpectImplements[T comparable](t *testing.T, instance any, implements T, tags ...any) bool {
	t.Helper()
	if _, ok := instance.(T); !ok {
		t.Errorf("%simplementation test of type %T failed: type %T does not implement %T", id(tags...), instance, instance, implements)
		return false
	}
	return true
}
