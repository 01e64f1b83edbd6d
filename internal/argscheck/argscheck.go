// Package argscheck provides argument validation helpers used by the builder
// surface. Violations are reported as errors at the call site, never deferred
// to dispatch.
package argscheck

import (
	"fmt"
	"reflect"
	"strings"
)

// NotBlank fails when value is empty or whitespace-only.
func NotBlank(value, name string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("parameter %q may not be blank", name)
	}
	return nil
}

// NotNil fails when value is nil, including a typed nil stored in the
// interface (e.g. a nil *bytes.Reader).
func NotNil(value any, name string) error {
	if value == nil || isNilValue(value) {
		return fmt.Errorf("parameter %q may not be nil", name)
	}
	return nil
}

func isNilValue(value any) bool {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Check fails with msg when cond does not hold.
func Check(cond bool, msg string) error {
	if !cond {
		return fmt.Errorf("%s", msg)
	}
	return nil
}
