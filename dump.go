package logger

import (
	"fmt"
	"reflect"
)

// Maximum recursion depth and per collection element count for Dump.
const (
	maxDumpDepth    = 10
	maxDumpElements = 10
)

// Dump records a snapshot of v as a single debug entry. Struct fields are
// flattened into dotted keys, maps and slices into indexed ones. It handles
// nil, pointers, cycles and unexported fields without panicking.
func (l *AppLogger) Dump(v interface{}) error {
	fields := make(Meta)
	dumpValue(fields, emptyString, v, make(map[uintptr]bool), 0)
	return l.log(LevelDebug, "dump", []Meta{fields})
}

// dumpValue is the recursive helper behind Dump.
func dumpValue(fields Meta, prefix string, v interface{}, visited map[uintptr]bool, depth int) {
	key := prefix
	if key == emptyString {
		key = "value"
	}

	if depth > maxDumpDepth {
		fields[key] = "<max depth reached>"
		return
	}
	if v == nil {
		fields[key] = "<nil>"
		return
	}

	val := reflect.ValueOf(v)

	// Unwrap interfaces and pointers, with cycle detection on pointers.
	for val.Kind() == reflect.Interface || val.Kind() == reflect.Ptr {
		if val.IsNil() {
			fields[key] = "<nil>"
			return
		}
		if val.Kind() == reflect.Ptr {
			ptr := val.Pointer()
			if visited[ptr] {
				fields[key] = "<circular reference>"
				return
			}
			visited[ptr] = true
		}
		val = val.Elem()
	}

	typ := val.Type()

	switch val.Kind() {
	case reflect.Struct:
		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			fieldVal := val.Field(i)

			// Skip unexported fields
			if !fieldVal.CanInterface() {
				continue
			}

			name := field.Name
			if prefix != emptyString {
				name = prefix + "." + field.Name
			}
			dumpValue(fields, name, fieldVal.Interface(), visited, depth+1)
		}

	case reflect.Map:
		iter := val.MapRange()
		for iter.Next() {
			name := fmt.Sprintf("%s[%v]", key, iter.Key().Interface())
			dumpValue(fields, name, iter.Value().Interface(), visited, depth+1)
		}

	case reflect.Slice, reflect.Array:
		n := val.Len()
		for i := 0; i < n && i < maxDumpElements; i++ {
			name := fmt.Sprintf("%s[%d]", key, i)
			elem := val.Index(i)
			if elem.CanInterface() {
				dumpValue(fields, name, elem.Interface(), visited, depth+1)
			}
		}
		if n > maxDumpElements {
			fields[key+".omitted"] = n - maxDumpElements
		}

	default:
		if val.CanInterface() {
			fields[key] = val.Interface()
		} else {
			fields[key] = fmt.Sprintf("%v", v)
		}
	}
}
