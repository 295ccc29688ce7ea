package logger

import (
	"errors"
	"reflect"
	"strings"
)

// Meta carries structured context for a single entry. Pass one or more maps
// to a logging method; later maps win on key collisions.
type Meta map[string]interface{}

const (
	chainKeySuffix   = "_chain"
	rootKeySuffix    = "_root"
	historyKeySuffix = "_history"
)

// mergeMeta flattens the metadata arguments of one call into a single field
// map. Error values are expanded with their cause chain so the rendered
// entry keeps the full history.
func mergeMeta(meta []Meta) map[string]interface{} {
	if len(meta) == 0 {
		return nil
	}

	fields := make(map[string]interface{}, len(meta[0]))
	for _, m := range meta {
		for k, v := range m {
			if err, ok := v.(error); ok {
				if isNilError(err) {
					// A typed nil would panic its own Error method.
					fields[k] = nil
					continue
				}
				addErrorFields(fields, k, err)
				continue
			}
			fields[k] = v
		}
	}
	return fields
}

// isNilError reports whether err is nil or carries a nil concrete value
// behind a non-nil interface, the case a plain err != nil check misses.
func isNilError(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

// addErrorFields records an error under key plus derived keys for its cause
// chain: <key>_chain holds the outermost to innermost messages, <key>_root
// the innermost one, <key>_history the chain joined for humans.
func addErrorFields(fields map[string]interface{}, key string, err error) {
	fields[key] = err.Error()

	chain := errorChain(err)
	if len(chain) < 2 {
		return
	}
	fields[key+chainKeySuffix] = chain
	fields[key+rootKeySuffix] = chain[len(chain)-1]
	fields[key+historyKeySuffix] = joinChain(chain)
}

// errorChain walks err's unwrap chain and returns the messages outermost
// first. It guards against excessive depth and repeated messages to avoid
// cycles; a typed nil link ends the chain like a nil one.
func errorChain(err error) []string {
	const maxDepth = 50

	var chain []string
	seen := map[string]bool{}

	for !isNilError(err) && len(chain) < maxDepth {
		msg := err.Error()
		if seen[msg] {
			break
		}
		seen[msg] = true
		chain = append(chain, msg)
		err = errors.Unwrap(err)
	}
	return chain
}

// joinChain returns a single string for the error chain separated by " -> ".
func joinChain(chain []string) string {
	if len(chain) == 0 {
		return emptyString
	}
	return strings.Join(chain, " -> ")
}
