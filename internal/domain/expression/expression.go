// internal/domain/expression/expression.go
package expression

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Expression maps each field to its token-list. A token-list is either
// []string{Wildcard} or a non-empty list of concrete tokens. Fields missing
// from the map were not present in the source string.
type Expression map[Field][]string

// Source is what ValidateExpression accepts: Text or Expression.
type Source interface {
	source()
}

// Text is an unparsed expression string.
type Text string

func (Text) source()       {}
func (Expression) source() {}

// DefaultInterval returns a fresh wildcard token-list.
func DefaultInterval() []string {
	return []string{Wildcard}
}

// Default returns an expression with every field set to the wildcard.
func Default() Expression {
	e := make(Expression, len(fields))
	for _, f := range fields {
		e[f] = DefaultInterval()
	}
	return e
}

// IsDefault reports whether tokens is the wildcard token-list.
func IsDefault(tokens []string) bool {
	return len(tokens) == 1 && tokens[0] == Wildcard
}

// Split parses text positionally into an Expression. Segments are separated by
// single spaces; a segment other than the wildcard is split on commas. Fewer
// than five segments leave the trailing fields unset.
func Split(text string) (Expression, error) {
	segments := strings.Split(text, " ")
	if len(segments) > len(fields) {
		return nil, Errorf(ErrMalformedExpression, "", text,
			"Expression given is not a valid cron expression. Expected %d or less values, got: %d instead.",
			len(fields), len(segments))
	}

	e := make(Expression, len(segments))
	for i, segment := range segments {
		if segment == Wildcard {
			e[fields[i]] = DefaultInterval()
			continue
		}
		e[fields[i]] = strings.Split(segment, ",")
	}
	return e, nil
}

// Format joins the five fields in order. Unset fields render as the wildcard.
func (e Expression) Format() string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		tokens, ok := e[f]
		if !ok || len(tokens) == 0 {
			parts[i] = Wildcard
			continue
		}
		parts[i] = strings.Join(tokens, ",")
	}
	return strings.Join(parts, " ")
}

// Clone returns a deep copy of e.
func (e Expression) Clone() Expression {
	if e == nil {
		return nil
	}
	out := make(Expression, len(e))
	for f, tokens := range e {
		out[f] = slices.Clone(tokens)
	}
	return out
}

// Keys returns the keys of e with known fields first in expression order,
// followed by any unknown keys sorted by name.
func (e Expression) Keys() []Field {
	keys := make([]Field, 0, len(e))
	for _, f := range fields {
		if _, ok := e[f]; ok {
			keys = append(keys, f)
		}
	}
	var unknown []Field
	for f := range e {
		if !f.Known() {
			unknown = append(unknown, f)
		}
	}
	slices.Sort(unknown)
	return append(keys, unknown...)
}

// Equal reports whether a and b hold the same fields with the same token-lists.
func Equal(a, b Expression) bool {
	return maps.EqualFunc(a, b, slices.Equal[[]string])
}

func (e Expression) String() string {
	return fmt.Sprintf("Expression(%s)", e.Format())
}
