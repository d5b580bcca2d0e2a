package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is deliberately just interface{}: the universe it ranges over is a
// small closed tag set (float64 number, bool boolean, string word, *List
// list). Go has no sum types, so every primitive is a distinct Go type and
// callers switch on the dynamic type.
type Value = interface{}

// undefinedType is the sentinel returned where Logo has "nothing" - the
// result of a command used in a context that expects an expression, or of
// a fully-consumed body. It is a distinct type so it is never confusable
// with a legitimate falsy-looking value like 0, "", or false.
type undefinedType struct{}

var undefinedValue = undefinedType{}

func isUndefined(v interface{}) bool {
	_, ok := v.(undefinedType)
	return ok
}

// String renders a single atom: numbers without a trailing ".0" when they
// are integral, words bare, booleans lowercase, and lists delegate to
// Stringify with default brackets.
func String(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case float64:
		return formatNumber(t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	case string:
		return t
	case *List:
		return Stringify(t, "[", "]")
	case undefinedType:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// equalValues is the structural equality used by equalp and by the "="
// operator: numbers/bools/words compare by Go equality, lists recurse.
func equalValues(a, b interface{}) bool {
	if al, ok := a.(*List); ok {
		bl, ok := b.(*List)
		return ok && Equal(al, bl)
	}
	return a == b
}

// operator is a one-character infix token: "+ - * / < > =".
type operator string

var operatorPriority = map[operator]int{
	"*": 10,
	"/": 10,
	"+": 5,
	"-": 5,
	"<": 1,
	">": 1,
	"=": 1,
}

func isOperatorToken(v interface{}) (operator, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	_, known := operatorPriority[operator(s)]
	return operator(s), known
}

// isLiteralToken reports whether an unevaluated atom belongs in literal
// position: lists, numbers, quoted words (leading '"') and variable
// references (leading ':'). Raw bare words are not literals - they are
// procedure-name references handled by handleFixed.
func isLiteralToken(v interface{}) bool {
	switch t := v.(type) {
	case *List:
		return true
	case float64:
		return true
	case bool:
		return true
	case string:
		return strings.HasPrefix(t, "\"") || strings.HasPrefix(t, ":")
	default:
		return false
	}
}

// isBareWord reports whether the raw token is a plain procedure-name
// reference: a string other than "(" or ")" with no quote/colon sigil.
// Operator tokens count as bare words here, since the operators are
// registered in the procedure scope under their own names.
func isBareWord(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	if s == "(" || s == ")" {
		return false
	}
	if strings.HasPrefix(s, "\"") || strings.HasPrefix(s, ":") {
		return false
	}
	return true
}
