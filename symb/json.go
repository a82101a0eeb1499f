package symb

import (
	"fmt"

	"github.com/kjardine/symb/bigint"
	"github.com/kjardine/symb/rational"
)

// ToJSON renders x as a tagged-object value suitable for
// encoding/json: wire glue for the tool-call service, never a
// persistence format (nothing is read back from disk).
func ToJSON(x Expr) map[string]any {
	switch v := x.(type) {
	case *Number:
		return map[string]any{"type": "num", "value": v.Value.String()}
	case *Symbol:
		return map[string]any{"type": "sym", "name": v.Name}
	case *Sum:
		return map[string]any{"type": "sum", "terms": toJSONList(v.Children)}
	case *Product:
		return map[string]any{"type": "product", "factors": toJSONList(v.Children)}
	case *Power:
		return map[string]any{"type": "power", "base": ToJSON(v.Base), "exponent": ToJSON(v.Exponent)}
	case *Function:
		return map[string]any{"type": "func", "name": v.Name, "args": toJSONList(v.Children)}
	case *Undefined:
		return map[string]any{"type": "undefined"}
	default:
		panic("symb: ToJSON: unreachable expression type")
	}
}

func toJSONList(children []Expr) []any {
	out := make([]any, len(children))
	for i, c := range children {
		out[i] = ToJSON(c)
	}
	return out
}

// FromJSON parses the inverse of ToJSON. It returns an error rather
// than panicking on any malformed shape, since the input originates
// from an untrusted network caller.
func FromJSON(m map[string]any) (Expr, error) {
	t, ok := m["type"].(string)
	if !ok {
		return nil, fmt.Errorf("symb: FromJSON: missing type")
	}
	switch t {
	case "num":
		s, ok := m["value"].(string)
		if !ok {
			return nil, fmt.Errorf("symb: FromJSON: num.value must be a string")
		}
		v, err := parseRat(s)
		if err != nil {
			return nil, err
		}
		return &Number{Value: v}, nil
	case "sym":
		name, ok := m["name"].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("symb: FromJSON: sym.name must be a non-empty string")
		}
		return &Symbol{Name: name}, nil
	case "sum":
		children, err := fromJSONList(m, "terms")
		if err != nil {
			return nil, err
		}
		return &Sum{Children: children}, nil
	case "product":
		children, err := fromJSONList(m, "factors")
		if err != nil {
			return nil, err
		}
		return &Product{Children: children}, nil
	case "power":
		base, err := fromJSONField(m, "base")
		if err != nil {
			return nil, err
		}
		exponent, err := fromJSONField(m, "exponent")
		if err != nil {
			return nil, err
		}
		return &Power{Base: base, Exponent: exponent}, nil
	case "func":
		name, ok := m["name"].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("symb: FromJSON: func.name must be a non-empty string")
		}
		children, err := fromJSONList(m, "args")
		if err != nil {
			return nil, err
		}
		return &Function{Name: name, Children: children}, nil
	case "undefined":
		return &Undefined{}, nil
	default:
		return nil, fmt.Errorf("symb: FromJSON: unknown type %q", t)
	}
}

func fromJSONField(m map[string]any, key string) (Expr, error) {
	raw, ok := m[key].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("symb: FromJSON: %s must be an expression object", key)
	}
	return FromJSON(raw)
}

func fromJSONList(m map[string]any, key string) ([]Expr, error) {
	raw, ok := m[key].([]any)
	if !ok {
		return nil, fmt.Errorf("symb: FromJSON: %s must be an array", key)
	}
	out := make([]Expr, len(raw))
	for i, r := range raw {
		rm, ok := r.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("symb: FromJSON: %s[%d] must be an expression object", key, i)
		}
		e, err := FromJSON(rm)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

// parseRat parses the textual form "n" or "n/d" produced by
// rational.Rat.String.
func parseRat(s string) (rational.Rat, error) {
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			num, ok := bigint.FromString(s[:i])
			if !ok {
				return rational.Rat{}, fmt.Errorf("symb: FromJSON: invalid numerator %q", s[:i])
			}
			denom, ok := bigint.FromString(s[i+1:])
			if !ok {
				return rational.Rat{}, fmt.Errorf("symb: FromJSON: invalid denominator %q", s[i+1:])
			}
			if denom.IsZero() {
				return rational.Rat{}, fmt.Errorf("symb: FromJSON: zero denominator in %q", s)
			}
			return rational.New(num, denom), nil
		}
	}
	n, ok := bigint.FromString(s)
	if !ok {
		return rational.Rat{}, fmt.Errorf("symb: FromJSON: invalid number %q", s)
	}
	return rational.FromInt(n), nil
}
