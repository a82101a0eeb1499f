package symb

import "fmt"

// ToolRequest is the decoded body of a POST /tool call.
type ToolRequest struct {
	Tool   string         `json:"tool"`
	Params map[string]any `json:"params"`
}

// ToolResponse is the JSON response of a tool call.
type ToolResponse struct {
	Result map[string]any `json:"result,omitempty"`
	String string         `json:"string,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// HandleToolCall dispatches req to the tool surface this core
// supports: simplify, diff, compare, and string (render). Factoring,
// limits, and matrices are not exposed — this core has no algorithms
// for them.
func HandleToolCall(req ToolRequest) ToolResponse {
	getExpr := func(key string) (Expr, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		m, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("param %s must be an expression object", key)
		}
		return FromJSON(m)
	}
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("param %s must be a string", key)
		}
		return s, nil
	}

	switch req.Tool {
	case "simplify":
		e, err := getExpr("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		result := Simplify(e)
		return ToolResponse{Result: ToJSON(result), String: result.String()}
	case "diff":
		e, err := getExpr("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		v, err := getString("var")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		result := Diff(e, v)
		return ToolResponse{Result: ToJSON(result), String: result.String()}
	case "compare":
		lhs, err := getExpr("lhs")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		rhs, err := getExpr("rhs")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		c := Compare(Simplify(lhs), Simplify(rhs))
		return ToolResponse{String: fmt.Sprintf("%d", sign(c))}
	case "string":
		e, err := getExpr("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return ToolResponse{String: Simplify(e).String()}
	default:
		return ToolResponse{Error: fmt.Sprintf("unknown tool: %q", req.Tool)}
	}
}

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	default:
		return 0
	}
}

// ToolSpec returns a machine-readable description of the tool surface,
// for agent registration via GET /schema.
func ToolSpec() string {
	return `{
  "tools": [
    {"name": "simplify", "params": {"expr": "Expression"}},
    {"name": "diff", "params": {"expr": "Expression", "var": "string"}},
    {"name": "compare", "params": {"lhs": "Expression", "rhs": "Expression"}},
    {"name": "string", "params": {"expr": "Expression"}}
  ],
  "expression_format": {
    "num": {"type": "num", "value": "string, e.g. \"3/4\""},
    "sym": {"type": "sym", "name": "string"},
    "sum": {"type": "sum", "terms": "[Expression]"},
    "product": {"type": "product", "factors": "[Expression]"},
    "power": {"type": "power", "base": "Expression", "exponent": "Expression"},
    "func": {"type": "func", "name": "string", "args": "[Expression]"},
    "undefined": {"type": "undefined"}
  }
}`
}
