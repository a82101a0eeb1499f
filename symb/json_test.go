package symb_test

import (
	"testing"

	"github.com/kjardine/symb/symb"
)

func TestJSONRoundTrip(t *testing.T) {
	x, y := symb.Sym("x"), symb.Sym("y")
	exprs := []symb.Expr{
		symb.Num(42),
		symb.Frac(3, 4),
		x,
		symb.SumOf(x, y, symb.Num(1)),
		symb.ProductOf(symb.Num(2), x),
		symb.PowOf(x, symb.Num(3)),
		symb.FuncOf("f", x, y),
		symb.UndefinedExpr(),
	}
	for _, e := range exprs {
		encoded := symb.ToJSON(e)
		decoded, err := symb.FromJSON(encoded)
		if err != nil {
			t.Fatalf("FromJSON(%v) error: %v", encoded, err)
		}
		if decoded.String() != e.String() {
			t.Errorf("round trip mismatch: want %s, got %s", e.String(), decoded.String())
		}
	}
}

func TestFromJSONMissingType(t *testing.T) {
	if _, err := symb.FromJSON(map[string]any{}); err == nil {
		t.Error("expected error for missing type")
	}
}

func TestFromJSONUnknownType(t *testing.T) {
	if _, err := symb.FromJSON(map[string]any{"type": "bogus"}); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestHandleToolCallSimplify(t *testing.T) {
	x := symb.Sym("x")
	expr := &symb.Sum{Children: []symb.Expr{x, x}}
	resp := symb.HandleToolCall(symb.ToolRequest{
		Tool:   "simplify",
		Params: map[string]any{"expr": symb.ToJSON(expr)},
	})
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	if resp.String != "2*x" {
		t.Errorf("want 2*x, got %s", resp.String)
	}
}

func TestHandleToolCallDiff(t *testing.T) {
	x := symb.Sym("x")
	expr := symb.PowOf(x, symb.Num(2))
	resp := symb.HandleToolCall(symb.ToolRequest{
		Tool: "diff",
		Params: map[string]any{
			"expr": symb.ToJSON(expr),
			"var":  "x",
		},
	})
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	if resp.String != "2*x" {
		t.Errorf("want 2*x, got %s", resp.String)
	}
}

func TestHandleToolCallUnknownTool(t *testing.T) {
	resp := symb.HandleToolCall(symb.ToolRequest{Tool: "bogus"})
	if resp.Error == "" {
		t.Error("expected error for unknown tool")
	}
}
