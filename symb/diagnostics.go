package symb

import "github.com/kr/pretty"

// DebugDump renders the full internal structure of x — every field of
// every node, not just the symbolic Repr() — for use in test failure
// messages and panic diagnostics.
func DebugDump(x Expr) string {
	return pretty.Sprint(x)
}

// DebugDiff lists the differences between two expressions' internal
// structure, one string per differing field, used in test failure
// messages to show exactly which field disagreed.
func DebugDiff(want, got Expr) []string {
	return pretty.Diff(want, got)
}
