package symb

// Compare implements the strong total order over expressions: it first
// orders by Tag, then applies same-tag and cross-tag rules so that
// every pair of expressions compares unambiguously. Returns <0, 0, or
// >0.
func Compare(l, r Expr) int {
	if l.Kind() > r.Kind() {
		return -Compare(r, l)
	}
	// l.Kind() <= r.Kind() from here on.
	switch l.Kind() {
	case TagNumber:
		if r.Kind() == TagNumber {
			return l.(*Number).Value.Cmp(r.(*Number).Value)
		}
		return -1
	case TagProduct:
		if r.Kind() == TagProduct {
			return compareList(l.(*Product).Children, r.(*Product).Children)
		}
		return compareList(l.(*Product).Children, []Expr{r})
	case TagPower:
		lp := l.(*Power)
		if r.Kind() == TagPower {
			rp := r.(*Power)
			if c := Compare(lp.Base, rp.Base); c != 0 {
				return c
			}
			return Compare(lp.Exponent, rp.Exponent)
		}
		if c := Compare(lp.Base, r); c != 0 {
			return c
		}
		return Compare(lp.Exponent, one())
	case TagSum:
		if r.Kind() == TagSum {
			return compareList(l.(*Sum).Children, r.(*Sum).Children)
		}
		return compareList(l.(*Sum).Children, []Expr{r})
	case TagFunction:
		lf := l.(*Function)
		if r.Kind() == TagFunction {
			rf := r.(*Function)
			if lf.Name != rf.Name {
				if lf.Name < rf.Name {
					return -1
				}
				return 1
			}
			return compareList(lf.Children, rf.Children)
		}
		return compareList(lf.Children, []Expr{r})
	case TagSymbol:
		if r.Kind() == TagSymbol {
			ls, rs := l.(*Symbol).Name, r.(*Symbol).Name
			if ls < rs {
				return -1
			}
			if ls > rs {
				return 1
			}
			return 0
		}
		return -1
	case TagUndefined:
		if r.Kind() == TagUndefined {
			return 0
		}
		return -1
	default:
		panic("symb: Compare: unreachable tag")
	}
}

// compareList compares two lists from the right, walking pairwise from
// the last element backward for min(len)
// elements; the first unequal pair decides. If exhausted, the shorter
// list is smaller. This deliberately groups terms/factors by their
// trailing, highest-order element — what makes like-term and
// like-base detection in the simplifier stable.
func compareList(l, r []Expr) int {
	n := len(l)
	if len(r) < n {
		n = len(r)
	}
	for k := 0; k < n; k++ {
		li := l[len(l)-k-1]
		ri := r[len(r)-k-1]
		if c := Compare(li, ri); c != 0 {
			return c
		}
	}
	if len(l) < len(r) {
		return -1
	}
	if len(l) > len(r) {
		return 1
	}
	return 0
}

// Less reports whether l sorts strictly before r.
func Less(l, r Expr) bool { return Compare(l, r) < 0 }

// Equal reports whether l and r compare as equal.
func Equal(l, r Expr) bool { return Compare(l, r) == 0 }
