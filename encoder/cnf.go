package encoder

// genAtMostOne adds the pairwise O(n^2) binary clauses forbidding any
// two variables in vars from being simultaneously true (spec.md §4.2.1
// "pairwise at-most-one").
func (e *Encoder) genAtMostOne(vars []int) {
	for i := 0; i < len(vars)-1; i++ {
		for j := i + 1; j < len(vars); j++ {
			e.driver.AddClause(-vars[i], -vars[j])
		}
	}
}

// genOneHot adds at-most-one over vars plus a single at-least-one
// clause, so exactly one variable ends up true.
func (e *Encoder) genOneHot(vars []int) {
	e.genAtMostOne(vars)
	e.driver.AddClause(vars...)
}

// genOneHotWithCond adds a conditioned one-hot constraint: whenever cond
// is true, exactly one of vars is true. When cond is false the
// constraint is vacuous.
func (e *Encoder) genOneHotWithCond(vars []int, cond int) {
	for i := 0; i < len(vars)-1; i++ {
		for j := i + 1; j < len(vars); j++ {
			e.driver.AddClause(-cond, -vars[i], -vars[j])
		}
	}
	clause := append([]int{-cond}, vars...)
	e.driver.AddClause(clause...)
}

// genZeroOrTwoWithCond adds a conditioned "0 or 2 of vars are true"
// constraint for |vars| in {2,3,4}, explicitly enumerating the forbidden
// exactly-one and three-or-more patterns (spec.md §4.3.5). Zero variables
// add no clause and one variable is forced false under cond; vars must
// have length at most 4.
func (e *Encoder) genZeroOrTwoWithCond(vars []int, cond int) {
	switch len(vars) {
	case 0:
		// No incident edges at all: the "zero" branch is automatic.
	case 1:
		// Only "zero" is representable with one edge; forbid the "one" branch.
		e.driver.AddClause(-cond, -vars[0])
	case 2:
		v1, v2 := vars[0], vars[1]
		e.driver.AddClause(-cond, -v1, v2)
		e.driver.AddClause(-cond, v1, -v2)
	case 3:
		v1, v2, v3 := vars[0], vars[1], vars[2]
		e.driver.AddClause(-cond, -v1, v2, v3)
		e.driver.AddClause(-cond, v1, -v2, v3)
		e.driver.AddClause(-cond, v1, v2, -v3)
		e.driver.AddClause(-cond, -v1, -v2, -v3)
	case 4:
		v1, v2, v3, v4 := vars[0], vars[1], vars[2], vars[3]
		e.driver.AddClause(-cond, -v1, v2, v3, v4)
		e.driver.AddClause(-cond, v1, -v2, v3, v4)
		e.driver.AddClause(-cond, v1, v2, -v3, v4)
		e.driver.AddClause(-cond, v1, v2, v3, -v4)
		e.driver.AddClause(-cond, -v1, -v2, -v3)
		e.driver.AddClause(-cond, -v1, -v2, -v4)
		e.driver.AddClause(-cond, -v1, -v3, -v4)
		e.driver.AddClause(-cond, -v2, -v3, -v4)
	default:
		panic("encoder: zero-or-two-hot requires at most 4 variables")
	}
}

// reifyAnd allocates a fresh variable g equivalent to a AND b:
// (¬a ∨ ¬b ∨ g), (a ∨ ¬g), (b ∨ ¬g).
func (e *Encoder) reifyAnd(a, b int) int {
	g := e.driver.NewVariable()
	e.driver.AddClause(-a, -b, g)
	e.driver.AddClause(a, -g)
	e.driver.AddClause(b, -g)
	return g
}
