package guard

// ExprKind tags the variant of an Expr. The only dispatch this engine
// ever needs is over these four cases, so a tagged union is enough —
// no interface hierarchy is warranted.
type ExprKind int

const (
	ExprAtomic ExprKind = iota
	ExprAnd
	ExprOr
	ExprNot
)

// Expr is a boolean expression tree: one of Atomic(c), And(l, r),
// Or(l, r), Not(inner). Fields are only meaningful for the matching
// Kind; the tree is finite and owns its children outright.
type Expr struct {
	Kind ExprKind

	Atom AtomicCondition // ExprAtomic

	Left  *Expr // ExprAnd, ExprOr
	Right *Expr // ExprAnd, ExprOr

	Child *Expr // ExprNot
}

func atomicExpr(c AtomicCondition) *Expr { return &Expr{Kind: ExprAtomic, Atom: c} }
func andExpr(l, r *Expr) *Expr            { return &Expr{Kind: ExprAnd, Left: l, Right: r} }
func orExpr(l, r *Expr) *Expr             { return &Expr{Kind: ExprOr, Left: l, Right: r} }
func notExpr(child *Expr) *Expr           { return &Expr{Kind: ExprNot, Child: child} }
