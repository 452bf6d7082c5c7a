package mlang

// Expr is the value a parsed expression produces: a number literal, an
// identifier reference, or a single-level relational comparison. It is
// recorded verbatim in the symbol table.
type Expr interface {
	exprNode()
	String() string
}

type NumberExpr struct {
	Value Number
}

func (e *NumberExpr) exprNode()      {}
func (e *NumberExpr) String() string { return e.Value.String() }

type IdentExpr struct {
	Name string
}

func (e *IdentExpr) exprNode()      {}
func (e *IdentExpr) String() string { return e.Name }

// CompareExpr is right recursive: Right may itself be a CompareExpr.
type CompareExpr struct {
	Left     Expr
	Operator string
	Right    Expr
}

func (e *CompareExpr) exprNode() {}
func (e *CompareExpr) String() string {
	return e.Left.String() + " " + e.Operator + " " + e.Right.String()
}
