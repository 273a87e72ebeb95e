package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order, children in source order.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		Walk(n.Stmts, v)

	case *EmptyStmtSeq:
		// leaf

	case *NonEmptyStmtSeq:
		Walk(n.First, v)
		Walk(n.Rest, v)

	case *VarStmt:
		Walk(n.Name, v)
		Walk(n.Value, v)

	case *AssignStmt:
		Walk(n.Name, v)
		Walk(n.Value, v)

	case *PrintStmt:
		Walk(n.X, v)

	case *IfStmt:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		if n.Else != nil {
			Walk(n.Else, v)
		}

	case *ForStmt:
		Walk(n.Var, v)
		Walk(n.X, v)
		Walk(n.Body, v)

	case *Block:
		Walk(n.Stmts, v)

	case *Name, *IntLit, *BoolLit:
		// leaves

	case *PairLit:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *Operation:
		Walk(n.X, v)
		if n.Y != nil {
			Walk(n.Y, v)
		}

	case *DictExpr:
		if n.Dict != nil {
			Walk(n.Dict, v)
		}
		Walk(n.Key, v)
		if n.Value != nil {
			Walk(n.Value, v)
		}
	}
}
