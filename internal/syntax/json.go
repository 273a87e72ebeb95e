package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return map[string]interface{}{
			"type":  "Program",
			"pos":   n.pos.String(),
			"stmts": stmtsJSON(n.Stmts),
		}

	case *EmptyStmtSeq, *NonEmptyStmtSeq:
		return stmtsJSON(n.(StmtSeq))

	case *VarStmt:
		return map[string]interface{}{
			"type":  "VarStmt",
			"pos":   n.pos.String(),
			"name":  n.Name.Value,
			"value": toJSON(n.Value),
		}

	case *AssignStmt:
		return map[string]interface{}{
			"type":  "AssignStmt",
			"pos":   n.pos.String(),
			"name":  n.Name.Value,
			"value": toJSON(n.Value),
		}

	case *PrintStmt:
		return map[string]interface{}{
			"type": "PrintStmt",
			"pos":  n.pos.String(),
			"x":    toJSON(n.X),
		}

	case *IfStmt:
		m := map[string]interface{}{
			"type": "IfStmt",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"then": toJSON(n.Then),
		}
		if n.Else != nil {
			m["else"] = toJSON(n.Else)
		}
		return m

	case *ForStmt:
		return map[string]interface{}{
			"type": "ForStmt",
			"pos":  n.pos.String(),
			"var":  n.Var.Value,
			"dict": toJSON(n.X),
			"body": toJSON(n.Body),
		}

	case *Block:
		return map[string]interface{}{
			"type":  "Block",
			"pos":   n.pos.String(),
			"stmts": stmtsJSON(n.Stmts),
		}

	case *Name:
		return map[string]interface{}{
			"type":  "Name",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *IntLit:
		return map[string]interface{}{
			"type":  "IntLit",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *BoolLit:
		return map[string]interface{}{
			"type":  "BoolLit",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *PairLit:
		return map[string]interface{}{
			"type": "PairLit",
			"pos":  n.pos.String(),
			"x":    toJSON(n.X),
			"y":    toJSON(n.Y),
		}

	case *Operation:
		m := map[string]interface{}{
			"type": "Operation",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
		}
		if n.Y != nil {
			m["y"] = toJSON(n.Y)
		}
		return m

	case *DictExpr:
		m := map[string]interface{}{
			"type": "DictExpr",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"key":  toJSON(n.Key),
		}
		if n.Dict != nil {
			m["dict"] = toJSON(n.Dict)
		}
		if n.Value != nil {
			m["value"] = toJSON(n.Value)
		}
		return m
	}

	return map[string]interface{}{"type": "unknown"}
}

func stmtsJSON(s StmtSeq) []interface{} {
	list := []interface{}{}
	for _, st := range Stmts(s) {
		list = append(list, toJSON(st))
	}
	return list
}
