// Package queryir defines the query AST: the nested symbolic expression
// clients submit, before any dialect-specific compilation has happened.
//
// A Node is one of four variants, sealed to this package:
//
//   - Str    a bare string (a column name, a value, a path element)
//   - Num    a number
//   - Bool   a boolean
//   - List   an operator application: Op is the (case-insensitive) operator
//     name, Args is the ordered list of operand Nodes
//
// Field paths are not a separate AST shape. A bare column reference is a
// Str ("certname"); a two-element namespaced path like ["node" "active"] or
// ["parameter" "ensure"] is represented the same way as any other operator
// application: List{Op: "node", Args: []Node{Str("active")}}. Operator
// compilers that expect a path recognize it by inspecting the Node directly
// (see IsPath) rather than the AST
// distinguishing "path lists" from "operator lists" — syntactically they are
// identical, exactly as spec'd.
//
// Nodes are immutable values. Building one never mutates another; there is
// no shared, aliasable state between two Nodes constructed independently.
package queryir
