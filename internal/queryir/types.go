package queryir

// Node is the sealed query AST type. Only Str, Num, Bool, and List
// implement it — the marker method prevents external implementations so
// the term compiler's type switch can stay exhaustive.
type Node interface {
	nodeKind() // marker method - seals the interface to this package
}

// Str is a bare string leaf: a column name, a string value, or a path
// element ("certname", "active", "Class", ...).
type Str string

func (Str) nodeKind() {}

// Num is a numeric leaf.
type Num float64

func (Num) nodeKind() {}

// Bool is a boolean leaf.
type Bool bool

func (Bool) nodeKind() {}

// List is an operator application: Op applied to Args, in order.
//
//	["and" ["=" "type" "Class"] ["=" "title" "apache"]]
//
// becomes
//
//	List{Op: "and", Args: []Node{
//	  List{Op: "=", Args: []Node{Str("type"), Str("Class")}},
//	  List{Op: "=", Args: []Node{Str("title"), Str("apache")}},
//	}}
type List struct {
	Op   string
	Args []Node
}

func (List) nodeKind() {}

// NewList builds a List node from an operator name and operands. Helper for
// callers constructing ASTs programmatically; the CLI's query loader goes
// through FromAny instead.
func NewList(op string, args ...Node) List {
	return List{Op: op, Args: args}
}

// AsStr reports whether n is a Str leaf and returns its value.
func AsStr(n Node) (string, bool) {
	s, ok := n.(Str)
	return string(s), ok
}

// AsList reports whether n is a List and returns it.
func AsList(n Node) (List, bool) {
	l, ok := n.(List)
	return l, ok
}

// IsPath reports whether n is a two-element namespaced path of the form
// [namespace member], e.g. List{Op: "node", Args: []Node{Str("active")}},
// and returns the namespace and member strings.
func IsPath(n Node) (namespace, member string, ok bool) {
	l, isList := n.(List)
	if !isList || len(l.Args) != 1 {
		return "", "", false
	}
	m, isStr := AsStr(l.Args[0])
	if !isStr {
		return "", "", false
	}
	return l.Op, m, true
}
