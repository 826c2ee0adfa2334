package search

// opKind distinguishes named operators from the no-op.
type opKind uint8

const (
	kindNamed opKind = iota
	kindNoOp
)

// noOpName is how the no-op renders.
const noOpName = "NoOp"

// Operator is an action token that transforms one configuration into another.
//
// Operators are small comparable values: two operators are equal (==) when
// they have the same name and variant. The zero Operator means "no operator"
// and is what a root node carries. NoOp is a separate variant, used only to
// report that the initial configuration already satisfies the goal.
type Operator struct {
	name string
	kind opKind
}

// NewOperator returns a named operator. The name must be non-empty.
func NewOperator(name string) (Operator, error) {
	if name == "" {
		return Operator{}, ErrEmptyOperatorName
	}

	return Operator{name: name, kind: kindNamed}, nil
}

// MustOperator is like NewOperator but panics on an empty name.
// It is intended for package-level operator declarations.
func MustOperator(name string) Operator {
	op, err := NewOperator(name)
	if err != nil {
		panic(err)
	}

	return op
}

// NoOp returns the distinguished "already at goal" operator.
func NoOp() Operator {
	return Operator{name: noOpName, kind: kindNoOp}
}

// Name returns the operator name ("NoOp" for the no-op, "" for the zero value).
func (o Operator) Name() string { return o.name }

// IsNoOp reports whether o is the no-op variant.
func (o Operator) IsNoOp() bool { return o.kind == kindNoOp }

// IsZero reports whether o is the zero Operator (no operator at all).
func (o Operator) IsZero() bool { return o == Operator{} }

// String returns the operator name.
func (o Operator) String() string { return o.name }
