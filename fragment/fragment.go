package fragment

// Kind classifies one line of user input.
type Kind int

const (
	KindInclude Kind = iota
	KindDeclaration
	KindStatement
	KindExpression
)

func (k Kind) String() string {
	switch k {
	case KindInclude:
		return "include"
	case KindDeclaration:
		return "declaration"
	case KindStatement:
		return "statement"
	case KindExpression:
		return "expression"
	}
	return "unknown"
}

// Fragment is one classified unit of user input retained in the session.
// Immutable once committed.
type Fragment struct {
	Text string
	Kind Kind
	Seq  int

	// Bytes of program output first attributed to this fragment.
	// The whole program re-runs every turn, so undo has to rewind the
	// shown-output counters by exactly these amounts.
	OutputBytes int
	ErrBytes    int
}
