package ast

import (
	"errors"
)

// ErrIncomparable is returned when comparing two functions.
var ErrIncomparable = errors.New("functions can't be compared")

// Equal compares two nodes structurally. Nodes of different types are never
// equal; comparing two function nodes is an error.
func Equal(a, b *Node) (bool, error) {
	if a.nt == NodeTypeFunction && b.nt == NodeTypeFunction {
		return false, ErrIncomparable
	}
	if a.nt != b.nt {
		return false, nil
	}

	switch a.nt {
	case NodeTypeNil:
		return true, nil
	case NodeTypeExpression:
		la, lb := a.List(), b.List()
		if len(la) != len(lb) {
			return false, nil
		}
		for i := range la {
			eq, err := Equal(la[i], lb[i])
			if err != nil || !eq {
				return false, err
			}
		}
		return true, nil
	}

	return a.v == b.v, nil
}
