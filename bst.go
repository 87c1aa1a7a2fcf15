package bst

import (
	"errors"
	"strings"
)

const (
	InOrder Order = iota
	PreOrder
	PostOrder
	PostOrderMorris
)

var (
	ErrNoMoreNodes  = errors.New("There are no more nodes in the tree")
	ErrUnknownOrder = errors.New("unknown traversal order")
	// ErrNilNode is the panic value for navigation from an absent node.
	ErrNilNode = errors.New("navigation from a nil node")
)

type (
	tree struct {
		size int
		root *bstNode
	}

	// Order selects a traversal for Walk and Keys.
	Order int

	bstNode struct {
		key    int
		left   *bstNode
		right  *bstNode
		parent *bstNode
	}

	// Callback receives keys in visiting order.
	Callback func(key int)

	iterator struct {
		tree     *tree
		nextNode *bstNode
	}
)

var orderNames = []string{"in", "pre", "post", "morris"}

func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return "unknown"
	}
	return orderNames[o]
}

// ParseOrder accepts the names printed by Order.String, case-insensitively.
func ParseOrder(s string) (Order, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range orderNames {
		if s == name {
			return Order(i), nil
		}
	}
	return 0, ErrUnknownOrder
}

func newNode(key int, parent *bstNode) *bstNode {
	return &bstNode{
		key:    key,
		parent: parent,
	}
}

// wrap keeps a nil *bstNode from turning into a non-nil Node.
func wrap(n *bstNode) Node {
	if n == nil {
		return nil
	}
	return n
}
