package bst

func (n *bstNode) Key() int {
	return n.key
}

func (n *bstNode) Left() Node {
	return wrap(n.left)
}

func (n *bstNode) Right() Node {
	return wrap(n.right)
}

func (n *bstNode) Parent() Node {
	return wrap(n.parent)
}

func (n *bstNode) Minimum() Node {
	return n.minimum()
}

func (n *bstNode) Maximum() Node {
	return n.maximum()
}

func (n *bstNode) Successor() Node {
	return wrap(n.successor())
}

func (n *bstNode) Predecessor() Node {
	return wrap(n.predecessor())
}

// find the leftmost node under n
func (n *bstNode) minimum() *bstNode {
	if n == nil {
		panic(ErrNilNode)
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// find the rightmost node under n
func (n *bstNode) maximum() *bstNode {
	if n == nil {
		panic(ErrNilNode)
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

func (n *bstNode) successor() *bstNode {
	if n == nil {
		panic(ErrNilNode)
	}
	if n.right != nil {
		return n.right.minimum()
	}
	// climb until we arrive from a left child
	p := n.parent
	for p != nil && n == p.right {
		n, p = p, p.parent
	}
	return p
}

func (n *bstNode) predecessor() *bstNode {
	if n == nil {
		panic(ErrNilNode)
	}
	if n.left != nil {
		return n.left.maximum()
	}
	p := n.parent
	for p != nil && n == p.left {
		n, p = p, p.parent
	}
	return p
}

// detach clears every link of a node that has left the tree.
func (n *bstNode) detach() {
	n.left, n.right, n.parent = nil, nil, nil
}
