package bst

func (t *tree) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree) Root() Node {
	return wrap(t.root)
}

func (t *tree) Search(key int) (bool, Node) {
	found, n := t.search(key)
	return found, wrap(n)
}

// search returns the node holding key, or the last node visited when the key
// is absent. That node is the parent an insert of key would use.
func (t *tree) search(key int) (bool, *bstNode) {
	var parent *bstNode
	curr := t.root
	for curr != nil && key != curr.key {
		parent = curr
		if key < curr.key {
			curr = curr.left
		} else {
			curr = curr.right
		}
	}
	if curr == nil {
		return false, parent
	}
	return true, curr
}

func (t *tree) Insert(key int) bool {
	found, parent := t.search(key)
	if found {
		return false
	}

	node := newNode(key, parent)
	switch {
	case parent == nil:
		t.root = node
	case key < parent.key:
		parent.left = node
	default:
		parent.right = node
	}
	t.size++
	return true
}

func (t *tree) Delete(key int) bool {
	found, node := t.search(key)
	if !found {
		return false
	}

	switch {
	case node.left == nil:
		t.transplant(node, node.right)
	case node.right == nil:
		t.transplant(node, node.left)
	default:
		successor := node.right.minimum()
		if successor != node.right {
			t.transplant(successor, successor.right)
			successor.right = node.right
			successor.right.parent = successor
		}
		t.transplant(node, successor)
		successor.left = node.left
		successor.left.parent = successor
	}

	node.detach()
	t.size--
	return true
}

// transplant puts v in the slot u occupies under u's parent. v's children are
// left for the caller to wire.
func (t *tree) transplant(u, v *bstNode) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

func (t *tree) Inorder(fn Callback) {
	t.recursiveInorder(t.root, fn)
}

func (t *tree) Preorder(fn Callback) {
	t.recursivePreorder(t.root, fn)
}

func (t *tree) Postorder(fn Callback) {
	t.recursivePostorder(t.root, fn)
}

func (t *tree) recursiveInorder(curr *bstNode, fn Callback) {
	if curr == nil {
		return
	}
	t.recursiveInorder(curr.left, fn)
	fn(curr.key)
	t.recursiveInorder(curr.right, fn)
}

func (t *tree) recursivePreorder(curr *bstNode, fn Callback) {
	if curr == nil {
		return
	}
	fn(curr.key)
	t.recursivePreorder(curr.left, fn)
	t.recursivePreorder(curr.right, fn)
}

func (t *tree) recursivePostorder(curr *bstNode, fn Callback) {
	if curr == nil {
		return
	}
	t.recursivePostorder(curr.left, fn)
	t.recursivePostorder(curr.right, fn)
	fn(curr.key)
}

func (t *tree) PostorderMorris(fn Callback) {
	if t.root == nil {
		return
	}

	// the dummy's left subtree is the whole tree, so the root is emitted when
	// the walk climbs back to the dummy
	dummy := &bstNode{left: t.root}
	curr := dummy
	for curr != nil {
		if curr.left == nil {
			curr = curr.right
			continue
		}

		pred := curr.left
		for pred.right != nil && pred.right != curr {
			pred = pred.right
		}

		if pred.right == nil {
			// thread back to curr, then go down
			pred.right = curr
			curr = curr.left
			continue
		}

		pred.right = nil
		emitReversed(curr.left, fn)
		curr = curr.right
	}
}

// emitReversed emits the right chain starting at head from its tail back to
// head. The chain is reversed in place and restored during the emitting pass.
func emitReversed(head *bstNode, fn Callback) {
	var prev *bstNode
	for curr := head; curr != nil; {
		next := curr.right
		curr.right = prev
		prev, curr = curr, next
	}

	var restored *bstNode
	for prev != nil {
		next := prev.right
		prev.right = restored
		fn(prev.key)
		restored, prev = prev, next
	}
}

func (t *tree) Walk(order Order, fn Callback) error {
	switch order {
	case InOrder:
		t.Inorder(fn)
	case PreOrder:
		t.Preorder(fn)
	case PostOrder:
		t.Postorder(fn)
	case PostOrderMorris:
		t.PostorderMorris(fn)
	default:
		return ErrUnknownOrder
	}
	return nil
}

func (t *tree) Keys(order Order) []int {
	keys := make([]int, 0, t.Size())
	if err := t.Walk(order, func(key int) {
		keys = append(keys, key)
	}); err != nil {
		return nil
	}
	return keys
}

func (t *tree) Iterator() Iterator {
	it := &iterator{tree: t}
	if t.root != nil {
		it.nextNode = t.root.minimum()
	}
	return it
}

func (it *iterator) HasNext() bool {
	return it != nil && it.nextNode != nil
}

func (it *iterator) Next() (Node, error) {
	if !it.HasNext() {
		return nil, ErrNoMoreNodes
	}
	cur := it.nextNode
	it.nextNode = cur.successor()
	return cur, nil
}
