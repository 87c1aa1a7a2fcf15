package bst

type Tree interface {
	Search(key int) (bool, Node)
	Insert(key int) bool
	Delete(key int) bool
	Root() Node
	Size() int

	Inorder(fn Callback)
	Preorder(fn Callback)
	Postorder(fn Callback)
	// PostorderMorris emits the same sequence as Postorder without a stack.
	// The tree must not be read or modified while it runs.
	PostorderMorris(fn Callback)

	Walk(order Order, fn Callback) error
	Keys(order Order) []int
	Iterator() Iterator
}

type Iterator interface {
	HasNext() bool
	Next() (Node, error)
}

type Node interface {
	Key() int
	Left() Node
	Right() Node
	Parent() Node

	Minimum() Node
	Maximum() Node
	Successor() Node
	Predecessor() Node
}

func New() Tree {
	return &tree{}
}
