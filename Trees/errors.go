package Trees

// EmptyTreeError is returned by operations that need at least one element.
type EmptyTreeError struct {
	Op string
}

func (e *EmptyTreeError) Error() string {
	return "Tree is Empty: cannot " + e.Op + "."
}

// NilArgumentError is returned by constructors given a nil comparer or sequence.
type NilArgumentError struct {
	Name string
}

func (e *NilArgumentError) Error() string {
	return "Argument is nil: " + e.Name + "."
}
