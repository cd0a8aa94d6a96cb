package Trees

import "fmt"

// IteratorError is the value panicked with when an iterator is used against its
// preconditions: dereferencing or advancing End, erasing through an iterator that
// belongs to another tree, or using an iterator whose node has been erased.
type IteratorError struct {
	Op     string
	Reason string
}

func (e *IteratorError) Error() string {
	return "Trees: " + e.Op + ": " + e.Reason
}

// CapacityError is returned when the handle type can't address another node.
type CapacityError struct {
	Max uint64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("Trees: capacity exhausted, handle type holds at most %d nodes", e.Max)
}
