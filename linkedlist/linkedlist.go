// Package linkedlist implements a doubly-linked list whose nodes live in a slot arena backed by a
// dynarray.Array. Links between nodes are slot references (slot index + 1) where 0 means no node,
// which makes the zero value of List an empty list ready to use.
//
// Slots of removed nodes are zeroed at once and recycled by later insertions. When the last node is
// removed the arena itself is released.
package linkedlist

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/cerr"
	"github.com/gostonefire/chainhashmap/dynarray"
	"golang.org/x/exp/constraints"
)

type node[T any] struct {
	value T
	prev  int
	next  int
}

// List - Doubly-linked list exclusively owning all of its nodes
type List[T any] struct {
	nodes dynarray.Array[node[T]]
	head  int
	tail  int
	free  int
	size  int
}

// New - Returns a pointer to a new empty List
func New[T any]() *List[T] {
	return &List[T]{}
}

// Ascending - Less than function for AddOrdered keeping values in ascending order
func Ascending[T constraints.Ordered](a, b T) bool {
	return a < b
}

// Descending - Less than function for AddOrdered keeping values in descending order
func Descending[T constraints.Ordered](a, b T) bool {
	return a > b
}

// Size - Returns the number of nodes in the list
func (L *List[T]) Size() int {
	return L.size
}

// IsEmpty - Returns true if the list has no nodes
func (L *List[T]) IsEmpty() bool {
	return L.size == 0
}

// PushBack - Appends value at the tail
func (L *List[T]) PushBack(value T) {
	ref := L.alloc(value)
	if L.tail == 0 {
		L.head, L.tail = ref, ref
	} else {
		L.node(ref).prev = L.tail
		L.node(L.tail).next = ref
		L.tail = ref
	}
	L.size++
}

// PushFront - Prepends value at the head
func (L *List[T]) PushFront(value T) {
	ref := L.alloc(value)
	if L.head == 0 {
		L.head, L.tail = ref, ref
	} else {
		L.node(ref).next = L.head
		L.node(L.head).prev = ref
		L.head = ref
	}
	L.size++
}

// PopBack - Removes the tail node, does nothing on an empty list
func (L *List[T]) PopBack() {
	if L.tail != 0 {
		L.unlink(L.tail)
	}
}

// PopFront - Removes the head node, does nothing on an empty list
func (L *List[T]) PopFront() {
	if L.head != 0 {
		L.unlink(L.head)
	}
}

// Front - Returns the head value and true, or the zero value and false if the list is empty
func (L *List[T]) Front() (value T, ok bool) {
	if L.head == 0 {
		return
	}
	return L.node(L.head).value, true
}

// Back - Returns the tail value and true, or the zero value and false if the list is empty
func (L *List[T]) Back() (value T, ok bool) {
	if L.tail == 0 {
		return
	}
	return L.node(L.tail).value, true
}

// Insert - Inserts value before the current occupant of index.
// An empty list or index 0 degrades to PushBack, and index equal to size appends at the tail.
// It returns an error of type cerr.IndexOutOfRange for any other index outside the list.
func (L *List[T]) Insert(index int, value T) (err error) {
	if L.head == 0 || index == 0 {
		L.PushBack(value)
		return
	}

	prev := L.nodeAt(index - 1)
	if prev == 0 {
		err = cerr.NewIndexOutOfRange("insert index %d out of range [0, %d]", index, L.size)
		return
	}

	L.insertAfter(prev, value)

	return
}

// Remove - Removes the node at index, in constant time for the head and the tail.
// Removing from an empty list does nothing.
// It returns an error of type cerr.IndexOutOfRange if index is outside [0, size) on a non empty list.
func (L *List[T]) Remove(index int) (err error) {
	if L.head == 0 {
		return
	}

	switch {
	case index < 0 || index >= L.size:
		err = cerr.NewIndexOutOfRange("remove index %d out of range [0, %d)", index, L.size)
	case index == 0:
		L.PopFront()
	case index == L.size-1:
		L.PopBack()
	default:
		L.unlink(L.nodeAt(index))
	}

	return
}

// Replace - Overwrites the value at index in place.
// It returns an error of type cerr.EmptyCollection if the list is empty, or cerr.IndexOutOfRange
// if index is outside [0, size).
func (L *List[T]) Replace(index int, value T) (err error) {
	if L.head == 0 {
		err = cerr.NewEmptyCollection("replace on empty list")
		return
	}

	ref := L.nodeAt(index)
	if ref == 0 {
		err = cerr.NewIndexOutOfRange("replace index %d out of range [0, %d)", index, L.size)
		return
	}

	L.node(ref).value = value

	return
}

// At - Returns a reference to the value at index, walking from whichever end is closer.
// The reference is valid until the next insertion or removal on the list.
// It returns an error of type cerr.IndexOutOfRange if index is outside [0, size).
func (L *List[T]) At(index int) (value *T, err error) {
	ref := L.nodeAt(index)
	if ref == 0 {
		err = cerr.NewIndexOutOfRange("index %d out of range [0, %d)", index, L.size)
		return
	}

	value = &L.node(ref).value

	return
}

// Get - Same as At but returns a copy of the value
func (L *List[T]) Get(index int) (value T, err error) {
	p, err := L.At(index)
	if err != nil {
		return
	}

	value = *p

	return
}

// Find - Returns a reference to the first value from the head for which predicate is true.
// If no value matches it returns nil and false.
func (L *List[T]) Find(predicate func(value T) bool) (value *T, found bool) {
	for ref := L.head; ref != 0; ref = L.node(ref).next {
		n := L.node(ref)
		if predicate(n.value) {
			return &n.value, true
		}
	}

	return
}

// RemoveOneIf - Removes the first node for which predicate is true and reports whether a node was removed
func (L *List[T]) RemoveOneIf(predicate func(value T) bool) bool {
	for ref := L.head; ref != 0; ref = L.node(ref).next {
		if predicate(L.node(ref).value) {
			L.unlink(ref)
			return true
		}
	}

	return false
}

// RemoveIf - Removes every node for which predicate is true in one pass and returns how many were removed
func (L *List[T]) RemoveIf(predicate func(value T) bool) (removed int) {
	ref := L.head
	for ref != 0 {
		next := L.node(ref).next
		if predicate(L.node(ref).value) {
			L.unlink(ref)
			removed++
		}
		ref = next
	}

	return
}

// AddOrdered - Inserts value before the first node for which lessThan(value, node) is true,
// or at the tail if there is none. The list keeps a caller defined order only as long as all
// insertions go through AddOrdered.
func (L *List[T]) AddOrdered(value T, lessThan func(a, b T) bool) {
	for ref := L.head; ref != 0; ref = L.node(ref).next {
		if lessThan(value, L.node(ref).value) {
			L.insertBefore(ref, value)
			return
		}
	}

	L.PushBack(value)
}

// Foreach - Calls visitor with a reference to every value from head to tail.
// The visitor may change values but must not insert or remove nodes.
func (L *List[T]) Foreach(visitor func(value *T)) {
	for ref := L.head; ref != 0; ref = L.node(ref).next {
		visitor(&L.node(ref).value)
	}
}

// Values - Returns a snapshot of all values from head to tail
func (L *List[T]) Values() (values []T) {
	values = make([]T, 0, L.size)
	for ref := L.head; ref != 0; ref = L.node(ref).next {
		values = append(values, L.node(ref).value)
	}

	return
}

// Clear - Removes all nodes and releases the arena
func (L *List[T]) Clear() {
	L.nodes.Clear()
	L.head, L.tail, L.free, L.size = 0, 0, 0, 0
}

// Move - Transfers ownership of all nodes to the returned list, leaving L empty and usable
func (L *List[T]) Move() (moved List[T]) {
	moved = *L
	*L = List[T]{}

	return
}

// String - Returns a short debug description of the list
func (L *List[T]) String() string {
	if L.head == 0 {
		return fmt.Sprintf("List: {size: %d}", L.size)
	}
	return fmt.Sprintf("List: {size: %d, head: %v, tail: %v}", L.size, L.node(L.head).value, L.node(L.tail).value)
}

// alloc - Places value in a recycled slot if there is one, else in a new slot at the end of the arena.
// Any node reference taken before the call may be invalidated.
func (L *List[T]) alloc(value T) (ref int) {
	if L.free != 0 {
		ref = L.free
		n := L.node(ref)
		L.free = n.next
		*n = node[T]{value: value}
		return
	}

	L.nodes.PushBack(node[T]{value: value})
	ref = L.nodes.Size()

	return
}

// unlink - Detaches the node at ref, zeroes its slot and puts the slot on the free list
func (L *List[T]) unlink(ref int) {
	n := L.node(ref)
	prev, next := n.prev, n.next

	if next != 0 {
		L.node(next).prev = prev
	} else {
		L.tail = prev
	}
	if prev != 0 {
		L.node(prev).next = next
	} else {
		L.head = next
	}

	*n = node[T]{next: L.free}
	L.free = ref
	L.size--

	if L.size == 0 {
		L.Clear()
	}
}

// insertAfter - Links a new node holding value right after the node at ref
func (L *List[T]) insertAfter(ref int, value T) {
	next := L.node(ref).next
	if next == 0 {
		L.PushBack(value)
		return
	}

	newRef := L.alloc(value)
	n := L.node(newRef)
	n.prev = ref
	n.next = next
	L.node(ref).next = newRef
	L.node(next).prev = newRef
	L.size++
}

// insertBefore - Links a new node holding value right before the node at ref
func (L *List[T]) insertBefore(ref int, value T) {
	prev := L.node(ref).prev
	if prev == 0 {
		L.PushFront(value)
		return
	}

	L.insertAfter(prev, value)
}

// nodeAt - Returns the slot reference of the node at index, or 0 if index is outside [0, size).
// It walks from the head or the tail depending on which is closer.
func (L *List[T]) nodeAt(index int) (ref int) {
	if index < 0 || index >= L.size {
		return
	}

	if L.size-index > index {
		ref = L.head
		for i := 0; i < index; i++ {
			ref = L.node(ref).next
		}
	} else {
		ref = L.tail
		for i := L.size - 1; i > index; i-- {
			ref = L.node(ref).prev
		}
	}

	return
}

// node - Returns the node held in the slot referred to by ref, which must be a valid reference
func (L *List[T]) node(ref int) *node[T] {
	n, err := L.nodes.At(ref - 1)
	if err != nil {
		panic(fmt.Sprintf("linkedlist: corrupted node reference %d: %s", ref, err))
	}
	return n
}
