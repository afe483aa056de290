// Package dynarray implements a growable, bounds checked, contiguous buffer of elements.
// The zero value of Array is an empty array ready to use.
package dynarray

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/cerr"
	"strings"
)

// Array - A contiguous buffer where indices [0, size) are valid and [size, capacity) are reserved
// but not logically present. Reserved slots are always held at the zero value of T.
type Array[T any] struct {
	buf  []T
	size int
}

// New - Returns a pointer to a new Array holding initialSize zero valued elements,
// size and capacity are both initialSize.
func New[T any](initialSize int) *Array[T] {
	if initialSize < 0 {
		initialSize = 0
	}
	return &Array[T]{buf: make([]T, initialSize), size: initialSize}
}

// Size - Returns the number of logically present elements
func (A *Array[T]) Size() int {
	return A.size
}

// Capacity - Returns the number of allocated slots
func (A *Array[T]) Capacity() int {
	return len(A.buf)
}

// Get - Returns a copy of the element at index i.
// It returns an error of type cerr.IndexOutOfRange if i is not within [0, size)
func (A *Array[T]) Get(i int) (value T, err error) {
	if err = A.checkIndex(i); err != nil {
		return
	}

	value = A.buf[i]

	return
}

// At - Returns a reference to the element at index i. The reference is only valid until the next
// operation that changes capacity (PushBack, Resize, ResizeWithCapacity or Clear).
// It returns an error of type cerr.IndexOutOfRange if i is not within [0, size)
func (A *Array[T]) At(i int) (value *T, err error) {
	if err = A.checkIndex(i); err != nil {
		return
	}

	value = &A.buf[i]

	return
}

// Set - Overwrites the element at index i.
// It returns an error of type cerr.IndexOutOfRange if i is not within [0, size)
func (A *Array[T]) Set(i int, value T) (err error) {
	if err = A.checkIndex(i); err != nil {
		return
	}

	A.buf[i] = value

	return
}

// Replace - Same as Set but taking the value first
func (A *Array[T]) Replace(value T, i int) error {
	return A.Set(i, value)
}

// PushBack - Appends value, doubling capacity first if the buffer is full (0 becomes 1)
func (A *Array[T]) PushBack(value T) {
	if A.size == len(A.buf) {
		newCapacity := len(A.buf) * 2
		if newCapacity == 0 {
			newCapacity = 1
		}
		A.reallocate(newCapacity)
	}

	A.buf[A.size] = value
	A.size++
}

// Resize - Sets the size to newSize. If newSize exceeds the capacity the buffer is reallocated to
// 2 * newSize and existing elements are moved over in order. Slots beyond the old size are zero valued,
// and slots dropped by shrinking are reset to the zero value.
// It returns an error of type cerr.InvalidArgument if newSize is negative.
func (A *Array[T]) Resize(newSize int) (err error) {
	if newSize < 0 {
		err = cerr.NewInvalidArgument("size %d is negative", newSize)
		return
	}

	if newSize > len(A.buf) {
		A.reallocate(newSize * 2)
	} else {
		A.zero(newSize, A.size)
	}
	A.size = newSize

	return
}

// ResizeWithCapacity - Sets the size to newSize and reallocates the buffer to exactly newCapacity slots.
// It returns an error of type cerr.InvalidArgument if newCapacity is smaller than newSize or newSize is negative,
// in which case the array is left untouched.
func (A *Array[T]) ResizeWithCapacity(newSize, newCapacity int) (err error) {
	if newSize < 0 {
		err = cerr.NewInvalidArgument("size %d is negative", newSize)
		return
	}
	if newCapacity < newSize {
		err = cerr.NewInvalidArgument("capacity %d is smaller than size %d", newCapacity, newSize)
		return
	}

	if newSize < A.size {
		A.zero(newSize, A.size)
		A.size = newSize
	}
	A.reallocate(newCapacity)
	A.size = newSize

	return
}

// Clear - Releases the storage and resets size and capacity to 0. Calling it on an already
// cleared array is a no-op.
func (A *Array[T]) Clear() {
	A.zero(0, A.size)
	A.buf = nil
	A.size = 0
}

// Foreach - Calls visitor with index and a reference to every element in [0, size).
// The visitor must not change the size or capacity of the array.
func (A *Array[T]) Foreach(visitor func(i int, value *T)) {
	for i := 0; i < A.size; i++ {
		visitor(i, &A.buf[i])
	}
}

// String - Returns a short debug description with size, capacity and the first and last elements
func (A *Array[T]) String() string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "{size: %d, capacity: %d}\n", A.size, len(A.buf))
	for i := 0; i < A.size && i < 2; i++ {
		_, _ = fmt.Fprintf(&sb, "[%d] = %v\n", i, A.buf[i])
	}
	if A.size > 3 {
		sb.WriteString("...\n")
	}
	if A.size > 2 {
		_, _ = fmt.Fprintf(&sb, "[%d] = %v\n", A.size-1, A.buf[A.size-1])
	}

	return sb.String()
}

// reallocate - Moves the first min(size, newCapacity) elements into a new buffer of newCapacity slots.
// The old buffer is zeroed so no element is owned by two buffers.
func (A *Array[T]) reallocate(newCapacity int) {
	nbuf := make([]T, newCapacity)
	n := copy(nbuf, A.buf[:A.size])
	A.zero(0, A.size)
	A.buf = nbuf
	if A.size > n {
		A.size = n
	}
}

// zero - Resets slots [from, to) to the zero value of T
func (A *Array[T]) zero(from, to int) {
	var zero T
	for i := from; i < to; i++ {
		A.buf[i] = zero
	}
}

func (A *Array[T]) checkIndex(i int) error {
	if i < 0 || i >= A.size {
		return cerr.NewIndexOutOfRange("index %d out of range [0, %d)", i, A.size)
	}
	return nil
}
