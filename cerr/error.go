package cerr

import "fmt"

// IndexOutOfRange - Custom error to inform that a positional access was outside [0, size)
type IndexOutOfRange struct {
	msg string
}

// NewIndexOutOfRange - Returns an IndexOutOfRange error with a formatted message
func NewIndexOutOfRange(format string, a ...any) IndexOutOfRange {
	return IndexOutOfRange{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that an index was out of range
func (E IndexOutOfRange) Error() string {
	if E.msg == "" {
		return "index out of range"
	}
	return E.msg
}

// Is - Matches any IndexOutOfRange regardless of message
func (E IndexOutOfRange) Is(target error) bool {
	_, ok := target.(IndexOutOfRange)
	return ok
}

// InvalidArgument - Custom error to inform that an argument was not acceptable, e.g. a capacity smaller than size
type InvalidArgument struct {
	msg string
}

// NewInvalidArgument - Returns an InvalidArgument error with a formatted message
func NewInvalidArgument(format string, a ...any) InvalidArgument {
	return InvalidArgument{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that an argument was invalid
func (E InvalidArgument) Error() string {
	if E.msg == "" {
		return "invalid argument"
	}
	return E.msg
}

// Is - Matches any InvalidArgument regardless of message
func (E InvalidArgument) Is(target error) bool {
	_, ok := target.(InvalidArgument)
	return ok
}

// EmptyCollection - Custom error to inform that an operation needs at least one element
type EmptyCollection struct {
	msg string
}

// NewEmptyCollection - Returns an EmptyCollection error with a formatted message
func NewEmptyCollection(format string, a ...any) EmptyCollection {
	return EmptyCollection{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that the collection was empty
func (E EmptyCollection) Error() string {
	if E.msg == "" {
		return "collection is empty"
	}
	return E.msg
}

// Is - Matches any EmptyCollection regardless of message
func (E EmptyCollection) Is(target error) bool {
	_, ok := target.(EmptyCollection)
	return ok
}
