package pagination

import "math"

// Request identifies one window of an ordered result set.
type Request struct {
	Number int
	Size   int
}

// NewRequest creates a Request for the given zero-based page number and size.
func NewRequest(number, size int) Request {
	return Request{Number: number, Size: size}
}

// Overflows reports whether Number*Size does not fit in an int.
func (r Request) Overflows() bool {
	return r.Size > 0 && r.Number > math.MaxInt/r.Size
}

// Offset is the index of the first element of the window. Negative or
// overflowing windows saturate to math.MaxInt, which lies past any result set.
func (r Request) Offset() int {
	if r.Size <= 0 {
		return 0
	}
	if r.Number < 0 || r.Overflows() {
		return math.MaxInt
	}
	return r.Number * r.Size
}

// Page is a read-only view of one window of a result set.
type Page[T any] struct {
	Items         []T
	Request       Request
	TotalElements int
}

// New creates a Page from an already windowed slice of items.
func New[T any](items []T, req Request, totalElements int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:         items,
		Request:       req,
		TotalElements: totalElements,
	}
}

// TotalPages is ceil(TotalElements/Size), and 0 for a non-positive size.
func (p Page[T]) TotalPages() int {
	if p.Request.Size <= 0 {
		return 0
	}
	return (p.TotalElements + p.Request.Size - 1) / p.Request.Size
}

func (p Page[T]) IsFirst() bool {
	return p.Request.Number == 0
}

func (p Page[T]) IsLast() bool {
	return p.Request.Number >= p.TotalPages()-1
}

// Map converts every item of a page, keeping the page metadata.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, len(p.Items))
	for i, item := range p.Items {
		items[i] = fn(item)
	}
	return Page[U]{
		Items:         items,
		Request:       p.Request,
		TotalElements: p.TotalElements,
	}
}
