// Package page implements the paginator: chunking a random-access
// sequence into fixed-size pages, built eagerly up front.
package page

// Paginator eagerly splits a sequence into pages of up to pageSize
// consecutive items, the last page possibly shorter. Built once at
// construction rather than as a lazy Go iterator — the whole sequence is
// already in hand by the time a caller wants to paginate it, so there is
// nothing to gain from laziness and the eager form is trivial to test.
type Paginator[T any] struct {
	pages [][]T
}

// New builds a Paginator over items with the given page size. A
// non-positive pageSize yields a single page containing every item.
func New[T any](items []T, pageSize int) *Paginator[T] {
	if pageSize <= 0 {
		pageSize = len(items)
		if pageSize == 0 {
			return &Paginator[T]{}
		}
	}

	p := &Paginator[T]{}
	for start := 0; start < len(items); start += pageSize {
		end := start + pageSize
		if end > len(items) {
			end = len(items)
		}
		p.pages = append(p.pages, items[start:end])
	}
	return p
}

// Pages returns the pages in input order.
func (p *Paginator[T]) Pages() [][]T {
	return p.pages
}

// Len returns the number of pages.
func (p *Paginator[T]) Len() int {
	return len(p.pages)
}

// Paginate is the free-function form of New.
func Paginate[T any](items []T, pageSize int) *Paginator[T] {
	return New(items, pageSize)
}
