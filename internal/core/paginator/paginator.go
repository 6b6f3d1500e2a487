// Package paginator slices ordered collections into fixed-size pages.
//
// A raw page number that is missing or not an integer selects the first page.
// An integer outside the valid range selects the last page. An empty
// collection still has one (empty) page.
package paginator

import (
	"errors"
	"strconv"
	"strings"
)

// Page describes one page of a collection.
type Page struct {
	Number   int
	NumPages int
	PerPage  int
	Count    int64
}

// Offset is the index of the first item on the page.
func (p Page) Offset() int { return (p.Number - 1) * p.PerPage }

// Limit is the maximum number of items on the page.
func (p Page) Limit() int { return p.PerPage }

func (p Page) HasNext() bool     { return p.Number < p.NumPages }
func (p Page) HasPrevious() bool { return p.Number > 1 }

// ParseNumber reads a raw page number. Missing or non-integer input is page 1.
// ok is false for integers below 1 or too large for int, which stand for the
// last page.
func ParseNumber(raw string) (number int, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	switch {
	case errors.Is(err, strconv.ErrRange):
		return 0, false
	case err != nil:
		return 1, true
	case n < 1:
		return 0, false
	}
	return n, true
}

// Resolve picks the page identified by raw in a collection of count items.
func Resolve(count int64, perPage int, raw string) Page {
	if perPage < 1 {
		perPage = 1
	}
	if count < 0 {
		count = 0
	}

	numPages := int((count + int64(perPage) - 1) / int64(perPage))
	if numPages < 1 {
		numPages = 1
	}

	number, ok := ParseNumber(raw)
	if !ok || number > numPages {
		number = numPages
	}

	return Page{
		Number:   number,
		NumPages: numPages,
		PerPage:  perPage,
		Count:    count,
	}
}

// Paginate returns the items of the page identified by raw.
func Paginate[T any](items []T, perPage int, raw string) ([]T, Page) {
	page := Resolve(int64(len(items)), perPage, raw)

	start := page.Offset()
	if start > len(items) {
		start = len(items)
	}
	end := min(start+page.Limit(), len(items))
	return items[start:end], page
}
