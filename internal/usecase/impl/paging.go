// Package impl contains the implementation of the application's business logic.
package impl

import (
	"fmt"
	"math"
)

// normalizePage treats any page below 1 as the first page.
func normalizePage(page int) int {
	if page < 1 {
		return 1
	}

	return page
}

// totalPages returns ceil(count/size).
func totalPages(count int64, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}

	return int((count + int64(size) - 1) / int64(size))
}

// pageOffset returns the row offset of page. It reports false when the offset
// does not fit in an int, in which case the page is past any real result set.
func pageOffset(page, size int) (int, bool) {
	if size <= 0 || page-1 > math.MaxInt/size {
		return 0, false
	}

	return (page - 1) * size, true
}

// listVariant is the cache variant of one (query, page) listing.
func listVariant(query string, page int) string {
	return fmt.Sprintf("query=%s&page=%d", query, page)
}
