package query

import (
	"github.com/agentstation/gamemage/pkg/catalogs"
	"github.com/agentstation/gamemage/pkg/constants"
)

// MaxPage returns the number of pages needed for n entries, at least 1.
func MaxPage(n, size int) int {
	if size <= 0 {
		size = constants.PageSize
	}
	return max(1, (n+size-1)/size)
}

// Paginate returns the entries on page, clamping page into [1, MaxPage].
// It also returns the page actually served and the page count.
func Paginate(entries []catalogs.Entry, page, size int) (slice []catalogs.Entry, current, maxPage int) {
	if size <= 0 {
		size = constants.PageSize
	}
	maxPage = MaxPage(len(entries), size)
	current = min(max(page, 1), maxPage)

	start := (current - 1) * size
	end := min(start+size, len(entries))
	return entries[start:end], current, maxPage
}
