package ports

// Sort directions accepted by paged listings.
const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// PageRequest carries the caller's paging and sorting intent. Page is
// zero-based. SortField names a domain field; each repository maps it
// to its storage representation.
type PageRequest struct {
	Page      int
	Size      int
	SortField string
	Direction string
}

// TotalPages derives the page count for a given element total.
func (p PageRequest) TotalPages(totalElements int64) int {
	if p.Size <= 0 {
		return 0
	}
	pages := totalElements / int64(p.Size)
	if totalElements%int64(p.Size) != 0 {
		pages++
	}
	return int(pages)
}
