package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/starcode/library-api/internal/core/ports"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
)

// link is a single HATEOAS navigation link.
type link struct {
	Rel  string `json:"rel" xml:"rel" yaml:"rel"`
	Href string `json:"href" xml:"href" yaml:"href"`
}

// pageMetadata mirrors the page section of a paged response.
type pageMetadata struct {
	Size          int   `json:"size" xml:"size" yaml:"size"`
	TotalElements int64 `json:"totalElements" xml:"totalElements" yaml:"totalElements"`
	TotalPages    int   `json:"totalPages" xml:"totalPages" yaml:"totalPages"`
	Number        int   `json:"number" xml:"number" yaml:"number"`
}

// requestBaseURL rebuilds the scheme and host of the inbound request so
// link hrefs come out fully qualified.
func requestBaseURL(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host
}

// selfLink builds the self link for a single resource.
func selfLink(base string, id int64) []link {
	return []link{{Rel: "self", Href: fmt.Sprintf("%s/%d", base, id)}}
}

// pageLinks assembles the navigation links for a paged listing. The
// links reproduce the request's direction, size and sort parameters
// with only the page number varying:
//
//	self:  always, the current page
//	first: always, page 0
//	prev:  only when number > 0
//	next:  only when number+1 < totalPages
//	last:  always, totalPages-1 (or 0 for an empty result)
func pageLinks(base string, page ports.PageRequest, totalPages int) []link {
	href := func(number int) string {
		return fmt.Sprintf("%s?direction=%s&page=%d&size=%d&sort=%s,%s",
			base, page.Direction, number, page.Size, page.SortField, page.Direction)
	}

	last := totalPages - 1
	if last < 0 {
		last = 0
	}

	links := []link{{Rel: "first", Href: href(0)}}
	if page.Page > 0 {
		links = append(links, link{Rel: "prev", Href: href(page.Page - 1)})
	}
	links = append(links, link{Rel: "self", Href: href(page.Page)})
	if page.Page+1 < totalPages {
		links = append(links, link{Rel: "next", Href: href(page.Page + 1)})
	}
	links = append(links, link{Rel: "last", Href: href(last)})

	return links
}

// parsePageRequest reads the paging query parameters, applying the
// defaults page=0, size=12, direction=asc and the given sort field.
// The sort parameter accepts both a bare field name and the
// `<field>,<direction>` form the emitted links carry, so following a
// link reproduces the exact page request it was built from.
func parsePageRequest(c echo.Context, defaultSort string) ports.PageRequest {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 0 {
		page = 0
	}

	size, err := strconv.Atoi(c.QueryParam("size"))
	if err != nil || size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	sortField := c.QueryParam("sort")
	var sortDirection string
	if i := strings.IndexByte(sortField, ','); i >= 0 {
		sortField, sortDirection = sortField[:i], sortField[i+1:]
	}
	if sortField == "" {
		sortField = defaultSort
	}

	direction := c.QueryParam("direction")
	if direction == "" {
		direction = sortDirection
	}
	if direction != ports.DirectionDesc {
		direction = ports.DirectionAsc
	}

	return ports.PageRequest{Page: page, Size: size, SortField: sortField, Direction: direction}
}
