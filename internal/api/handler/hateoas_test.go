package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/starcode/library-api/internal/core/ports"
)

func linkByRel(t *testing.T, links []link, rel string) string {
	t.Helper()
	for _, l := range links {
		if l.Rel == rel {
			return l.Href
		}
	}
	t.Fatalf("link %q not found in %v", rel, links)
	return ""
}

func hasRel(links []link, rel string) bool {
	for _, l := range links {
		if l.Rel == rel {
			return true
		}
	}
	return false
}

// Mirrors the canonical paging scenario: 1007 rows, size 12, page 3.
func TestPageLinks_MiddlePage(t *testing.T) {
	page := ports.PageRequest{Page: 3, Size: 12, SortField: "firstName", Direction: ports.DirectionAsc}
	totalPages := page.TotalPages(1007)
	if totalPages != 84 {
		t.Fatalf("expected 84 total pages, got %d", totalPages)
	}

	links := pageLinks("http://localhost:8080/api/v1/person", page, totalPages)

	want := map[string]string{
		"first": "http://localhost:8080/api/v1/person?direction=asc&page=0&size=12&sort=firstName,asc",
		"prev":  "http://localhost:8080/api/v1/person?direction=asc&page=2&size=12&sort=firstName,asc",
		"self":  "http://localhost:8080/api/v1/person?direction=asc&page=3&size=12&sort=firstName,asc",
		"next":  "http://localhost:8080/api/v1/person?direction=asc&page=4&size=12&sort=firstName,asc",
		"last":  "http://localhost:8080/api/v1/person?direction=asc&page=83&size=12&sort=firstName,asc",
	}
	for rel, href := range want {
		if got := linkByRel(t, links, rel); got != href {
			t.Fatalf("link %q = %q, want %q", rel, got, href)
		}
	}
}

func TestPageLinks_FirstPageOmitsPrev(t *testing.T) {
	page := ports.PageRequest{Page: 0, Size: 12, SortField: "title", Direction: ports.DirectionDesc}
	links := pageLinks("http://localhost:8080/api/v1/book", page, 5)

	if hasRel(links, "prev") {
		t.Fatalf("prev must be absent on page 0: %v", links)
	}
	if got := linkByRel(t, links, "next"); got != "http://localhost:8080/api/v1/book?direction=desc&page=1&size=12&sort=title,desc" {
		t.Fatalf("unexpected next link: %s", got)
	}
}

func TestPageLinks_LastPageOmitsNext(t *testing.T) {
	page := ports.PageRequest{Page: 4, Size: 12, SortField: "title", Direction: ports.DirectionAsc}
	links := pageLinks("http://localhost:8080/api/v1/book", page, 5)

	if hasRel(links, "next") {
		t.Fatalf("next must be absent on the last page: %v", links)
	}
	if got := linkByRel(t, links, "last"); got != "http://localhost:8080/api/v1/book?direction=asc&page=4&size=12&sort=title,asc" {
		t.Fatalf("unexpected last link: %s", got)
	}
}

func TestPageLinks_EmptyResult(t *testing.T) {
	page := ports.PageRequest{Page: 0, Size: 12, SortField: "id", Direction: ports.DirectionAsc}
	links := pageLinks("http://localhost:8080/api/v1/book", page, 0)

	if hasRel(links, "next") || hasRel(links, "prev") {
		t.Fatalf("empty result must only carry first/self/last: %v", links)
	}
	if got := linkByRel(t, links, "last"); got != "http://localhost:8080/api/v1/book?direction=asc&page=0&size=12&sort=id,asc" {
		t.Fatalf("unexpected last link: %s", got)
	}
}

func TestParsePageRequest_Defaults(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/person", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	page := parsePageRequest(c, "firstName")
	if page.Page != 0 || page.Size != 12 || page.Direction != ports.DirectionAsc || page.SortField != "firstName" {
		t.Fatalf("unexpected defaults: %+v", page)
	}
}

func TestParsePageRequest_ClampsAndValidates(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/person?page=-3&size=5000&direction=sideways", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	page := parsePageRequest(c, "firstName")
	if page.Page != 0 {
		t.Fatalf("negative page not clamped: %d", page.Page)
	}
	if page.Size != maxPageSize {
		t.Fatalf("oversize not clamped: %d", page.Size)
	}
	if page.Direction != ports.DirectionAsc {
		t.Fatalf("bad direction not defaulted: %s", page.Direction)
	}
}

func TestParsePageRequest_SortCarriesDirection(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/person?page=2&size=12&sort=lastName,desc", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	page := parsePageRequest(c, "firstName")
	if page.SortField != "lastName" {
		t.Fatalf("sort field = %q, want lastName", page.SortField)
	}
	if page.Direction != ports.DirectionDesc {
		t.Fatalf("direction = %q, want desc", page.Direction)
	}
}

// Following one of the emitted links must reproduce the page request it
// was built from, with only the page number varying.
func TestPageLinks_RoundTrip(t *testing.T) {
	orig := ports.PageRequest{Page: 3, Size: 12, SortField: "firstName", Direction: ports.DirectionAsc}
	links := pageLinks("http://localhost:8080/api/v1/person", orig, 84)

	e := echo.New()
	for _, rel := range []string{"first", "prev", "self", "next", "last"} {
		href := linkByRel(t, links, rel)
		req := httptest.NewRequest(http.MethodGet, href, nil)
		c := e.NewContext(req, httptest.NewRecorder())

		got := parsePageRequest(c, "firstName")
		if got.SortField != orig.SortField || got.Direction != orig.Direction || got.Size != orig.Size {
			t.Fatalf("%s link %q parsed to %+v, want sort/direction/size of %+v", rel, href, got, orig)
		}
	}
}
