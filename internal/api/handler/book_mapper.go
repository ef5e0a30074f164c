package handler

import (
	"github.com/starcode/library-api/internal/core/domain"
	"github.com/starcode/library-api/internal/core/ports"
)

const bookBasePath = "/api/v1/book"

// --- Request → domain ---

func toBookEntity(req createBookRequest) *domain.Book {
	return &domain.Book{
		Title:      req.Title,
		Author:     req.Author,
		LaunchDate: req.LaunchDate,
		Price:      req.Price,
	}
}

func toBookEntityForUpdate(req updateBookRequest) *domain.Book {
	return &domain.Book{
		ID:         req.ID,
		Title:      req.Title,
		Author:     req.Author,
		LaunchDate: req.LaunchDate,
		Price:      req.Price,
	}
}

// --- Domain → VO ---

func toBookVO(b *domain.Book, baseURL string) bookVO {
	return bookVO{
		ID:         b.ID,
		Title:      b.Title,
		Author:     b.Author,
		LaunchDate: b.LaunchDate,
		Price:      b.Price,
		Links:      selfLink(baseURL+bookBasePath, b.ID),
	}
}

func toBookPageVO(page *ports.BookPage, req ports.PageRequest, baseURL string) bookPageVO {
	content := make([]bookVO, len(page.Items))
	for i := range page.Items {
		content[i] = toBookVO(&page.Items[i], baseURL)
	}
	return bookPageVO{
		Content: content,
		Page: pageMetadata{
			Size:          page.Size,
			TotalElements: page.TotalElements,
			TotalPages:    page.TotalPages,
			Number:        page.Page,
		},
		Links: pageLinks(baseURL+bookBasePath, req, page.TotalPages),
	}
}
