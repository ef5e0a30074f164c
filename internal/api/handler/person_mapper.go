package handler

import (
	"github.com/starcode/library-api/internal/core/domain"
	"github.com/starcode/library-api/internal/core/ports"
)

const personBasePath = "/api/v1/person"

// --- Request → domain ---

func toPersonEntity(req createPersonRequest) *domain.Person {
	return &domain.Person{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		Gender:    req.Gender,
	}
}

func toPersonEntityForUpdate(req updatePersonRequest) *domain.Person {
	return &domain.Person{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		Gender:    req.Gender,
	}
}

// --- Domain → VO ---

func toPersonVO(p *domain.Person, baseURL string) personVO {
	return personVO{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Address:   p.Address,
		Gender:    p.Gender,
		Enabled:   p.Enabled,
		Links:     selfLink(baseURL+personBasePath, p.ID),
	}
}

func toPersonPageVO(page *ports.PersonPage, req ports.PageRequest, baseURL string) personPageVO {
	content := make([]personVO, len(page.Items))
	for i := range page.Items {
		content[i] = toPersonVO(&page.Items[i], baseURL)
	}
	return personPageVO{
		Content: content,
		Page: pageMetadata{
			Size:          page.Size,
			TotalElements: page.TotalElements,
			TotalPages:    page.TotalPages,
			Number:        page.Page,
		},
		Links: pageLinks(baseURL+personBasePath, req, page.TotalPages),
	}
}
