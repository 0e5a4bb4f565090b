package service

import (
	"context"
	"strings"

	tmpl "github.com/alexanderramin/century/internal/template"
)

type templateService struct {
	catalog *tmpl.Catalog
}

func NewTemplateService(catalog *tmpl.Catalog) TemplateService {
	return &templateService{catalog: catalog}
}

func (s *templateService) List(ctx context.Context) []TemplateInfo {
	templates := s.catalog.List()
	out := make([]TemplateInfo, 0, len(templates))
	for _, t := range templates {
		out = append(out, TemplateInfo{Template: t, Role: s.catalog.Role(t.ID)})
	}
	return out
}

// Get resolves a template by id, case-insensitively.
func (s *templateService) Get(ctx context.Context, id string) (*TemplateInfo, error) {
	t, err := s.catalog.Get(strings.ToLower(strings.TrimSpace(id)))
	if err != nil {
		return nil, err
	}
	return &TemplateInfo{Template: t, Role: s.catalog.Role(t.ID)}, nil
}
