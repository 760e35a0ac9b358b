// Package service exposes the format catalog read-only
package service

import (
	"context"

	"tsconv/internal/core/timefmt"
	perr "tsconv/internal/platform/errors"
	convdom "tsconv/internal/services/convert/domain"
	"tsconv/internal/services/formats/domain"
)

// Service lists and resolves catalog entries
type Service struct {
	catalog convdom.CatalogPort
}

// New constructs a formats service over a catalog port
func New(catalog convdom.CatalogPort) *Service {
	if catalog == nil {
		panic("formats.Service requires a non nil catalog")
	}
	return &Service{catalog: catalog}
}

// List returns catalog entries, optionally filtered by category
func (s *Service) List(_ context.Context, category string) (domain.ListResponse, error) {
	var ds []*timefmt.FormatDescriptor
	if category == "" {
		ds = s.catalog.All()
	} else {
		c := timefmt.Category(category)
		if !c.Valid() {
			return domain.ListResponse{}, perr.InvalidArgf("unknown category %q", category)
		}
		ds = s.catalog.ByCategory(c)
	}

	out := domain.ListResponse{Total: len(ds), Formats: make([]domain.FormatInfo, 0, len(ds))}
	for _, d := range ds {
		out.Formats = append(out.Formats, toInfo(d))
	}
	return out, nil
}

// Get resolves one entry by id or alias
func (s *Service) Get(_ context.Context, identifier string) (domain.FormatInfo, error) {
	d, ok := s.catalog.Resolve(identifier)
	if !ok {
		return domain.FormatInfo{}, perr.UnknownFormatf("unknown format %q", identifier)
	}
	return toInfo(d), nil
}

func toInfo(d *timefmt.FormatDescriptor) domain.FormatInfo {
	return domain.FormatInfo{
		ID:              d.ID,
		DisplayName:     d.DisplayName,
		Template:        d.Template,
		Example:         d.Example,
		Description:     d.Description,
		Category:        string(d.Category),
		Aliases:         d.Aliases,
		Region:          d.Meta.Region,
		Language:        d.Meta.Language,
		UseCase:         d.Meta.UseCase,
		Precision:       string(d.Meta.Precision),
		TimezoneAware:   d.Meta.TimezoneAware,
		LocaleDependent: d.Meta.LocaleDependent,
	}
}
