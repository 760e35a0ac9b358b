package domain

import (
	"context"

	"tsconv/internal/core/timefmt"
)

// ConversionPort is the external surface of the convert service
type ConversionPort interface {
	Detect(ctx context.Context, in DetectInput) (DetectResponse, error)
	Parse(ctx context.Context, in ParseInput) (ParseResponse, error)
	Format(ctx context.Context, in FormatInput) (FormatResponse, error)
	Stats(ctx context.Context) (StatsResponse, error)
	ClearCaches(ctx context.Context) (CacheClearResponse, error)
}

// CatalogPort exposes the format catalog for read-only listing.
// *timefmt.Registry satisfies it directly
type CatalogPort interface {
	All() []*timefmt.FormatDescriptor
	ByCategory(c timefmt.Category) []*timefmt.FormatDescriptor
	Resolve(identifier string) (*timefmt.FormatDescriptor, bool)
}
