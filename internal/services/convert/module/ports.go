package module

import "tsconv/internal/services/convert/domain"

// Ports exposed by the convert module
type Ports struct {
	Conversion domain.ConversionPort
	Catalog    domain.CatalogPort
}
