package module

import convdom "tsconv/internal/services/convert/domain"

// Ports consumed by the formats module
type Ports struct {
	Catalog convdom.CatalogPort
}
