package services

import (
	"task-export/internal/domain"
	"task-export/internal/i18n"
)

// colorCatalogImpl implements the ColorCatalog interface. It is read-only
// once built.
type colorCatalogImpl struct {
	colors []domain.Color
	labels map[string]string
}

// NewColorCatalog builds the catalog of domain.DefaultColors with names
// translated by tr
func NewColorCatalog(tr *i18n.Translator) ColorCatalog {
	c := &colorCatalogImpl{
		colors: make([]domain.Color, 0, len(domain.DefaultColors)),
		labels: make(map[string]string, len(domain.DefaultColors)),
	}
	for _, color := range domain.DefaultColors {
		translated := domain.Color{ID: color.ID, Name: tr.T(color.Name)}
		c.colors = append(c.colors, translated)
		c.labels[color.ID] = translated.Name
	}
	return c
}

func (c *colorCatalogImpl) Label(colorID string) (string, bool) {
	label, ok := c.labels[colorID]
	return label, ok
}

// Colors returns the translated colors in display order
func (c *colorCatalogImpl) Colors() []domain.Color {
	out := make([]domain.Color, len(c.colors))
	copy(out, c.colors)
	return out
}
