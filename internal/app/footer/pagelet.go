package footer

import "belco/shopware-widget/internal/models"

// Template variables assigned to the footer pagelet.
const (
	VarWidgetConfig = "belcoConfig"
	VarShopID       = "shopId"
)

// Pagelet collects the variables handed to the footer template.
type Pagelet struct {
	vars map[string]string
}

func NewPagelet() *Pagelet {
	return &Pagelet{
		vars: make(map[string]string),
	}
}

func (p *Pagelet) Assign(vars map[string]string) {
	for key, value := range vars {
		p.vars[key] = value
	}
}

func (p *Pagelet) Vars() map[string]string {
	vars := make(map[string]string, len(p.vars))
	for key, value := range p.vars {
		vars[key] = value
	}

	return vars
}

// PageletLoadedEvent fires once the footer pagelet is about to render.
type PageletLoadedEvent struct {
	SalesContext *models.SalesChannelContext
	Pagelet      *Pagelet
}
