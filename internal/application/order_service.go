package application

import (
	"fmt"

	"github.com/brewkraft/brewkraft/internal/domain"
)

// OrderRequest carries one complete set of beverage choices, e.g. parsed
// from CLI flags or MCP tool arguments.
type OrderRequest struct {
	Base   string   `json:"base"`
	Size   string   `json:"size"`
	Milk   string   `json:"milk,omitempty"`
	Syrups []string `json:"syrups,omitempty"`
	Sugar  int      `json:"sugar,omitempty"`
	Shots  int      `json:"shots,omitempty"`
	Iced   bool     `json:"iced,omitempty"`
}

// OrderService prices orders: load menu (defaults + .brewkraft.yaml
// overrides) → drive a builder through the requested choices → build.
type OrderService struct {
	menuLoader domain.MenuLoader
}

func NewOrderService(menuLoader domain.MenuLoader) *OrderService {
	return &OrderService{menuLoader: menuLoader}
}

// PriceOrder validates and prices a single order against the menu
// effective in dir. Validation failures from the builder come back
// unwrapped enough for errors.Is against the domain sentinels.
func (s *OrderService) PriceOrder(dir string, req OrderRequest) (domain.Order, error) {
	menu, err := s.Menu(dir)
	if err != nil {
		return domain.Order{}, err
	}

	b := domain.NewOrderBuilderWithMenu(menu)

	if req.Base != "" {
		if err := b.SetBase(req.Base); err != nil {
			return domain.Order{}, err
		}
	}
	if req.Size != "" {
		if err := b.SetSize(req.Size); err != nil {
			return domain.Order{}, err
		}
	}
	if req.Milk != "" {
		if err := b.SetMilk(req.Milk); err != nil {
			return domain.Order{}, err
		}
	}
	for _, syrup := range req.Syrups {
		if err := b.AddSyrup(syrup); err != nil {
			return domain.Order{}, err
		}
	}
	if err := b.SetSugar(req.Sugar); err != nil {
		return domain.Order{}, err
	}
	if err := b.AddShot(req.Shots); err != nil {
		return domain.Order{}, err
	}
	b.SetIced(req.Iced)

	return b.Build()
}

// Menu returns the menu effective in dir.
func (s *OrderService) Menu(dir string) (domain.Menu, error) {
	menu, err := s.menuLoader.Load(dir)
	if err != nil {
		return domain.Menu{}, fmt.Errorf("loading menu: %w", err)
	}
	return menu, nil
}
