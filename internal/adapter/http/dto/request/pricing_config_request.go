package request

import "nextops_proposals/internal/domain/pricing"

// PricingConfigRequest replaces the settings overlay. Any subset of keys may
// be supplied; unknown keys are dropped on read.
type PricingConfigRequest struct {
	Products            []ProductOverrideRequest    `json:"products"`
	Modules             []ModuleOverrideRequest     `json:"modules"`
	EmployeeMultipliers []MultiplierOverrideRequest `json:"employee_multipliers"`
	RevenueMultipliers  []MultiplierOverrideRequest `json:"revenue_multipliers"`
	PaymentOptions      []DiscountOverrideRequest   `json:"payment_options"`
}

type ProductOverrideRequest struct {
	Key         string  `json:"key" binding:"required"`
	BasePrice   float64 `json:"base_price"`
	SprintsBase int     `json:"sprints_base"`
}

type ModuleOverrideRequest struct {
	Key     string  `json:"key" binding:"required"`
	Price   float64 `json:"price"`
	Sprints int     `json:"sprints"`
}

type MultiplierOverrideRequest struct {
	Value      string  `json:"value" binding:"required"`
	Multiplier float64 `json:"multiplier"`
}

type DiscountOverrideRequest struct {
	Value    string  `json:"value" binding:"required"`
	Discount float64 `json:"discount"`
}

func (r PricingConfigRequest) ToConfig() pricing.Config {
	cfg := pricing.Config{}
	for _, p := range r.Products {
		cfg.Products = append(cfg.Products, pricing.ProductOverride{Key: p.Key, BasePrice: p.BasePrice, SprintsBase: p.SprintsBase})
	}
	for _, m := range r.Modules {
		cfg.Modules = append(cfg.Modules, pricing.ModuleOverride{Key: m.Key, Price: m.Price, Sprints: m.Sprints})
	}
	for _, e := range r.EmployeeMultipliers {
		cfg.EmployeeMultipliers = append(cfg.EmployeeMultipliers, pricing.MultiplierOverride{Value: e.Value, Multiplier: e.Multiplier})
	}
	for _, v := range r.RevenueMultipliers {
		cfg.RevenueMultipliers = append(cfg.RevenueMultipliers, pricing.MultiplierOverride{Value: v.Value, Multiplier: v.Multiplier})
	}
	for _, p := range r.PaymentOptions {
		cfg.PaymentOptions = append(cfg.PaymentOptions, pricing.DiscountOverride{Value: p.Value, Discount: p.Discount})
	}
	return cfg
}
