package pricing

import "time"

// Config is the admin-edited pricing overlay stored under settings/pricing.
// Any subset of keys may be present; entries whose key does not exist in the
// catalog are ignored. Only the numeric fields below are overridable.
type Config struct {
	Products            []ProductOverride    `json:"products,omitempty"`
	Modules             []ModuleOverride     `json:"modules,omitempty"`
	EmployeeMultipliers []MultiplierOverride `json:"employee_multipliers,omitempty"`
	RevenueMultipliers  []MultiplierOverride `json:"revenue_multipliers,omitempty"`
	PaymentOptions      []DiscountOverride   `json:"payment_options,omitempty"`
	UpdatedAt           time.Time            `json:"updated_at,omitempty"`
	UpdatedBy           string               `json:"updated_by,omitempty"`
}

type ProductOverride struct {
	Key         string  `json:"key"`
	BasePrice   float64 `json:"base_price"`
	SprintsBase int     `json:"sprints_base"`
}

type ModuleOverride struct {
	Key     string  `json:"key"`
	Price   float64 `json:"price"`
	Sprints int     `json:"sprints"`
}

type MultiplierOverride struct {
	Value      string  `json:"value"`
	Multiplier float64 `json:"multiplier"`
}

type DiscountOverride struct {
	Value    string  `json:"value"`
	Discount float64 `json:"discount"`
}

// Merge layers cfg over base and returns the resulting catalog. The output
// keeps the base's length and key order for every table; keys absent from the
// overlay keep their base values. A nil or empty cfg yields base unchanged.
// Merge never fails and never writes through base's slices: tables that take
// overrides are cloned first, so the caller's catalog stays untouched.
func Merge(base Catalog, cfg *Config) Catalog {
	if cfg == nil {
		return base
	}

	if len(cfg.Products) > 0 {
		byKey := make(map[string]ProductOverride, len(cfg.Products))
		for _, o := range cfg.Products {
			byKey[o.Key] = o
		}
		base.Products = cloneSlice(base.Products)
		for i, p := range base.Products {
			if o, ok := byKey[p.Key]; ok {
				base.Products[i].BasePrice = o.BasePrice
				base.Products[i].SprintsBase = o.SprintsBase
			}
		}
	}

	if len(cfg.Modules) > 0 {
		byKey := make(map[string]ModuleOverride, len(cfg.Modules))
		for _, o := range cfg.Modules {
			byKey[o.Key] = o
		}
		base.Modules = cloneSlice(base.Modules)
		for i, m := range base.Modules {
			if o, ok := byKey[m.Key]; ok {
				base.Modules[i].Price = o.Price
				base.Modules[i].Sprints = o.Sprints
			}
		}
	}

	base.EmployeeRanges = mergeMultipliers(base.EmployeeRanges, cfg.EmployeeMultipliers)
	base.RevenueRanges = mergeMultipliers(base.RevenueRanges, cfg.RevenueMultipliers)

	if len(cfg.PaymentOptions) > 0 {
		byValue := make(map[string]DiscountOverride, len(cfg.PaymentOptions))
		for _, o := range cfg.PaymentOptions {
			byValue[o.Value] = o
		}
		base.PaymentOptions = cloneSlice(base.PaymentOptions)
		for i, p := range base.PaymentOptions {
			if o, ok := byValue[p.Value]; ok {
				base.PaymentOptions[i].Discount = o.Discount
			}
		}
	}

	return base
}

func mergeMultipliers(ranges []RangeOption, overrides []MultiplierOverride) []RangeOption {
	if len(overrides) == 0 {
		return ranges
	}
	byValue := make(map[string]MultiplierOverride, len(overrides))
	for _, o := range overrides {
		byValue[o.Value] = o
	}
	out := cloneSlice(ranges)
	for i, r := range out {
		if o, ok := byValue[r.Value]; ok {
			out[i].Multiplier = o.Multiplier
		}
	}
	return out
}

// DefaultConfig snapshots the catalog's overridable fields as a full overlay.
// The settings page uses it to seed the editable form.
func DefaultConfig() Config {
	c := DefaultCatalog()
	cfg := Config{
		Products:            make([]ProductOverride, 0, len(c.Products)),
		Modules:             make([]ModuleOverride, 0, len(c.Modules)),
		EmployeeMultipliers: make([]MultiplierOverride, 0, len(c.EmployeeRanges)),
		RevenueMultipliers:  make([]MultiplierOverride, 0, len(c.RevenueRanges)),
		PaymentOptions:      make([]DiscountOverride, 0, len(c.PaymentOptions)),
	}
	for _, p := range c.Products {
		cfg.Products = append(cfg.Products, ProductOverride{Key: p.Key, BasePrice: p.BasePrice, SprintsBase: p.SprintsBase})
	}
	for _, m := range c.Modules {
		cfg.Modules = append(cfg.Modules, ModuleOverride{Key: m.Key, Price: m.Price, Sprints: m.Sprints})
	}
	for _, r := range c.EmployeeRanges {
		cfg.EmployeeMultipliers = append(cfg.EmployeeMultipliers, MultiplierOverride{Value: r.Value, Multiplier: r.Multiplier})
	}
	for _, r := range c.RevenueRanges {
		cfg.RevenueMultipliers = append(cfg.RevenueMultipliers, MultiplierOverride{Value: r.Value, Multiplier: r.Multiplier})
	}
	for _, p := range c.PaymentOptions {
		cfg.PaymentOptions = append(cfg.PaymentOptions, DiscountOverride{Value: p.Value, Discount: p.Discount})
	}
	return cfg
}
