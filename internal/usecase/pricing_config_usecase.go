package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"nextops_proposals/internal/domain/pricing"
	"nextops_proposals/internal/usecase/interfaces"
)

var ErrInvalidPricingConfig = errors.New("invalid pricing config")

// IPricingConfigUseCase manages the admin-edited settings overlay.
//
// Get always returns a complete overlay: the stored subset layered over the
// catalog defaults, so the settings form can render every key even after the
// catalog grows new entries.
type IPricingConfigUseCase interface {
	Get(ctx context.Context) (pricing.Config, error)
	Update(ctx context.Context, cfg pricing.Config, updatedBy string) (pricing.Config, error)
}

type PricingConfigUseCase struct {
	repo interfaces.IPricingConfigRepository
}

var _ IPricingConfigUseCase = (*PricingConfigUseCase)(nil)

func NewPricingConfigUseCase(repo interfaces.IPricingConfigRepository) *PricingConfigUseCase {
	return &PricingConfigUseCase{repo: repo}
}

func (u *PricingConfigUseCase) Get(ctx context.Context) (pricing.Config, error) {
	stored, err := u.repo.Get(ctx)
	if err != nil {
		return pricing.Config{}, err
	}
	return overlayOnDefaults(stored), nil
}

func (u *PricingConfigUseCase) Update(ctx context.Context, cfg pricing.Config, updatedBy string) (pricing.Config, error) {
	if err := validateConfig(cfg); err != nil {
		return pricing.Config{}, err
	}

	cfg.UpdatedAt = time.Now().UTC()
	cfg.UpdatedBy = strings.TrimSpace(updatedBy)

	saved, err := u.repo.Put(ctx, cfg)
	if err != nil {
		return pricing.Config{}, err
	}
	log.Printf("[pricing-config][usecase] overlay updated by=%q products=%d modules=%d", saved.UpdatedBy, len(saved.Products), len(saved.Modules))
	return overlayOnDefaults(&saved), nil
}

// overlayOnDefaults fills a complete overlay from the defaults and replaces
// the entries the stored overlay carries. Unknown keys are dropped: the
// overlay can never introduce entries the catalog does not have.
func overlayOnDefaults(stored *pricing.Config) pricing.Config {
	merged := pricing.DefaultConfig()
	if stored == nil {
		return merged
	}

	for _, o := range stored.Products {
		for i, d := range merged.Products {
			if d.Key == o.Key {
				merged.Products[i] = o
			}
		}
	}
	for _, o := range stored.Modules {
		for i, d := range merged.Modules {
			if d.Key == o.Key {
				merged.Modules[i] = o
			}
		}
	}
	for _, o := range stored.EmployeeMultipliers {
		for i, d := range merged.EmployeeMultipliers {
			if d.Value == o.Value {
				merged.EmployeeMultipliers[i] = o
			}
		}
	}
	for _, o := range stored.RevenueMultipliers {
		for i, d := range merged.RevenueMultipliers {
			if d.Value == o.Value {
				merged.RevenueMultipliers[i] = o
			}
		}
	}
	for _, o := range stored.PaymentOptions {
		for i, d := range merged.PaymentOptions {
			if d.Value == o.Value {
				merged.PaymentOptions[i] = o
			}
		}
	}

	merged.UpdatedAt = stored.UpdatedAt
	merged.UpdatedBy = stored.UpdatedBy
	return merged
}

func validateConfig(cfg pricing.Config) error {
	for _, p := range cfg.Products {
		if p.Key == "" || p.BasePrice < 0 || p.SprintsBase < 1 {
			return ErrInvalidPricingConfig
		}
	}
	for _, m := range cfg.Modules {
		if m.Key == "" || m.Price < 0 || m.Sprints < 1 {
			return ErrInvalidPricingConfig
		}
	}
	for _, e := range cfg.EmployeeMultipliers {
		if e.Value == "" || e.Multiplier <= 0 {
			return ErrInvalidPricingConfig
		}
	}
	for _, r := range cfg.RevenueMultipliers {
		if r.Value == "" || r.Multiplier <= 0 {
			return ErrInvalidPricingConfig
		}
	}
	for _, p := range cfg.PaymentOptions {
		if p.Value == "" || p.Discount < -1 || p.Discount > 1 {
			return ErrInvalidPricingConfig
		}
	}
	return nil
}
