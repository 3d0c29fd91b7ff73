package usecase

import (
	"context"
	"errors"
	"testing"

	"nextops_proposals/internal/domain/pricing"
	mock_interfaces "nextops_proposals/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPricingConfigUseCase_Get(t *testing.T) {
	t.Run("no stored overlay returns full defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		repo.EXPECT().Get(gomock.Any()).Return(nil, nil)

		uc := NewPricingConfigUseCase(repo)
		cfg, err := uc.Get(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defaults := pricing.DefaultConfig()
		if len(cfg.Products) != len(defaults.Products) || len(cfg.Modules) != len(defaults.Modules) {
			t.Fatalf("expected complete overlay, got %d products %d modules", len(cfg.Products), len(cfg.Modules))
		}
	})

	t.Run("stored subset layered over defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		repo.EXPECT().Get(gomock.Any()).Return(&pricing.Config{
			Modules:   []pricing.ModuleOverride{{Key: "stock", Price: 1550, Sprints: 2}},
			UpdatedBy: "ana",
		}, nil)

		uc := NewPricingConfigUseCase(repo)
		cfg, err := uc.Get(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.UpdatedBy != "ana" {
			t.Fatalf("expected updated_by ana, got %q", cfg.UpdatedBy)
		}
		found := false
		for _, m := range cfg.Modules {
			if m.Key == "stock" {
				found = true
				if m.Price != 1550 || m.Sprints != 2 {
					t.Fatalf("override not applied: %+v", m)
				}
			}
		}
		if !found {
			t.Fatalf("stock entry missing from overlay")
		}
		if len(cfg.Modules) != len(pricing.DefaultConfig().Modules) {
			t.Fatalf("expected complete module list, got %d", len(cfg.Modules))
		}
	})

	t.Run("unknown stored keys dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		repo.EXPECT().Get(gomock.Any()).Return(&pricing.Config{
			Modules: []pricing.ModuleOverride{{Key: "ghost", Price: 1, Sprints: 1}},
		}, nil)

		uc := NewPricingConfigUseCase(repo)
		cfg, err := uc.Get(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, m := range cfg.Modules {
			if m.Key == "ghost" {
				t.Fatalf("unknown key survived the merge")
			}
		}
	})

	t.Run("repository error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		repo.EXPECT().Get(gomock.Any()).Return(nil, errors.New("dynamo down"))

		uc := NewPricingConfigUseCase(repo)
		if _, err := uc.Get(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestPricingConfigUseCase_Update(t *testing.T) {
	t.Run("rejects negative prices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)

		uc := NewPricingConfigUseCase(repo)
		_, err := uc.Update(context.Background(), pricing.Config{
			Modules: []pricing.ModuleOverride{{Key: "stock", Price: -1, Sprints: 1}},
		}, "ana")
		if !errors.Is(err, ErrInvalidPricingConfig) {
			t.Fatalf("expected ErrInvalidPricingConfig, got %v", err)
		}
	})

	t.Run("rejects out-of-range discounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)

		uc := NewPricingConfigUseCase(repo)
		_, err := uc.Update(context.Background(), pricing.Config{
			PaymentOptions: []pricing.DiscountOverride{{Value: pricing.Payment100Upfront, Discount: 1.5}},
		}, "ana")
		if !errors.Is(err, ErrInvalidPricingConfig) {
			t.Fatalf("expected ErrInvalidPricingConfig, got %v", err)
		}
	})

	t.Run("stamps audit fields and returns merged overlay", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)

		var saved pricing.Config
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cfg pricing.Config) (pricing.Config, error) {
				saved = cfg
				return cfg, nil
			})

		uc := NewPricingConfigUseCase(repo)
		cfg, err := uc.Update(context.Background(), pricing.Config{
			Products: []pricing.ProductOverride{{Key: pricing.ProductERPCore, BasePrice: 5200, SprintsBase: 3}},
		}, "  ana  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.UpdatedBy != "ana" {
			t.Fatalf("expected trimmed updated_by, got %q", saved.UpdatedBy)
		}
		if saved.UpdatedAt.IsZero() {
			t.Fatalf("expected updated_at to be stamped")
		}
		for _, p := range cfg.Products {
			if p.Key == pricing.ProductERPCore && p.BasePrice != 5200 {
				t.Fatalf("override missing from merged response: %+v", p)
			}
		}
		if len(cfg.Products) != len(pricing.DefaultConfig().Products) {
			t.Fatalf("expected complete product list, got %d", len(cfg.Products))
		}
	})
}
