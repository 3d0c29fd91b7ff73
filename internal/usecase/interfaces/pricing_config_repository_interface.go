package interfaces

import (
	"context"

	"nextops_proposals/internal/domain/pricing"
)

//go:generate mockgen -source=pricing_config_repository_interface.go -destination=mocks/pricing_config_repository_mock.go -package=mock_interfaces

// IPricingConfigRepository abstracts the single settings/pricing overlay
// document. Get returns (nil, nil) when no overlay has ever been saved;
// callers fall back to the catalog defaults.

type IPricingConfigRepository interface {
	Get(ctx context.Context) (*pricing.Config, error)
	Put(ctx context.Context, cfg pricing.Config) (pricing.Config, error)
}
