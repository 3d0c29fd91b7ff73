package interfaces

import (
	"context"

	"nextops_proposals/internal/domain/entities"
)

//go:generate mockgen -source=lead_repository_interface.go -destination=mocks/lead_repository_mock.go -package=mock_interfaces

// ILeadRepository abstracts DynamoDB persistence for Lead.

type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error)
}
