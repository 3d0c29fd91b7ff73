package interfaces

import (
	"context"

	"nextops_proposals/internal/domain/entities"
)

//go:generate mockgen -source=proposal_repository_interface.go -destination=mocks/proposal_repository_mock.go -package=mock_interfaces

// IProposalRepository abstracts DynamoDB persistence for Proposal.
//
// The service must be able to:
//   - create a proposal snapshot (profile + items + totals) at wizard completion
//   - list proposals for the backoffice and fetch one by id
//   - move a proposal through its lifecycle (send/accept/refuse)
//   - attach the checkout link produced on acceptance

type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context) ([]entities.Proposal, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error)
	SetCheckoutURLByID(ctx context.Context, id string, checkoutURL string) (entities.Proposal, error)
}
