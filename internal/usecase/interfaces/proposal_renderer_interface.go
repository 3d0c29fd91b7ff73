package interfaces

import (
	"context"

	"nextops_proposals/internal/domain/entities"
)

//go:generate mockgen -source=proposal_renderer_interface.go -destination=mocks/proposal_renderer_mock.go -package=mock_interfaces

// IProposalRenderer produces the paginated binary artifact for a proposal.
//
// It receives both the built document sections and the raw proposal because
// the renderer re-derives the pricing grid from the item list instead of
// parsing the pricing prose. One-shot call; retries are the caller's concern.
type IProposalRenderer interface {
	RenderProposal(ctx context.Context, doc entities.ProposalDocument, p entities.Proposal) ([]byte, error)
}
