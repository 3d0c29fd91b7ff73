package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"nextops_proposals/internal/domain/document"
	"nextops_proposals/internal/domain/entities"
	"nextops_proposals/internal/domain/pricing"
	"nextops_proposals/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProposalNotFound      = errors.New("proposal not found")
	ErrInvalidProposalID     = errors.New("invalid proposal id")
	ErrUnknownProductKey     = errors.New("unknown product key")
	ErrInvalidCompanyProfile = errors.New("invalid company profile")
	ErrProposalNotRenderable = errors.New("proposal renderer not configured")
)

// Proposals default to 30 days of validity when the caller leaves it open.
const defaultValidityDays = 30

// CreateProposalCommand is the input for proposal creation. Modules is the
// caller's final selection, which may differ from the recommendation.
type CreateProposalCommand struct {
	Title        string
	Product      string
	Profile      entities.CompanyProfile
	Modules      []string
	PaymentTerms string
	ValidUntil   time.Time
	Notes        string
	CreatedBy    string
}

// QuoteCommand is a stateless pricing preview request.
type QuoteCommand struct {
	Product      string
	Modules      []string
	Employees    string
	Revenue      string
	PaymentTerms string
}

// IProposalUseCase exposes the proposal operations:
//   - create (overlay merge + pricing + persist), list, get
//   - lifecycle transitions (send / accept / refuse)
//   - stateless quote and module recommendation for the wizard
//   - PDF rendering of a stored proposal
type IProposalUseCase interface {
	CreateProposal(ctx context.Context, cmd CreateProposalCommand) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context) ([]entities.Proposal, error)
	Send(ctx context.Context, id string) (entities.Proposal, error)
	Accept(ctx context.Context, id string) (entities.Proposal, error)
	Refuse(ctx context.Context, id string) (entities.Proposal, error)
	Quote(ctx context.Context, cmd QuoteCommand) (entities.PricingResult, error)
	Recommend(ctx context.Context, product string, profile entities.CompanyProfile) ([]string, error)
	RenderPDF(ctx context.Context, id string) ([]byte, error)
}

type ProposalUseCase struct {
	repo       interfaces.IProposalRepository
	configRepo interfaces.IPricingConfigRepository
	renderer   interfaces.IProposalRenderer
	checkout   interfaces.ICheckoutGateway
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(
	repo interfaces.IProposalRepository,
	configRepo interfaces.IPricingConfigRepository,
	renderer interfaces.IProposalRenderer,
	checkout interfaces.ICheckoutGateway,
) *ProposalUseCase {
	return &ProposalUseCase{repo: repo, configRepo: configRepo, renderer: renderer, checkout: checkout}
}

// mergedCatalog loads the settings overlay and layers it over the defaults.
// A failed overlay read degrades to the shipped catalog: pricing must keep
// working when the settings table is unreachable.
func (u *ProposalUseCase) mergedCatalog(ctx context.Context) pricing.Catalog {
	base := pricing.DefaultCatalog()
	if u.configRepo == nil {
		return base
	}
	cfg, err := u.configRepo.Get(ctx)
	if err != nil {
		log.Printf("[proposal][usecase] pricing config load failed, using defaults err=%v", err)
		return base
	}
	return pricing.Merge(base, cfg)
}

func (u *ProposalUseCase) CreateProposal(ctx context.Context, cmd CreateProposalCommand) (entities.Proposal, error) {
	catalog := u.mergedCatalog(ctx)

	// Product keys are validated at the boundary; the engine treats an
	// unknown product as misuse.
	productInfo, ok := catalog.ProductByKey(strings.TrimSpace(cmd.Product))
	if !ok {
		return entities.Proposal{}, ErrUnknownProductKey
	}
	if err := validateProfile(cmd.Profile); err != nil {
		return entities.Proposal{}, err
	}

	result, err := pricing.Calculate(catalog, productInfo.Key, cmd.Modules, cmd.Profile.Employees, cmd.Profile.AnnualRevenue, cmd.PaymentTerms)
	if err != nil {
		return entities.Proposal{}, err
	}

	now := time.Now().UTC()
	validUntil := cmd.ValidUntil
	if validUntil.IsZero() {
		validUntil = now.AddDate(0, 0, defaultValidityDays)
	}

	title := strings.TrimSpace(cmd.Title)
	if title == "" {
		title = "Proposta Comercial — " + productInfo.Title
	}

	p := entities.Proposal{
		ID:           uuid.NewString(),
		Title:        title,
		Product:      productInfo.Key,
		Profile:      cmd.Profile,
		Modules:      cmd.Modules,
		PaymentTerms: cmd.PaymentTerms,
		Items:        result.Items,
		Total:        result.Total,
		Sprints:      result.Sprints,
		Status:       entities.ProposalStatusRascunho,
		ValidUntil:   validUntil,
		Notes:        strings.TrimSpace(cmd.Notes),
		CreatedBy:    strings.TrimSpace(cmd.CreatedBy),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Proposal{}, err
	}
	log.Printf("[proposal][usecase] created proposal id=%s product=%s total=%.0f sprints=%d", created.ID, created.Product, created.Total, created.Sprints)
	return created, nil
}

func validateProfile(p entities.CompanyProfile) error {
	if strings.TrimSpace(p.CompanyName) == "" || strings.TrimSpace(p.NIF) == "" || strings.TrimSpace(p.Sector) == "" {
		return ErrInvalidCompanyProfile
	}
	return nil
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *ProposalUseCase) List(ctx context.Context) ([]entities.Proposal, error) {
	return u.repo.List(ctx)
}

func (u *ProposalUseCase) Send(ctx context.Context, id string) (entities.Proposal, error) {
	return u.updateStatus(ctx, id, entities.ProposalStatusEnviada)
}

func (u *ProposalUseCase) Refuse(ctx context.Context, id string) (entities.Proposal, error) {
	return u.updateStatus(ctx, id, entities.ProposalStatusRecusada)
}

// Accept moves the proposal to "aceite" and, for priced proposals, attaches a
// checkout link for the setup payment. A checkout failure does not undo the
// acceptance: the link is a convenience, payment can still happen off-platform.
func (u *ProposalUseCase) Accept(ctx context.Context, id string) (entities.Proposal, error) {
	p, err := u.updateStatus(ctx, id, entities.ProposalStatusAceite)
	if err != nil {
		return entities.Proposal{}, err
	}

	if u.checkout == nil || p.Total <= 0 || p.CheckoutURL != "" {
		return p, nil
	}

	url, prefID, err := u.checkout.CreateCheckout(ctx, p.ID, p.Title, p.Total)
	if err != nil {
		log.Printf("[proposal][usecase] checkout creation failed id=%s err=%v", p.ID, err)
		return p, nil
	}
	log.Printf("[proposal][usecase] checkout created id=%s preference_id=%s", p.ID, prefID)

	withLink, err := u.repo.SetCheckoutURLByID(ctx, p.ID, url)
	if err != nil {
		log.Printf("[proposal][usecase] checkout link persist failed id=%s err=%v", p.ID, err)
		return p, nil
	}
	return withLink, nil
}

func (u *ProposalUseCase) updateStatus(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Proposal{}, err
	}
	if updated.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return updated, nil
}

func (u *ProposalUseCase) Quote(ctx context.Context, cmd QuoteCommand) (entities.PricingResult, error) {
	catalog := u.mergedCatalog(ctx)
	if _, ok := catalog.ProductByKey(strings.TrimSpace(cmd.Product)); !ok {
		return entities.PricingResult{}, ErrUnknownProductKey
	}
	return pricing.Calculate(catalog, strings.TrimSpace(cmd.Product), cmd.Modules, cmd.Employees, cmd.Revenue, cmd.PaymentTerms)
}

func (u *ProposalUseCase) Recommend(ctx context.Context, product string, profile entities.CompanyProfile) ([]string, error) {
	catalog := u.mergedCatalog(ctx)
	product = strings.TrimSpace(product)
	if _, ok := catalog.ProductByKey(product); !ok {
		return nil, ErrUnknownProductKey
	}
	return pricing.Recommend(catalog, product, profile), nil
}

// RenderPDF rebuilds the proposal document from the stored snapshot and hands
// it, together with the raw proposal, to the renderer.
func (u *ProposalUseCase) RenderPDF(ctx context.Context, id string) ([]byte, error) {
	if u.renderer == nil {
		return nil, ErrProposalNotRenderable
	}

	p, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	catalog := u.mergedCatalog(ctx)
	paymentLabel := p.PaymentTerms
	if opt, ok := catalog.PaymentOptionByValue(p.PaymentTerms); ok {
		paymentLabel = opt.Label
	}

	doc, err := document.Build(catalog, document.BuildOptions{
		Product:           p.Product,
		Profile:           p.Profile,
		Modules:           p.Modules,
		Items:             p.Items,
		Total:             p.Total,
		Sprints:           p.Sprints,
		ValidUntil:        p.ValidUntil,
		PaymentTermsLabel: paymentLabel,
		Notes:             p.Notes,
		IssuedAt:          time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	return u.renderer.RenderProposal(ctx, doc, p)
}
