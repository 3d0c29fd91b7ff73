package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"nextops_proposals/internal/domain/entities"
	"nextops_proposals/internal/domain/pricing"
	mock_interfaces "nextops_proposals/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testProfile() entities.CompanyProfile {
	return entities.CompanyProfile{
		CompanyName:   "Mercearia Central",
		NIF:           "501234567",
		Sector:        "retalho",
		Employees:     "1-10",
		AnnualRevenue: "ate_100k",
		MainInterest:  "automatizar_processos",
	}
}

func TestProposalUseCase_CreateProposal(t *testing.T) {
	t.Run("success with default title and validity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		configRepo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)

		configRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				return p, nil
			})

		uc := NewProposalUseCase(repo, configRepo, nil, nil)
		created, err := uc.CreateProposal(context.Background(), CreateProposalCommand{
			Product:      pricing.ProductERPCore,
			Profile:      testProfile(),
			Modules:      []string{"stock", "encomendas"},
			PaymentTerms: pricing.Payment5050,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
		if created.Title != "Proposta Comercial — ERP Core" {
			t.Fatalf("unexpected title: %q", created.Title)
		}
		if created.Status != entities.ProposalStatusRascunho {
			t.Fatalf("expected rascunho, got %s", created.Status)
		}
		if created.Total != 7200 {
			t.Fatalf("expected total 7200, got %v", created.Total)
		}
		if created.Sprints != 5 {
			t.Fatalf("expected 5 sprints, got %d", created.Sprints)
		}
		if created.ValidUntil.IsZero() {
			t.Fatalf("expected default validity to be applied")
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		configRepo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		configRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)

		uc := NewProposalUseCase(repo, configRepo, nil, nil)
		_, err := uc.CreateProposal(context.Background(), CreateProposalCommand{
			Product: "nope",
			Profile: testProfile(),
		})
		if !errors.Is(err, ErrUnknownProductKey) {
			t.Fatalf("expected ErrUnknownProductKey, got %v", err)
		}
	})

	t.Run("invalid profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		configRepo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		configRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)

		uc := NewProposalUseCase(repo, configRepo, nil, nil)
		_, err := uc.CreateProposal(context.Background(), CreateProposalCommand{
			Product: pricing.ProductERPCore,
			Profile: entities.CompanyProfile{CompanyName: "Sem NIF"},
		})
		if !errors.Is(err, ErrInvalidCompanyProfile) {
			t.Fatalf("expected ErrInvalidCompanyProfile, got %v", err)
		}
	})

	t.Run("overlay changes pricing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		configRepo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)

		configRepo.EXPECT().Get(gomock.Any()).Return(&pricing.Config{
			Products: []pricing.ProductOverride{{Key: pricing.ProductERPCore, BasePrice: 5000, SprintsBase: 2}},
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				return p, nil
			})

		uc := NewProposalUseCase(repo, configRepo, nil, nil)
		created, err := uc.CreateProposal(context.Background(), CreateProposalCommand{
			Product:      pricing.ProductERPCore,
			Profile:      testProfile(),
			PaymentTerms: pricing.Payment5050,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Total != 5000 {
			t.Fatalf("expected overridden total 5000, got %v", created.Total)
		}
		if created.Sprints != 2 {
			t.Fatalf("expected overridden sprints 2, got %d", created.Sprints)
		}
	})

	t.Run("overlay read failure falls back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		configRepo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)

		configRepo.EXPECT().Get(gomock.Any()).Return(nil, errors.New("dynamo down"))
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				return p, nil
			})

		uc := NewProposalUseCase(repo, configRepo, nil, nil)
		created, err := uc.CreateProposal(context.Background(), CreateProposalCommand{
			Product:      pricing.ProductERPCore,
			Profile:      testProfile(),
			PaymentTerms: pricing.Payment5050,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Total != 4500 {
			t.Fatalf("expected default total 4500, got %v", created.Total)
		}
	})
}

func TestProposalUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)

		uc := NewProposalUseCase(repo, nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidProposalID) {
			t.Fatalf("expected ErrInvalidProposalID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{}, nil)

		uc := NewProposalUseCase(repo, nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "p-1")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{ID: "p-1"}, nil)

		uc := NewProposalUseCase(repo, nil, nil, nil)
		p, err := uc.GetByID(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "p-1" {
			t.Fatalf("unexpected proposal: %+v", p)
		}
	})
}

func TestProposalUseCase_Accept(t *testing.T) {
	t.Run("attaches checkout link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)

		accepted := entities.Proposal{ID: "p-1", Title: "Proposta", Total: 4275, Status: entities.ProposalStatusAceite}
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "p-1", entities.ProposalStatusAceite).Return(accepted, nil)
		gateway.EXPECT().CreateCheckout(gomock.Any(), "p-1", "Proposta", 4275.0).Return("https://pay.example/p-1", "pref-1", nil)
		withLink := accepted
		withLink.CheckoutURL = "https://pay.example/p-1"
		repo.EXPECT().SetCheckoutURLByID(gomock.Any(), "p-1", "https://pay.example/p-1").Return(withLink, nil)

		uc := NewProposalUseCase(repo, nil, nil, gateway)
		p, err := uc.Accept(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.CheckoutURL != "https://pay.example/p-1" {
			t.Fatalf("expected checkout url, got %q", p.CheckoutURL)
		}
	})

	t.Run("checkout failure keeps acceptance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)

		accepted := entities.Proposal{ID: "p-1", Title: "Proposta", Total: 4275, Status: entities.ProposalStatusAceite}
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "p-1", entities.ProposalStatusAceite).Return(accepted, nil)
		gateway.EXPECT().CreateCheckout(gomock.Any(), "p-1", "Proposta", 4275.0).Return("", "", errors.New("gateway down"))

		uc := NewProposalUseCase(repo, nil, nil, gateway)
		p, err := uc.Accept(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.ProposalStatusAceite {
			t.Fatalf("expected aceite, got %s", p.Status)
		}
		if p.CheckoutURL != "" {
			t.Fatalf("expected no checkout url, got %q", p.CheckoutURL)
		}
	})

	t.Run("free proposal skips checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)

		accepted := entities.Proposal{ID: "p-1", Total: 0, Status: entities.ProposalStatusAceite}
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "p-1", entities.ProposalStatusAceite).Return(accepted, nil)

		uc := NewProposalUseCase(repo, nil, nil, gateway)
		p, err := uc.Accept(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.CheckoutURL != "" {
			t.Fatalf("expected no checkout url, got %q", p.CheckoutURL)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "p-404", entities.ProposalStatusAceite).Return(entities.Proposal{}, nil)

		uc := NewProposalUseCase(repo, nil, nil, nil)
		_, err := uc.Accept(context.Background(), "p-404")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})
}

func TestProposalUseCase_Quote(t *testing.T) {
	t.Run("diagnostic short-circuit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configRepo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		configRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)

		uc := NewProposalUseCase(nil, configRepo, nil, nil)
		result, err := uc.Quote(context.Background(), QuoteCommand{Product: pricing.ProductDiagnostico})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 0 || result.Sprints != 1 || len(result.Items) != 1 {
			t.Fatalf("unexpected diagnostic quote: %+v", result)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configRepo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		configRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)

		uc := NewProposalUseCase(nil, configRepo, nil, nil)
		_, err := uc.Quote(context.Background(), QuoteCommand{Product: "nope"})
		if !errors.Is(err, ErrUnknownProductKey) {
			t.Fatalf("expected ErrUnknownProductKey, got %v", err)
		}
	})
}

func TestProposalUseCase_Recommend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	configRepo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
	configRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)

	uc := NewProposalUseCase(nil, configRepo, nil, nil)
	modules, err := uc.Recommend(context.Background(), pricing.ProductModuloAvulso, testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(modules) != 2 {
		t.Fatalf("expected 2 recommendations, got %v", modules)
	}
}

func TestProposalUseCase_RenderPDF(t *testing.T) {
	t.Run("renderer not configured", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil, nil, nil)
		_, err := uc.RenderPDF(context.Background(), "p-1")
		if !errors.Is(err, ErrProposalNotRenderable) {
			t.Fatalf("expected ErrProposalNotRenderable, got %v", err)
		}
	})

	t.Run("renders stored proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		configRepo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		renderer := mock_interfaces.NewMockIProposalRenderer(ctrl)

		stored := entities.Proposal{
			ID:           "p-1",
			Product:      pricing.ProductERPCore,
			Profile:      testProfile(),
			Modules:      []string{"stock"},
			PaymentTerms: pricing.Payment5050,
			Items:        []entities.ProposalItem{{Description: "x", Quantity: 1, UnitPrice: 4500, Total: 4500}},
			Total:        4500,
			Sprints:      4,
			ValidUntil:   time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
		}
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(stored, nil)
		configRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)
		renderer.EXPECT().RenderProposal(gomock.Any(), gomock.Any(), stored).Return([]byte("%PDF-"), nil)

		uc := NewProposalUseCase(repo, configRepo, renderer, nil)
		pdf, err := uc.RenderPDF(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pdf) == 0 {
			t.Fatalf("expected pdf bytes")
		}
	})
}
