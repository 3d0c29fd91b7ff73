package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"nextops_proposals/internal/domain/entities"
	"nextops_proposals/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrInvalidLeadID     = errors.New("invalid lead id")
	ErrInvalidLeadInput  = errors.New("invalid lead input")
	ErrConsentRequired   = errors.New("consent required")
	ErrInvalidLeadStatus = errors.New("invalid lead status")
)

// CreateLeadCommand is the landing-page (or manual) lead submission.
type CreateLeadCommand struct {
	Company     string
	ContactName string
	Email       string
	Phone       string
	Employees   string
	Industry    string
	Message     string
	Source      string
	Consent     bool
}

// ILeadUseCase exposes lead intake and pipeline operations.

type ILeadUseCase interface {
	Create(ctx context.Context, cmd CreateLeadCommand) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
	UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error)
}

type LeadUseCase struct {
	repo interfaces.ILeadRepository
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

func (u *LeadUseCase) Create(ctx context.Context, cmd CreateLeadCommand) (entities.Lead, error) {
	company := strings.TrimSpace(cmd.Company)
	contact := strings.TrimSpace(cmd.ContactName)
	email := strings.TrimSpace(cmd.Email)
	if company == "" || contact == "" || email == "" {
		return entities.Lead{}, ErrInvalidLeadInput
	}

	source := strings.TrimSpace(cmd.Source)
	if source == "" {
		source = "website"
	}
	// RGPD: website submissions must carry explicit consent.
	if source == "website" && !cmd.Consent {
		return entities.Lead{}, ErrConsentRequired
	}

	now := time.Now().UTC()
	l := entities.Lead{
		ID:          uuid.NewString(),
		Company:     company,
		ContactName: contact,
		Email:       email,
		Phone:       strings.TrimSpace(cmd.Phone),
		Employees:   strings.TrimSpace(cmd.Employees),
		Industry:    strings.TrimSpace(cmd.Industry),
		Message:     strings.TrimSpace(cmd.Message),
		Status:      entities.LeadStatusNovo,
		Source:      source,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, l)
	if err != nil {
		return entities.Lead{}, err
	}
	log.Printf("[lead][usecase] created lead id=%s company=%q source=%s", created.ID, created.Company, created.Source)
	return created, nil
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}

func (u *LeadUseCase) List(ctx context.Context) ([]entities.Lead, error) {
	return u.repo.List(ctx)
}

func (u *LeadUseCase) UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	if !entities.ValidLeadStatus(status) {
		return entities.Lead{}, ErrInvalidLeadStatus
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Lead{}, err
	}
	if updated.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return updated, nil
}
