package proposal_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
	"github.com/ignatzorin/proposal-desk/internal/domain/valueobject"
	"github.com/ignatzorin/proposal-desk/internal/pkg/apperror"
	"github.com/ignatzorin/proposal-desk/internal/usecase/proposal"
)

type mockProposalRepository struct {
	proposals []*entity.Proposal
}

func newMockProposalRepository(seed ...*entity.Proposal) *mockProposalRepository {
	return &mockProposalRepository{proposals: seed}
}

func (m *mockProposalRepository) Create(ctx context.Context, p *entity.Proposal) error {
	m.proposals = append([]*entity.Proposal{p.Clone()}, m.proposals...)
	return nil
}

func (m *mockProposalRepository) Prepend(ctx context.Context, ps []*entity.Proposal) error {
	head := make([]*entity.Proposal, 0, len(ps))
	for _, p := range ps {
		head = append(head, p.Clone())
	}
	m.proposals = append(head, m.proposals...)
	return nil
}

func (m *mockProposalRepository) Update(ctx context.Context, p *entity.Proposal) error {
	for i, existing := range m.proposals {
		if existing.ID == p.ID {
			m.proposals[i] = p.Clone()
			return nil
		}
	}
	return apperror.ErrProposalNotFound
}

func (m *mockProposalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	for i, existing := range m.proposals {
		if existing.ID == id {
			m.proposals = append(m.proposals[:i], m.proposals[i+1:]...)
			return nil
		}
	}
	return apperror.ErrProposalNotFound
}

func (m *mockProposalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Proposal, error) {
	for _, p := range m.proposals {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return nil, apperror.ErrProposalNotFound
}

func (m *mockProposalRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Proposal, error) {
	var result []*entity.Proposal
	for _, p := range m.proposals {
		for _, id := range ids {
			if p.ID == id {
				result = append(result, p.Clone())
				break
			}
		}
	}
	return result, nil
}

func (m *mockProposalRepository) List(ctx context.Context) ([]*entity.Proposal, error) {
	result := make([]*entity.Proposal, 0, len(m.proposals))
	for _, p := range m.proposals {
		result = append(result, p.Clone())
	}
	return result, nil
}

type mockClientRepository struct {
	clients map[uuid.UUID]*entity.Client
}

func (m *mockClientRepository) Create(ctx context.Context, c *entity.Client) error {
	m.clients[c.ID] = c
	return nil
}

func (m *mockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	if c, ok := m.clients[id]; ok {
		out := *c
		return &out, nil
	}
	return nil, apperror.ErrClientNotFound
}

func (m *mockClientRepository) List(ctx context.Context) ([]*entity.Client, error) {
	var result []*entity.Client
	for _, c := range m.clients {
		result = append(result, c)
	}
	return result, nil
}

type recordedNotification struct {
	kind  string
	title string
}

type mockNotifier struct {
	sent []recordedNotification
}

func (m *mockNotifier) Notify(ctx context.Context, kind, title, message, priority, actionURL string) (*entity.Notification, error) {
	m.sent = append(m.sent, recordedNotification{kind: kind, title: title})
	return entity.NewNotification(kind, title, message, priority, actionURL, time.Now()), nil
}

type mockViews struct {
	invalidated int
}

func (m *mockViews) InvalidateProposalViews() {
	m.invalidated++
}

var fixedNow = time.Date(2024, 2, 5, 12, 0, 0, 0, time.UTC)

func newDeps() (proposal.Deps, *mockNotifier, *mockViews) {
	notifier := &mockNotifier{}
	views := &mockViews{}
	return proposal.Deps{
		Notifier: notifier,
		Views:    views,
		Now:      func() time.Time { return fixedNow },
	}, notifier, views
}

func TestCreateProposal_SaveDraft(t *testing.T) {
	repo := newMockProposalRepository()
	deps, notifier, views := newDeps()
	uc := proposal.NewCreateProposalUseCase(repo, &mockClientRepository{clients: map[uuid.UUID]*entity.Client{}}, deps)

	created, err := uc.Execute(context.Background(), proposal.CreateProposalInput{
		Title:       "Landing Page",
		Description: "Single page marketing site",
		ClientName:  "Acme",
		Amount:      4200,
		Type:        "service",
		Priority:    "high",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Status != valueobject.ProposalStatusDraft {
		t.Errorf("expected draft status, got %s", created.Status)
	}
	if created.Client.Company != "Acme" {
		t.Errorf("expected company to default to client name, got %q", created.Client.Company)
	}
	if created.SentAt != nil {
		t.Error("draft must not have SentAt")
	}
	if len(repo.proposals) != 1 {
		t.Fatalf("expected 1 stored proposal, got %d", len(repo.proposals))
	}
	if len(notifier.sent) != 1 || notifier.sent[0].kind != entity.NotificationProposalCreated {
		t.Errorf("expected proposal_created notification, got %+v", notifier.sent)
	}
	if views.invalidated != 1 {
		t.Errorf("expected views invalidated once, got %d", views.invalidated)
	}
}

func TestCreateProposal_Send(t *testing.T) {
	repo := newMockProposalRepository()
	deps, _, _ := newDeps()
	uc := proposal.NewCreateProposalUseCase(repo, &mockClientRepository{clients: map[uuid.UUID]*entity.Client{}}, deps)

	created, err := uc.Execute(context.Background(), proposal.CreateProposalInput{
		Title:       "Audit",
		Description: "Security audit",
		ClientName:  "Acme",
		Send:        true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != valueobject.ProposalStatusSent {
		t.Errorf("expected sent status, got %s", created.Status)
	}
	if created.SentAt == nil || !created.SentAt.Equal(fixedNow) {
		t.Errorf("expected SentAt %v, got %v", fixedNow, created.SentAt)
	}
}

func TestCreateProposal_UsesExistingClient(t *testing.T) {
	client := &entity.Client{ID: uuid.New(), Name: "TechCorp Solutions", Company: "TechCorp Solutions", Email: "contact@techcorp.com"}
	clients := &mockClientRepository{clients: map[uuid.UUID]*entity.Client{client.ID: client}}
	deps, _, _ := newDeps()
	uc := proposal.NewCreateProposalUseCase(newMockProposalRepository(), clients, deps)

	created, err := uc.Execute(context.Background(), proposal.CreateProposalInput{
		Title:       "Retainer",
		Description: "Monthly support",
		ClientID:    &client.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Client.ID != client.ID || created.Client.Email != client.Email {
		t.Errorf("expected stored client to be embedded, got %+v", created.Client)
	}
}

func TestCreateProposal_ValidationErrors(t *testing.T) {
	deps, notifier, _ := newDeps()
	uc := proposal.NewCreateProposalUseCase(newMockProposalRepository(), &mockClientRepository{clients: map[uuid.UUID]*entity.Client{}}, deps)

	tests := []struct {
		name  string
		input proposal.CreateProposalInput
	}{
		{"missing title", proposal.CreateProposalInput{Description: "d", ClientName: "c"}},
		{"missing description", proposal.CreateProposalInput{Title: "t", ClientName: "c"}},
		{"missing client", proposal.CreateProposalInput{Title: "t", Description: "d"}},
		{"negative amount", proposal.CreateProposalInput{Title: "t", Description: "d", ClientName: "c", Amount: -1}},
		{"bad type", proposal.CreateProposalInput{Title: "t", Description: "d", ClientName: "c", Type: "gig"}},
		{"bad priority", proposal.CreateProposalInput{Title: "t", Description: "d", ClientName: "c", Priority: "asap"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			if !apperror.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
	if len(notifier.sent) != 0 {
		t.Errorf("failed creations must not notify, got %d", len(notifier.sent))
	}
}

func TestCreateProposal_UnknownClient(t *testing.T) {
	deps, _, _ := newDeps()
	uc := proposal.NewCreateProposalUseCase(newMockProposalRepository(), &mockClientRepository{clients: map[uuid.UUID]*entity.Client{}}, deps)

	id := uuid.New()
	_, err := uc.Execute(context.Background(), proposal.CreateProposalInput{Title: "t", Description: "d", ClientID: &id})
	if !errors.Is(err, apperror.ErrClientNotFound) {
		t.Errorf("expected client not found, got %v", err)
	}
}

func TestUpdateProposalStatus(t *testing.T) {
	p := sampleProposal("Brand", valueobject.ProposalStatusPending, 25000)
	repo := newMockProposalRepository(p)
	deps, notifier, views := newDeps()
	uc := proposal.NewUpdateProposalStatusUseCase(repo, deps)

	updated, err := uc.Execute(context.Background(), p.ID, "approved")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != valueobject.ProposalStatusApproved {
		t.Errorf("expected approved, got %s", updated.Status)
	}
	if len(notifier.sent) != 1 || notifier.sent[0].kind != entity.NotificationProposalApproved {
		t.Errorf("expected approval notification, got %+v", notifier.sent)
	}
	if views.invalidated != 1 {
		t.Errorf("expected views invalidated, got %d", views.invalidated)
	}

	if _, err := uc.Execute(context.Background(), p.ID, "finished"); !apperror.IsValidation(err) {
		t.Errorf("expected validation error for unknown status, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), uuid.New(), "won"); !apperror.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestUpdateProposalStatus_SentSetsTimestamp(t *testing.T) {
	p := sampleProposal("Audit", valueobject.ProposalStatusDraft, 1000)
	repo := newMockProposalRepository(p)
	deps, _, _ := newDeps()

	updated, err := proposal.NewUpdateProposalStatusUseCase(repo, deps).Execute(context.Background(), p.ID, "sent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.SentAt == nil {
		t.Error("expected SentAt to be set")
	}
}

func TestDeleteProposal(t *testing.T) {
	p := sampleProposal("Brand", valueobject.ProposalStatusDraft, 100)
	repo := newMockProposalRepository(p)
	deps, notifier, _ := newDeps()
	uc := proposal.NewDeleteProposalUseCase(repo, deps)

	if err := uc.Execute(context.Background(), p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.proposals) != 0 {
		t.Errorf("expected empty repository, got %d", len(repo.proposals))
	}
	if len(notifier.sent) != 1 {
		t.Errorf("expected 1 notification, got %d", len(notifier.sent))
	}
	if err := uc.Execute(context.Background(), p.ID); !apperror.IsNotFound(err) {
		t.Errorf("expected not found on second delete, got %v", err)
	}
}

func sampleProposal(title string, status valueobject.ProposalStatus, amount float64) *entity.Proposal {
	return &entity.Proposal{
		ID:        uuid.New(),
		Title:     title,
		Client:    entity.Client{ID: uuid.New(), Name: title + " Client"},
		Status:    status,
		Priority:  valueobject.PriorityMedium,
		Type:      valueobject.ProposalTypeProject,
		Amount:    amount,
		Currency:  "USD",
		CreatedAt: fixedNow.Add(-24 * time.Hour),
		UpdatedAt: fixedNow.Add(-24 * time.Hour),
	}
}
