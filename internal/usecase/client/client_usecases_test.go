package client_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/proposal-desk/internal/infrastructure/persistence"
	"github.com/ignatzorin/proposal-desk/internal/pkg/apperror"
	"github.com/ignatzorin/proposal-desk/internal/service"
	"github.com/ignatzorin/proposal-desk/internal/usecase/client"
)

func newRepo() *persistence.ClientRepositoryAdapter {
	return persistence.NewClientRepositoryAdapter(service.NewSeedData(time.Now()).Clients)
}

func TestListClients(t *testing.T) {
	uc := client.NewListClientsUseCase(newRepo())

	all, err := uc.Execute(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("expected 4 clients, got %d", len(all))
	}

	found, err := uc.Execute(context.Background(), "ENTERPRISE.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 1 || found[0].Name != "Enterprise Corp" {
		t.Errorf("expected Enterprise Corp by email, got %+v", found)
	}
}

func TestGetClient(t *testing.T) {
	uc := client.NewGetClientUseCase(newRepo())

	c, err := uc.Execute(context.Background(), service.ClientStartupXYZID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Industry != "Startup" {
		t.Errorf("unexpected client %+v", c)
	}

	if _, err := uc.Execute(context.Background(), uuid.New()); !apperror.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestCreateClient(t *testing.T) {
	repo := newRepo()
	uc := client.NewCreateClientUseCase(repo)

	c, err := uc.Execute(context.Background(), client.CreateClientInput{Name: "Acme", Email: "Team@Acme.io"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Email != "team@acme.io" || c.Company != "Acme" {
		t.Errorf("unexpected normalisation %+v", c)
	}

	stored, err := repo.FindByID(context.Background(), c.ID)
	if err != nil || stored.Name != "Acme" {
		t.Errorf("client not stored: %v", err)
	}

	if _, err := uc.Execute(context.Background(), client.CreateClientInput{Name: "Acme", Email: "broken"}); !apperror.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), client.CreateClientInput{Email: "a@b.io"}); !apperror.IsValidation(err) {
		t.Errorf("expected validation error for missing name, got %v", err)
	}
}
