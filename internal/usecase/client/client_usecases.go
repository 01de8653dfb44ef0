package client

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
	"github.com/ignatzorin/proposal-desk/internal/domain/repository"
	"github.com/ignatzorin/proposal-desk/internal/pkg/apperror"
)

type ListClientsUseCase struct {
	clientRepo repository.ClientRepository
}

func NewListClientsUseCase(clientRepo repository.ClientRepository) *ListClientsUseCase {
	return &ListClientsUseCase{clientRepo: clientRepo}
}

// Execute возвращает клиентов; непустой query фильтрует по имени, компании и email.
func (uc *ListClientsUseCase) Execute(ctx context.Context, query string) ([]*entity.Client, error) {
	clients, err := uc.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return clients, nil
	}

	result := make([]*entity.Client, 0, len(clients))
	for _, c := range clients {
		if c.Matches(q) {
			result = append(result, c)
		}
	}
	return result, nil
}

type GetClientUseCase struct {
	clientRepo repository.ClientRepository
}

func NewGetClientUseCase(clientRepo repository.ClientRepository) *GetClientUseCase {
	return &GetClientUseCase{clientRepo: clientRepo}
}

func (uc *GetClientUseCase) Execute(ctx context.Context, clientID uuid.UUID) (*entity.Client, error) {
	return uc.clientRepo.FindByID(ctx, clientID)
}

type CreateClientInput struct {
	Name     string
	Email    string
	Phone    string
	Company  string
	Industry string
}

type CreateClientUseCase struct {
	clientRepo repository.ClientRepository
}

func NewCreateClientUseCase(clientRepo repository.ClientRepository) *CreateClientUseCase {
	return &CreateClientUseCase{clientRepo: clientRepo}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, input CreateClientInput) (*entity.Client, error) {
	client, err := entity.NewClient(input.Name, input.Email, input.Phone, input.Company, input.Industry)
	if err != nil {
		return nil, err
	}

	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось создать клиента")
	}

	return client, nil
}
