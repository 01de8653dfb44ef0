package dashboard

import (
	"context"
	"strings"

	"github.com/ignatzorin/proposal-desk/internal/domain/repository"
)

const (
	searchProposalLimit = 5
	searchClientLimit   = 3
)

type SearchItem struct {
	ID       string
	Kind     string
	Title    string
	Subtitle string
	Href     string
}

type SearchSection struct {
	Title string
	Items []SearchItem
}

type SearchUseCase struct {
	proposalRepo repository.ProposalRepository
	clientRepo   repository.ClientRepository
}

func NewSearchUseCase(proposalRepo repository.ProposalRepository, clientRepo repository.ClientRepository) *SearchUseCase {
	return &SearchUseCase{proposalRepo: proposalRepo, clientRepo: clientRepo}
}

// Execute ищет предложения и клиентов. Пустые секции не возвращаются.
func (uc *SearchUseCase) Execute(ctx context.Context, query string) ([]SearchSection, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []SearchSection{}, nil
	}

	proposals, err := uc.proposalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := uc.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	sections := make([]SearchSection, 0, 2)

	var found []SearchItem
	for _, p := range proposals {
		if len(found) == searchProposalLimit {
			break
		}
		if p.Matches(q) {
			found = append(found, SearchItem{
				ID:       p.ID.String(),
				Kind:     "proposal",
				Title:    p.Title,
				Subtitle: p.Client.Name,
				Href:     "/proposals/" + p.ID.String(),
			})
		}
	}
	if len(found) > 0 {
		sections = append(sections, SearchSection{Title: "Proposals", Items: found})
	}

	found = nil
	for _, c := range clients {
		if len(found) == searchClientLimit {
			break
		}
		if c.Matches(q) {
			found = append(found, SearchItem{
				ID:       c.ID.String(),
				Kind:     "client",
				Title:    c.Name,
				Subtitle: c.Company,
				Href:     "/clients/" + c.ID.String(),
			})
		}
	}
	if len(found) > 0 {
		sections = append(sections, SearchSection{Title: "Clients", Items: found})
	}

	return sections, nil
}
