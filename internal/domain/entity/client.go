package entity

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ignatzorin/proposal-desk/internal/pkg/apperror"
	"github.com/ignatzorin/proposal-desk/internal/validation"
)

type Client struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Phone    string
	Company  string
	Industry string
}

func NewClient(name, email, phone, company, industry string) (*Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.Validation("имя клиента обязательно")
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}
	company = strings.TrimSpace(company)
	if company == "" {
		company = name
	}
	return &Client{
		ID:       uuid.New(),
		Name:     name,
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Phone:    strings.TrimSpace(phone),
		Company:  company,
		Industry: strings.TrimSpace(industry),
	}, nil
}

// Matches ищет запрос в имени, компании и email. query в нижнем регистре.
func (c *Client) Matches(query string) bool {
	return strings.Contains(strings.ToLower(c.Name), query) ||
		strings.Contains(strings.ToLower(c.Company), query) ||
		strings.Contains(strings.ToLower(c.Email), query)
}
