package dto

import "github.com/ignatzorin/proposal-desk/internal/domain/entity"

type CreateClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Industry string `json:"industry"`
}

type ServiceResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Timeline     string   `json:"timeline"`
	Includes     []string `json:"includes"`
	Customizable bool     `json:"customizable"`
	Category     string   `json:"category"`
}

type CategoryResponse struct {
	Name     string            `json:"name"`
	Services []ServiceResponse `json:"services"`
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}

func ToServiceResponse(s entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		Price:        s.Price,
		Timeline:     s.Timeline,
		Includes:     nonNil(s.Includes),
		Customizable: s.Customizable,
		Category:     s.Category,
	}
}

func ToServiceResponses(services []entity.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, ToServiceResponse(s))
	}
	return out
}

func ToCategoryResponses(categories []entity.ServiceCategory) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{Name: c.Name, Services: ToServiceResponses(c.Services)})
	}
	return out
}
