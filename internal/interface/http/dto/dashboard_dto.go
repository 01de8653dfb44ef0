package dto

import (
	"time"

	"github.com/ignatzorin/proposal-desk/internal/usecase/dashboard"
)

type StatusBucketResponse struct {
	Status string  `json:"status"`
	Label  string  `json:"label"`
	Count  int     `json:"count"`
	Value  float64 `json:"value"`
}

type OverviewResponse struct {
	TotalProposals    int                    `json:"total_proposals"`
	TotalValue        float64                `json:"total_value"`
	WinRate           float64                `json:"win_rate"`
	AverageProgress   int                    `json:"average_progress"`
	Distribution      []StatusBucketResponse `json:"distribution"`
	Recent            []ProposalResponse     `json:"recent"`
	UpcomingDeadlines []ProposalResponse     `json:"upcoming_deadlines"`
	GeneratedAt       time.Time              `json:"generated_at"`
}

type ClientStatResponse struct {
	Name      string  `json:"name"`
	Proposals int     `json:"proposals"`
	Value     float64 `json:"value"`
}

type AnalyticsResponse struct {
	Days           int                  `json:"days"`
	TotalValue     float64              `json:"total_value"`
	TotalProposals int                  `json:"total_proposals"`
	ApprovalRate   float64              `json:"approval_rate"`
	AverageValue   float64              `json:"average_value"`
	ApprovedValue  float64              `json:"approved_value"`
	Approved       int                  `json:"approved"`
	Pending        int                  `json:"pending"`
	Rejected       int                  `json:"rejected"`
	TopClients     []ClientStatResponse `json:"top_clients"`
}

type SearchItemResponse struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Href     string `json:"href"`
}

type SearchSectionResponse struct {
	Title string               `json:"title"`
	Items []SearchItemResponse `json:"items"`
}

func ToOverviewResponse(o *dashboard.Overview) OverviewResponse {
	buckets := make([]StatusBucketResponse, 0, len(o.Distribution))
	for _, b := range o.Distribution {
		buckets = append(buckets, StatusBucketResponse{
			Status: string(b.Status),
			Label:  b.Status.Label(),
			Count:  b.Count,
			Value:  b.Value,
		})
	}
	return OverviewResponse{
		TotalProposals:    o.TotalProposals,
		TotalValue:        o.TotalValue,
		WinRate:           o.WinRate,
		AverageProgress:   o.AverageProgress,
		Distribution:      buckets,
		Recent:            ToProposalResponses(o.Recent),
		UpcomingDeadlines: ToProposalResponses(o.UpcomingDeadlines),
		GeneratedAt:       o.GeneratedAt,
	}
}

func ToAnalyticsResponse(a *dashboard.Analytics) AnalyticsResponse {
	clients := make([]ClientStatResponse, 0, len(a.TopClients))
	for _, c := range a.TopClients {
		clients = append(clients, ClientStatResponse{Name: c.Name, Proposals: c.Proposals, Value: c.Value})
	}
	return AnalyticsResponse{
		Days:           a.Days,
		TotalValue:     a.TotalValue,
		TotalProposals: a.TotalProposals,
		ApprovalRate:   a.ApprovalRate,
		AverageValue:   a.AverageValue,
		ApprovedValue:  a.ApprovedValue,
		Approved:       a.Approved,
		Pending:        a.Pending,
		Rejected:       a.Rejected,
		TopClients:     clients,
	}
}

func ToSearchResponse(sections []dashboard.SearchSection) []SearchSectionResponse {
	out := make([]SearchSectionResponse, 0, len(sections))
	for _, s := range sections {
		items := make([]SearchItemResponse, 0, len(s.Items))
		for _, it := range s.Items {
			items = append(items, SearchItemResponse(it))
		}
		out = append(out, SearchSectionResponse{Title: s.Title, Items: items})
	}
	return out
}
