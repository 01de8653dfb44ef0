package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
	"github.com/ignatzorin/proposal-desk/internal/domain/valueobject"
)

// SeedData содержит демонстрационные данные дашборда.
type SeedData struct {
	Clients       []entity.Client
	Proposals     []*entity.Proposal
	Notifications []*entity.Notification
}

var (
	ClientTechCorpID   = uuid.MustParse("6f1c2a9e-1b0d-4c55-9d1e-0a6b1c2d3e01")
	ClientGlobalMktID  = uuid.MustParse("6f1c2a9e-1b0d-4c55-9d1e-0a6b1c2d3e02")
	ClientStartupXYZID = uuid.MustParse("6f1c2a9e-1b0d-4c55-9d1e-0a6b1c2d3e03")
	ClientEnterpriseID = uuid.MustParse("6f1c2a9e-1b0d-4c55-9d1e-0a6b1c2d3e04")

	ProposalBrandRedesignID = uuid.MustParse("a3d8e5f0-7c21-4f8a-b6e2-5d9c0e1f2a01")
	ProposalEcommerceID     = uuid.MustParse("a3d8e5f0-7c21-4f8a-b6e2-5d9c0e1f2a02")
	ProposalMarketingID     = uuid.MustParse("a3d8e5f0-7c21-4f8a-b6e2-5d9c0e1f2a03")
	ProposalConsultationID  = uuid.MustParse("a3d8e5f0-7c21-4f8a-b6e2-5d9c0e1f2a04")
	ProposalMobileUXID      = uuid.MustParse("a3d8e5f0-7c21-4f8a-b6e2-5d9c0e1f2a05")
)

// NewSeedData собирает демонстрационные данные; now задаёт время уведомлений.
func NewSeedData(now time.Time) SeedData {
	clients := []entity.Client{
		{ID: ClientTechCorpID, Name: "TechCorp Solutions", Email: "contact@techcorp.com", Phone: "+1 (555) 123-4567", Company: "TechCorp Solutions", Industry: "Technology"},
		{ID: ClientGlobalMktID, Name: "Global Marketing Inc", Email: "hello@globalmarketing.com", Phone: "+1 (555) 234-5678", Company: "Global Marketing Inc", Industry: "Marketing"},
		{ID: ClientStartupXYZID, Name: "StartupXYZ", Email: "founders@startupxyz.com", Phone: "+1 (555) 345-6789", Company: "StartupXYZ", Industry: "Startup"},
		{ID: ClientEnterpriseID, Name: "Enterprise Corp", Email: "procurement@enterprise.com", Phone: "+1 (555) 456-7890", Company: "Enterprise Corp", Industry: "Enterprise"},
	}

	proposals := []*entity.Proposal{
		{
			ID:             ProposalBrandRedesignID,
			Title:          "Complete Brand Redesign Project",
			Description:    "Comprehensive brand identity redesign including logo, color palette, typography, and brand guidelines.",
			Client:         clients[0],
			Status:         valueobject.ProposalStatusPending,
			Priority:       valueobject.PriorityHigh,
			Type:           valueobject.ProposalTypeProject,
			Amount:         25000,
			Currency:       "USD",
			CreatedAt:      mustTime("2024-02-01T10:00:00Z"),
			UpdatedAt:      mustTime("2024-02-05T14:30:00Z"),
			Deadline:       timePtr("2026-02-15T23:59:59Z"),
			EstimatedHours: 120,
			Deliverables: []string{
				"Logo design (3 concepts)",
				"Color palette and typography guide",
				"Brand guidelines document",
				"Business card and letterhead design",
				"Website mockup",
			},
			Milestones: []entity.Milestone{
				{Name: "Discovery & Research", Completion: 100, DueDate: timePtr("2024-02-05T00:00:00Z")},
				{Name: "Concept Development", Completion: 75, DueDate: timePtr("2024-02-08T00:00:00Z")},
				{Name: "Design Refinement", Completion: 30, DueDate: timePtr("2024-02-12T00:00:00Z")},
				{Name: "Final Delivery", Completion: 0, DueDate: timePtr("2024-02-15T00:00:00Z")},
			},
			Tags:  []string{"branding", "design", "urgent"},
			Notes: "Client emphasized modern and minimalist approach. Budget is flexible for additional work.",
		},
		{
			ID:             ProposalEcommerceID,
			Title:          "E-commerce Website Development",
			Description:    "Custom e-commerce platform with payment integration, inventory management, and admin dashboard.",
			Client:         clients[1],
			Status:         valueobject.ProposalStatusApproved,
			Priority:       valueobject.PriorityMedium,
			Type:           valueobject.ProposalTypeProject,
			Amount:         45000,
			Currency:       "USD",
			CreatedAt:      mustTime("2024-01-15T09:00:00Z"),
			UpdatedAt:      mustTime("2024-01-25T16:45:00Z"),
			Deadline:       timePtr("2026-03-01T23:59:59Z"),
			EstimatedHours: 300,
			Deliverables: []string{
				"Responsive website design",
				"Shopping cart functionality",
				"Payment gateway integration",
				"Admin dashboard",
				"Mobile app companion",
			},
			Milestones: []entity.Milestone{
				{Name: "Planning & Architecture", Completion: 100, DueDate: timePtr("2024-01-20T00:00:00Z")},
				{Name: "Frontend Development", Completion: 85, DueDate: timePtr("2024-02-10T00:00:00Z")},
				{Name: "Backend Development", Completion: 60, DueDate: timePtr("2024-02-20T00:00:00Z")},
				{Name: "Testing & Launch", Completion: 0, DueDate: timePtr("2024-03-01T00:00:00Z")},
			},
			Tags:  []string{"web development", "ecommerce", "react"},
			Notes: "Project approved with additional mobile app requirement added.",
		},
		{
			ID:             ProposalMarketingID,
			Title:          "Digital Marketing Strategy",
			Description:    "Comprehensive digital marketing strategy including SEO, social media, and content marketing.",
			Client:         clients[2],
			Status:         valueobject.ProposalStatusDraft,
			Priority:       valueobject.PriorityLow,
			Type:           valueobject.ProposalTypeService,
			Amount:         15000,
			Currency:       "USD",
			CreatedAt:      mustTime("2024-02-05T11:30:00Z"),
			UpdatedAt:      mustTime("2024-02-05T11:30:00Z"),
			Deadline:       timePtr("2026-02-20T23:59:59Z"),
			EstimatedHours: 80,
			Deliverables: []string{
				"Market research report",
				"SEO strategy document",
				"Social media calendar",
				"Content strategy guide",
				"Performance metrics setup",
			},
			Milestones: []entity.Milestone{
				{Name: "Research & Analysis", Completion: 0, DueDate: timePtr("2024-02-10T00:00:00Z")},
				{Name: "Strategy Development", Completion: 0, DueDate: timePtr("2024-02-15T00:00:00Z")},
				{Name: "Implementation Plan", Completion: 0, DueDate: timePtr("2024-02-18T00:00:00Z")},
				{Name: "Final Presentation", Completion: 0, DueDate: timePtr("2024-02-20T00:00:00Z")},
			},
			Tags:  []string{"marketing", "seo", "social media"},
			Notes: "Still gathering requirements from client. Awaiting competitor analysis.",
		},
		{
			ID:             ProposalConsultationID,
			Title:          "Enterprise Software Consultation",
			Description:    "Technical consultation for enterprise software architecture and development best practices.",
			Client:         clients[3],
			Status:         valueobject.ProposalStatusSent,
			Priority:       valueobject.PriorityUrgent,
			Type:           valueobject.ProposalTypeConsultation,
			Amount:         12000,
			Currency:       "USD",
			CreatedAt:      mustTime("2024-02-03T08:00:00Z"),
			UpdatedAt:      mustTime("2024-02-06T10:15:00Z"),
			Deadline:       timePtr("2024-02-12T17:00:00Z"),
			EstimatedHours: 40,
			Deliverables: []string{
				"Architecture review document",
				"Security assessment report",
				"Performance optimization plan",
				"Technology recommendations",
				"Implementation roadmap",
			},
			Milestones: []entity.Milestone{
				{Name: "Initial Assessment", Completion: 100, DueDate: timePtr("2024-02-06T00:00:00Z")},
				{Name: "Deep Dive Analysis", Completion: 50, DueDate: timePtr("2024-02-09T00:00:00Z")},
				{Name: "Recommendations", Completion: 0, DueDate: timePtr("2024-02-11T00:00:00Z")},
				{Name: "Final Report", Completion: 0, DueDate: timePtr("2024-02-12T00:00:00Z")},
			},
			Tags:  []string{"consulting", "enterprise", "architecture"},
			Notes: "Urgent timeline due to upcoming board meeting. Focus on security concerns.",
		},
		{
			ID:             ProposalMobileUXID,
			Title:          "Mobile App UI/UX Design",
			Description:    "Complete UI/UX design for iOS and Android mobile application with user research and prototyping.",
			Client:         clients[0],
			Status:         valueobject.ProposalStatusRejected,
			Priority:       valueobject.PriorityMedium,
			Type:           valueobject.ProposalTypeProject,
			Amount:         18000,
			Currency:       "USD",
			CreatedAt:      mustTime("2024-01-20T14:00:00Z"),
			UpdatedAt:      mustTime("2024-01-30T09:30:00Z"),
			Deadline:       timePtr("2024-02-28T23:59:59Z"),
			EstimatedHours: 100,
			Deliverables: []string{
				"User research report",
				"Wireframes and user flows",
				"High-fidelity mockups",
				"Interactive prototype",
				"Design system documentation",
			},
			Milestones: []entity.Milestone{
				{Name: "User Research", Completion: 100, DueDate: timePtr("2024-02-05T00:00:00Z")},
				{Name: "Wireframing", Completion: 80, DueDate: timePtr("2024-02-12T00:00:00Z")},
				{Name: "Visual Design", Completion: 40, DueDate: timePtr("2024-02-20T00:00:00Z")},
				{Name: "Prototyping", Completion: 0, DueDate: timePtr("2024-02-28T00:00:00Z")},
			},
			Tags:  []string{"mobile", "ui/ux", "prototype"},
			Notes: "Rejected due to budget constraints. Client may reconsider in Q2.",
		},
	}

	notifications := []*entity.Notification{
		{
			ID:        uuid.New(),
			Type:      entity.NotificationProposalApproved,
			Title:     "Proposal Approved",
			Message:   `Your proposal "E-commerce Website Development" has been approved by Global Marketing Inc.`,
			Priority:  "high",
			ActionURL: "/proposals/" + ProposalEcommerceID.String(),
			CreatedAt: now.Add(-30 * time.Minute),
		},
		{
			ID:        uuid.New(),
			Type:      entity.NotificationDeadlineApproaching,
			Title:     "Deadline Approaching",
			Message:   `Proposal "Complete Brand Redesign Project" is due in 2 days.`,
			Priority:  "medium",
			ActionURL: "/proposals/" + ProposalBrandRedesignID.String(),
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        uuid.New(),
			Type:      "comment_added",
			Title:     "New Comment",
			Message:   "TechCorp Solutions added a comment to your proposal.",
			Priority:  "low",
			Read:      true,
			ActionURL: "/proposals/" + ProposalBrandRedesignID.String(),
			CreatedAt: now.Add(-5 * time.Hour),
		},
		{
			ID:        uuid.New(),
			Type:      "payment_received",
			Title:     "Payment Received",
			Message:   "Payment of $15,000 received for Enterprise Software Consultation.",
			Priority:  "high",
			Read:      true,
			ActionURL: "/proposals/" + ProposalConsultationID.String(),
			CreatedAt: now.Add(-24 * time.Hour),
		},
	}

	return SeedData{Clients: clients, Proposals: proposals, Notifications: notifications}
}

func mustTime(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t
}

func timePtr(v string) *time.Time {
	t := mustTime(v)
	return &t
}
