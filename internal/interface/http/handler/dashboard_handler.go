package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/proposal-desk/internal/interface/http/dto"
	"github.com/ignatzorin/proposal-desk/internal/interface/http/response"
	"github.com/ignatzorin/proposal-desk/internal/usecase/dashboard"
)

const defaultAnalyticsDays = 30

type DashboardHandler struct {
	overviewUC  *dashboard.GetOverviewUseCase
	analyticsUC *dashboard.GetAnalyticsUseCase
	searchUC    *dashboard.SearchUseCase
}

func NewDashboardHandler(overviewUC *dashboard.GetOverviewUseCase, analyticsUC *dashboard.GetAnalyticsUseCase, searchUC *dashboard.SearchUseCase) *DashboardHandler {
	return &DashboardHandler{overviewUC: overviewUC, analyticsUC: analyticsUC, searchUC: searchUC}
}

func (h *DashboardHandler) Overview(c *gin.Context) {
	overview, err := h.overviewUC.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToOverviewResponse(overview))
}

// Analytics GET /api/analytics?days=30
func (h *DashboardHandler) Analytics(c *gin.Context) {
	days := parseIntQuery(c, "days", defaultAnalyticsDays)

	analytics, err := h.analyticsUC.Execute(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToAnalyticsResponse(analytics))
}

// Search GET /api/search?q=
func (h *DashboardHandler) Search(c *gin.Context) {
	sections, err := h.searchUC.Execute(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToSearchResponse(sections))
}
