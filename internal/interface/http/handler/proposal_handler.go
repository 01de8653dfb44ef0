package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/proposal-desk/internal/interface/http/dto"
	"github.com/ignatzorin/proposal-desk/internal/interface/http/response"
	"github.com/ignatzorin/proposal-desk/internal/usecase/proposal"
)

// BulkObserver учитывает выполненные массовые действия.
type BulkObserver interface {
	ObserveBulkAction(action string, affected int)
}

type ProposalHandler struct {
	listProposalsUC  *proposal.ListProposalsUseCase
	getProposalUC    *proposal.GetProposalUseCase
	createProposalUC *proposal.CreateProposalUseCase
	updateStatusUC   *proposal.UpdateProposalStatusUseCase
	deleteProposalUC *proposal.DeleteProposalUseCase
	bulkActionUC     *proposal.BulkActionUseCase
	observer         BulkObserver
}

func NewProposalHandler(
	listProposalsUC *proposal.ListProposalsUseCase,
	getProposalUC *proposal.GetProposalUseCase,
	createProposalUC *proposal.CreateProposalUseCase,
	updateStatusUC *proposal.UpdateProposalStatusUseCase,
	deleteProposalUC *proposal.DeleteProposalUseCase,
	bulkActionUC *proposal.BulkActionUseCase,
	observer BulkObserver,
) *ProposalHandler {
	return &ProposalHandler{
		listProposalsUC:  listProposalsUC,
		getProposalUC:    getProposalUC,
		createProposalUC: createProposalUC,
		updateStatusUC:   updateStatusUC,
		deleteProposalUC: deleteProposalUC,
		bulkActionUC:     bulkActionUC,
		observer:         observer,
	}
}

// ListProposals GET /api/proposals
// Параметр toggle повторяет клик по заголовку колонки относительно текущей сортировки.
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	sort, err := proposal.ParseSort(c.Query("sort"), c.Query("direction"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if toggle := c.Query("toggle"); toggle != "" {
		key, err := proposal.ParseSort(toggle, "")
		if err != nil {
			response.Error(c, err)
			return
		}
		sort = sort.Toggle(key.Key)
	}

	search := c.Query("search")
	if search == "" {
		search = c.Query("q")
	}

	limit := parseIntQuery(c, "limit", 0)
	offset := parseIntQuery(c, "offset", 0)
	if limit < 0 || offset < 0 {
		response.BadRequest(c, "limit и offset не могут быть отрицательными")
		return
	}

	out, err := h.listProposalsUC.Execute(c.Request.Context(), proposal.ListProposalsInput{
		Filter: proposal.Filter{
			Status:    c.Query("status"),
			Priority:  c.Query("priority"),
			Type:      c.Query("type"),
			Client:    c.Query("client"),
			Search:    search,
			DateRange: c.Query("date_range"),
			Archived:  c.Query("archived"),
		},
		Sort:   sort,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, dto.ToProposalListResponse(out, sort), out.Total, limit, offset)
}

func (h *ProposalHandler) GetProposal(c *gin.Context) {
	proposalID, ok := parseUUIDParam(c, "id", "некорректный ID предложения")
	if !ok {
		return
	}

	p, err := h.getProposalUC.Execute(c.Request.Context(), proposalID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToProposalResponse(p))
}

func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var req dto.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "некорректные данные запроса")
		return
	}

	deadline, err := dto.ParseDeadline(req.Deadline)
	if err != nil {
		response.BadRequest(c, "некорректный формат дедлайна")
		return
	}

	created, err := h.createProposalUC.Execute(c.Request.Context(), proposal.CreateProposalInput{
		Title:          req.Title,
		Description:    req.Description,
		ClientID:       req.ClientID,
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		ClientCompany:  req.ClientCompany,
		Amount:         req.Amount,
		Currency:       req.Currency,
		Type:           req.Type,
		Priority:       req.Priority,
		Deadline:       deadline,
		EstimatedHours: req.EstimatedHours,
		Deliverables:   req.Deliverables,
		Tags:           req.Tags,
		Notes:          req.Notes,
		Send:           req.Send,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToProposalResponse(created))
}

func (h *ProposalHandler) UpdateProposalStatus(c *gin.Context) {
	proposalID, ok := parseUUIDParam(c, "id", "некорректный ID предложения")
	if !ok {
		return
	}

	var req dto.UpdateProposalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "некорректные данные запроса")
		return
	}

	updated, err := h.updateStatusUC.Execute(c.Request.Context(), proposalID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToProposalResponse(updated))
}

func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	proposalID, ok := parseUUIDParam(c, "id", "некорректный ID предложения")
	if !ok {
		return
	}

	if err := h.deleteProposalUC.Execute(c.Request.Context(), proposalID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// BulkAction POST /api/proposals/bulk
// Экспорт отдаётся вложением, остальные действия отвечают сводкой в конверте.
func (h *ProposalHandler) BulkAction(c *gin.Context) {
	var req dto.BulkActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "некорректные данные запроса")
		return
	}

	action, err := proposal.ParseBulkAction(req.Action)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.bulkActionUC.Execute(c.Request.Context(), proposal.BulkActionInput{
		Action:  action,
		IDs:     req.IDs,
		Confirm: req.Confirm,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.observer != nil {
		h.observer.ObserveBulkAction(string(out.Action), out.Affected)
	}

	if out.Export != nil {
		c.Header("Content-Disposition", `attachment; filename="`+strings.ReplaceAll(out.Export.FileName, `"`, "")+`"`)
		c.JSON(http.StatusOK, dto.ToExportDocument(out.Export))
		return
	}

	response.Success(c, dto.ToBulkActionResponse(out))
}
