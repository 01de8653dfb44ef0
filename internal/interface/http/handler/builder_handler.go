package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/proposal-desk/internal/interface/http/dto"
	"github.com/ignatzorin/proposal-desk/internal/interface/http/response"
	"github.com/ignatzorin/proposal-desk/internal/usecase/builder"
)

// BuilderHandler обслуживает мастер создания предложения.
type BuilderHandler struct {
	startUC          *builder.StartSessionUseCase
	getUC            *builder.GetSessionUseCase
	discardUC        *builder.DiscardSessionUseCase
	toggleUC         *builder.ToggleServiceUseCase
	customizeUC      *builder.CustomizeServiceUseCase
	customizationsUC *builder.SetCustomizationsUseCase
	navigateUC       *builder.NavigateUseCase
	generateUC       *builder.GenerateUseCase
	previewUC        *builder.GetPreviewUseCase
	saveUC           *builder.SaveAsProposalUseCase
}

// BuilderUseCases собирает сценарии мастера для хэндлера.
type BuilderUseCases struct {
	Start          *builder.StartSessionUseCase
	Get            *builder.GetSessionUseCase
	Discard        *builder.DiscardSessionUseCase
	Toggle         *builder.ToggleServiceUseCase
	Customize      *builder.CustomizeServiceUseCase
	Customizations *builder.SetCustomizationsUseCase
	Navigate       *builder.NavigateUseCase
	Generate       *builder.GenerateUseCase
	Preview        *builder.GetPreviewUseCase
	Save           *builder.SaveAsProposalUseCase
}

func NewBuilderHandler(uc BuilderUseCases) *BuilderHandler {
	return &BuilderHandler{
		startUC:          uc.Start,
		getUC:            uc.Get,
		discardUC:        uc.Discard,
		toggleUC:         uc.Toggle,
		customizeUC:      uc.Customize,
		customizationsUC: uc.Customizations,
		navigateUC:       uc.Navigate,
		generateUC:       uc.Generate,
		previewUC:        uc.Preview,
		saveUC:           uc.Save,
	}
}

func (h *BuilderHandler) StartSession(c *gin.Context) {
	session, err := h.startUC.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToBuilderSessionResponse(session))
}

func (h *BuilderHandler) GetSession(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "id", "некорректный ID сессии")
	if !ok {
		return
	}

	session, err := h.getUC.Execute(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToBuilderSessionResponse(session))
}

func (h *BuilderHandler) DiscardSession(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "id", "некорректный ID сессии")
	if !ok {
		return
	}

	if err := h.discardUC.Execute(c.Request.Context(), sessionID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleService POST /api/builder/sessions/:id/services
func (h *BuilderHandler) ToggleService(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "id", "некорректный ID сессии")
	if !ok {
		return
	}

	var req dto.ToggleServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "service_id обязателен")
		return
	}

	session, err := h.toggleUC.Execute(c.Request.Context(), sessionID, req.ServiceID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToBuilderSessionResponse(session))
}

// CustomizeService PATCH /api/builder/sessions/:id/services/:serviceId
func (h *BuilderHandler) CustomizeService(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "id", "некорректный ID сессии")
	if !ok {
		return
	}

	var req dto.CustomizeServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "некорректные данные запроса")
		return
	}

	session, err := h.customizeUC.Execute(c.Request.Context(), builder.CustomizeServiceInput{
		SessionID:   sessionID,
		ServiceID:   c.Param("serviceId"),
		Notes:       req.Notes,
		CustomPrice: req.CustomPrice,
		ClearPrice:  req.ClearPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToBuilderSessionResponse(session))
}

// SetCustomizations PUT /api/builder/sessions/:id/customizations
func (h *BuilderHandler) SetCustomizations(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "id", "некорректный ID сессии")
	if !ok {
		return
	}

	var req dto.CustomizationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "некорректные данные запроса")
		return
	}

	session, err := h.customizationsUC.Execute(c.Request.Context(), sessionID, req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToBuilderSessionResponse(session))
}

// Navigate POST /api/builder/sessions/:id/navigate
func (h *BuilderHandler) Navigate(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "id", "некорректный ID сессии")
	if !ok {
		return
	}

	var req dto.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "direction обязателен")
		return
	}

	session, err := h.navigateUC.Execute(c.Request.Context(), sessionID, builder.Direction(req.Direction))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToBuilderSessionResponse(session))
}

// Generate POST /api/builder/sessions/:id/generate
func (h *BuilderHandler) Generate(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "id", "некорректный ID сессии")
	if !ok {
		return
	}

	generated, err := h.generateUC.Execute(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToGeneratedProposalResponse(generated, builder.PreviewURL(generated.ID), markdownURL(generated.ID)))
}

// GetGenerated GET /api/builder/generated/:id
func (h *BuilderHandler) GetGenerated(c *gin.Context) {
	handoffID, ok := parseUUIDParam(c, "id", "некорректный ID предложения")
	if !ok {
		return
	}

	generated, err := h.previewUC.Execute(c.Request.Context(), handoffID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToGeneratedProposalResponse(generated, builder.PreviewURL(generated.ID), markdownURL(generated.ID)))
}

// SaveGenerated POST /api/builder/generated/:id/save
func (h *BuilderHandler) SaveGenerated(c *gin.Context) {
	handoffID, ok := parseUUIDParam(c, "id", "некорректный ID предложения")
	if !ok {
		return
	}

	created, err := h.saveUC.Execute(c.Request.Context(), handoffID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToProposalResponse(created))
}
