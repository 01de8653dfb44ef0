package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
	"github.com/ignatzorin/proposal-desk/internal/interface/http/response"
	"github.com/ignatzorin/proposal-desk/internal/logger"
	"github.com/ignatzorin/proposal-desk/internal/pkg/apperror"
	"github.com/ignatzorin/proposal-desk/internal/usecase/builder"
)

// BuilderStartPath: сюда перенаправляется предпросмотр без данных.
const BuilderStartPath = "/proposals/builder"

// PreviewRenderer рендерит печатную версию предложения.
type PreviewRenderer interface {
	HTML(g *entity.GeneratedProposal, markdownURL string) ([]byte, error)
	Markdown(g *entity.GeneratedProposal) (string, error)
}

type PreviewHandler struct {
	previewUC *builder.GetPreviewUseCase
	renderer  PreviewRenderer
}

func NewPreviewHandler(previewUC *builder.GetPreviewUseCase, renderer PreviewRenderer) *PreviewHandler {
	return &PreviewHandler{previewUC: previewUC, renderer: renderer}
}

// Page GET /proposals/preview/:id
// Без сгенерированных данных перенаправляет в начало конструктора.
func (h *PreviewHandler) Page(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, BuilderStartPath)
		return
	}

	generated, err := h.previewUC.Execute(c.Request.Context(), id)
	if err != nil {
		if !apperror.IsNotFound(err) {
			logger.Get().WithError(err).Error("preview: не удалось получить предложение")
		}
		c.Redirect(http.StatusFound, BuilderStartPath)
		return
	}

	page, err := h.renderer.HTML(generated, markdownURL(generated.ID))
	if err != nil {
		logger.Get().WithError(err).Error("preview: ошибка рендеринга")
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// Markdown GET /api/builder/generated/:id/markdown
func (h *PreviewHandler) Markdown(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "некорректный ID предложения")
	if !ok {
		return
	}

	generated, err := h.previewUC.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	doc, err := h.renderer.Markdown(generated)
	if err != nil {
		logger.Get().WithError(err).Error("preview: ошибка конвертации в markdown")
		response.Error(c, err)
		return
	}

	if c.Query("download") == "true" {
		c.Header("Content-Disposition", `attachment; filename="`+generated.Number()+`.md"`)
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(doc))
}
