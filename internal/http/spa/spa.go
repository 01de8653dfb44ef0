package spa

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/proposal-desk/internal/interface/http/response"
)

const indexFile = "index.html"

// Handler раздаёт собранный фронтенд. Любой неизвестный GET путь вне /api
// отдаёт index.html для клиентской маршрутизации.
type Handler struct {
	root string
}

func New(root string) *Handler {
	return &Handler{root: root}
}

// Available сообщает, есть ли в каталоге index.html.
func (h *Handler) Available() bool {
	info, err := os.Stat(filepath.Join(h.root, indexFile))
	return err == nil && !info.IsDir()
}

// NoRoute подключается как r.NoRoute(...).
func (h *Handler) NoRoute(c *gin.Context) {
	p := c.Request.URL.Path
	if p == "/api" || strings.HasPrefix(p, "/api/") {
		response.NotFound(c, "маршрут не найден")
		return
	}
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusMethodNotAllowed, response.Response{
			Success: false,
			Error:   &response.ErrorInfo{Code: "METHOD_NOT_ALLOWED", Message: "метод не поддерживается"},
		})
		return
	}

	if file, ok := h.resolve(p); ok {
		c.File(file)
		return
	}

	index := filepath.Join(h.root, indexFile)
	if _, err := os.Stat(index); err != nil {
		response.NotFound(c, "фронтенд не собран")
		return
	}
	c.Header("Cache-Control", "no-cache")
	c.File(index)
}

// resolve возвращает путь к существующему файлу внутри root.
func (h *Handler) resolve(urlPath string) (string, bool) {
	clean := path.Clean("/" + urlPath)
	if clean == "/" {
		return "", false
	}
	full := filepath.Join(h.root, filepath.FromSlash(strings.TrimPrefix(clean, "/")))

	rootAbs, err := filepath.Abs(h.root)
	if err != nil {
		return "", false
	}
	fullAbs, err := filepath.Abs(full)
	if err != nil || !strings.HasPrefix(fullAbs, rootAbs+string(filepath.Separator)) {
		return "", false
	}

	info, err := os.Stat(fullAbs)
	if err != nil || info.IsDir() {
		return "", false
	}
	return fullAbs, true
}
