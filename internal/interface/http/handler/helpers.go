package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/proposal-desk/internal/interface/http/response"
)

func parseIntQuery(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// parseUUIDParam разбирает UUID из пути; при ошибке сам отвечает 400.
func parseUUIDParam(c *gin.Context, name, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, message)
		return uuid.Nil, false
	}
	return id, true
}

// markdownURL возвращает адрес markdown версии сгенерированного предложения.
func markdownURL(id uuid.UUID) string {
	return "/api/builder/generated/" + id.String() + "/markdown"
}
