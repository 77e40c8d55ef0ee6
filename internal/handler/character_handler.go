package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CharacterHandler struct {
	characters CharacterStore
}

func NewCharacterHandler(characters CharacterStore) *CharacterHandler {
	return &CharacterHandler{characters: characters}
}

func (h *CharacterHandler) List(c *gin.Context) {
	list, err := h.characters.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CharacterHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ch, err := h.characters.GetByID(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "character")
		return
	}
	c.JSON(http.StatusOK, ch)
}
