package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PlanetHandler struct {
	planets    PlanetStore
	characters CharacterStore
}

func NewPlanetHandler(planets PlanetStore, characters CharacterStore) *PlanetHandler {
	return &PlanetHandler{planets: planets, characters: characters}
}

func (h *PlanetHandler) List(c *gin.Context) {
	list, err := h.planets.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *PlanetHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := h.planets.GetByID(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "planet")
		return
	}
	c.JSON(http.StatusOK, p)
}

// Characters lists the characters whose homeworld is the planet.
func (h *PlanetHandler) Characters(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := h.planets.GetByID(ctx, id); err != nil {
		storeError(c, err, "planet")
		return
	}
	list, err := h.characters.ListByPlanetID(ctx, id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}
