package handler

import (
	"net/http"

	"starwars-api/internal/domain"
	"starwars-api/internal/models"
	"starwars-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FavoriteHandler struct {
	favorites FavoriteStore
}

func NewFavoriteHandler(favorites FavoriteStore) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

type AddPlanetFavoriteRequest struct {
	PlanetID *uint `json:"planet_id" binding:"required"`
	UserID   *uint `json:"user_id" binding:"required"`
}

type AddCharacterFavoriteRequest struct {
	CharacterID *uint `json:"character_id" binding:"required"`
	UserID      *uint `json:"user_id" binding:"required"`
}

// List returns the favorites of the user in the path. An unknown user yields
// an empty list.
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	list, err := h.favorites.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *FavoriteHandler) AddPlanet(c *gin.Context) {
	var req AddPlanetFavoriteRequest
	if !bindJSON(c, &req) {
		return
	}
	h.add(c, *req.UserID, models.PlanetTarget{ID: *req.PlanetID})
}

func (h *FavoriteHandler) AddCharacter(c *gin.Context) {
	var req AddCharacterFavoriteRequest
	if !bindJSON(c, &req) {
		return
	}
	h.add(c, *req.UserID, models.CharacterTarget{ID: *req.CharacterID})
}

func (h *FavoriteHandler) add(c *gin.Context, userID uint, target models.FavoriteTarget) {
	fav, err := h.favorites.Add(c.Request.Context(), userID, target)
	if err != nil {
		storeError(c, err, "favorite")
		return
	}
	logger.FromGin(c).Info("favorite added",
		zap.Uint("favorite_id", fav.ID),
		zap.Uint("user_id", userID),
		zap.String("kind", target.Kind()),
		zap.Uint("target_id", target.TargetID()))
	c.JSON(http.StatusOK, fav)
}

// RemovePlanet drops every favorite of the planet. The user_id segment is
// validated but does not narrow the delete.
func (h *FavoriteHandler) RemovePlanet(c *gin.Context) {
	h.remove(c, "planet_id", func(id uint) models.FavoriteTarget { return models.PlanetTarget{ID: id} }, domain.PlanetRemovedMessage)
}

func (h *FavoriteHandler) RemoveCharacter(c *gin.Context) {
	h.remove(c, "character_id", func(id uint) models.FavoriteTarget { return models.CharacterTarget{ID: id} }, domain.CharacterRemovedMessage)
}

func (h *FavoriteHandler) remove(c *gin.Context, param string, target func(uint) models.FavoriteTarget, message string) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	id, ok := pathID(c, param)
	if !ok {
		return
	}
	n, err := h.favorites.RemoveByTarget(c.Request.Context(), target(id))
	if err != nil {
		_ = c.Error(err)
		return
	}
	logger.FromGin(c).Info("favorites removed",
		zap.Uint("user_id", userID),
		zap.String(param, c.Param(param)),
		zap.Int64("rows_affected", n))
	c.JSON(http.StatusOK, message)
}
