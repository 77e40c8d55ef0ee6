package handler

import (
	"context"
	"net/http"

	"starwars-api/internal/apierror"
	"starwars-api/internal/models"
	"starwars-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminHandler is the back-office console: row counts plus create and delete
// for every model.
type AdminHandler struct {
	users      UserStore
	planets    PlanetStore
	characters CharacterStore
	favorites  FavoriteStore
}

func NewAdminHandler(users UserStore, planets PlanetStore, characters CharacterStore, favorites FavoriteStore) *AdminHandler {
	return &AdminHandler{users: users, planets: planets, characters: characters, favorites: favorites}
}

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	IsActive *bool  `json:"is_active" binding:"required"`
}

type modelCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

func (h *AdminHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	counters := []struct {
		name  string
		count func(context.Context) (int64, error)
	}{
		{"users", h.users.Count},
		{"planets", h.planets.Count},
		{"characters", h.characters.Count},
		{"favorites", h.favorites.Count},
	}
	out := make([]modelCount, 0, len(counters))
	for _, m := range counters {
		n, err := m.count(ctx)
		if err != nil {
			_ = c.Error(err)
			return
		}
		out = append(out, modelCount{Name: m.name, Count: n})
	}
	c.JSON(http.StatusOK, gin.H{"models": out})
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		_ = c.Error(apierror.BadRequest("invalid password").With("error", err.Error()))
		return
	}
	u := models.User{Email: req.Email, Password: string(hash), IsActive: *req.IsActive}
	if err := h.users.Create(c.Request.Context(), &u); err != nil {
		storeError(c, err, "user")
		return
	}
	logger.FromGin(c).Info("user created", zap.Uint("user_id", u.ID))
	c.JSON(http.StatusOK, u)
}

func (h *AdminHandler) CreatePlanet(c *gin.Context) {
	var p models.Planet
	if !bindJSON(c, &p) {
		return
	}
	if p.Name == "" {
		_ = c.Error(apierror.BadRequest("name is required"))
		return
	}
	p.ID = 0
	if err := h.planets.Create(c.Request.Context(), &p); err != nil {
		storeError(c, err, "planet")
		return
	}
	logger.FromGin(c).Info("planet created", zap.Uint("planet_id", p.ID), zap.String("name", p.Name))
	c.JSON(http.StatusOK, p)
}

func (h *AdminHandler) CreateCharacter(c *gin.Context) {
	var ch models.Character
	if !bindJSON(c, &ch) {
		return
	}
	if ch.Name == "" {
		_ = c.Error(apierror.BadRequest("name is required"))
		return
	}
	ch.ID = 0
	ch.Planet = nil
	if err := h.characters.Create(c.Request.Context(), &ch); err != nil {
		storeError(c, err, "character")
		return
	}
	logger.FromGin(c).Info("character created", zap.Uint("character_id", ch.ID), zap.String("name", ch.Name))
	c.JSON(http.StatusOK, ch)
}

// Delete removes one row of the model named in the path.
func (h *AdminHandler) Delete(c *gin.Context) {
	model := c.Param("model")
	var del func(context.Context, uint) error
	switch model {
	case "users":
		del = h.users.Delete
	case "planets":
		del = h.planets.Delete
	case "characters":
		del = h.characters.Delete
	case "favorites":
		del = h.favorites.Delete
	default:
		_ = c.Error(apierror.NotFound("unknown model").With("model", model))
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := del(c.Request.Context(), id); err != nil {
		storeError(c, err, model[:len(model)-1])
		return
	}
	logger.FromGin(c).Info("admin delete", zap.String("model", model), zap.Uint("id", id))
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
