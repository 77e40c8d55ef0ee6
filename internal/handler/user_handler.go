package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserHandler serves users. models.User hides the password hash and the
// active flag from JSON output.
type UserHandler struct {
	users UserStore
}

func NewUserHandler(users UserStore) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) List(c *gin.Context) {
	list, err := h.users.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	u, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "user")
		return
	}
	c.JSON(http.StatusOK, u)
}
