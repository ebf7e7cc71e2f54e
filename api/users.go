package api

import (
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
	"starwars-api/services"
)

// POST /usuarios
func (h *Handler) CreateUser(c *gin.Context) {
	var in services.CreateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, message(msgMissingFields))
		return
	}

	user, err := h.Users.CreateUser(c.Request.Context(), in)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"Mensaje": msgUserCreated, "usuario": user.Serialize()})
	case errors.Is(err, services.ErrMissingFields):
		c.JSON(http.StatusBadRequest, message(msgMissingFields))
	case errors.Is(err, services.ErrUserExists):
		// Duplicates are reported with 200, not 409.
		c.JSON(http.StatusOK, message(msgUserExists))
	default:
		internalError(c, err)
	}
}

// GET /usuarios/:id
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, message(msgUserNotFound))
		return
	}
	user, err := h.Users.GetUserByID(c.Request.Context(), id)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, user.Serialize())
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, message(msgUserNotFound))
	default:
		internalError(c, err)
	}
}

// DELETE /usuarios/:id
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, message(msgUserNotFound))
		return
	}
	err := h.Users.DeleteUser(c.Request.Context(), id)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, message(msgUserDeleted))
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, message(msgUserNotFound))
	default:
		internalError(c, err)
	}
}
