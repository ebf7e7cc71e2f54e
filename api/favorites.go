package api

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
	"starwars-api/model"
	"starwars-api/services"
)

func bindTarget(c *gin.Context) (model.FavoriteTarget, bool) {
	var target model.FavoriteTarget
	if err := c.ShouldBindJSON(&target); err != nil {
		c.JSON(http.StatusBadRequest, message(msgInvalidBody))
		return target, false
	}
	return target, true
}

func storeError(c *gin.Context, msg string, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"Mensaje": msg, "Error": err.Error()})
}

// POST /activar_favorito/:id
func (h *Handler) ActivateFavorite(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, message(msgUserNotFound))
		return
	}
	target, ok := bindTarget(c)
	if !ok {
		return
	}

	fav, err := h.Favorites.Activate(c.Request.Context(), userID, target)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"Mensaje": msgFavoriteAdded, "favorito": fav.Serialize()})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, message(msgUserNotFound))
	case errors.Is(err, services.ErrFavoriteExists):
		c.JSON(http.StatusBadRequest, message(msgFavoriteExists))
	case errors.Is(err, services.ErrNoTarget):
		c.JSON(http.StatusBadRequest, message(msgNoTarget))
	default:
		storeError(c, msgFavoriteAddErr, err)
	}
}

// DELETE /desactivar_favorito/:id
func (h *Handler) DeactivateFavorite(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, message(msgFavoriteMissing))
		return
	}
	target, ok := bindTarget(c)
	if !ok {
		return
	}

	err := h.Favorites.Deactivate(c.Request.Context(), userID, target)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, message(msgFavoriteRemoved))
	case errors.Is(err, services.ErrFavoriteNotFound):
		c.JSON(http.StatusNotFound, message(msgFavoriteMissing))
	default:
		storeError(c, msgFavoriteDelErr, err)
	}
}

// GET /usuarios/:id/favoritos
func (h *Handler) ListFavorites(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, message(msgUserNotFound))
		return
	}
	favs, err := h.Favorites.ListByUser(c.Request.Context(), userID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, model.SerializeAll(favs))
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, message(msgUserNotFound))
	default:
		internalError(c, err)
	}
}
