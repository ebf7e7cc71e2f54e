package api

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

const (
	msgCharacterNotFound = "Personaje no encontrado"
	msgPlanetNotFound    = "Planeta no encontrado"
	msgVehicleNotFound   = "Vehículo no encontrado"
)

// GET /personajes
func (h *Handler) ListCharacters(c *gin.Context) {
	rows, err := h.Catalog.ListCharacters(c.Request.Context())
	writeList(c, rows, err)
}

// GET /personajes/:id
func (h *Handler) GetCharacter(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, message(msgCharacterNotFound))
		return
	}
	row, err := h.Catalog.GetCharacter(c.Request.Context(), id)
	writeOne(c, row, err, msgCharacterNotFound)
}

// GET /planetas
func (h *Handler) ListPlanets(c *gin.Context) {
	rows, err := h.Catalog.ListPlanets(c.Request.Context())
	writeList(c, rows, err)
}

// GET /planetas/:id
func (h *Handler) GetPlanet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, message(msgPlanetNotFound))
		return
	}
	row, err := h.Catalog.GetPlanet(c.Request.Context(), id)
	writeOne(c, row, err, msgPlanetNotFound)
}

// GET /vehiculos
func (h *Handler) ListVehicles(c *gin.Context) {
	rows, err := h.Catalog.ListVehicles(c.Request.Context())
	writeList(c, rows, err)
}

// GET /vehiculos/:id
func (h *Handler) GetVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, message(msgVehicleNotFound))
		return
	}
	row, err := h.Catalog.GetVehicle(c.Request.Context(), id)
	writeOne(c, row, err, msgVehicleNotFound)
}
