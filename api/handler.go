package api

import (
	"errors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"log"
	"net/http"
	"starwars-api/model"
	"starwars-api/services"
	"strconv"
)

const (
	msgMissingFields   = "Todos los datos son necesarios"
	msgUserExists      = "El usuario ya existe, intentalo de nuevo"
	msgUserCreated     = "Registrada/o"
	msgUserNotFound    = "Usuario no encontrado"
	msgUserDeleted     = "Usuario eliminado correctamente"
	msgInvalidBody     = "Cuerpo de la petición inválido"
	msgNoTarget        = "Indica vehiculo_id, personaje_id o planeta_id"
	msgFavoriteExists  = "Este elemento ya está en los favoritos"
	msgFavoriteAdded   = "Favorito añadido correctamente"
	msgFavoriteAddErr  = "Error al añadir favorito"
	msgFavoriteMissing = "Favorito no encontrado"
	msgFavoriteRemoved = "Favorito eliminado correctamente"
	msgFavoriteDelErr  = "Error al eliminar favorito"
	msgInternal        = "Error interno del servidor"
)

// Handler serves the public API.
type Handler struct {
	Catalog   *services.CatalogService
	Users     *services.UserService
	Favorites *services.FavoriteService
}

func NewHandler(gdb *gorm.DB) *Handler {
	return &Handler{
		Catalog:   &services.CatalogService{DB: gdb},
		Users:     &services.UserService{DB: gdb},
		Favorites: &services.FavoriteService{DB: gdb},
	}
}

// Register mounts every endpoint on r.
func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/personajes", h.ListCharacters)
	r.GET("/personajes/:id", h.GetCharacter)
	r.GET("/planetas", h.ListPlanets)
	r.GET("/planetas/:id", h.GetPlanet)
	r.GET("/vehiculos", h.ListVehicles)
	r.GET("/vehiculos/:id", h.GetVehicle)

	r.POST("/usuarios", h.CreateUser)
	r.GET("/usuarios/:id", h.GetUser)
	r.DELETE("/usuarios/:id", h.DeleteUser)
	r.GET("/usuarios/:id/favoritos", h.ListFavorites)

	r.POST("/activar_favorito/:id", h.ActivateFavorite)
	r.DELETE("/desactivar_favorito/:id", h.DeactivateFavorite)
}

func message(text string) gin.H {
	return gin.H{"Mensaje": text}
}

// parseID mirrors an integer route converter: anything that is not a
// positive integer is treated as an unknown resource.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func internalError(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, message(msgInternal))
}

// writeOne answers a get-by-id lookup.
func writeOne[T model.Serializer](c *gin.Context, row T, err error, notFound string) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, row.Serialize())
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, message(notFound))
	default:
		internalError(c, err)
	}
}

func writeList[T model.Serializer](c *gin.Context, rows []T, err error) {
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.SerializeAll(rows))
}
