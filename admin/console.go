package admin

import (
	"errors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"log"
	"net/http"
	"starwars-api/db"
	"starwars-api/model"
	"strconv"
)

// Console serves create/read/update/delete views for every registered entity.
type Console struct {
	db       *gorm.DB
	registry *Registry
}

func NewConsole(gdb *gorm.DB, registry *Registry) *Console {
	return &Console{db: gdb, registry: registry}
}

func (a *Console) Register(r gin.IRoutes) {
	r.GET("", a.Index)
	r.GET("/:entity", a.List)
	r.GET("/:entity/:id", a.Get)
	r.POST("/:entity", a.Create)
	r.PUT("/:entity/:id", a.Update)
	r.DELETE("/:entity/:id", a.Delete)
}

func errorBody(msg string) gin.H {
	return gin.H{"error": msg}
}

func (a *Console) descriptor(c *gin.Context) (Descriptor, bool) {
	d, ok := a.registry.Lookup(c.Param("entity"))
	if !ok {
		c.JSON(http.StatusNotFound, errorBody("unknown entity"))
	}
	return d, ok
}

// load fetches the row named by :id into a new record of d's type.
func (a *Console) load(c *gin.Context, d Descriptor) (Record, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, errorBody("not found"))
		return nil, false
	}
	rec := d.newRecord()
	if err := a.db.WithContext(c.Request.Context()).First(rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, errorBody("not found"))
		} else {
			writeStoreError(c, err)
		}
		return nil, false
	}
	return rec, true
}

func writeStoreError(c *gin.Context, err error) {
	if errors.Is(err, model.ErrPasswordRequired) {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	if db.IsDuplicateKey(err) || db.IsForeignKeyViolation(err) {
		c.JSON(http.StatusConflict, errorBody(err.Error()))
		return
	}
	log.Printf("admin %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, errorBody(err.Error()))
}

// GET /admin
func (a *Console) Index(c *gin.Context) {
	c.JSON(http.StatusOK, a.registry.All())
}

// GET /admin/:entity
func (a *Console) List(c *gin.Context) {
	d, ok := a.descriptor(c)
	if !ok {
		return
	}
	rows, err := d.list(a.db.WithContext(c.Request.Context()))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /admin/:entity/:id
func (a *Console) Get(c *gin.Context) {
	d, ok := a.descriptor(c)
	if !ok {
		return
	}
	rec, ok := a.load(c, d)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rec.Serialize())
}

// POST /admin/:entity
func (a *Console) Create(c *gin.Context) {
	d, ok := a.descriptor(c)
	if !ok {
		return
	}
	rec := d.newRecord()
	if err := c.ShouldBindJSON(rec); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	if err := a.db.WithContext(c.Request.Context()).Create(rec).Error; err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec.Serialize())
}

// PUT /admin/:entity/:id overlays the body onto the stored row.
func (a *Console) Update(c *gin.Context) {
	d, ok := a.descriptor(c)
	if !ok {
		return
	}
	rec, ok := a.load(c, d)
	if !ok {
		return
	}
	id := rec.PrimaryKey()
	if err := c.ShouldBindJSON(rec); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	if rec.PrimaryKey() != id {
		c.JSON(http.StatusBadRequest, errorBody("id cannot be changed"))
		return
	}
	if err := a.db.WithContext(c.Request.Context()).Save(rec).Error; err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec.Serialize())
}

// DELETE /admin/:entity/:id
func (a *Console) Delete(c *gin.Context) {
	d, ok := a.descriptor(c)
	if !ok {
		return
	}
	rec, ok := a.load(c, d)
	if !ok {
		return
	}
	if err := a.db.WithContext(c.Request.Context()).Delete(rec).Error; err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": rec.PrimaryKey()})
}
