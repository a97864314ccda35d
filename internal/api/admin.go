package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/courtregistry/admin-api/internal/cache"
	"github.com/courtregistry/admin-api/internal/database"
)

// Registries, courts and judges back the admin UI's form dropdowns, so
// their list responses are cached and every write flushes the cache.

// ListRegistries returns all registries
func (h *Handlers) ListRegistries(c *gin.Context) {
	key := cache.ListKey("registries", "")
	if cached, found := h.cache.Get(key); found {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": cached, "from_cache": true})
		return
	}

	var registries []database.Registry
	if err := h.db.Order("name ASC").Find(&registries).Error; err != nil {
		h.respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.cache.Set(key, registries)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": registries})
}

// CreateRegistry persists a new registry
func (h *Handlers) CreateRegistry(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Code        string `json:"code"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	registry := database.Registry{Name: req.Name, Code: req.Code, Description: req.Description}
	if err := h.db.Create(&registry).Error; err != nil {
		h.respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.cache.Clear()
	h.logger.Info("Registry created", "id", registry.ID, "name", registry.Name, "actor", h.actorName(c))
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": registry})
}

// UpdateRegistry replaces a registry's editable fields
func (h *Handlers) UpdateRegistry(c *gin.Context) {
	var registry database.Registry
	if !h.findByID(c, &registry, "registry not found") {
		return
	}

	var req struct {
		Name        string `json:"name" binding:"required"`
		Code        string `json:"code"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	registry.Name = req.Name
	registry.Code = req.Code
	registry.Description = req.Description
	if err := h.db.Save(&registry).Error; err != nil {
		h.respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.cache.Clear()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": registry})
}

// DeleteRegistry removes a registry
func (h *Handlers) DeleteRegistry(c *gin.Context) {
	var registry database.Registry
	if !h.findByID(c, &registry, "registry not found") {
		return
	}

	if err := h.db.Delete(&registry).Error; err != nil {
		h.respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.cache.Clear()
	h.logger.Info("Registry deleted", "id", registry.ID, "actor", h.actorName(c))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListCourts returns courts, optionally scoped to a registry
func (h *Handlers) ListCourts(c *gin.Context) {
	registryID := c.Query("registry_id")
	key := cache.ListKey("courts", registryID)
	if cached, found := h.cache.Get(key); found {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": cached, "from_cache": true})
		return
	}

	query := h.db.Order("name ASC")
	if registryID != "" {
		query = query.Where("registry_id = ?", registryID)
	}

	var courts []database.Court
	if err := query.Find(&courts).Error; err != nil {
		h.respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.cache.Set(key, courts)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": courts})
}

// CreateCourt persists a new court
func (h *Handlers) CreateCourt(c *gin.Context) {
	var req struct {
		RegistryID uint   `json:"registry_id" binding:"required"`
		Name       string `json:"name" binding:"required"`
		CourtType  string `json:"court_type"`
		Location   string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	court := database.Court{
		RegistryID: req.RegistryID,
		Name:       req.Name,
		CourtType:  req.CourtType,
		Location:   req.Location,
	}
	if err := h.db.Create(&court).Error; err != nil {
		h.respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.cache.Clear()
	h.logger.Info("Court created", "id", court.ID, "name", court.Name, "actor", h.actorName(c))
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": court})
}

// UpdateCourt replaces a court's editable fields
func (h *Handlers) UpdateCourt(c *gin.Context) {
	var court database.Court
	if !h.findByID(c, &court, "court not found") {
		return
	}

	var req struct {
		RegistryID uint   `json:"registry_id" binding:"required"`
		Name       string `json:"name" binding:"required"`
		CourtType  string `json:"court_type"`
		Location   string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	court.RegistryID = req.RegistryID
	court.Name = req.Name
	court.CourtType = req.CourtType
	court.Location = req.Location
	if err := h.db.Save(&court).Error; err != nil {
		h.respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.cache.Clear()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": court})
}

// DeleteCourt removes a court
func (h *Handlers) DeleteCourt(c *gin.Context) {
	var court database.Court
	if !h.findByID(c, &court, "court not found") {
		return
	}

	if err := h.db.Delete(&court).Error; err != nil {
		h.respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.cache.Clear()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListJudges returns judges, optionally scoped to a registry
func (h *Handlers) ListJudges(c *gin.Context) {
	registryID := c.Query("registry_id")
	key := cache.ListKey("judges", registryID)
	if cached, found := h.cache.Get(key); found {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": cached, "from_cache": true})
		return
	}

	query := h.db.Order("name ASC")
	if registryID != "" {
		query = query.Where("registry_id = ?", registryID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var judges []database.Judge
	if err := query.Find(&judges).Error; err != nil {
		h.respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.cache.Set(key, judges)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": judges})
}

// CreateJudge persists a new judge
func (h *Handlers) CreateJudge(c *gin.Context) {
	var req struct {
		RegistryID uint   `json:"registry_id" binding:"required"`
		CourtID    uint   `json:"court_id"`
		Name       string `json:"name" binding:"required"`
		Title      string `json:"title"`
		Status     string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Status == "" {
		req.Status = database.StatusActive
	}

	judge := database.Judge{
		RegistryID: req.RegistryID,
		CourtID:    req.CourtID,
		Name:       req.Name,
		Title:      req.Title,
		Status:     req.Status,
	}
	if err := h.db.Create(&judge).Error; err != nil {
		h.respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.cache.Clear()
	h.logger.Info("Judge created", "id", judge.ID, "name", judge.Name, "actor", h.actorName(c))
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": judge})
}

// UpdateJudge replaces a judge's editable fields
func (h *Handlers) UpdateJudge(c *gin.Context) {
	var judge database.Judge
	if !h.findByID(c, &judge, "judge not found") {
		return
	}

	var req struct {
		RegistryID uint   `json:"registry_id" binding:"required"`
		CourtID    uint   `json:"court_id"`
		Name       string `json:"name" binding:"required"`
		Title      string `json:"title"`
		Status     string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	judge.RegistryID = req.RegistryID
	judge.CourtID = req.CourtID
	judge.Name = req.Name
	judge.Title = req.Title
	if req.Status != "" {
		judge.Status = req.Status
	}
	if err := h.db.Save(&judge).Error; err != nil {
		h.respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.cache.Clear()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": judge})
}

// DeleteJudge removes a judge
func (h *Handlers) DeleteJudge(c *gin.Context) {
	var judge database.Judge
	if !h.findByID(c, &judge, "judge not found") {
		return
	}

	if err := h.db.Delete(&judge).Error; err != nil {
		h.respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.cache.Clear()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// findByID loads a record by the :id path parameter into dest.
func (h *Handlers) findByID(c *gin.Context, dest interface{}, notFound string) bool {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "invalid ID")
		return false
	}

	if err := h.db.First(dest, id).Error; err != nil {
		h.respondError(c, http.StatusNotFound, notFound)
		return false
	}

	return true
}
