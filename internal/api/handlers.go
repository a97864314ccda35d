package api

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/courtregistry/admin-api/internal/cache"
	"github.com/courtregistry/admin-api/internal/config"
	"github.com/courtregistry/admin-api/internal/database"
	"github.com/courtregistry/admin-api/internal/schedule"
	"github.com/courtregistry/admin-api/internal/session"
	"github.com/courtregistry/admin-api/pkg/logger"
)

// Handlers holds all HTTP handlers
type Handlers struct {
	db     *gorm.DB
	cache  cache.Cache
	logger *logger.Logger
	cfg    *config.Config
}

// NewHandlers creates a new handlers instance
func NewHandlers(db *gorm.DB, cache cache.Cache, logger *logger.Logger, cfg *config.Config) *Handlers {
	return &Handlers{
		db:     db,
		cache:  cache,
		logger: logger,
		cfg:    cfg,
	}
}

// ListCauseLists returns a filtered, paginated page of hearing entries
func (h *Handlers) ListCauseLists(c *gin.Context) {
	query, _ := h.causeListQuery(c, false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		h.respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	var causeLists []database.CauseList
	if err := query.
		Order("hearing_date ASC, hearing_time ASC").
		Offset(offset).Limit(limit).
		Find(&causeLists).Error; err != nil {
		h.respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cause_lists": causeLists,
		"total":       total,
		"total_pages": int(math.Ceil(float64(total) / float64(limit))),
		"page":        page,
		"limit":       limit,
	})
}

// CauseListCalendar projects the filtered hearing entries into calendar
// events. The window defaults to the current week when no period or
// explicit date range is given.
func (h *Handlers) CauseListCalendar(c *gin.Context) {
	query, window := h.causeListQuery(c, true)

	var causeLists []database.CauseList
	if err := query.Order("hearing_date ASC, hearing_time ASC").Find(&causeLists).Error; err != nil {
		h.respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	loc := h.cfg.Location()
	events := schedule.Project(causeLists, time.Now().In(loc), schedule.Options{
		DefaultHour: h.cfg.DefaultHearingHour,
		Duration:    h.cfg.HearingDuration,
		Location:    loc,
	})

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"range": gin.H{
			"from":  window.FromDate(),
			"to":    window.ToDate(),
			"label": window.Label(),
		},
	})
}

// GetCauseList returns a single hearing entry
func (h *Handlers) GetCauseList(c *gin.Context) {
	causeList, ok := h.findCauseList(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": causeList})
}

// CreateCauseList persists a new hearing entry
func (h *Handlers) CreateCauseList(c *gin.Context) {
	var req struct {
		RegistryID  uint   `json:"registry_id"`
		CourtID     uint   `json:"court_id"`
		JudgeID     uint   `json:"judge_id"`
		CaseTitle   string `json:"case_title"`
		SuitNo      string `json:"suit_no"`
		CaseType    string `json:"case_type"`
		HearingDate string `json:"hearing_date" binding:"required"`
		HearingTime string `json:"hearing_time"`
		JudgeName   string `json:"judge_name"`
		Status      string `json:"status"`
		Remarks     string `json:"remarks"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Status == "" {
		req.Status = database.StatusActive
	}

	causeList := database.CauseList{
		RegistryID:  req.RegistryID,
		CourtID:     req.CourtID,
		JudgeID:     req.JudgeID,
		CaseTitle:   req.CaseTitle,
		SuitNo:      req.SuitNo,
		CaseType:    req.CaseType,
		HearingDate: req.HearingDate,
		HearingTime: req.HearingTime,
		JudgeName:   req.JudgeName,
		Status:      req.Status,
		Remarks:     req.Remarks,
	}

	if err := h.db.Create(&causeList).Error; err != nil {
		h.respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Info("Cause list created",
		"id", causeList.ID,
		"suit_no", causeList.SuitNo,
		"hearing_date", causeList.HearingDate,
		"actor", h.actorName(c),
	)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": causeList})
}

// UpdateCauseList applies a partial update. Only fields present in the
// body are replaced, whole-field; a drag-reschedule sends exactly
// hearing_date and hearing_time.
func (h *Handlers) UpdateCauseList(c *gin.Context) {
	causeList, ok := h.findCauseList(c)
	if !ok {
		return
	}

	var req struct {
		RegistryID  *uint   `json:"registry_id"`
		CourtID     *uint   `json:"court_id"`
		JudgeID     *uint   `json:"judge_id"`
		CaseTitle   *string `json:"case_title"`
		SuitNo      *string `json:"suit_no"`
		CaseType    *string `json:"case_type"`
		HearingDate *string `json:"hearing_date"`
		HearingTime *string `json:"hearing_time"`
		JudgeName   *string `json:"judge_name"`
		Status      *string `json:"status"`
		Remarks     *string `json:"remarks"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	updates := map[string]interface{}{}
	setIfPresentUint(updates, "registry_id", req.RegistryID)
	setIfPresentUint(updates, "court_id", req.CourtID)
	setIfPresentUint(updates, "judge_id", req.JudgeID)
	setIfPresent(updates, "case_title", req.CaseTitle)
	setIfPresent(updates, "suit_no", req.SuitNo)
	setIfPresent(updates, "case_type", req.CaseType)
	setIfPresent(updates, "hearing_date", req.HearingDate)
	setIfPresent(updates, "hearing_time", req.HearingTime)
	setIfPresent(updates, "judge_name", req.JudgeName)
	setIfPresent(updates, "status", req.Status)
	setIfPresent(updates, "remarks", req.Remarks)

	if len(updates) == 0 {
		h.respondError(c, http.StatusBadRequest, "no fields to update")
		return
	}

	if err := h.db.Model(&causeList).Updates(updates).Error; err != nil {
		h.respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	h.db.First(&causeList, causeList.ID)

	h.logger.Info("Cause list updated",
		"id", causeList.ID,
		"fields", len(updates),
		"actor", h.actorName(c),
	)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": causeList})
}

// DeleteCauseList removes a hearing entry
func (h *Handlers) DeleteCauseList(c *gin.Context) {
	causeList, ok := h.findCauseList(c)
	if !ok {
		return
	}

	if err := h.db.Delete(&causeList).Error; err != nil {
		h.respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Info("Cause list deleted", "id", causeList.ID, "actor", h.actorName(c))

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// HealthCheck returns the health status
func (h *Handlers) HealthCheck(c *gin.Context) {
	var count int64
	dbHealthy := h.db.Model(&database.CauseList{}).Count(&count).Error == nil

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealthy,
		"cache":    h.cache.Stats(),
		"time":     time.Now().Unix(),
	})
}

// CacheStats returns cache statistics
func (h *Handlers) CacheStats(c *gin.Context) {
	stats := h.cache.Stats()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}

// causeListQuery builds the filtered query and the date window it was
// scoped to. Explicit hearing_date_from/to parameters win over the
// symbolic period selector; the calendar falls back to the default
// period when neither is present, the flat list stays unbounded.
func (h *Handlers) causeListQuery(c *gin.Context, defaultWindow bool) (*gorm.DB, schedule.Window) {
	query := h.db.Model(&database.CauseList{})

	for param, column := range map[string]string{
		"registry_id": "registry_id",
		"court_id":    "court_id",
		"judge_id":    "judge_id",
		"status":      "status",
		"case_type":   "case_type",
	} {
		if value := c.Query(param); value != "" {
			query = query.Where(column+" = ?", value)
		}
	}

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("case_title LIKE ? OR suit_no LIKE ? OR judge_name LIKE ?", like, like, like)
	}

	loc := h.cfg.Location()
	window := schedule.ResolveWindow(schedule.DefaultPeriod, time.Now().In(loc))

	from := c.Query("hearing_date_from")
	to := c.Query("hearing_date_to")
	if from == "" && to == "" {
		period, ok := schedule.ParsePeriod(c.Query("period"))
		if !ok && !defaultWindow {
			return query, window
		}
		if !ok {
			period = schedule.DefaultPeriod
		}
		window = schedule.ResolveWindow(period, time.Now().In(loc))
		from, to = window.FromDate(), window.ToDate()
	}

	if from != "" {
		query = query.Where("hearing_date >= ?", from)
	}
	if to != "" {
		query = query.Where("hearing_date <= ?", to)
	}

	return query, window
}

func (h *Handlers) findCauseList(c *gin.Context) (database.CauseList, bool) {
	var causeList database.CauseList

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "invalid cause list ID")
		return causeList, false
	}

	if err := h.db.First(&causeList, id).Error; err != nil {
		h.respondError(c, http.StatusNotFound, "cause list not found")
		return causeList, false
	}

	return causeList, true
}

func (h *Handlers) respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success":    false,
		"error":      message,
		"request_id": c.GetString(RequestIDKey),
	})
}

func (h *Handlers) actorName(c *gin.Context) string {
	if identity, ok := session.FromContext(c); ok && identity.Name != "" {
		return identity.Name
	}
	return "anonymous"
}

func setIfPresent(updates map[string]interface{}, column string, value *string) {
	if value != nil {
		updates[column] = *value
	}
}

func setIfPresentUint(updates map[string]interface{}, column string, value *uint) {
	if value != nil {
		updates[column] = *value
	}
}
