package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"study-tracker/internal/logger"
	"study-tracker/internal/service"
	"study-tracker/internal/store"

	"github.com/gin-gonic/gin"
)

type TrackerHandler struct {
	svc *service.TrackerService
}

func NewTrackerHandler(svc *service.TrackerService) *TrackerHandler {
	return &TrackerHandler{svc: svc}
}

// GET /api/:user
func (h *TrackerHandler) GetUser(c *gin.Context) {
	u, err := h.svc.FetchOrCreateUser(c.Request.Context(), c.Param("user"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, u)
}

// GET /api/:user/subjects
func (h *TrackerHandler) GetSubjects(c *gin.Context) {
	subjects, err := h.svc.Subjects(c.Request.Context(), c.Param("user"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", subjects)
}

// POST /api/:user/subjects  body: full replacement array
func (h *TrackerHandler) ReplaceSubjects(c *gin.Context) {
	body, ok := readCollection(c)
	if !ok {
		return
	}
	stored, err := h.svc.ReplaceSubjects(c.Request.Context(), c.Param("user"), body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Debug("subjects replaced", "user", c.Param("user"))
	c.Data(http.StatusOK, "application/json; charset=utf-8", stored)
}

// DELETE /api/:user/subjects/:id
func (h *TrackerHandler) DeleteSubject(c *gin.Context) {
	remaining, err := h.svc.DeleteSubject(c.Request.Context(), c.Param("user"), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", remaining)
}

// GET /api/:user/dailylogs
func (h *TrackerHandler) GetDailyLogs(c *gin.Context) {
	logs, err := h.svc.DailyLogs(c.Request.Context(), c.Param("user"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", logs)
}

// POST /api/:user/dailylogs  body: full replacement array
func (h *TrackerHandler) ReplaceDailyLogs(c *gin.Context) {
	body, ok := readCollection(c)
	if !ok {
		return
	}
	stored, err := h.svc.ReplaceDailyLogs(c.Request.Context(), c.Param("user"), body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Debug("dailylogs replaced", "user", c.Param("user"))
	c.Data(http.StatusOK, "application/json; charset=utf-8", stored)
}

// readCollection accepts any JSON body and stores it verbatim; nested
// shape is not validated.
func readCollection(c *gin.Context) (json.RawMessage, bool) {
	var body json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return nil, false
	}
	return body, true
}
