package handlers

import (
	"errors"
	"net/http"

	"tripatlas/database/repository/catalog"
	"tripatlas/models"
	"tripatlas/services/booking"
	"tripatlas/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the multi-step booking session flow.
type BookingHandler struct {
	Service booking.SessionService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.SessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// InitiateSession handles POST /api/booking/session.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var input struct {
		PlanID             string `json:"planId" binding:"required"`
		BasePricePerPerson int64  `json:"basePricePerPerson" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.InitiateSession(c.Request.Context(), input.PlanID, input.BasePricePerPerson)
	if err != nil {
		if errors.Is(err, catalog.ErrPlanNotFound) {
			utils.JSONError(c, http.StatusNotFound, "unknown plan", input.PlanID)
			return
		}
		h.Logger.Error("failed to initiate booking session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to start booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateSession handles PUT /api/booking/session/:sessionID.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var patch models.SelectionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.UpdateSession(c.Request.Context(), sessionID, patch)
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", sessionID)
			return
		}
		h.Logger.Error("failed to update booking session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmBooking handles POST /api/booking/confirm.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	conf, err := h.Service.ConfirmBooking(c.Request.Context(), input.SessionID)
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", input.SessionID)
			return
		}
		h.Logger.Error("failed to confirm booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to confirm booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, conf)
}

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Service.CancelSession(c.Request.Context(), sessionID); err != nil {
		h.Logger.Error("failed to cancel booking session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": sessionID})
}
