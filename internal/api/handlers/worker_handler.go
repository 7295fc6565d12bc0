package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/workmatch/internal/services"
)

type WorkerHandler struct {
	svc services.WorkerService
}

func NewWorkerHandler(svc services.WorkerService) *WorkerHandler {
	return &WorkerHandler{svc: svc}
}

func (h *WorkerHandler) Me(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	w, err := h.svc.GetMe(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WorkerHandler) UpdateProfile(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req services.ProfileInput
	if !bindJSON(c, "WorkerHandler.UpdateProfile", &req) {
		return
	}

	w, err := h.svc.UpdateProfile(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WorkerHandler) AddEducation(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req services.EducationInput
	if !bindJSON(c, "WorkerHandler.AddEducation", &req) {
		return
	}

	edu, err := h.svc.AddEducation(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, edu)
}

type setTargetJobsRequest struct {
	TargetJobs []services.TargetJobInput `json:"target_jobs"`
}

func (h *WorkerHandler) SetTargetJobs(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req setTargetJobsRequest
	if !bindJSON(c, "WorkerHandler.SetTargetJobs", &req) {
		return
	}

	targets, err := h.svc.SetTargetJobs(c.Request.Context(), id, req.TargetJobs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"target_jobs": targets})
}
