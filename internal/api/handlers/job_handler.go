package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/workmatch/internal/services"
)

type JobHandler struct {
	svc services.JobService
}

func NewJobHandler(svc services.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

func (h *JobHandler) Create(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req services.JobInput
	if !bindJSON(c, "JobHandler.Create", &req) {
		return
	}

	job, err := h.svc.Create(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	job, err := h.svc.Get(c.Request.Context(), id, c.Param("job_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req services.JobInput
	if !bindJSON(c, "JobHandler.Update", &req) {
		return
	}

	job, err := h.svc.Update(c.Request.Context(), id, c.Param("job_id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}
