package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/workmatch/internal/services"
)

type MatchHandler struct {
	svc services.MatchService
}

func NewMatchHandler(svc services.MatchService) *MatchHandler {
	return &MatchHandler{svc: svc}
}

// WorkersForJob lists the best workers for a job owned by the caller.
func (h *MatchHandler) WorkersForJob(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	jobID := c.Param("job_id")
	out, err := h.svc.WorkersForJob(c.Request.Context(), jobID, id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job_id":  jobID,
		"count":   len(out),
		"matches": out,
	})
}

// JobsForWorker lists the best open jobs for the calling worker.
func (h *MatchHandler) JobsForWorker(c *gin.Context) {
	id, ok := requireIdentity(c)
	if !ok {
		return
	}

	out, err := h.svc.JobsForWorker(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(out),
		"matches": out,
	})
}
