// Package handlers implements SPEC_FULL.md §9.3's asynchronous job API,
// grounded on the teacher's internal/api/handlers package (same Handler-
// struct-plus-gin.Context method shape), repointed from synchronous
// calendar endpoints to a queued optimization run.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ricferreira/roster-optimizer/internal/assistant"
	"github.com/ricferreira/roster-optimizer/internal/models"
	"github.com/ricferreira/roster-optimizer/internal/roster"
)

// JobStatus is a roster job's lifecycle state, as returned by GET /api/rosters/:id.
type JobStatus string

const (
	StatusQueued  JobStatus = "queued"
	StatusRunning JobStatus = "running"
	StatusOptimal JobStatus = "optimal"
	StatusFailed  JobStatus = "failed"
)

type job struct {
	Status     JobStatus
	Grid       *models.Grid
	Diagnostic string
}

// Handler holds everything the HTTP surface needs: the orchestrator that
// runs one optimization, the optional advisory explainer, and an
// in-memory job table (spec.md §5: concurrency exists only at this
// queue layer, never inside one run).
type Handler struct {
	orchestrator *roster.Orchestrator
	explainer    *assistant.Explainer

	mu   sync.Mutex
	jobs map[string]*job
}

// NewHandler wires a Handler against an already-constructed Orchestrator.
// explainer may be nil (disabled).
func NewHandler(orchestrator *roster.Orchestrator, explainer *assistant.Explainer) *Handler {
	return &Handler{
		orchestrator: orchestrator,
		explainer:    explainer,
		jobs:         make(map[string]*job),
	}
}

// SubmitRoster handles POST /api/rosters: accepts a JSON body shaped like
// roster.Inputs (models.Inputs), assigns a job id, and runs the
// optimizer on a background goroutine.
func (h *Handler) SubmitRoster(c *gin.Context) {
	var in models.Inputs
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := uuid.NewString()
	h.mu.Lock()
	h.jobs[id] = &job{Status: StatusQueued}
	h.mu.Unlock()

	go h.run(id, in)

	c.JSON(http.StatusAccepted, gin.H{"id": id, "status": StatusQueued})
}

func (h *Handler) run(id string, in models.Inputs) {
	h.setStatus(id, StatusRunning, nil, "")

	res, err := h.orchestrator.Run(context.Background(), in)
	if err != nil {
		diagnostic := err.Error()
		var infeasible *roster.InfeasibleModel
		if errors.As(err, &infeasible) && h.explainer != nil {
			if explanation := h.explainer.Explain(context.Background(), infeasible, in); explanation != "" {
				diagnostic = explanation
			}
		}
		h.setStatus(id, StatusFailed, nil, diagnostic)
		return
	}

	grid := res.Grid
	h.setStatus(id, StatusOptimal, &grid, "")
}

func (h *Handler) setStatus(id string, status JobStatus, grid *models.Grid, diagnostic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	j, ok := h.jobs[id]
	if !ok {
		return
	}
	j.Status = status
	j.Grid = grid
	j.Diagnostic = diagnostic
}

// GetRoster handles GET /api/rosters/:id.
func (h *Handler) GetRoster(c *gin.Context) {
	id := c.Param("id")

	h.mu.Lock()
	j, ok := h.jobs[id]
	h.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown job id"})
		return
	}

	resp := gin.H{"status": j.Status}
	switch j.Status {
	case StatusOptimal:
		resp["grid"] = j.Grid
	case StatusFailed:
		resp["diagnostic"] = j.Diagnostic
	}
	c.JSON(http.StatusOK, resp)
}
