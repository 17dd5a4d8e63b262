package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/renitt0/Sudoku-Solver/internal/domain"
	"github.com/renitt0/Sudoku-Solver/internal/infrastructure/storage"
	"github.com/renitt0/Sudoku-Solver/internal/platform/ratelimiter"
	"github.com/renitt0/Sudoku-Solver/internal/usecase"
	"github.com/renitt0/Sudoku-Solver/internal/validator"
)

type Handler struct {
	UC      *usecase.Service
	Log     zerolog.Logger
	Limiter *ratelimiter.PerKey
}

func New(uc *usecase.Service, log zerolog.Logger, rl *ratelimiter.PerKey) *Handler {
	return &Handler{UC: uc, Log: log, Limiter: rl}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/health", h.handleHealth)
	p := r.Group("/api/v1/puzzles")
	p.POST("/solve", h.rateLimit, h.handleSolve)
	p.GET("/history", h.handleHistory)
	p.GET("/:id", h.handleGet)
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) rateLimit(c *gin.Context) {
	if !h.Limiter.Allow(c.ClientIP(), time.Now()) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
	}
}

// ---- Solve ----

type solveReq struct {
	Board [][]int `json:"board" binding:"required"`
}

type solveResp struct {
	*domain.Puzzle
	Nodes int `json:"nodes"`
}

func (h *Handler) handleSolve(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	grid, err := validator.ParseBoard(req.Board)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, st, err := h.UC.SolveAndRecord(c.Request.Context(), grid)
	switch {
	case errors.Is(err, usecase.ErrConflicts):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"conflicts": validator.Conflicts(&grid),
		})
		return
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "solve timed out"})
		return
	case err != nil:
		h.Log.Err(err).Msg("solve request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, solveResp{Puzzle: p, Nodes: st.Nodes})
}

// ---- History ----

func (h *Handler) handleHistory(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	rows, err := h.UC.History(c.Request.Context(), skip, limit)
	if err != nil {
		h.Log.Err(err).Msg("history request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ---- Get ----

func (h *Handler) handleGet(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid puzzle id"})
		return
	}
	p, err := h.UC.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "puzzle not found"})
		return
	case err != nil:
		h.Log.Err(err).Msg("get request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}
