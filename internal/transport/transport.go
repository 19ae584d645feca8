// Package transport provides a new server-entity(by ginext) for the search node with handlers to serve endpoints
package transport

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/docker/distribution/uuid"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
	"go.uber.org/zap"
)

type Processor interface {
	ProcessInput(ctx context.Context, task *model.SearchTask) (*model.SearchResult, error)
}

type Options struct {
	GinMode         string
	MaxContentBytes int64
}

type handler struct {
	proc     Processor
	log      *zap.Logger
	maxBytes int64
}

func NewSearchServer(addr string, proc Processor, log *zap.Logger, opts Options) *http.Server {
	if opts.GinMode == "" {
		opts.GinMode = gin.ReleaseMode
	}
	h := &handler{proc: proc, log: log, maxBytes: opts.MaxContentBytes}

	engine := ginext.New(opts.GinMode)
	engine.Use(gin.Recovery(), requestLogger(log))
	engine.GET("/ping", h.HealthCheck)
	engine.POST("/search", h.Search)

	return &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func (h *handler) HealthCheck(ctx *ginext.Context) {
	h.log.Debug("received a healthcheck request")
	ctx.Status(http.StatusOK)
}

func (h *handler) Search(ctx *ginext.Context) {
	if h.maxBytes > 0 {
		// запас на JSON-обертку вокруг content
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, h.maxBytes+64<<10)
	}

	var task model.SearchTask
	if err := ctx.ShouldBindJSON(&task); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ctx.JSON(http.StatusRequestEntityTooLarge, model.ErrorResponse{Error: "request body too large"})
			return
		}
		ctx.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "failed to parse task from body: " + err.Error()})
		return
	}

	if h.maxBytes > 0 && int64(len(task.Content)) > h.maxBytes {
		ctx.JSON(http.StatusRequestEntityTooLarge, model.ErrorResponse{TaskID: task.TaskID, Error: "content too large"})
		return
	}

	if task.TaskID == "" {
		task.TaskID = uuid.Generate().String()
	}
	log := h.log.With(zap.String("tid", task.TaskID), zap.Stringer("mode", task.Config().Mode()))
	log.Debug("received task", zap.Int("content_bytes", len(task.Content)))

	res, err := h.proc.ProcessInput(ctx.Request.Context(), &task)
	switch {
	case errors.Is(err, model.ErrInvalidPattern):
		log.Info("rejected task", zap.Error(err))
		ctx.JSON(http.StatusUnprocessableEntity, model.ErrorResponse{TaskID: task.TaskID, Error: err.Error()})
		return
	case err != nil:
		log.Warn("failed to process task", zap.Error(err))
		ctx.JSON(http.StatusServiceUnavailable, model.ErrorResponse{TaskID: task.TaskID, Error: err.Error()})
		return
	}

	log.Debug("calculated result", zap.Int("matches", len(res.Output)), zap.Uint64("hash", res.HashSumm))
	ctx.JSON(http.StatusOK, res)
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// вызов следующего обработчика
		c.Next()

		// после обработки запроса — логируем
		log.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("url", c.Request.URL.String()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
