package db

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

const healthPingTimeout = 3 * time.Second

// PoolHealth is the connection-pool snapshot reported by /health/db, in the
// same camelCase shape as the rest of the API.
type PoolHealth struct {
	TotalConns    int32  `json:"totalConns"`
	IdleConns     int32  `json:"idleConns"`
	AcquiredConns int32  `json:"acquiredConns"`
	MaxConns      int32  `json:"maxConns"`
	AcquireCount  int64  `json:"acquireCount"`
	AcquireWait   string `json:"acquireWait"`
}

type dbHealthResponse struct {
	Success  bool       `json:"success"`
	Status   string     `json:"status"`
	Database PoolHealth `json:"database"`
	Message  string     `json:"message,omitempty"`
}

// SnapshotPool reads the current pgxpool statistics.
func SnapshotPool(pool *pgxpool.Pool) PoolHealth {
	stat := pool.Stat()
	return PoolHealth{
		TotalConns:    stat.TotalConns(),
		IdleConns:     stat.IdleConns(),
		AcquiredConns: stat.AcquiredConns(),
		MaxConns:      stat.MaxConns(),
		AcquireCount:  stat.AcquireCount(),
		AcquireWait:   stat.AcquireDuration().String(),
	}
}

// HealthHandler serves the database health endpoint: a bounded ping plus the
// pool snapshot, 503 when the database does not answer.
func HealthHandler(pool *pgxpool.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
		defer cancel()

		snapshot := SnapshotPool(pool)
		if err := pool.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, dbHealthResponse{
				Status:   "unavailable",
				Database: snapshot,
				Message:  err.Error(),
			})
		}

		return c.JSON(http.StatusOK, dbHealthResponse{
			Success:  true,
			Status:   "ok",
			Database: snapshot,
		})
	}
}
