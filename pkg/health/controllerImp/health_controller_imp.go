package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type HealthCtrl struct {
	db      *gorm.DB // nil when the in-memory storage is active
	storage string
}

func NewHealthCtrl(db *gorm.DB, storage string) *HealthCtrl {
	return &HealthCtrl{db: db, storage: storage}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			dbOK = false
			dbErr = "db.DB(): " + err.Error()
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbOK = false
			dbErr = "ping: " + err.Error()
		}
	}
	// the in-memory storage has nothing to ping

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": dbOK},
		"storage":    h.storage,
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": sub{OK: dbOK, Err: dbErr},
		},
		"time": time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}
