package handlers

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"restaurant-pos/middleware"
)

// Handler carries the dependencies shared by every endpoint
type Handler struct {
	DB     *gorm.DB
	Log    *zap.Logger
	Tokens *middleware.TokenIssuer
	Now    func() time.Time
}

func New(db *gorm.DB, log *zap.Logger, tokens *middleware.TokenIssuer) *Handler {
	return &Handler{DB: db, Log: log, Tokens: tokens, Now: time.Now}
}
