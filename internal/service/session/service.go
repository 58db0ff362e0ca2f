package session

import (
	"context"
	"fmt"
	"time"

	"lucky888_backend/internal/config"
	"lucky888_backend/internal/game"
	"lucky888_backend/internal/model"
	"lucky888_backend/internal/repository"
	"lucky888_backend/internal/service"
	"lucky888_backend/pkg/token"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Metrics interface {
	SessionCreated()
}

type serv struct {
	gameCfg   config.GameConfig
	jwtCfg    config.JWTConfig
	tableRepo repository.TableRepository
	metrics   Metrics
	log       *zap.Logger
	now       func() time.Time
}

func NewSessionService(
	gameCfg config.GameConfig,
	jwtCfg config.JWTConfig,
	tableRepo repository.TableRepository,
	metrics Metrics,
	log *zap.Logger,
) service.SessionService {
	return &serv{
		gameCfg:   gameCfg,
		jwtCfg:    jwtCfg,
		tableRepo: tableRepo,
		metrics:   metrics,
		log:       log,
		now:       time.Now,
	}
}

// Create открывает новую сессию с пустым столом и стартовым балансом.
// Возвращает ID сессии и access токен
func (s *serv) Create(ctx context.Context) (*model.SessionData, error) {
	sessionID := uuid.NewString()

	state := model.TableState{
		SessionID:    sessionID,
		Balance:      decimal.NewFromInt(s.gameCfg.InitialBalance()),
		Stakes:       map[model.BetCategory]int64{},
		TargetNumber: game.SanitizeTarget(s.gameCfg.DefaultTarget()),
		UpdatedAt:    s.now(),
	}
	if err := s.tableRepo.CreateTable(ctx, state); err != nil {
		return nil, fmt.Errorf("create table: %w", err)
	}

	accessToken, expiresAt, err := token.GenerateAccessToken(
		sessionID,
		s.jwtCfg.AccessTokenSecretKey(),
		s.jwtCfg.AccessTokenDuration(),
	)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	s.metrics.SessionCreated()
	s.log.Info("session created", zap.String("session_id", sessionID))

	return &model.SessionData{
		SessionID:   sessionID,
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		View: model.TableView{
			Balance:      state.Balance,
			Stakes:       state.Stakes,
			TargetNumber: state.TargetNumber,
			Phase:        model.PhaseIdle,
		},
	}, nil
}
