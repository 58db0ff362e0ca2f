package lucky

import (
	"context"

	"lucky888_backend/internal/middleware"
	"lucky888_backend/internal/model"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Spin разыгрывает раунд по текущим ставкам
func (s *serv) Spin(ctx context.Context) (*model.RoundResult, error) {
	t, err := s.table(ctx)
	if err != nil {
		return nil, err
	}

	res, err := t.Spin(ctx)
	if err != nil {
		return nil, s.reject(ctx, "spin", err)
	}

	// Обновляем статистику
	staked := res.HistoryEntry.TotalStaked
	s.statsRepo.UpdateState(decimal.NewFromInt(staked), res.TotalWinnings)
	s.metrics.RoundResolved(staked, res.TotalWinnings)

	sessionID, _ := middleware.SessionIDFromContext(ctx)
	s.log.Info("round resolved",
		zap.String("session_id", sessionID),
		zap.Int64("round_id", res.HistoryEntry.ID),
		zap.Stringer("outcome", res.Outcome),
		zap.String("pattern", string(res.Pattern)),
		zap.Int64("total_staked", staked),
		zap.String("total_winnings", res.TotalWinnings.String()),
	)

	return res, nil
}
