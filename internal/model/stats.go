package model

import "github.com/shopspring/decimal"

// Stats - сводная статистика по всем раундам
type Stats struct {
	TotalRounds int64
	TotalStaked decimal.Decimal
	TotalPayout decimal.Decimal
	CurrentRTP  float64 // TotalPayout/TotalStaked*100
	WindowRTP   float64 // RTP в окне последних раундов
	WindowSize  int
}
