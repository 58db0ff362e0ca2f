package game

import (
	"lucky888_backend/internal/model"

	"github.com/shopspring/decimal"
)

// Порядок проверки категорий-свойств. Влияет только на порядок вывода
var propertyOrder = []model.BetCategory{
	model.Big, model.Small, model.Odd, model.Even,
	model.BigOdd, model.BigEven, model.SmallOdd, model.SmallEven,
}

// Resolve считает выигрыш по ставкам для выпавшего исхода.
// Свойства проверяются независимо и суммируются, затем CUSTOM, затем одна комбинация
func Resolve(l *Ledger, o model.Outcome, target string) model.Resolution {
	res := model.Resolution{
		Outcome:       o,
		Pattern:       ClassifyPattern(o),
		IsBig:         IsBig(o),
		IsOdd:         IsOdd(o),
		TotalWinnings: decimal.Zero,
	}

	// 1. Свойства: большое/малое, чет/нечет и их сочетания
	for _, c := range propertyOrder {
		if !propertyHolds(c, o) {
			continue
		}
		res.MatchedAttributes = append(res.MatchedAttributes, string(c))
		addWin(&res, c, l.Stake(c))
	}

	// 2. Загаданное число
	if stake := l.Stake(model.Custom); stake > 0 && IsValidTarget(target) && o.String() == target {
		res.IsCustomWin = true
		addWin(&res, model.Custom, stake)
	}

	// 3. Комбинация: платит только та, что выпала
	if pc := patternBet(res.Pattern); pc != "" {
		addWin(&res, pc, l.Stake(pc))
	}

	return res
}

// patternBet категория ставки для комбинации, для NONE - пустая
func patternBet(p model.PatternCategory) model.BetCategory {
	switch p {
	case model.PatternLeopard:
		return model.Leopard
	case model.PatternStraight:
		return model.Straight
	case model.PatternPair:
		return model.Pair
	}
	return ""
}

// addWin начисляет stake*коэффициент, если на категорию есть ставка
func addWin(res *model.Resolution, c model.BetCategory, stake int64) {
	if stake <= 0 {
		return
	}
	mult := Multiplier(c)
	payout := decimal.NewFromInt(stake).Mul(mult)
	res.TotalWinnings = res.TotalWinnings.Add(payout)
	res.Matches = append(res.Matches, model.MatchDetail{
		Category:   c,
		Label:      Label(c),
		Stake:      stake,
		Multiplier: mult,
		Payout:     payout,
	})
}
