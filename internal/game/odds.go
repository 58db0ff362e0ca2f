package game

import (
	"lucky888_backend/internal/model"

	"github.com/shopspring/decimal"
)

// Categories все категории в порядке отображения
var Categories = []model.BetCategory{
	model.Leopard, model.Straight, model.Pair, model.Custom,
	model.Big, model.Small, model.Odd, model.Even,
	model.BigOdd, model.BigEven, model.SmallOdd, model.SmallEven,
}

// Таблица коэффициентов. Не меняется во время работы
var odds = map[model.BetCategory]decimal.Decimal{
	model.Leopard:   decimal.NewFromInt(50),
	model.Straight:  decimal.NewFromInt(40),
	model.Pair:      decimal.NewFromInt(3),
	model.Custom:    decimal.NewFromInt(100),
	model.Big:       decimal.RequireFromString("1.95"),
	model.Small:     decimal.RequireFromString("1.95"),
	model.Odd:       decimal.RequireFromString("1.95"),
	model.Even:      decimal.RequireFromString("1.95"),
	model.BigOdd:    decimal.RequireFromString("3.8"),
	model.BigEven:   decimal.RequireFromString("3.8"),
	model.SmallOdd:  decimal.RequireFromString("3.8"),
	model.SmallEven: decimal.RequireFromString("3.8"),
}

var labels = map[model.BetCategory]string{
	model.Leopard:   "豹子",
	model.Straight:  "顺子",
	model.Pair:      "对子",
	model.Custom:    "自选号",
	model.Big:       "大",
	model.Small:     "小",
	model.Odd:       "单",
	model.Even:      "双",
	model.BigOdd:    "大单",
	model.BigEven:   "大双",
	model.SmallOdd:  "小单",
	model.SmallEven: "小双",
}

// Multiplier коэффициент категории. Для неизвестной категории - ноль
func Multiplier(c model.BetCategory) decimal.Decimal {
	return odds[c]
}

func Label(c model.BetCategory) string {
	return labels[c]
}

func IsKnownCategory(c model.BetCategory) bool {
	_, ok := odds[c]
	return ok
}

// OddsTable таблица коэффициентов для клиента
func OddsTable() []model.OddsEntry {
	res := make([]model.OddsEntry, 0, len(Categories))
	for _, c := range Categories {
		res = append(res, model.OddsEntry{
			Category:   c,
			Label:      labels[c],
			Multiplier: odds[c],
		})
	}
	return res
}
