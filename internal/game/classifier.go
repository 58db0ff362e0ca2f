package game

import "lucky888_backend/internal/model"

// Порог "большого" числа
const bigThreshold = 500

// Стриты сравниваются как строки в порядке выпадения, с переходом через 0
var straights = map[string]struct{}{
	"012": {}, "123": {}, "234": {}, "345": {}, "456": {},
	"567": {}, "678": {}, "789": {}, "890": {}, "901": {},
}

// ClassifyPattern определяет комбинацию. Порядок проверки: леопард, стрит, пара
func ClassifyPattern(o model.Outcome) model.PatternCategory {
	if o[0] == o[1] && o[1] == o[2] {
		return model.PatternLeopard
	}
	if _, ok := straights[o.String()]; ok {
		return model.PatternStraight
	}
	if o[0] == o[1] || o[0] == o[2] || o[1] == o[2] {
		return model.PatternPair
	}
	return model.PatternNone
}

func IsBig(o model.Outcome) bool {
	return o.Value() >= bigThreshold
}

func IsSmall(o model.Outcome) bool {
	return !IsBig(o)
}

func IsOdd(o model.Outcome) bool {
	return o.Value()%2 != 0
}

func IsEven(o model.Outcome) bool {
	return !IsOdd(o)
}

// propertyHolds выполняется ли условие категории-свойства для исхода
func propertyHolds(c model.BetCategory, o model.Outcome) bool {
	big, odd := IsBig(o), IsOdd(o)
	switch c {
	case model.Big:
		return big
	case model.Small:
		return !big
	case model.Odd:
		return odd
	case model.Even:
		return !odd
	case model.BigOdd:
		return big && odd
	case model.BigEven:
		return big && !odd
	case model.SmallOdd:
		return !big && odd
	case model.SmallEven:
		return !big && !odd
	}
	return false
}
