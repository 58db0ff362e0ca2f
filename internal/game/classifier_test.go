package game

import (
	"testing"

	"lucky888_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPattern(t *testing.T) {
	tests := []struct {
		name    string
		outcome model.Outcome
		want    model.PatternCategory
	}{
		{"leopard", model.Outcome{7, 7, 7}, model.PatternLeopard},
		{"leopard zeros", model.Outcome{0, 0, 0}, model.PatternLeopard},
		{"straight", model.Outcome{1, 2, 3}, model.PatternStraight},
		{"straight 789", model.Outcome{7, 8, 9}, model.PatternStraight},
		{"straight wrap 890", model.Outcome{8, 9, 0}, model.PatternStraight},
		{"straight wrap 901", model.Outcome{9, 0, 1}, model.PatternStraight},
		{"not straight when reordered", model.Outcome{0, 2, 1}, model.PatternNone},
		{"descending is not straight", model.Outcome{3, 2, 1}, model.PatternNone},
		{"pair first two", model.Outcome{3, 3, 1}, model.PatternPair},
		{"pair outer", model.Outcome{4, 1, 4}, model.PatternPair},
		{"pair last two", model.Outcome{2, 9, 9}, model.PatternPair},
		{"none", model.Outcome{6, 5, 1}, model.PatternNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPattern(tt.outcome))
		})
	}
}

func TestClassifyPattern_Exhaustive(t *testing.T) {
	counts := map[model.PatternCategory]int{}
	for a := 0; a < 10; a++ {
		for b := 0; b < 10; b++ {
			for c := 0; c < 10; c++ {
				o := model.Outcome{a, b, c}
				p := ClassifyPattern(o)
				counts[p]++

				if a == b && b == c {
					assert.Equal(t, model.PatternLeopard, p, o.String())
				}
				if p == model.PatternPair {
					assert.False(t, a == b && b == c, "pair on leopard %s", o)
				}

				assert.NotEqual(t, IsBig(o), IsSmall(o), o.String())
				assert.NotEqual(t, IsOdd(o), IsEven(o), o.String())
			}
		}
	}

	assert.Equal(t, 10, counts[model.PatternLeopard])
	assert.Equal(t, 10, counts[model.PatternStraight])
	// 270 исходов ровно с двумя одинаковыми цифрами
	assert.Equal(t, 270, counts[model.PatternPair])
	assert.Equal(t, 1000-10-10-270, counts[model.PatternNone])
}

func TestBigSmallBoundary(t *testing.T) {
	o499 := model.Outcome{4, 9, 9}
	assert.True(t, IsSmall(o499))
	assert.True(t, IsOdd(o499))

	o500 := model.Outcome{5, 0, 0}
	assert.True(t, IsBig(o500))
	assert.True(t, IsEven(o500))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "007", model.Outcome{0, 0, 7}.String())
	assert.Equal(t, 7, model.Outcome{0, 0, 7}.Value())
	assert.Equal(t, 651, model.Outcome{6, 5, 1}.Value())
}
