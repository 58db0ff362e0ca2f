package game

import (
	"slices"

	"lucky888_backend/internal/model"
)

// History - журнал раундов, новые записи в начале. Записи не изменяются
type History struct {
	items []model.HistoryItem
}

func NewHistory(items []model.HistoryItem) *History {
	h := &History{}
	for _, it := range items {
		h.items = append(h.items, copyItem(it))
	}
	return h
}

// Append добавляет запись в начало
func (h *History) Append(item model.HistoryItem) {
	h.items = slices.Insert(h.items, 0, copyItem(item))
}

// Recent последние limit записей; limit <= 0 - все
func (h *History) Recent(limit int) []model.HistoryItem {
	n := len(h.items)
	if limit > 0 && limit < n {
		n = limit
	}
	res := make([]model.HistoryItem, n)
	for i := 0; i < n; i++ {
		res[i] = copyItem(h.items[i])
	}
	return res
}

func (h *History) Len() int {
	return len(h.items)
}

func copyItem(it model.HistoryItem) model.HistoryItem {
	it.MatchedAttributes = slices.Clone(it.MatchedAttributes)
	return it
}
