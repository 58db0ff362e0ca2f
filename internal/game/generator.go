package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"

	"lucky888_backend/internal/model"
)

// Generator выдает три независимые равновероятные цифры 0-9
type Generator interface {
	Draw() model.Outcome
}

// RandGenerator - рабочий генератор на ChaCha8 с сидом из crypto/rand
type RandGenerator struct {
	mtx sync.Mutex
	rnd *rand.Rand
}

func NewRandGenerator() *RandGenerator {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand на поддерживаемых платформах не падает
		panic("failed to seed generator: " + err.Error())
	}
	return &RandGenerator{rnd: rand.New(rand.NewChaCha8(seed))}
}

// NewSeededGenerator детерминированный генератор, для тестов и воспроизведения
func NewSeededGenerator(seed uint64) *RandGenerator {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:], seed)
	return &RandGenerator{rnd: rand.New(rand.NewChaCha8(s))}
}

func (g *RandGenerator) Draw() model.Outcome {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	return model.Outcome{g.rnd.IntN(10), g.rnd.IntN(10), g.rnd.IntN(10)}
}

// SequenceGenerator отдает заранее заданные исходы по кругу
type SequenceGenerator struct {
	mtx      sync.Mutex
	outcomes []model.Outcome
	next     int
}

func NewSequenceGenerator(outcomes ...model.Outcome) *SequenceGenerator {
	if len(outcomes) == 0 {
		panic("sequence generator needs at least one outcome")
	}
	return &SequenceGenerator{outcomes: outcomes}
}

func (g *SequenceGenerator) Draw() model.Outcome {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	o := g.outcomes[g.next%len(g.outcomes)]
	g.next++
	return o
}
