package flight

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/ijalalfrz/flyair-flight-service/internal/app/dto"
)

const (
	GeneratedIDPrefix = "R"
	MinGeneratedPrice = 10000
	MaxGeneratedPrice = 50000
)

// Vocabulary is the fixed word list random flights are drawn from.
type Vocabulary struct {
	Origins      []string
	Destinations []string
	Times        []string
	Companies    []string
	Classes      []string
}

var DefaultVocabulary = Vocabulary{
	Origins:      []string{"Alger", "Oran", "Constantine"},
	Destinations: []string{"Paris", "Istanbul", "Doha", "Dubai", "Lyon", "Nice"},
	Times:        []string{"06:00", "08:30", "11:00", "14:00", "16:30", "19:00"},
	Companies:    []string{"Air Algérie", "Qatar Airways", "Turkish Airlines", "Emirates"},
	Classes:      []string{dto.ClassEconomy, dto.ClassBusiness},
}

// GenerateFlight builds one random flight. The id is <prefix><stamp>-<index>,
// so flights sharing a stamp stay distinct as long as their indexes differ.
func GenerateFlight(rnd *rand.Rand, vocab Vocabulary, stamp int64, index int) dto.Flight {
	classes := make([]string, len(vocab.Classes))
	copy(classes, vocab.Classes)

	return dto.Flight{
		ID:      fmt.Sprintf("%s%d-%d", GeneratedIDPrefix, stamp, index),
		From:    pick(rnd, vocab.Origins),
		To:      pick(rnd, vocab.Destinations),
		Time:    pick(rnd, vocab.Times),
		Price:   MinGeneratedPrice + rnd.Int63n(MaxGeneratedPrice-MinGeneratedPrice),
		Company: pick(rnd, vocab.Companies),
		Class:   classes,
	}
}

func pick(rnd *rand.Rand, words []string) string {
	if len(words) == 0 {
		return ""
	}

	return words[rnd.Intn(len(words))]
}

// Generator produces batches of random flights. Batch stamps are unix millis
// and strictly increase across batches, even within one millisecond.
type Generator struct {
	mu        sync.Mutex
	rnd       *rand.Rand
	vocab     Vocabulary
	now       func() time.Time
	lastStamp int64
}

type GeneratorOption func(*Generator)

func WithRand(rnd *rand.Rand) GeneratorOption {
	return func(g *Generator) {
		g.rnd = rnd
	}
}

func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

func WithVocabulary(vocab Vocabulary) GeneratorOption {
	return func(g *Generator) {
		g.vocab = vocab
	}
}

func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
		vocab: DefaultVocabulary,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Batch returns count fresh flights sharing one stamp.
func (g *Generator) Batch(count int) []dto.Flight {
	if count <= 0 {
		return []dto.Flight{}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	stamp := g.now().UnixMilli()
	if stamp <= g.lastStamp {
		stamp = g.lastStamp + 1
	}
	g.lastStamp = stamp

	flights := make([]dto.Flight, count)
	for i := range flights {
		flights[i] = GenerateFlight(g.rnd, g.vocab, stamp, i)
	}

	return flights
}
