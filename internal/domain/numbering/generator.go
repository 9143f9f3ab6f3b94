package numbering

import (
	"fmt"
	"math/rand/v2"

	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/clock"
)

const (
	prefix     = "PROP"
	dateLayout = "20060102"
	maxSuffix  = 1000
)

// Source: источник случайного суффикса; в тестах подменяется детерминированным.
type Source interface {
	IntN(n int) int
}

// Generator выдаёт номера вида PROP-YYYYMMDD-NNN.
// Уникальность не проверяется: в один день возможны совпадения.
type Generator struct {
	clock clock.Clock
	rand  Source
}

func NewGenerator(clk clock.Clock, src Source) *Generator {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if src == nil {
		src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{clock: clk, rand: src}
}

func (g *Generator) Next() string {
	now := g.clock.Now().Local()
	return fmt.Sprintf("%s-%s-%03d", prefix, now.Format(dateLayout), g.rand.IntN(maxSuffix))
}
