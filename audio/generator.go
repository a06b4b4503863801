package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/snowtree/constant"
)

// WindGenerator produces low-passed noise with a slow swell
type WindGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	rng     *rand.Rand
	lowpass float64
	cutoff  float64
}

// NewWindGenerator creates a wind generator; seed makes the noise reproducible
func NewWindGenerator(sr beep.SampleRate, seed uint64) *WindGenerator {
	return &WindGenerator{
		sr:      sr,
		samples: sr.N(constant.WindCycle),
		rng:     rand.New(rand.NewPCG(seed, seed+1)),
		cutoff:  constant.WindCutoff,
	}
}

func (g *WindGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		noise := g.rng.Float64()*2 - 1
		g.lowpass += g.cutoff * (noise - g.lowpass)

		// Swell between 30% and 100% over one cycle
		cyclePos := float64(g.pos%g.samples) / float64(g.samples)
		swell := 0.65 - 0.35*math.Cos(cyclePos*2*math.Pi)

		// One-pole output hovers around +-0.2; scale into a usable range
		sample := clamp(g.lowpass*3*swell, -1, 1)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *WindGenerator) Err() error {
	return nil
}

// BellGenerator rings a two-partial chime once per interval, silent between
type BellGenerator struct {
	sr       beep.SampleRate
	pos      int
	period   int
	duration int
	attack   int
}

// NewBellGenerator creates a bell that rings every interval
func NewBellGenerator(sr beep.SampleRate, interval time.Duration) *BellGenerator {
	g := &BellGenerator{
		sr:       sr,
		period:   sr.N(interval),
		duration: sr.N(constant.BellDuration),
		attack:   sr.N(constant.BellAttack),
	}
	if g.period < g.duration {
		g.period = g.duration
	}
	return g
}

func (g *BellGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		ringPos := g.pos % g.period
		sample := 0.0
		if ringPos < g.duration {
			t := float64(ringPos) / float64(g.sr)

			// Linear attack, then exponential decay per partial
			attack := 1.0
			if g.attack > 0 && ringPos < g.attack {
				attack = float64(ringPos) / float64(g.attack)
			}
			fundEnv := math.Exp(-t / constant.BellFundamentalRelease.Seconds() * 3)
			overEnv := math.Exp(-t / constant.BellOvertoneRelease.Seconds() * 3)

			fund := constant.BellFundamentalMix * fundEnv * math.Sin(2*math.Pi*constant.BellFundamentalFreq*t)
			over := constant.BellOvertoneMix * overEnv * math.Sin(2*math.Pi*constant.BellOvertoneFreq*t)
			sample = attack * (fund + over)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BellGenerator) Err() error {
	return nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
