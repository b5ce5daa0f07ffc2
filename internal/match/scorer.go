// Package match computes the 0-100 compatibility score between a student
// profile and a job.
package match

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"internboard/internal/common/logger"
	"internboard/internal/common/metrics"
	"internboard/internal/models"
)

// Component weights. Skill overlap and location proximity form the
// deterministic core; the remainder is bounded noise standing in for
// unmodeled compatibility factors.
const (
	skillWeight    = 40.0
	locationWeight = 30.0
	noiseWeight    = 30.0
)

// NoiseSource yields uniform values in [0,1). *rand.Rand satisfies it; tests
// pin it to a fixed source.
type NoiseSource interface {
	Float64() float64
}

// NewNoise returns a seeded noise source. Seed 0 seeds from the clock.
func NewNoise(seed int64) NoiseSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

type Scorer struct {
	noise  NoiseSource
	logger logger.Logger
}

func NewScorer(noise NoiseSource, log logger.Logger) *Scorer {
	return &Scorer{
		noise:  noise,
		logger: log.WithFields(map[string]interface{}{"component": "match"}),
	}
}

// Score combines the skill, location and noise components and returns
// round(min(100, sum)). It is not deterministic: two calls on the same pair
// may differ by up to the noise weight.
func (s *Scorer) Score(profile *models.Profile, job *models.Job) int {
	skill := s.skillFit(profile.Skills, job.Requirements)
	location := s.locationFit(profile.Location, job.Location)
	noise := s.noise.Float64() * noiseWeight

	total := math.Min(100, skill+location+noise)
	score := int(math.Round(total))

	s.logger.Debug("match score computed", map[string]interface{}{
		"studentId": profile.ID,
		"jobId":     job.ID,
		"skill":     skill,
		"location":  location,
		"score":     score,
	})
	metrics.MatchScores.Observe(float64(score))
	return score
}

// skillFit weighs the share of the student's skills that appear, as
// case-insensitive substrings, in at least one job requirement. An empty
// requirement list contributes 0.
func (s *Scorer) skillFit(skills, requirements []string) float64 {
	if len(requirements) == 0 {
		return 0
	}

	matching := 0
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for _, req := range requirements {
			if strings.Contains(strings.ToLower(req), lower) {
				matching++
				break
			}
		}
	}

	return skillWeight * float64(matching) / float64(len(requirements))
}

// locationFit is binary: full weight when either location contains the other
// case-insensitively, zero otherwise.
func (s *Scorer) locationFit(studentLocation, jobLocation string) float64 {
	sl := strings.ToLower(studentLocation)
	jl := strings.ToLower(jobLocation)
	if strings.Contains(sl, jl) || strings.Contains(jl, sl) {
		return locationWeight
	}
	return 0
}
