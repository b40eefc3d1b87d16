package planner

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/hyunseo/itinerary-backend-go/internal/config"
	"github.com/hyunseo/itinerary-backend-go/internal/models"
	"github.com/hyunseo/itinerary-backend-go/internal/places"
)

// Planner runs the itinerary generation and enrichment pipeline. It holds no
// mutable state between runs; every random choice draws from rng, so fixing
// the seed makes a run deterministic against a deterministic provider.
type Planner struct {
	provider places.Provider
	policy   config.PlanningPolicy
	rng      *rand.Rand
}

// New creates a planner.
func New(provider places.Provider, policy config.PlanningPolicy, rng *rand.Rand) *Planner {
	return &Planner{provider: provider, policy: policy, rng: rng}
}

// Generate runs the full pipeline: skeleton, attraction enrichment, meal
// enrichment, travel-time enrichment. Provider failures degrade individual
// slots; only invalid trip parameters fail the run.
func (p *Planner) Generate(ctx context.Context, params models.TripParameters) (*models.Itinerary, error) {
	it, err := BuildSkeleton(params, p.rng)
	if err != nil {
		return nil, err
	}

	it = p.EnrichAttractions(ctx, it)
	it = p.EnrichMeals(ctx, it)
	it = p.EnrichTravelTimes(ctx, it)
	return it, nil
}

// Retime settles an itinerary after manual edits: it drops every synthesized
// transit activity, recomputes travel times between the remaining located
// activities, and renormalizes the wall clock.
func (p *Planner) Retime(ctx context.Context, it *models.Itinerary) *models.Itinerary {
	if it == nil {
		return nil
	}

	stripped := *it
	stripped.DailySchedule = make([]models.Day, len(it.DailySchedule))
	for i, day := range it.DailySchedule {
		kept := make([]models.Activity, 0, len(day.Activities))
		for _, a := range day.Activities {
			if a.Type != models.TypeTransit {
				kept = append(kept, a)
			}
		}
		day.Activities = kept
		stripped.DailySchedule[i] = day
	}

	return Renormalize(p.EnrichTravelTimes(ctx, &stripped))
}

// throttle pauses between consecutive provider calls. Upstream quotas are
// tight enough that this is a deliberate policy, not an incidental sleep.
func (p *Planner) throttle(ctx context.Context) {
	if p.policy.CallDelay <= 0 {
		return
	}
	select {
	case <-time.After(p.policy.CallDelay):
	case <-ctx.Done():
	}
}

// qualifyCandidates filters to unused candidates at or above minRating,
// sorted best-first and capped at limit.
func qualifyCandidates(cands []places.Candidate, minRating float64, used map[string]bool, limit int) []places.Candidate {
	out := make([]places.Candidate, 0, len(cands))
	for _, c := range cands {
		if c.Rating < minRating || used[c.PlaceID] || !c.Location.Valid() {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// pickTopK selects uniformly at random among the best k candidates. The
// variety is intentional: pure greedy-best would make every trip identical.
func (p *Planner) pickTopK(cands []places.Candidate, k int) places.Candidate {
	if k > len(cands) {
		k = len(cands)
	}
	return cands[p.rng.Intn(k)]
}
