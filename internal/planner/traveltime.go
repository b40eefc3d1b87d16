package planner

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/hyunseo/itinerary-backend-go/internal/geo"
	"github.com/hyunseo/itinerary-backend-go/internal/models"
	"github.com/hyunseo/itinerary-backend-go/internal/places"
)

// Transit mode display labels.
const (
	labelWalk            = "walking"
	labelTransit         = "transit"
	labelTransitEstimate = "transit (estimated)"
)

// leg is one resolved hop between two located activities.
type leg struct {
	durationSeconds int
	distanceMeters  int
	durationText    string
	distanceText    string
	mode            string
}

// EnrichTravelTimes inserts a synthesized transit activity between every
// pair of consecutive located activities, skipping unlocated ones. A leg
// between two located stops is never silently dropped: when every mode
// fails, a fixed-duration estimated leg is inserted instead.
func (p *Planner) EnrichTravelTimes(ctx context.Context, it *models.Itinerary) *models.Itinerary {
	if it == nil || len(it.DailySchedule) == 0 {
		return it
	}

	out := *it
	out.DailySchedule = make([]models.Day, len(it.DailySchedule))

	for dayIdx, day := range it.DailySchedule {
		enriched := make([]models.Activity, 0, len(day.Activities)*2)

		for i := 0; i < len(day.Activities); i++ {
			a := day.Activities[i]
			enriched = append(enriched, a)

			if !a.Located() {
				continue
			}

			next := nextLocated(day.Activities, i)
			if next < 0 {
				continue
			}
			b := day.Activities[next]

			// Identical coordinates need no transit leg.
			if geo.HaversineMeters(*a.Location, *b.Location) == 0 {
				continue
			}

			lg := p.computeLeg(ctx, *a.Location, *b.Location)
			if lg == nil {
				log.Printf("no route %s → %s on %s, assuming %d min", a.Name, b.Name, day.Date, p.policy.FallbackTransitMin)
				enriched = append(enriched, p.fallbackTransit(a, b))
				continue
			}
			enriched = append(enriched, p.transitActivity(a, b, lg))
		}

		day.Activities = enriched
		out.DailySchedule[dayIdx] = day
	}

	return &out
}

func nextLocated(activities []models.Activity, from int) int {
	for j := from + 1; j < len(activities); j++ {
		if activities[j].Located() {
			return j
		}
	}
	return -1
}

// computeLeg picks the transport mode for one hop.
//
// Beyond the walking cutoff only transit is considered, with a
// driving-derived estimate as its fallback. Within the cutoff the faster of
// walking and transit wins; a tie goes to transit (the `<=` comparison is
// deliberate, documented policy). A nil return means every mode failed.
func (p *Planner) computeLeg(ctx context.Context, origin, dest models.Coordinate) *leg {
	walk, err := p.provider.TravelTime(ctx, origin, dest, places.ModeWalking, time.Time{})
	p.throttle(ctx)
	if err != nil {
		return nil
	}

	if walk.DistanceMeters > p.policy.MaxWalkingMeters {
		transit, err := p.provider.TravelTime(ctx, origin, dest, places.ModeTransit, nextTransitDeparture(time.Now()))
		p.throttle(ctx)
		if err == nil {
			return estimateLeg(transit, labelTransit)
		}

		drive, err := p.provider.TravelTime(ctx, origin, dest, places.ModeDriving, time.Time{})
		p.throttle(ctx)
		if err != nil {
			return nil
		}
		seconds := int(math.Round(float64(drive.DurationSeconds) * p.policy.DriveToTransitFactor))
		return &leg{
			durationSeconds: seconds,
			distanceMeters:  drive.DistanceMeters,
			durationText:    fmt.Sprintf("%d min", int(math.Round(float64(seconds)/60))),
			distanceText:    drive.DistanceText,
			mode:            labelTransitEstimate,
		}
	}

	transit, err := p.provider.TravelTime(ctx, origin, dest, places.ModeTransit, nextTransitDeparture(time.Now()))
	p.throttle(ctx)
	if err == nil && transit.DurationSeconds <= walk.DurationSeconds {
		return estimateLeg(transit, labelTransit)
	}
	return estimateLeg(walk, labelWalk)
}

func estimateLeg(e *places.Estimate, mode string) *leg {
	return &leg{
		durationSeconds: e.DurationSeconds,
		distanceMeters:  e.DistanceMeters,
		durationText:    e.DurationText,
		distanceText:    e.DistanceText,
		mode:            mode,
	}
}

// transitActivity renders a resolved leg as a schedule entry right after its
// preceding anchor. Walks short enough round to "under 5 min" so the display
// doesn't suggest false precision.
func (p *Planner) transitActivity(from, to models.Activity, lg *leg) models.Activity {
	durationText := lg.durationText
	if lg.mode == labelWalk && lg.durationSeconds <= p.policy.ShortWalkSeconds {
		durationText = "under 5 min"
	}

	return models.Activity{
		Time:         addHours(from.Time, from.Duration),
		Name:         "Travel",
		Description:  fmt.Sprintf("%s → %s", from.Name, to.Name),
		Type:         models.TypeTransit,
		Duration:     math.Round(float64(lg.durationSeconds)/360) / 10,
		DurationText: durationText,
		DistanceText: lg.distanceText,
		Mode:         lg.mode,
	}
}

// fallbackTransit is the assumed leg inserted when no mode resolved.
func (p *Planner) fallbackTransit(from, to models.Activity) models.Activity {
	minutes := p.policy.FallbackTransitMin
	return models.Activity{
		Time:         addHours(from.Time, from.Duration),
		Name:         "Travel",
		Description:  fmt.Sprintf("%s → %s (estimated)", from.Name, to.Name),
		Type:         models.TypeTransit,
		Duration:     float64(minutes) / 60,
		DurationText: fmt.Sprintf("about %d min", minutes),
		DistanceText: "distance unavailable",
		Mode:         labelTransitEstimate,
	}
}

// nextTransitDeparture pins transit queries to the next 10:00, when service
// is frequent, so estimates stay comparable across runs.
func nextTransitDeparture(now time.Time) time.Time {
	dep := time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, now.Location())
	if dep.Before(now) {
		dep = dep.AddDate(0, 0, 1)
	}
	return dep
}
