package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hyunseo/itinerary-backend-go/internal/models"
)

const defaultBaseURL = "https://maps.googleapis.com"

// GoogleClient implements Provider against the Google Maps web services
// (Places Nearby/Text/Details and Distance Matrix).
type GoogleClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewGoogleClient creates a provider client. The timeout bounds every call so
// the pipeline never blocks indefinitely on one unresponsive request.
func NewGoogleClient(apiKey string, timeout time.Duration) *GoogleClient {
	return &GoogleClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type googlePlace struct {
	PlaceID          string  `json:"place_id"`
	Name             string  `json:"name"`
	Rating           float64 `json:"rating"`
	UserRatingsTotal int     `json:"user_ratings_total"`
	Vicinity         string  `json:"vicinity"`
	FormattedAddress string  `json:"formatted_address"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	Types        []string `json:"types"`
	OpeningHours struct {
		WeekdayText []string `json:"weekday_text"`
	} `json:"opening_hours"`
	Photos []struct {
		PhotoReference string `json:"photo_reference"`
	} `json:"photos"`
	FormattedPhoneNumber string `json:"formatted_phone_number"`
	Website              string `json:"website"`
	URL                  string `json:"url"`
}

func (p googlePlace) candidate() Candidate {
	vicinity := p.Vicinity
	if vicinity == "" {
		vicinity = p.FormattedAddress
	}
	return Candidate{
		PlaceID:          p.PlaceID,
		Name:             p.Name,
		Rating:           p.Rating,
		UserRatingsTotal: p.UserRatingsTotal,
		Vicinity:         vicinity,
		Location:         models.Coordinate{Lat: p.Geometry.Location.Lat, Lng: p.Geometry.Location.Lng},
	}
}

// NearbySearch implements Provider.
func (c *GoogleClient) NearbySearch(ctx context.Context, anchor models.Coordinate, radiusMeters int, keyword string) ([]Candidate, error) {
	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", anchor.Lat, anchor.Lng))
	q.Set("radius", strconv.Itoa(radiusMeters))
	q.Set("keyword", keyword)

	var body struct {
		Status  string        `json:"status"`
		Results []googlePlace `json:"results"`
	}
	if err := c.get(ctx, "/maps/api/place/nearbysearch/json", q, &body); err != nil {
		return nil, err
	}
	if body.Status != "OK" || len(body.Results) == 0 {
		return nil, fmt.Errorf("nearby search %q: %w", keyword, ErrNoResults)
	}

	out := make([]Candidate, 0, len(body.Results))
	for _, r := range body.Results {
		out = append(out, r.candidate())
	}
	return out, nil
}

// TextSearch implements Provider.
func (c *GoogleClient) TextSearch(ctx context.Context, query string) ([]Candidate, error) {
	q := url.Values{}
	q.Set("query", query)

	var body struct {
		Status  string        `json:"status"`
		Results []googlePlace `json:"results"`
	}
	if err := c.get(ctx, "/maps/api/place/textsearch/json", q, &body); err != nil {
		return nil, err
	}
	if body.Status != "OK" || len(body.Results) == 0 {
		return nil, fmt.Errorf("text search %q: %w", query, ErrNoResults)
	}

	out := make([]Candidate, 0, len(body.Results))
	for _, r := range body.Results {
		out = append(out, r.candidate())
	}
	return out, nil
}

// Details implements Provider.
func (c *GoogleClient) Details(ctx context.Context, placeID string) (*Details, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", "place_id,name,rating,user_ratings_total,vicinity,formatted_address,geometry,photos,opening_hours,types,formatted_phone_number,website,url")

	var body struct {
		Status string      `json:"status"`
		Result googlePlace `json:"result"`
	}
	if err := c.get(ctx, "/maps/api/place/details/json", q, &body); err != nil {
		return nil, err
	}
	if body.Status != "OK" {
		return nil, fmt.Errorf("place details %s: %w", placeID, ErrNoResults)
	}

	d := &Details{
		Candidate:    body.Result.candidate(),
		OpeningHours: body.Result.OpeningHours.WeekdayText,
		Phone:        body.Result.FormattedPhoneNumber,
		Website:      body.Result.Website,
		MapsURL:      body.Result.URL,
		Types:        body.Result.Types,
	}
	for _, p := range body.Result.Photos {
		d.Photos = append(d.Photos, c.photoURL(p.PhotoReference))
	}
	return d, nil
}

// TravelTime implements Provider.
func (c *GoogleClient) TravelTime(ctx context.Context, origin, dest models.Coordinate, mode Mode, departure time.Time) (*Estimate, error) {
	q := url.Values{}
	q.Set("origins", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng))
	q.Set("destinations", fmt.Sprintf("%f,%f", dest.Lat, dest.Lng))
	q.Set("mode", string(mode))
	q.Set("units", "metric")
	if mode == ModeTransit && !departure.IsZero() {
		q.Set("departure_time", strconv.FormatInt(departure.Unix(), 10))
		q.Set("transit_mode", "subway|bus|train")
		q.Set("transit_routing_preference", "fewer_transfers")
	}

	var body struct {
		Status string `json:"status"`
		Rows   []struct {
			Elements []struct {
				Status   string `json:"status"`
				Duration struct {
					Value int    `json:"value"`
					Text  string `json:"text"`
				} `json:"duration"`
				Distance struct {
					Value int    `json:"value"`
					Text  string `json:"text"`
				} `json:"distance"`
			} `json:"elements"`
		} `json:"rows"`
	}
	if err := c.get(ctx, "/maps/api/distancematrix/json", q, &body); err != nil {
		return nil, err
	}
	if body.Status != "OK" || len(body.Rows) == 0 || len(body.Rows[0].Elements) == 0 {
		return nil, fmt.Errorf("distance matrix %s: %w", mode, ErrNoResults)
	}
	el := body.Rows[0].Elements[0]
	if el.Status != "OK" {
		return nil, fmt.Errorf("distance matrix %s element status %s: %w", mode, el.Status, ErrNoResults)
	}

	return &Estimate{
		DurationSeconds: el.Duration.Value,
		DistanceMeters:  el.Distance.Value,
		DurationText:    el.Duration.Text,
		DistanceText:    el.Distance.Text,
	}, nil
}

func (c *GoogleClient) photoURL(ref string) string {
	return fmt.Sprintf("%s/maps/api/place/photo?maxwidth=400&photo_reference=%s&key=%s", c.baseURL, ref, c.apiKey)
}

func (c *GoogleClient) get(ctx context.Context, path string, q url.Values, out interface{}) error {
	q.Set("key", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned HTTP %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode provider response: %w", err)
	}
	return nil
}
