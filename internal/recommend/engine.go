package recommend

import (
	"math/rand/v2"
	"sort"
	"strings"
	"sync"

	"RestaurantAssistant/internal/entity"
	"RestaurantAssistant/pkg/event"
)

// Scorer ranks every catalog entry against a free-text query, returning one
// score per entry in catalog order.
type Scorer interface {
	Scores(query string) []float64
}

type Engine struct {
	catalog *Catalog
	scorer  Scorer
	sink    event.Sink

	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Engine)

func WithSink(sink event.Sink) Option {
	return func(e *Engine) {
		if sink != nil {
			e.sink = sink
		}
	}
}

// WithSeed makes substitute selection reproducible. Without it the choice is
// random per process.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

func NewEngine(catalog *Catalog, scorer Scorer, opts ...Option) *Engine {
	e := &Engine{
		catalog: catalog,
		scorer:  scorer,
		sink:    event.Discard,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Recommend runs once on a completed (or force-completed) session and applies
// the outcome's side effects to it. A confident outcome is a fresh offer that
// still needs an answer. A failed outcome clears the slot the user should
// revise so the conversation asks for it again.
func (e *Engine) Recommend(s *entity.BookingSession) Outcome {
	out := e.Decide(RequestFromSession(s))

	if out.Kind.Confident() {
		s.OfferedRestaurant = out.Restaurant.Name
		s.RebookConfirmed = entity.TriUnknown
		if out.Kind == KindSubstitute {
			s.PastRestaurantName = out.Restaurant.Name
		}
		return out
	}

	s.OfferedRestaurant = ""
	switch out.Kind {
	case KindUnavailable:
		s.DateAndTime = nil
	case KindDietaryMismatch:
		s.DietaryPreferences = entity.Preference{}
	case KindNoAlternative:
		if _, known := e.catalog.Lookup(s.PastRestaurantName); !known && out.Cuisine == "" {
			s.PastRestaurantName = ""
		} else {
			s.DateAndTime = nil
		}
	}
	return out
}

// Decide picks the outcome for req without touching any session.
func (e *Engine) Decide(req Request) Outcome {
	if req.Rebooking() {
		return e.rebook(req)
	}
	return e.recommend(req)
}

func (e *Engine) rebook(req Request) Outcome {
	out := Outcome{
		Requested: req.Restaurant,
		Date:      req.Date,
		Guests:    req.Guests,
	}

	named, found := e.catalog.Lookup(req.Restaurant)
	if found {
		out.Cuisine = named.Cuisine
		if e.fits(named, req) {
			out.Kind = KindRebookOffer
			out.Restaurant = &named
			return out
		}
	} else if len(req.Cuisines) > 0 {
		out.Cuisine = req.Cuisines[0]
	}

	var candidates []entity.Restaurant
	if out.Cuisine != "" {
		for _, r := range e.catalog.restaurants {
			if strings.EqualFold(r.Name, req.Restaurant) || !strings.EqualFold(r.Cuisine, out.Cuisine) {
				continue
			}
			if e.fits(r, req) {
				candidates = append(candidates, r)
			}
		}
	}

	if len(candidates) == 0 {
		out.Kind = KindNoAlternative
		e.emit(event.NoAlternative, req, event.Fields{
			"restaurant": req.Restaurant,
			"found":      found,
			"cuisine":    out.Cuisine,
			"time":       req.TimeLabel(),
			"guests":     req.Guests,
		})
		return out
	}

	pick := candidates[e.intN(len(candidates))].Clone()
	out.Kind = KindSubstitute
	out.Restaurant = &pick
	e.emit(event.SubstituteOffered, req, event.Fields{
		"requested":  req.Restaurant,
		"substitute": pick.Name,
		"cuisine":    out.Cuisine,
		"candidates": len(candidates),
	})
	return out
}

func (e *Engine) recommend(req Request) Outcome {
	out := Outcome{
		Diets:  req.Diets,
		Date:   req.Date,
		Guests: req.Guests,
	}
	if len(req.Cuisines) > 0 {
		out.Cuisine = strings.Join(req.Cuisines, ", ")
	}

	if e.catalog.Len() == 0 {
		out.Kind = KindNoMatch
		return out
	}

	best, score := argmax(e.scorer.Scores(QueryKey(req.Cuisines, req.Diets)))
	if best < 0 || best >= e.catalog.Len() {
		out.Kind = KindNoMatch
		return out
	}
	top := e.catalog.At(best)
	out.Restaurant = &top
	out.Score = score

	if len(req.Diets) > 0 && !top.OffersAll(req.Diets) {
		out.Kind = KindDietaryMismatch
		e.emit(event.DietaryMismatch, req, event.Fields{
			"restaurant": top.Name,
			"diets":      strings.Join(req.Diets, ","),
			"cuisine":    out.Cuisine,
		})
		return out
	}

	if !e.fits(top, req) {
		out.Kind = KindUnavailable
		e.emit(event.SlotUnavailable, req, event.Fields{
			"restaurant": top.Name,
			"time":       req.TimeLabel(),
			"guests":     req.Guests,
		})
		return out
	}

	out.Kind = KindRecommendation
	return out
}

// fits checks availability. Without a date (a forced run) only the party
// size can be checked.
func (e *Engine) fits(r entity.Restaurant, req Request) bool {
	if req.Date == nil {
		return r.MaxGuests >= req.Guests
	}
	return AvailableAt(r, req.Guests, *req.Date)
}

func (e *Engine) intN(n int) int {
	if e.rng == nil {
		return rand.IntN(n)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.IntN(n)
}

func (e *Engine) emit(name string, req Request, fields event.Fields) {
	e.sink.Emit(event.Event{Name: name, SessionID: req.SessionID, Fields: fields})
}

// QueryKey joins preference tags into an order-insensitive query string.
func QueryKey(tags ...[]string) string {
	var all []string
	for _, t := range tags {
		all = append(all, t...)
	}
	sort.Strings(all)
	return strings.Join(all, " ")
}

// argmax returns the first index holding the highest score, or -1.
func argmax(scores []float64) (int, float64) {
	best, bestScore := -1, 0.0
	for i, s := range scores {
		if best < 0 || s > bestScore {
			best, bestScore = i, s
		}
	}
	return best, bestScore
}
