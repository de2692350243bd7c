// Package views derives the dashboard, bank and calendar projections from
// the cached idea list. Everything here is pure: inputs are never mutated
// and the same list always yields the same projection.
package views

import (
	"sort"
	"time"

	"github.com/bancoideias/backend-go/internal/database/models"
	"github.com/bancoideias/backend-go/internal/database/service"
)

// DayLayout is the calendar bucket key format.
const DayLayout = "2006-01-02"

// BankFilter selects the idea-bank projection.
type BankFilter string

const (
	FilterTodas     BankFilter = "Todas"
	FilterHoje      BankFilter = "Hoje"
	FilterFavoritas BankFilter = "Favoritas"
	FilterPendentes BankFilter = "Pendentes"
)

// parseData reads an idea's scheduled date. Unparseable dates sort to the
// zero time instead of failing the projection.
func parseData(raw string) time.Time {
	layouts := []string{service.DateLayout, time.RFC3339, DayLayout}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}

// SortByDateDesc returns a copy sorted newest first.
func SortByDateDesc(ideas []models.Idea) []models.Idea {
	out := append([]models.Idea(nil), ideas...)
	sort.SliceStable(out, func(i, j int) bool {
		return parseData(out[i].Data).After(parseData(out[j].Data))
	})
	return out
}

// SortByDateAsc returns a copy sorted oldest first.
func SortByDateAsc(ideas []models.Idea) []models.Idea {
	out := append([]models.Idea(nil), ideas...)
	sort.SliceStable(out, func(i, j int) bool {
		return parseData(out[i].Data).Before(parseData(out[j].Data))
	})
	return out
}

// FilterBank applies a bank filter over the list, newest first.
func FilterBank(ideas []models.Idea, filter BankFilter, now time.Time) []models.Idea {
	sorted := SortByDateDesc(ideas)

	out := make([]models.Idea, 0, len(sorted))
	for _, idea := range sorted {
		switch filter {
		case FilterFavoritas:
			if idea.Favorito {
				out = append(out, idea)
			}
		case FilterPendentes:
			if idea.Status == models.StatusPendente {
				out = append(out, idea)
			}
		case FilterHoje:
			if sameDay(parseData(idea.Data), now) {
				out = append(out, idea)
			}
		default: // Todas
			out = append(out, idea)
		}
	}
	return out
}

// DashboardToday returns the ideas scheduled for the current day, oldest
// first. When the day has none, it falls back to the single nearest
// future-dated idea (first minimal positive delta in ascending order);
// exact ties have no defined order.
func DashboardToday(ideas []models.Idea, now time.Time) []models.Idea {
	sorted := SortByDateAsc(ideas)

	today := make([]models.Idea, 0)
	for _, idea := range sorted {
		if sameDay(parseData(idea.Data), now) {
			today = append(today, idea)
		}
	}
	if len(today) > 0 {
		return today
	}

	var closest *models.Idea
	var closestDiff time.Duration
	for i := range sorted {
		t := parseData(sorted[i].Data)
		if !t.After(now) {
			continue
		}
		diff := t.Sub(now)
		if closest == nil || diff < closestDiff {
			closest = &sorted[i]
			closestDiff = diff
		}
	}
	if closest == nil {
		return []models.Idea{}
	}
	return []models.Idea{*closest}
}

// BucketByDay counts ideas per calendar day, keyed YYYY-MM-DD.
func BucketByDay(ideas []models.Idea) map[string]int {
	buckets := make(map[string]int)
	for _, idea := range ideas {
		t := parseData(idea.Data)
		if t.IsZero() {
			continue
		}
		buckets[t.Format(DayLayout)]++
	}
	return buckets
}

// IdeasOn lists the ideas scheduled on a single day (YYYY-MM-DD).
func IdeasOn(ideas []models.Idea, day string) []models.Idea {
	out := make([]models.Idea, 0)
	for _, idea := range ideas {
		t := parseData(idea.Data)
		if !t.IsZero() && t.Format(DayLayout) == day {
			out = append(out, idea)
		}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
