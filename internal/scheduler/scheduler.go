// Package scheduler implements the spaced-repetition core: the review
// transition that advances a card's schedule, due-card selection, and
// collection statistics. Everything here is pure: callers inject the
// clock reading and persist the results themselves.
package scheduler

import (
	"sort"
	"time"

	"github.com/arthur12320/flash-cards-simple/internal/models"
)

// Review advances a card's schedule after the user rated it. The next
// review time is now plus the interval the user configured for the chosen
// difficulty. This is the only place a card's NextReviewAt moves forward.
//
// Ownership of the card must already have been verified by the caller.
func Review(card models.Card, difficulty models.Difficulty, intervals models.ReviewIntervals, now time.Time) models.Card {
	next := now.Add(time.Duration(intervals.Minutes(difficulty)) * time.Minute)

	card.LastReviewedAt = &now
	card.NextReviewAt = &next
	card.LastDifficulty = &difficulty
	card.ReviewCount++
	card.UpdatedAt = now

	return card
}

// Reset returns a card to the never-reviewed state. Idempotent.
func Reset(card models.Card, now time.Time) models.Card {
	card.LastReviewedAt = nil
	card.NextReviewAt = nil
	card.LastDifficulty = nil
	card.ReviewCount = 0
	card.UpdatedAt = now

	return card
}

// IsDue reports whether a card is eligible for review at the given instant:
// never scheduled, or its scheduled time has passed. Boundary equality
// counts as due.
func IsDue(card models.Card, now time.Time) bool {
	return card.NextReviewAt == nil || !card.NextReviewAt.After(now)
}

// DueCards returns the cards eligible for review at now, ordered ascending
// by NextReviewAt with never-scheduled cards first, so fresh content
// surfaces before merely lapsed reviews. The input slice is not modified.
func DueCards(cards []models.Card, now time.Time) []models.Card {
	due := make([]models.Card, 0, len(cards))
	for _, card := range cards {
		if IsDue(card, now) {
			due = append(due, card)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		a, b := due[i].NextReviewAt, due[j].NextReviewAt
		switch {
		case a == nil && b == nil:
			return false
		case a == nil:
			return true
		case b == nil:
			return false
		default:
			return a.Before(*b)
		}
	})

	return due
}

// AggregateStats derives a collection's summary counts at the given
// instant. Recomputed on every call; collections are small enough that
// caching would only risk staleness.
func AggregateStats(cards []models.Card, now time.Time) models.CollectionStats {
	stats := models.CollectionStats{TotalCards: len(cards)}

	for _, card := range cards {
		if card.Reviewed() {
			stats.ReviewedCards++
		}
		if IsDue(card, now) {
			stats.DueCards++
		}
	}
	stats.NewCards = stats.TotalCards - stats.ReviewedCards

	return stats
}
