// Package session holds the in-progress state of one study sitting: the
// fixed card sequence chosen at session start, the presentation cursor, and
// which cards were already rated this sitting. A Session is owned by a
// single caller context and never touches persisted card state itself.
package session

import (
	"errors"

	"github.com/arthur12320/flash-cards-simple/internal/models"
	"github.com/google/uuid"
)

var (
	ErrNoCards          = errors.New("session: no cards to study")
	ErrCardNotInSession = errors.New("session: card is not part of this session")
	ErrDuplicateReview  = errors.New("session: card already reviewed this session")
	ErrSessionCompleted = errors.New("session: session already completed")
)

// Summary is the result reported when a session finishes.
type Summary struct {
	ReviewedCount   int         `json:"reviewedCount"`
	ReviewedCardIDs []uuid.UUID `json:"reviewedCardIds"`
}

// Session is a single pass over an ordered card sequence. The reviewed map
// enforces at-most-one review per card per sitting; order holds the card
// ids in the order they were rated.
type Session struct {
	CollectionID uuid.UUID

	cards     []models.Card
	cursor    int
	reviewed  map[uuid.UUID]models.Difficulty
	order     []uuid.UUID
	completed bool
}

// New starts a session over the given cards. The sequence is fixed for the
// lifetime of the session; re-selection requires a new session.
func New(collectionID uuid.UUID, cards []models.Card) (*Session, error) {
	if len(cards) == 0 {
		return nil, ErrNoCards
	}

	return &Session{
		CollectionID: collectionID,
		cards:        cards,
		reviewed:     make(map[uuid.UUID]models.Difficulty, len(cards)),
	}, nil
}

// Current returns the card at the cursor.
func (s *Session) Current() models.Card {
	return s.cards[s.cursor]
}

// Progress returns the one-based cursor position and the card count.
func (s *Session) Progress() (position, total int) {
	return s.cursor + 1, len(s.cards)
}

// Reviewed reports whether the card was already rated this session.
func (s *Session) Reviewed(cardID uuid.UUID) bool {
	_, ok := s.reviewed[cardID]
	return ok
}

// MarkReviewed records the difficulty chosen for a card. It fails with
// ErrDuplicateReview when the card was already rated this session, so a
// repeated rating can never overwrite the schedule written by the first
// one. The session state is unchanged on any failure.
func (s *Session) MarkReviewed(cardID uuid.UUID, difficulty models.Difficulty) error {
	if s.completed {
		return ErrSessionCompleted
	}
	if !s.Contains(cardID) {
		return ErrCardNotInSession
	}
	if _, ok := s.reviewed[cardID]; ok {
		return ErrDuplicateReview
	}

	s.reviewed[cardID] = difficulty
	s.order = append(s.order, cardID)

	return nil
}

// Advance moves the cursor to the next card and reports whether it moved.
// At the last card it is a no-op; going past the end is the explicit
// Finish transition, never an implicit wrap.
func (s *Session) Advance() bool {
	if s.completed || s.cursor >= len(s.cards)-1 {
		return false
	}
	s.cursor++
	return true
}

// Retreat moves the cursor to the previous card and reports whether it
// moved. Pure navigation; rated cards stay rated.
func (s *Session) Retreat() bool {
	if s.completed || s.cursor <= 0 {
		return false
	}
	s.cursor--
	return true
}

// Restart returns the cursor to the first card and forgets the in-session
// ratings. Persisted card schedules are not touched; this is navigation,
// not a card reset.
func (s *Session) Restart() error {
	if s.completed {
		return ErrSessionCompleted
	}
	s.cursor = 0
	s.reviewed = make(map[uuid.UUID]models.Difficulty, len(s.cards))
	s.order = nil
	return nil
}

// Finish is the terminal transition. It reports which cards were rated, in
// rating order, and marks the session completed; every later mutation
// fails with ErrSessionCompleted.
func (s *Session) Finish() Summary {
	s.completed = true

	ids := make([]uuid.UUID, len(s.order))
	copy(ids, s.order)

	return Summary{
		ReviewedCount:   len(ids),
		ReviewedCardIDs: ids,
	}
}

// Completed reports whether Finish was called.
func (s *Session) Completed() bool {
	return s.completed
}

// Contains reports whether the card is part of this session's sequence.
func (s *Session) Contains(cardID uuid.UUID) bool {
	for _, card := range s.cards {
		if card.ID == cardID {
			return true
		}
	}
	return false
}
