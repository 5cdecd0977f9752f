package models

import (
	"database/sql/driver"
	"fmt"
)

// Difficulty is the user's self-reported recall effort for a card.
// It drives the delay before the card comes up for review again.
type Difficulty int

const (
	DifficultyHard Difficulty = iota + 1
	DifficultyMedium
	DifficultyEasy
)

var difficultyNames = map[Difficulty]string{
	DifficultyHard:   "hard",
	DifficultyMedium: "medium",
	DifficultyEasy:   "easy",
}

var difficultyByName = map[string]Difficulty{
	"hard":   DifficultyHard,
	"medium": DifficultyMedium,
	"easy":   DifficultyEasy,
}

func (d Difficulty) Valid() bool {
	return d >= DifficultyHard && d <= DifficultyEasy
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// ParseDifficulty converts the wire/db representation into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	if d, ok := difficultyByName[s]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid difficulty %d", int(d))
	}
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer so the enum is stored as text.
func (d Difficulty) Value() (driver.Value, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("cannot store invalid difficulty %d", int(d))
	}
	return d.String(), nil
}

// Scan implements sql.Scanner for the nullable last_difficulty column.
func (d *Difficulty) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into Difficulty", src)
	}
}
