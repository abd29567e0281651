package itinerary

import (
	"fmt"
	"strings"

	apperrors "github.com/yanqian/cinematic-itinerary/pkg/errors"
)

// Vibe is the cinematic theme that colors an itinerary.
type Vibe string

const (
	VibeWesAnderson  Vibe = "Wes Anderson"
	VibeCyberpunk    Vibe = "Cyberpunk"
	VibeNoir         Vibe = "Noir"
	VibeStudioGhibli Vibe = "Studio Ghibli"
	VibeMinimalist   Vibe = "Minimalist"
)

var vibes = []Vibe{VibeWesAnderson, VibeCyberpunk, VibeNoir, VibeStudioGhibli, VibeMinimalist}

// Vibes lists the supported vibes in their canonical order.
func Vibes() []Vibe {
	return append([]Vibe(nil), vibes...)
}

// Valid reports whether v is one of the supported vibes.
func (v Vibe) Valid() bool {
	for _, candidate := range vibes {
		if v == candidate {
			return true
		}
	}
	return false
}

func (v Vibe) String() string {
	return string(v)
}

// ParseVibe converts a raw label into a Vibe.
func ParseVibe(raw string) (Vibe, error) {
	v := Vibe(raw)
	if !v.Valid() {
		return "", apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("vibe %q is not supported", raw), nil)
	}
	return v, nil
}

// Validate rejects requests that must not reach the upstream providers.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Location) == "" {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "location cannot be empty", nil)
	}
	if _, err := ParseVibe(string(r.Vibe)); err != nil {
		return err
	}
	return nil
}

// Summarize renders the short human readable line that accompanies an itinerary.
func Summarize(r Request) string {
	return fmt.Sprintf("Here is a %s itinerary for %s.", r.Vibe, r.Location)
}
