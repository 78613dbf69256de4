package models

type DominantHand string

const (
	HandLeft  DominantHand = "Left"
	HandRight DominantHand = "Right"
)

// Player is a registered individual. Only the name is mandatory; the rest is
// contact-sheet data the organizer may or may not collect.
type Player struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Age          *int          `json:"age,omitempty"`
	DominantHand *DominantHand `json:"dominantHand,omitempty"`
	Contact      *string       `json:"contact,omitempty"`
}
