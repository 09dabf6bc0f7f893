package games

import (
	"fmt"
	"strings"
)

// ParticipantID is a stable opaque identifier. Ledgers and pairings key on it,
// so renaming a participant never touches more than the roster record itself.
type ParticipantID string

// Participant is one member of the fixed roster.
type Participant struct {
	ID       ParticipantID
	Name     string
	Portrait string
}

// Roster is the ordered list of participants for the event. Participants are
// created once at startup and never removed; only their display name changes.
type Roster struct {
	members []*Participant
	byID    map[ParticipantID]*Participant
}

// NewRoster assigns stable IDs in roster order. Names must be non-empty and
// unique; portraits are optional.
func NewRoster(members []Participant) (*Roster, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("roster: %w", ErrNoContent)
	}

	r := &Roster{
		byID: make(map[ParticipantID]*Participant, len(members)),
	}

	seen := make(map[string]bool, len(members))
	for i, m := range members {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			return nil, fmt.Errorf("roster entry %d: empty name", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("roster entry %d: %w: %q", i+1, ErrNameTaken, name)
		}
		seen[name] = true

		p := &Participant{
			ID:       ParticipantID(fmt.Sprintf("p%d", i+1)),
			Name:     name,
			Portrait: m.Portrait,
		}
		r.members = append(r.members, p)
		r.byID[p.ID] = p
	}

	return r, nil
}

// Len returns the roster size.
func (r *Roster) Len() int {
	return len(r.members)
}

// Members returns the participants in roster order.
func (r *Roster) Members() []Participant {
	out := make([]Participant, 0, len(r.members))
	for _, p := range r.members {
		out = append(out, *p)
	}
	return out
}

// IDs returns all participant IDs in roster order.
func (r *Roster) IDs() []ParticipantID {
	out := make([]ParticipantID, 0, len(r.members))
	for _, p := range r.members {
		out = append(out, p.ID)
	}
	return out
}

// Get looks up a participant by ID.
func (r *Roster) Get(id ParticipantID) (Participant, bool) {
	p, ok := r.byID[id]
	if !ok {
		return Participant{}, false
	}
	return *p, true
}

// Name resolves an ID to its current display name.
func (r *Roster) Name(id ParticipantID) string {
	if p, ok := r.byID[id]; ok {
		return p.Name
	}
	return ""
}

// Rename changes a participant's display name. Because everything else keys on
// the stable ID, this single mutation is visible everywhere at once.
func (r *Roster) Rename(id ParticipantID, newName string) error {
	p, ok := r.byID[id]
	if !ok {
		return ErrUnknownParticipant
	}

	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("rename: empty name")
	}

	for _, other := range r.members {
		if other.ID != id && other.Name == newName {
			return fmt.Errorf("rename: %w: %q", ErrNameTaken, newName)
		}
	}

	p.Name = newName
	return nil
}
