package game

import "encoding/json"

// Street represents the betting phase of a hand
type Street int

// constants for Street
const (
	StreetPreFlop Street = iota
	StreetFlop
	StreetTurn
	StreetRiver
	StreetShowdown
)

// communityCards is how many community cards are dealt entering each street
var communityCards = map[Street]int{
	StreetFlop:  3,
	StreetTurn:  1,
	StreetRiver: 1,
}

func (s Street) String() string {
	switch s {
	case StreetPreFlop:
		return "pre-flop"
	case StreetFlop:
		return "flop"
	case StreetTurn:
		return "turn"
	case StreetRiver:
		return "river"
	case StreetShowdown:
		return "showdown"
	}

	return ""
}

// MarshalJSON encodes JSON
func (s Street) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}

// UnmarshalJSON decodes JSON. Stored snapshots are read back for display.
func (s *Street) UnmarshalJSON(data []byte) error {
	var obj struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	*s = Street(obj.ID)
	return nil
}

// Status is the table-wide game status
type Status string

// status constants, mirroring the lobby lifecycle
const (
	StatusWaiting    Status = "waiting"
	StatusInProgress Status = "in-progress"
	StatusFinished   Status = "finished"
)
