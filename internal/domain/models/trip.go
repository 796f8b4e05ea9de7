package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TripRequest carries the trip parameters of a single generate or export call.
type TripRequest struct {
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	Dates       string    `json:"dates"`
	Travelers   Travelers `json:"travelers"`
	Interests   string    `json:"interests"`
}

// MissingFields lists the fields that are absent or empty, in request order.
func (t TripRequest) MissingFields() []string {
	var missing []string
	if t.Source == "" {
		missing = append(missing, "source")
	}
	if t.Destination == "" {
		missing = append(missing, "destination")
	}
	if t.Dates == "" {
		missing = append(missing, "dates")
	}
	if !t.Travelers.Present() {
		missing = append(missing, "travelers")
	}
	if t.Interests == "" {
		missing = append(missing, "interests")
	}
	return missing
}

// Travelers accepts either a JSON string or a JSON number.
// Falsy marks a numeric zero or boolean false, which count as absent.
type Travelers struct {
	Text  string
	Falsy bool
}

// TravelersOf builds a Travelers value from its text form.
func TravelersOf(s string) Travelers {
	return Travelers{Text: s}
}

func (t Travelers) String() string { return t.Text }

func (t Travelers) Present() bool { return !t.Falsy && t.Text != "" }

func (t *Travelers) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")):
		*t = Travelers{}
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Travelers{Text: s}
	case bytes.Equal(b, []byte("true")):
		*t = Travelers{Text: "True"}
	case bytes.Equal(b, []byte("false")):
		*t = Travelers{Text: "False", Falsy: true}
	default:
		lit := string(b)
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return fmt.Errorf("travelers: expected string or number, got %s", strings.TrimSpace(lit))
		}
		*t = Travelers{Text: lit, Falsy: f == 0}
	}
	return nil
}

func (t Travelers) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Text)
}
