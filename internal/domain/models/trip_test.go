package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestTravelersUnmarshal(t *testing.T) {
	tests := []struct {
		in          string
		wantText    string
		wantPresent bool
	}{
		{`{"travelers":"2 adults"}`, "2 adults", true},
		{`{"travelers":3}`, "3", true},
		{`{"travelers":2.5}`, "2.5", true},
		{`{"travelers":0}`, "0", false},
		{`{"travelers":""}`, "", false},
		{`{"travelers":null}`, "", false},
		{`{}`, "", false},
		{`{"travelers":true}`, "True", true},
		{`{"travelers":false}`, "False", false},
	}
	for _, tt := range tests {
		var trip TripRequest
		if err := json.Unmarshal([]byte(tt.in), &trip); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.in, err)
		}
		if trip.Travelers.String() != tt.wantText || trip.Travelers.Present() != tt.wantPresent {
			t.Fatalf("%s: got %+v (present=%v), want %q present=%v",
				tt.in, trip.Travelers, trip.Travelers.Present(), tt.wantText, tt.wantPresent)
		}
	}
}

func TestTravelersRejectsObjects(t *testing.T) {
	var trip TripRequest
	if err := json.Unmarshal([]byte(`{"travelers":{"adults":2}}`), &trip); err == nil {
		t.Fatalf("expected error for object travelers")
	}
}

func TestMissingFields(t *testing.T) {
	trip := TripRequest{Destination: "Hanoi", Travelers: TravelersOf("1")}
	want := []string{"source", "dates", "interests"}
	if got := trip.MissingFields(); !reflect.DeepEqual(got, want) {
		t.Fatalf("MissingFields() = %v, want %v", got, want)
	}

	full := TripRequest{Source: "a", Destination: "b", Dates: "c", Travelers: TravelersOf("1"), Interests: "d"}
	if got := full.MissingFields(); len(got) != 0 {
		t.Fatalf("MissingFields() = %v, want none", got)
	}
}
