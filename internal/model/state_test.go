package model

import (
	"errors"
	"testing"
)

func TestSearchState_IsBusy(t *testing.T) {
	tests := []struct {
		state    SearchState
		expected bool
	}{
		{StateLoading, true},
		{StateLoaded, false},
		{StateErrored, false},
	}

	for _, test := range tests {
		result := test.state.IsBusy()
		if result != test.expected {
			t.Errorf("SearchState(%s).IsBusy() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestSearchState_IsSettled(t *testing.T) {
	tests := []struct {
		state    SearchState
		expected bool
	}{
		{StateLoading, false},
		{StateLoaded, true},
		{StateErrored, true},
	}

	for _, test := range tests {
		result := test.state.IsSettled()
		if result != test.expected {
			t.Errorf("SearchState(%s).IsSettled() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestSearchState_String(t *testing.T) {
	state := StateLoading
	expected := "Loading"
	result := state.String()

	if result != expected {
		t.Errorf("SearchState.String() = %s, expected %s", result, expected)
	}
}

func TestSearchOutcome_State(t *testing.T) {
	success := SearchOutcome{Team: &Team{Number: 1, Name: "A"}}
	if success.State() != StateLoaded {
		t.Errorf("Expected successful outcome state %s, got %s", StateLoaded, success.State())
	}

	failure := SearchOutcome{Err: errors.New("boom")}
	if failure.State() != StateErrored {
		t.Errorf("Expected failed outcome state %s, got %s", StateErrored, failure.State())
	}
}
