package services

import (
	"errors"
	"testing"

	"trip-scheduler-service/internal/domain"
)

func validRequest() PlanRequest {
	return PlanRequest{
		StartAddress:  "Prague",
		EndAddress:    "Brno",
		DepartureTime: "10:00",
		Stops: []StopInput{
			{Address: "Jihlava", BreakMinutes: 30},
		},
	}
}

func expectValidationError(t *testing.T, req PlanRequest) *domain.ValidationError {
	t.Helper()
	_, err := ValidatePlanRequest(req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %T", err)
	}
	return ve
}

func TestValidateAcceptsWellFormedRequest(t *testing.T) {
	it, err := ValidatePlanRequest(validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Start.Address != "Prague" || it.End.Address != "Brno" {
		t.Fatalf("unexpected endpoints: %q -> %q", it.Start.Address, it.End.Address)
	}
	if len(it.Stops) != 1 || it.Stops[0].BreakMinutes != 30 {
		t.Fatalf("unexpected stops: %+v", it.Stops)
	}
	if it.DepartureTime != (domain.TimeOfDay{Hour: 10}) {
		t.Fatalf("departure = %v, want 10:00", it.DepartureTime)
	}
}

func TestValidateTrimsAddresses(t *testing.T) {
	req := validRequest()
	req.StartAddress = "  Prague  "
	it, err := ValidatePlanRequest(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Start.Address != "Prague" {
		t.Fatalf("address not trimmed: %q", it.Start.Address)
	}
}

func TestValidateRejectsMissingAddresses(t *testing.T) {
	req := validRequest()
	req.StartAddress = "   "
	expectValidationError(t, req)

	req = validRequest()
	req.EndAddress = ""
	expectValidationError(t, req)

	req = validRequest()
	req.Stops[0].Address = " "
	expectValidationError(t, req)
}

func TestValidateRejectsBadDeparture(t *testing.T) {
	req := validRequest()
	req.DepartureTime = ""
	expectValidationError(t, req)

	req = validRequest()
	req.DepartureTime = "25:00"
	expectValidationError(t, req)
}

func TestValidateRejectsNegativeBreak(t *testing.T) {
	req := validRequest()
	req.Stops[0].BreakMinutes = -1
	expectValidationError(t, req)
}

func TestValidateRejectsMalformedFixedTime(t *testing.T) {
	req := validRequest()
	req.Stops[0].Fixed = true
	req.Stops[0].FixedTime = "9:5"
	expectValidationError(t, req)
}

func TestValidateIgnoresFixedTimeWhenNotFixed(t *testing.T) {
	req := validRequest()
	req.Stops[0].Fixed = false
	req.Stops[0].FixedTime = "garbage"
	if _, err := ValidatePlanRequest(req); err != nil {
		t.Fatalf("unfixed stop should ignore fixed time: %v", err)
	}
}

func TestValidateRejectsFixedTimeBeforeDeparture(t *testing.T) {
	req := validRequest()
	req.DepartureTime = "10:00"
	req.Stops[0].Fixed = true
	req.Stops[0].FixedTime = "09:30"
	expectValidationError(t, req)
}

func TestValidateAllowsFixedTimeEqualToDeparture(t *testing.T) {
	req := validRequest()
	req.DepartureTime = "10:00"
	req.Stops[0].Fixed = true
	req.Stops[0].FixedTime = "10:00"
	if _, err := ValidatePlanRequest(req); err != nil {
		t.Fatalf("equal fixed time should be feasible: %v", err)
	}
}

func TestValidateRejectsOutOfOrderFixedStops(t *testing.T) {
	req := validRequest()
	req.Stops = []StopInput{
		{Address: "A", Fixed: true, FixedTime: "12:00"},
		{Address: "B", Fixed: true, FixedTime: "11:00"},
	}
	expectValidationError(t, req)
}

func TestValidateAllowsEqualFixedStops(t *testing.T) {
	req := validRequest()
	req.Stops = []StopInput{
		{Address: "A", Fixed: true, FixedTime: "12:00"},
		{Address: "B", Fixed: true, FixedTime: "12:00"},
	}
	if _, err := ValidatePlanRequest(req); err != nil {
		t.Fatalf("equal consecutive fixed times should be feasible: %v", err)
	}
}

func TestValidateUnfixedStopsDoNotAdvanceCheckpoint(t *testing.T) {
	// The unfixed middle stop has no known arrival before routing, so the
	// two fixed stops around it are compared directly with each other.
	req := validRequest()
	req.Stops = []StopInput{
		{Address: "A", Fixed: true, FixedTime: "11:00"},
		{Address: "B"},
		{Address: "C", Fixed: true, FixedTime: "12:00"},
	}
	if _, err := ValidatePlanRequest(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req.Stops[2].FixedTime = "10:30"
	expectValidationError(t, req)
}
