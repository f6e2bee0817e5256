package models

import "time"

// BookingSelection accumulates the user's choices across the multi-step
// booking form. It lives inside a BookingSession until confirmation.
type BookingSelection struct {
	ChosenPlanID       string   `json:"chosenPlanId"`
	BasePricePerPerson int64    `json:"basePricePerPerson"`
	AccommodationType  string   `json:"accommodationTypeId"`
	AddOnIDs           []string `json:"addOnIds"`
	TravelerCount      int      `json:"travelerCount"`
	RoomCount          int      `json:"roomCount"`
}

// BookingTotal is the deterministic result of the booking calculator. It is
// rebuilt from scratch on every selection change and immutable once an order
// is placed.
type BookingTotal struct {
	SubtotalBeforeRooms int64 `json:"subtotalBeforeRooms"`
	ExtraRoomFee        int64 `json:"extraRoomFee"`
	GrandTotal          int64 `json:"grandTotal"`
}

// BookingSession holds the form state between initiation and confirmation.
type BookingSession struct {
	SessionID string           `json:"sessionId"`
	Selection BookingSelection `json:"selection"`
	Total     BookingTotal     `json:"total"`
	CreatedAt time.Time        `json:"createdAt"`
}

// SelectionPatch carries one step of the booking form. Nil fields leave the
// current selection untouched.
type SelectionPatch struct {
	AccommodationType *string   `json:"accommodationTypeId,omitempty"`
	AddOnIDs          *[]string `json:"addOnIds,omitempty"`
	TravelerCount     *int      `json:"travelerCount,omitempty"`
	RoomCount         *int      `json:"roomCount,omitempty"`
}

// BookingConfirmation is the immutable record returned once order placement
// is simulated.
type BookingConfirmation struct {
	BookingID       string           `json:"bookingId"`
	PlanID          string           `json:"planId"`
	Selection       BookingSelection `json:"selection"`
	Total           BookingTotal     `json:"total"`
	PaymentIntentID string           `json:"paymentIntentId"`
	Status          string           `json:"status"`
	ConfirmedAt     time.Time        `json:"confirmedAt"`
}
