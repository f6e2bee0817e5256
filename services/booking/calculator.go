package booking

import "tripatlas/models"

// Calculator computes booking totals from a selection. It is pure: the same
// selection always yields the same total, and nothing is remembered between
// calls. Inputs are clamped defensively so the calculator stays safe when the
// collaborating form UI is bypassed.
type Calculator struct {
	Accommodations map[string]int64
	AddOns         map[string]int64
	ExtraRoomFee   int64
	MaxTravelers   int
	MaxRooms       int
}

// NewCalculator builds a calculator over the static lookup tables.
func NewCalculator(accoms []models.AccommodationType, addOns []models.AddOn, extraRoomFee int64, maxTravelers, maxRooms int) *Calculator {
	c := &Calculator{
		Accommodations: make(map[string]int64, len(accoms)),
		AddOns:         make(map[string]int64, len(addOns)),
		ExtraRoomFee:   extraRoomFee,
		MaxTravelers:   maxTravelers,
		MaxRooms:       maxRooms,
	}
	for _, a := range accoms {
		c.Accommodations[a.ID] = a.Surcharge
	}
	for _, a := range addOns {
		c.AddOns[a.ID] = a.Price
	}
	return c
}

// Total computes the booking total:
//
//	perPerson = base + accommodation surcharge + sum of add-on prices
//	grand     = perPerson * travelers + (rooms-1) * extra room fee
//
// Unknown accommodation or add-on ids cost zero; traveler and room counts are
// clamped into their valid ranges.
func (c *Calculator) Total(sel models.BookingSelection) models.BookingTotal {
	travelers := clamp(sel.TravelerCount, 1, c.MaxTravelers)
	rooms := clamp(sel.RoomCount, 1, c.MaxRooms)

	perPerson := sel.BasePricePerPerson + c.Accommodations[sel.AccommodationType]
	for _, id := range sel.AddOnIDs {
		perPerson += c.AddOns[id]
	}

	extraRoomFee := int64(rooms-1) * c.ExtraRoomFee
	subtotal := perPerson * int64(travelers)

	return models.BookingTotal{
		SubtotalBeforeRooms: subtotal,
		ExtraRoomFee:        extraRoomFee,
		GrandTotal:          subtotal + extraRoomFee,
	}
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if max > 0 && v > max {
		return max
	}
	return v
}
