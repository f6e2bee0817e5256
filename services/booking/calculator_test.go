package booking

import (
	"testing"

	catalogRepo "tripatlas/database/repository/catalog"
	"tripatlas/models"
)

func newTestCalculator() *Calculator {
	return NewCalculator(
		catalogRepo.SeedAccommodationTypes(),
		catalogRepo.SeedAddOns(),
		2000, // extra room fee
		10,   // max travelers
		5,    // max rooms
	)
}

func TestBookingTotal(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name      string
		sel       models.BookingSelection
		wantGrand int64
	}{
		{
			name: "base with standard upgrade and guide",
			sel: models.BookingSelection{
				BasePricePerPerson: 18000,
				AccommodationType:  "standard", // +2000
				AddOnIDs:           []string{"guide"},
				TravelerCount:      2,
				RoomCount:          1,
			},
			wantGrand: 43000, // (18000+2000+1500)*2
		},
		{
			name: "included accommodation costs nothing extra",
			sel: models.BookingSelection{
				BasePricePerPerson: 16000,
				AccommodationType:  "homestay",
				TravelerCount:      1,
				RoomCount:          1,
			},
			wantGrand: 16000,
		},
		{
			name: "extra rooms billed beyond the first",
			sel: models.BookingSelection{
				BasePricePerPerson: 16000,
				AccommodationType:  "homestay",
				TravelerCount:      4,
				RoomCount:          2,
			},
			wantGrand: 16000*4 + 2000,
		},
		{
			name: "add-ons apply per traveler",
			sel: models.BookingSelection{
				BasePricePerPerson: 15000,
				AccommodationType:  "deluxe", // +4000
				AddOnIDs:           []string{"guide", "photography", "transport"},
				TravelerCount:      3,
				RoomCount:          1,
			},
			wantGrand: (15000 + 4000 + 1500 + 2500 + 2000) * 3,
		},
		{
			name: "unknown ids cost zero",
			sel: models.BookingSelection{
				BasePricePerPerson: 17000,
				AccommodationType:  "presidential",
				AddOnIDs:           []string{"helicopter"},
				TravelerCount:      1,
				RoomCount:          1,
			},
			wantGrand: 17000,
		},
		{
			name: "zero counts clamp to one",
			sel: models.BookingSelection{
				BasePricePerPerson: 17000,
				TravelerCount:      0,
				RoomCount:          0,
			},
			wantGrand: 17000,
		},
		{
			name: "excess counts clamp to the upper bounds",
			sel: models.BookingSelection{
				BasePricePerPerson: 10000,
				TravelerCount:      99, // -> 10
				RoomCount:          99, // -> 5
			},
			wantGrand: 10000*10 + 4*2000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Total(tt.sel)
			if got.GrandTotal != tt.wantGrand {
				t.Errorf("GrandTotal = %d, want %d", got.GrandTotal, tt.wantGrand)
			}
			if got.SubtotalBeforeRooms+got.ExtraRoomFee != got.GrandTotal {
				t.Errorf("breakdown inconsistent: %d + %d != %d",
					got.SubtotalBeforeRooms, got.ExtraRoomFee, got.GrandTotal)
			}
		})
	}
}

func TestBookingTotalIsPure(t *testing.T) {
	calc := newTestCalculator()
	sel := models.BookingSelection{
		BasePricePerPerson: 18000,
		AccommodationType:  "standard",
		AddOnIDs:           []string{"guide"},
		TravelerCount:      2,
		RoomCount:          1,
	}
	first := calc.Total(sel)
	for i := 0; i < 10; i++ {
		if got := calc.Total(sel); got != first {
			t.Fatalf("call %d returned %+v, first returned %+v", i, got, first)
		}
	}
}

func TestBookingTotalRoomDelta(t *testing.T) {
	calc := newTestCalculator()
	sel := models.BookingSelection{
		BasePricePerPerson: 18000,
		AccommodationType:  "standard",
		TravelerCount:      2,
		RoomCount:          1,
	}
	oneRoom := calc.Total(sel)
	sel.RoomCount = 3
	threeRooms := calc.Total(sel)

	if delta := threeRooms.GrandTotal - oneRoom.GrandTotal; delta != 4000 {
		t.Errorf("room delta = %d, want 4000", delta)
	}
}
