package models

// Hotel is a demo hotel listing for a destination city.
type Hotel struct {
	Name  string `json:"name"`
	Rooms int    `json:"rooms"`
	Price int    `json:"price"` // Per night
}

// HotelStay is the optional hotel attached to a booking.
type HotelStay struct {
	Name         string `json:"name"`
	NightlyPrice int    `json:"nightlyPrice"`
}
