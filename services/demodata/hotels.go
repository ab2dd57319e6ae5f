package demodata

import (
	"sort"
	"strings"

	"goroute/models"
)

// Demo hotels for Indian tourist destinations. Mock data only.
var hotels = map[string][]models.Hotel{
	"Delhi": {
		{Name: "The Leela Palace", Rooms: 8, Price: 9500},
		{Name: "Taj Palace", Rooms: 6, Price: 11000},
		{Name: "ITC Maurya", Rooms: 10, Price: 8500},
	},
	"Mumbai": {
		{Name: "Taj Mahal Palace", Rooms: 5, Price: 12000},
		{Name: "The Oberoi", Rooms: 7, Price: 10500},
		{Name: "Trident Nariman Point", Rooms: 9, Price: 9000},
	},
	"Jaipur": {
		{Name: "Rambagh Palace", Rooms: 4, Price: 15000},
		{Name: "Jai Mahal Palace", Rooms: 6, Price: 11000},
		{Name: "ITC Rajputana", Rooms: 10, Price: 8500},
	},
	"Agra": {
		{Name: "The Oberoi Amarvilas", Rooms: 3, Price: 14000},
		{Name: "ITC Mughal", Rooms: 8, Price: 7500},
		{Name: "Tajview Hotel", Rooms: 10, Price: 6200},
	},
	"Lucknow": {
		{Name: "Taj Mahal Lucknow", Rooms: 6, Price: 8000},
		{Name: "Hyatt Regency", Rooms: 9, Price: 7200},
		{Name: "Golden Tulip", Rooms: 10, Price: 5200},
	},
	"Varanasi": {
		{Name: "BrijRama Palace", Rooms: 4, Price: 13000},
		{Name: "Taj Ganges", Rooms: 8, Price: 7500},
		{Name: "Hotel Alka", Rooms: 12, Price: 3200},
	},
	"Goa": {
		{Name: "Taj Exotica", Rooms: 6, Price: 12500},
		{Name: "W Goa", Rooms: 5, Price: 14000},
		{Name: "Holiday Inn Candolim", Rooms: 12, Price: 6500},
	},
	"Bangalore": {
		{Name: "The Leela Palace Bengaluru", Rooms: 7, Price: 9000},
		{Name: "ITC Gardenia", Rooms: 8, Price: 7800},
		{Name: "Taj West End", Rooms: 6, Price: 8500},
	},
	"Chennai": {
		{Name: "ITC Grand Chola", Rooms: 10, Price: 8200},
		{Name: "The Leela Palace Chennai", Rooms: 6, Price: 9500},
		{Name: "Taj Coromandel", Rooms: 7, Price: 8700},
	},
	"Kolkata": {
		{Name: "The Oberoi Grand", Rooms: 5, Price: 8800},
		{Name: "ITC Royal Bengal", Rooms: 10, Price: 7600},
		{Name: "Taj Bengal", Rooms: 6, Price: 8400},
	},
	"Hyderabad": {
		{Name: "Taj Falaknuma Palace", Rooms: 3, Price: 16000},
		{Name: "ITC Kohenur", Rooms: 8, Price: 8200},
		{Name: "Park Hyatt", Rooms: 7, Price: 9000},
	},
	"Udaipur": {
		{Name: "Taj Lake Palace", Rooms: 4, Price: 18000},
		{Name: "The Oberoi Udaivilas", Rooms: 3, Price: 20000},
		{Name: "Trident Udaipur", Rooms: 8, Price: 9500},
	},
	"Amritsar": {
		{Name: "Taj Swarna", Rooms: 6, Price: 7800},
		{Name: "Hyatt Regency", Rooms: 9, Price: 7200},
		{Name: "Hotel Ramada", Rooms: 10, Price: 6500},
	},
}

// HotelsFor returns the hotels listed for city (case-insensitive), or nil.
func HotelsFor(city string) []models.Hotel {
	city = strings.TrimSpace(city)
	for name, list := range hotels {
		if strings.EqualFold(name, city) {
			return append([]models.Hotel(nil), list...)
		}
	}
	return nil
}

// HotelCities returns the cities that have hotel listings, sorted.
func HotelCities() []string {
	cities := make([]string, 0, len(hotels))
	for name := range hotels {
		cities = append(cities, name)
	}
	sort.Strings(cities)
	return cities
}
