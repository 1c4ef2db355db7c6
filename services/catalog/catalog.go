// Package catalog supplies the static sample inventory: trending
// destinations, rental cars, airports and hotel locations. Catalog data is
// read-only; booking and wishlist services only ever reference its stable ids.
package catalog

import "github.com/kamesh952/KalmHolidays/models"

// Service resolves catalog inventory for the presentation layer and for
// booking-time display resolution.
type Service interface {
	Destinations() []models.Destination
	Destination(id string) (models.Destination, bool)
	Cars() []models.CarRental
	Car(id string) (models.CarRental, bool)
	Airports() []models.Airport
	Airport(code string) (models.Airport, bool)
	HotelLocations() []string
}

var trendingDestinations = []models.Destination{
	{ID: "1", Img: "swit.webp", Label: "Switzerland - Snowy Peaks", Price: "₹1,02,000"},
	{ID: "2", Img: "japan.jpg", Label: "Japan - Cherry Blossoms", Price: "₹1,27,500"},
	{ID: "3", Img: "duabi.jpg", Label: "Dubai - Luxury Redefined", Price: "₹1,53,000"},
	{ID: "4", Img: "egypt.jpg", Label: "Egypt - Ancient Wonders", Price: "₹80,750"},
	{ID: "5", Img: "italy.jpg", Label: "Italy - Cultural Delight", Price: "₹93,500"},
	{ID: "6", Img: "australia.jpg", Label: "Australia - Scenic Coastlines", Price: "₹1,87,000"},
	{ID: "7", Img: "thialan.avif", Label: "Thailand - Beach Paradise", Price: "₹72,250"},
	{ID: "8", Img: "malaysia.jpg", Label: "Malaysia - Urban Adventures", Price: "₹76,500"},
	{ID: "9", Img: "swit.avif", Label: "Switzerland-Land of Joy", Price: "₹1,10,500"},
	{ID: "10", Img: "spain.jpg", Label: "Spain - Acheive Your Dreams", Price: "₹76,500"},
	{ID: "11", Img: "germany.jpeg", Label: "Germany-A Land Of Techs", Price: "₹1,10,500"},
	{ID: "12", Img: "china.jpg", Label: "China-A Competitor to India", Price: "₹1,10,500"},
}

var rentalCars = []models.CarRental{
	{ID: "p1", Location: "New Delhi", CarType: "SUV", Image: "cars/delhi-suv.jpg", Price: "₹2,500/day"},
	{ID: "p2", Location: "Mumbai", CarType: "Sedan", Image: "cars/mumbai-sedan.jpg", Price: "₹2,000/day"},
	{ID: "p3", Location: "Bangalore", CarType: "Hatchback", Image: "cars/bangalore-hatchback.jpg", Price: "₹1,800/day"},
	{ID: "p4", Location: "Chennai", CarType: "SUV", Image: "cars/chennai-suv.jpg", Price: "₹2,300/day"},
	{ID: "p5", Location: "Goa", CarType: "Convertible", Image: "cars/goa-convertible.jpg", Price: "₹3,200/day"},
	{ID: "p6", Location: "Jaipur", CarType: "SUV", Image: "cars/jaipur-suv.jpg", Price: "₹2,400/day"},
}

var airports = []models.Airport{
	{Code: "DEL", Name: "Delhi (DEL)"},
	{Code: "BOM", Name: "Mumbai (BOM)"},
	{Code: "BLR", Name: "Bengaluru (BLR)"},
	{Code: "MAA", Name: "Chennai (MAA)"},
	{Code: "HYD", Name: "Hyderabad (HYD)"},
	{Code: "CCU", Name: "Kolkata (CCU)"},
}

var hotelLocations = []string{
	"Delhi", "Mumbai", "Bangalore", "Hyderabad", "Chennai", "Kolkata", "Pune",
	"Jaipur", "Goa", "Udaipur", "Shimla", "Manali", "Rishikesh", "Darjeeling",
	"Gangtok", "Mysore", "Ooty", "Alleppey",
}

type staticCatalog struct{}

// NewStaticCatalog returns the built-in sample inventory.
func NewStaticCatalog() Service {
	return staticCatalog{}
}

func (staticCatalog) Destinations() []models.Destination {
	out := make([]models.Destination, len(trendingDestinations))
	copy(out, trendingDestinations)
	return out
}

func (staticCatalog) Destination(id string) (models.Destination, bool) {
	for _, d := range trendingDestinations {
		if d.ID == id {
			return d, true
		}
	}
	return models.Destination{}, false
}

func (staticCatalog) Cars() []models.CarRental {
	out := make([]models.CarRental, len(rentalCars))
	copy(out, rentalCars)
	return out
}

func (staticCatalog) Car(id string) (models.CarRental, bool) {
	for _, c := range rentalCars {
		if c.ID == id {
			return c, true
		}
	}
	return models.CarRental{}, false
}

func (staticCatalog) Airports() []models.Airport {
	out := make([]models.Airport, len(airports))
	copy(out, airports)
	return out
}

func (staticCatalog) Airport(code string) (models.Airport, bool) {
	for _, a := range airports {
		if a.Code == code {
			return a, true
		}
	}
	return models.Airport{}, false
}

func (staticCatalog) HotelLocations() []string {
	out := make([]string, len(hotelLocations))
	copy(out, hotelLocations)
	return out
}
