package models

// Destination is a bookable tour package from the static catalog. The ID is
// assigned by the catalog and stays stable across wishlist and booking use.
type Destination struct {
	ID    string `json:"id"`
	Img   string `json:"img,omitempty"`
	Label string `json:"label"`
	Price string `json:"price,omitempty"`
}

// CarRental is a rentable car offer from the static catalog.
type CarRental struct {
	ID       string `json:"id"`
	Location string `json:"location,omitempty"`
	CarType  string `json:"carType,omitempty"`
	Image    string `json:"image,omitempty"`
	Price    string `json:"price,omitempty"`
}

// Airport is a selectable airport for the flight search form.
type Airport struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
