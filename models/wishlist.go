package models

// WishlistEntry is a saved-for-later reference to any bookable catalog item
// (destination, car or hotel). ID matches the catalog entity's id, which is
// the identity bridge between catalog and wishlist: at most one entry per
// catalog id may exist.
//
// A wishlisted item and a booked item for the same catalog id are independent
// facts; booking never touches the wishlist and wishlist removal never
// cancels a booking.
type WishlistEntry struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Img         string `json:"img,omitempty"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
}
