package domain

// Restaurant mirrors one record returned by the restaurant service. ID is assigned by the
// service and never changes for the lifetime of the record.
type Restaurant struct {
	ID            string `json:"_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	ContactNumber string `json:"contactNumber"`
	OpeningHours  string `json:"openingHours"`
	ImageURL      string `json:"restaurantImageUrl,omitempty"`
}

// ListPage is one page of restaurants in server order together with the paging
// metadata reported by the service.
type ListPage struct {
	Items       []Restaurant `json:"restaurants"`
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
}

func cloneRestaurants(items []Restaurant) []Restaurant {
	if items == nil {
		return nil
	}
	cloned := make([]Restaurant, len(items))
	copy(cloned, items)
	return cloned
}
