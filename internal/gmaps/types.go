package gmaps

// Provider statuses we branch on. Anything else non-OK is a dependency
// failure.
const (
	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"
	StatusNotFound    = "NOT_FOUND"
)

const businessStatusClosed = "CLOSED_PERMANENTLY"

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Geometry struct {
	Location LatLng `json:"location"`
}

type OpeningHours struct {
	OpenNow *bool `json:"open_now,omitempty"`
}

// PlaceResult is one entry from the nearby-search endpoint. Only place_id,
// name and geometry are guaranteed by the provider; the rest is optional.
type PlaceResult struct {
	PlaceID           string        `json:"place_id"`
	Name              string        `json:"name"`
	Vicinity          string        `json:"vicinity"`
	Geometry          Geometry      `json:"geometry"`
	Types             []string      `json:"types"`
	Rating            *float64      `json:"rating,omitempty"`
	UserRatingsTotal  *int          `json:"user_ratings_total,omitempty"`
	PriceLevel        *int          `json:"price_level,omitempty"`
	OpeningHours      *OpeningHours `json:"opening_hours,omitempty"`
	BusinessStatus    *string       `json:"business_status,omitempty"`
	PermanentlyClosed bool          `json:"permanently_closed"`
}

// Closed reports whether the provider flags the place as gone for good.
// Older payloads use permanently_closed, newer ones business_status.
func (p PlaceResult) Closed() bool {
	if p.PermanentlyClosed {
		return true
	}
	return p.BusinessStatus != nil && *p.BusinessStatus == businessStatusClosed
}

// PlaceDetail is the richer payload from the details endpoint.
type PlaceDetail struct {
	PlaceID                  string        `json:"place_id"`
	Name                     string        `json:"name"`
	Vicinity                 string        `json:"vicinity"`
	FormattedAddress         string        `json:"formatted_address"`
	FormattedPhoneNumber     string        `json:"formatted_phone_number"`
	InternationalPhoneNumber string        `json:"international_phone_number"`
	Geometry                 Geometry      `json:"geometry"`
	Types                    []string      `json:"types"`
	Rating                   *float64      `json:"rating,omitempty"`
	PriceLevel               *int          `json:"price_level,omitempty"`
	OpeningHours             *OpeningHours `json:"opening_hours,omitempty"`
	Website                  string        `json:"website"`
	URL                      string        `json:"url"`
	BusinessStatus           *string       `json:"business_status,omitempty"`
	PermanentlyClosed        bool          `json:"permanently_closed"`
}

type geocodeResult struct {
	Geometry Geometry `json:"geometry"`
}

type geocodeResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message"`
	Results      []geocodeResult `json:"results"`
}

type nearbyResponse struct {
	Status        string        `json:"status"`
	ErrorMessage  string        `json:"error_message"`
	NextPageToken string        `json:"next_page_token"`
	Results       []PlaceResult `json:"results"`
}

type detailResponse struct {
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message"`
	Result       *PlaceDetail `json:"result"`
}
