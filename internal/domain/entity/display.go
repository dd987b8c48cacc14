package entity

// FallbackBusinessName is shown when neither the ad design nor the
// registration record carries a business name.
const FallbackBusinessName = "Unnamed Business"

// DisplayBusiness is the presentation view of a business after merging
// the registration record with its optional ad-design overrides.
type DisplayBusiness struct {
	ID              string `json:"id"`
	DisplayName     string `json:"displayName"`
	DisplayCity     string `json:"displayCity,omitempty"`
	DisplayState    string `json:"displayState,omitempty"`
	DisplayPhone    string `json:"displayPhone,omitempty"`
	DisplayLocation string `json:"displayLocation,omitempty"`
	Zip             string `json:"zip,omitempty"`
	IsDemo          bool   `json:"isDemo,omitempty"`
	IsPlaceholder   bool   `json:"isPlaceholder,omitempty"`
}

// Enrich merges a registration record with its optional ad-design
// overrides. The merge is pure: neither input is mutated and nothing is
// written back to the store. A nil adDesign enriches from registration
// data alone.
func Enrich(business *Business, adDesign *AdDesign) *DisplayBusiness {
	display := &DisplayBusiness{
		ID:            business.ID,
		DisplayName:   business.BusinessName,
		DisplayCity:   business.City,
		DisplayState:  business.State,
		DisplayPhone:  business.Phone,
		Zip:           business.Zip,
		IsDemo:        business.IsDemo,
		IsPlaceholder: business.IsPlaceholder,
	}

	if adDesign != nil {
		if adDesign.BusinessName != "" {
			display.DisplayName = adDesign.BusinessName
		}
		if adDesign.City != "" {
			display.DisplayCity = adDesign.City
		}
		if adDesign.State != "" {
			display.DisplayState = adDesign.State
		}
		if adDesign.Phone != "" {
			display.DisplayPhone = adDesign.Phone
		}
	}

	if display.DisplayName == "" {
		display.DisplayName = FallbackBusinessName
	}
	display.DisplayLocation = displayLocation(display.DisplayCity, display.DisplayState, business.Zip)

	return display
}

// displayLocation composes the derived location line from whatever
// display fields are available.
func displayLocation(city, state, zip string) string {
	switch {
	case city != "" && state != "":
		return city + ", " + state
	case city != "":
		return city
	case state != "":
		return state
	case zip != "":
		return "Zip: " + zip
	default:
		return ""
	}
}
