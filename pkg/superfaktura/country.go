package superfaktura

// CountryService exposes the service's country lookup table.
type CountryService struct {
	api *Client
}

// List retrieves the country table as the raw decoded collection. The
// endpoint returns a JSON array of entries keyed by "Country".
func (s *CountryService) List() (interface{}, error) {
	return s.api.Get("countries")
}
