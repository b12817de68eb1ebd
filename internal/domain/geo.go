package domain

// Coordinate is a WGS 84 point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CoordSource says where a resolved coordinate came from.
type CoordSource string

const (
	SourceGeocoder CoordSource = "geocoder"
	SourceFallback CoordSource = "fallback"
)

// CountryCenter is used for destinations without an entry in CityCenters.
var CountryCenter = Coordinate{Lat: 20.5937, Lon: 78.9629}

// CityCenters holds reference points for the destinations the dataset covers.
var CityCenters = map[string]Coordinate{
	"Manali":     {Lat: 32.2396, Lon: 77.1887},
	"Darjeeling": {Lat: 27.0410, Lon: 88.2663},
	"Munnar":     {Lat: 10.0889, Lon: 77.0595},
}

// CenterOf returns the city's reference point, or CountryCenter when unknown.
func CenterOf(city string) Coordinate {
	if c, ok := CityCenters[city]; ok {
		return c
	}
	return CountryCenter
}
