package domain

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lon float64
}

// LonLat returns coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) LonLat() []float64 { return []float64{c.Lon, c.Lat} }
