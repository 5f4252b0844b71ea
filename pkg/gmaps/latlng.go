package gmaps

import "strconv"

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// String formats the pair the way request parameters expect it: "lat,lng".
func (l LatLng) String() string {
	return strconv.FormatFloat(l.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(l.Lng, 'f', -1, 64)
}

// Bounds is a rectangular viewport.
type Bounds struct {
	Northeast LatLng `json:"northeast" yaml:"northeast"`
	Southwest LatLng `json:"southwest" yaml:"southwest"`
}

// Contains reports whether p lies inside b. Viewports crossing the
// antimeridian have Southwest.Lng > Northeast.Lng.
func (b Bounds) Contains(p LatLng) bool {
	if p.Lat < b.Southwest.Lat || p.Lat > b.Northeast.Lat {
		return false
	}
	if b.Southwest.Lng <= b.Northeast.Lng {
		return p.Lng >= b.Southwest.Lng && p.Lng <= b.Northeast.Lng
	}
	return p.Lng >= b.Southwest.Lng || p.Lng <= b.Northeast.Lng
}

// Geometry is the location block attached to places and geocoding results.
type Geometry struct {
	Location     LatLng  `json:"location" yaml:"location"`
	LocationType string  `json:"location_type,omitempty" yaml:"location_type,omitempty"`
	Viewport     *Bounds `json:"viewport,omitempty" yaml:"viewport,omitempty"`
	Bounds       *Bounds `json:"bounds,omitempty" yaml:"bounds,omitempty"`
}
