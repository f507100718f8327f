package geo

import (
	"errors"
	"math"
)

var ErrInvalidCoordinates = errors.New("invalid coordinates")

const earthRadiusKm = 6371.0

// Point — координаты в градусах (WGS84).
type Point struct {
	Latitude  float64
	Longitude float64
}

func NewPoint(latitude, longitude float64) (Point, error) {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return Point{}, ErrInvalidCoordinates
	}
	return Point{
		Latitude:  latitude,
		Longitude: longitude,
	}, nil
}

// Distance возвращает расстояние по дуге большого круга в километрах,
// округлённое до двух знаков.
func Distance(from, to Point) (float64, error) {
	if err := validate(from); err != nil {
		return 0, err
	}
	if err := validate(to); err != nil {
		return 0, err
	}

	lat1 := toRadians(from.Latitude)
	lat2 := toRadians(to.Latitude)
	dLat := toRadians(to.Latitude - from.Latitude)
	dLon := toRadians(to.Longitude - from.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return round2(earthRadiusKm * c), nil
}

// ETAMinutes оценивает время в пути в минутах при заданной средней скорости.
func ETAMinutes(distanceKm, avgSpeedKmh float64) (int, error) {
	if distanceKm < 0 || avgSpeedKmh <= 0 {
		return 0, ErrInvalidCoordinates
	}
	return int(math.Ceil(distanceKm / avgSpeedKmh * 60)), nil
}

func validate(p Point) error {
	if p.Latitude < -90 || p.Latitude > 90 || p.Longitude < -180 || p.Longitude > 180 {
		return ErrInvalidCoordinates
	}
	return nil
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
