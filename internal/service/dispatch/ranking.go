package dispatch

import (
	"sort"

	"dispatch/internal/entities"
	"dispatch/pkg/geo"
)

type candidate struct {
	courier    entities.Courier
	distanceKm float64
}

// rankCandidates сортирует курьеров по расстоянию до магазина; при равном
// расстоянии вперёд идёт тот, чья геопозиция свежее.
func rankCandidates(couriers []entities.Courier, shopPoint geo.Point) []candidate {
	ranked := make([]candidate, 0, len(couriers))
	for _, courier := range couriers {
		if courier.Latitude == nil || courier.Longitude == nil || courier.LocationUpdatedAt == nil {
			continue
		}
		point, err := geo.NewPoint(*courier.Latitude, *courier.Longitude)
		if err != nil {
			continue
		}
		distanceKm, err := geo.Distance(shopPoint, point)
		if err != nil {
			continue
		}
		ranked = append(ranked, candidate{
			courier:    courier,
			distanceKm: distanceKm,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].distanceKm != ranked[j].distanceKm {
			return ranked[i].distanceKm < ranked[j].distanceKm
		}
		return ranked[i].courier.LocationUpdatedAt.After(*ranked[j].courier.LocationUpdatedAt)
	})

	return ranked
}

func excludeOffered(candidates []candidate, offeredIDs []int64) []candidate {
	offered := make(map[int64]struct{}, len(offeredIDs))
	for _, id := range offeredIDs {
		offered[id] = struct{}{}
	}

	kept := make([]candidate, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := offered[c.courier.ID]; ok {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}
