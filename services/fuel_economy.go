package services

import (
	"sort"

	"driverledger/models"
)

// SortRefills orders refills by (date, odometer). Same-day refills are
// disambiguated by distance, never by insertion order.
func SortRefills(refills []*models.Refill) {
	sort.SliceStable(refills, func(i, j int) bool {
		a, b := refills[i], refills[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.Odometer < b.Odometer
	})
}

// RecalculateEconomy recomputes the average of every full-tank refill and the
// aggregate economy of the profile from the complete refill history. It
// reorders refills in place and only mutates memory; the caller persists.
//
// An interval between two consecutive full tanks consumes the liters of every
// refill strictly after the start (by date and by odometer) up to and
// including the end. The profile average is the ratio of summed distances to
// summed volumes, not the mean of interval averages.
func RecalculateEconomy(profile *models.VehicleProfile, refills []*models.Refill) {
	SortRefills(refills)

	var fullTanks []*models.Refill
	for _, r := range refills {
		r.ComputedAverage = nil
		if r.FullTank {
			fullTanks = append(fullTanks, r)
		}
	}

	var totalDistance, totalVolume float64
	for i := 0; i+1 < len(fullTanks); i++ {
		start, end := fullTanks[i], fullTanks[i+1]

		distance := float64(end.Odometer - start.Odometer)
		if distance <= 0 {
			continue
		}

		var volume float64
		for _, r := range refills {
			if r.Date.After(start.Date) && !r.Date.After(end.Date) &&
				r.Odometer > start.Odometer && r.Odometer <= end.Odometer {
				volume += r.Liters
			}
		}
		if volume <= 0 {
			continue
		}

		avg := distance / volume
		end.ComputedAverage = &avg
		totalDistance += distance
		totalVolume += volume
	}

	if totalVolume > 0 {
		profile.AverageEconomy = totalDistance / totalVolume
	} else if len(refills) > 1 {
		// The fill level before the first refill is unknown, so its liters
		// cannot be attributed to any measured distance.
		first, last := refills[0], refills[len(refills)-1]
		distance := float64(last.Odometer - first.Odometer)
		var liters float64
		for _, r := range refills[1:] {
			liters += r.Liters
		}
		if liters > 0 && distance > 0 {
			profile.AverageEconomy = distance / liters
		}
	}

	if len(refills) > 0 {
		maxOdometer := refills[0].Odometer
		for _, r := range refills[1:] {
			if r.Odometer > maxOdometer {
				maxOdometer = r.Odometer
			}
		}
		profile.Odometer = maxOdometer
	}
}

// AnnotateSincePrevious fills SincePrevious on each refill of an ordered
// history: distance from the previous refill divided by this refill's liters.
func AnnotateSincePrevious(ordered []*models.Refill) {
	for i, r := range ordered {
		r.SincePrevious = nil
		if i == 0 {
			continue
		}
		km := float64(r.Odometer - ordered[i-1].Odometer)
		if km > 0 && r.Liters > 0 {
			v := km / r.Liters
			r.SincePrevious = &v
		}
	}
}
