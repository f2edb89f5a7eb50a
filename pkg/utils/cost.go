package utils

import "time"

// DefaultEmergencyDistanceKM is the distance estimate used when an emergency
// request is auto-dispatched without a supplied distance.
const DefaultEmergencyDistanceKM = 10

// RoomCost computes the stay cost as dailyRate * number of nights, with the
// day count floored to 1 so a same-day stay is never free.
func RoomCost(dailyRate float64, checkin, checkout time.Time) float64 {
	days := int(checkout.Sub(checkin).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return dailyRate * float64(days)
}

// StayDays returns the billed day count for a stay, floored to 1.
func StayDays(checkin, checkout time.Time) int {
	days := int(checkout.Sub(checkin).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days
}

// AmbulanceCost computes the ride cost from a base fare plus per-kilometer
// fare. Recomputation with the same inputs is idempotent.
func AmbulanceCost(baseFare, perKmFare, distanceKm float64) float64 {
	return baseFare + perKmFare*distanceKm
}
