package listings

import "github.com/adotapet/adota-pet-api/internal/models"

// RedactedPlaceholder replaces contact fields for unauthenticated readers.
const RedactedPlaceholder = "login required"

// RedactContact strips phone, address and coordinates in place.
func RedactContact(services []models.Service) {
	for i := range services {
		services[i].Phone = RedactedPlaceholder
		services[i].Address = RedactedPlaceholder
		services[i].Latitude = nil
		services[i].Longitude = nil
	}
}
