package schema

import (
	"os"
	"strconv"
)

// Credentials is the static account block every supplier call carries.
type Credentials struct {
	UserID       string `json:"user_id"`
	UserPassword string `json:"user_password"`
	Access       string `json:"access"`
	IPAddress    string `json:"ip_address"`
}

// Timeouts are per call class, in milliseconds.
type Timeouts struct {
	Transactional int
	Search        int
	Reference     int
}

type SupplierConfig struct {
	FlightApiUrl string
	HotelApiUrl  string
	Credentials  Credentials
	Timeouts     Timeouts
}

func envOrDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return value
}

// NewSupplierConfigFromEnv reads the supplier configuration once at process
// start. The config struct is injected everywhere afterwards.
func NewSupplierConfigFromEnv() SupplierConfig {
	return SupplierConfig{
		FlightApiUrl: envOrDefault("TRAVELNEXT_FLIGHT_API_URL", "https://travelnext.works/api/aeroVE5"),
		HotelApiUrl:  envOrDefault("TRAVELNEXT_HOTEL_API_URL", "https://travelnext.works/api/hotel-api-v6"),
		Credentials: Credentials{
			UserID:       os.Getenv("TRAVELNEXT_USER_ID"),
			UserPassword: os.Getenv("TRAVELNEXT_USER_PASSWORD"),
			Access:       envOrDefault("TRAVELNEXT_ACCESS", "Test"),
			IPAddress:    os.Getenv("TRAVELNEXT_IP_ADDRESS"),
		},
		Timeouts: Timeouts{
			Transactional: envIntOrDefault("TRAVELNEXT_TIMEOUT_TRANSACTIONAL", 30000),
			Search:        envIntOrDefault("TRAVELNEXT_TIMEOUT_SEARCH", 60000),
			Reference:     envIntOrDefault("TRAVELNEXT_TIMEOUT_REFERENCE", 120000),
		},
	}
}
