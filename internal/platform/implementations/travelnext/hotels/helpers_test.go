package hotels_test

import (
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/tripyverse/travelnext-hub/internal/schema"
)

func testConfiguration(url string) schema.SupplierConfig {
	return schema.SupplierConfig{
		FlightApiUrl: url,
		HotelApiUrl:  url,
		Credentials: schema.Credentials{
			UserID:       "test-user",
			UserPassword: "test-password",
			Access:       "Test",
			IPAddress:    "127.0.0.1",
		},
		Timeouts: schema.Timeouts{
			Transactional: 30000,
			Search:        60000,
			Reference:     120000,
		},
	}
}

func testRedisClient() (*redis.Client, redismock.ClientMock) {
	return redismock.NewClientMock()
}
