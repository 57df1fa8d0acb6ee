package factory

import (
	"fmt"

	"github.com/tripyverse/travelnext-hub/internal/platform/implementations/travelnext/flights"
	"github.com/tripyverse/travelnext-hub/internal/platform/implementations/travelnext/hotels"
	"github.com/tripyverse/travelnext-hub/internal/schema"
	"github.com/tripyverse/travelnext-hub/internal/tools/redisfactory"
)

type Factory struct {
	redisFactory *redisfactory.Factory
	config       schema.SupplierConfig
	services     map[string]any
}

func (f *Factory) GetService(name string) (any, error) {
	_, ok := f.services[name]

	if !ok {
		switch name {

		// Register all supplier services here
		case "flights":
			f.services[name] = flights.New(f.redisFactory.ResponsesCacheClient(), f.config)
		case "hotels":
			f.services[name] = hotels.New(f.redisFactory.ResponsesCacheClient(), f.config)
		default:
			return nil, fmt.Errorf("service %s not found", name)
		}
	}

	return f.services[name], nil
}

func NewFactory(redisFactory *redisfactory.Factory) *Factory {
	return &Factory{
		redisFactory: redisFactory,
		config:       schema.NewSupplierConfigFromEnv(),
		services:     make(map[string]any),
	}
}
