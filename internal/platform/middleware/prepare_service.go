package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripyverse/travelnext-hub/internal/tools/middleware"
)

type factory interface {
	GetService(string) (any, error)
}

const (
	ServiceKey string = "service"
)

// PrepareService resolves the supplier service for a route group and puts
// it on the context for the handlers downstream.
func PrepareService(f factory, name string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		service, err := f.GetService(name)
		if err != nil {
			middleware.HandleError(ctx, http.StatusNotFound, "Failed to find supplier service", err)
			return
		}

		ctx.Set(ServiceKey, service)
	}
}
