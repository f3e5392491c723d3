package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"medistay/catalog"
	"medistay/models"
)

const (
	packagesCacheKey = "catalog:packages"
	packagesCacheTTL = 10 * time.Minute
)

// PackageHandler serves the public package catalog, cached in redis since
// the catalog is read-mostly.
type PackageHandler struct {
	Catalog catalog.Catalog
	Cache   *redis.Client
}

func NewPackageHandler(cat catalog.Catalog, cache *redis.Client) *PackageHandler {
	return &PackageHandler{Catalog: cat, Cache: cache}
}

// ListPackages handles GET /api/packages.
func (h *PackageHandler) ListPackages(c *gin.Context) {
	ctx := c.Request.Context()

	if data, ok := h.cached(ctx); ok {
		c.Data(http.StatusOK, "application/json", data)
		return
	}

	packages := h.Catalog.Packages()
	available := make([]models.Package, 0, len(packages))
	for _, p := range packages {
		if p.Available {
			available = append(available, p)
		}
	}

	payload, err := json.Marshal(gin.H{"packages": available})
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"packages": available})
		return
	}
	if h.Cache != nil {
		h.Cache.Set(ctx, packagesCacheKey, payload, packagesCacheTTL)
	}
	c.Data(http.StatusOK, "application/json", payload)
}

func (h *PackageHandler) cached(ctx context.Context) ([]byte, bool) {
	if h.Cache == nil {
		return nil, false
	}
	data, err := h.Cache.Get(ctx, packagesCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}
