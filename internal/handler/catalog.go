package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emeraldbistro/table-service/internal/catalog"
	"github.com/emeraldbistro/table-service/internal/engine"
)

// CatalogHandler serves the read-only menu and table views.  The menu
// comes straight from the immutable catalog; the table view is the
// engine's live snapshot including occupancy.
type CatalogHandler struct {
	Catalog *catalog.Catalog
	Engine  *engine.Engine
}

// NewCatalogHandler constructs a CatalogHandler.  Both dependencies
// must be non-nil.
func NewCatalogHandler(cat *catalog.Catalog, eng *engine.Engine) *CatalogHandler {
	if cat == nil || eng == nil {
		panic("nil dependency passed to NewCatalogHandler")
	}
	return &CatalogHandler{Catalog: cat, Engine: eng}
}

// Menu handles GET /v1/menu.
func (h *CatalogHandler) Menu(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Catalog.Menu})
}

// Tables handles GET /v1/tables.  Returns every table with its current
// occupancy state.
func (h *CatalogHandler) Tables(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Engine.Tables()})
}
