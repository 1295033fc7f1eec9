package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/emeraldbistro/table-service/internal/engine"
	"github.com/emeraldbistro/table-service/internal/queue"
)

// ManagerHandler exposes the floor-management endpoints: the dashboard
// snapshot, checkout/free-table and the aggregate stats.
type ManagerHandler struct {
	Engine *engine.Engine
}

// NewManagerHandler constructs a ManagerHandler.  The engine must be non-nil.
func NewManagerHandler(eng *engine.Engine) *ManagerHandler {
	if eng == nil {
		panic("nil engine passed to NewManagerHandler")
	}
	return &ManagerHandler{Engine: eng}
}

// Dashboard handles GET /v1/manager.  It returns one consistent
// snapshot of every table enriched with its order detail, the waiting
// queue, the active orders and the completed/revenue aggregates.
func (h *ManagerHandler) Dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Engine.Dashboard())
}

// FreeTable handles POST /v1/tables/:number/free, the checkout event.
// The engine completes and archives the linked order, frees the table
// and seats the first waiting party that fits, all as one unit.
// Freeing an unknown or already-free table responds with ok:false
// rather than an error.  Completed and reassigned order snapshots are
// pushed to the sync queue after the state transition has committed.
func (h *ManagerHandler) FreeTable(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid table number"})
	}
	res, ok := h.Engine.FreeTable(number)
	if !ok {
		return c.JSON(http.StatusOK, echo.Map{"ok": false, "message": "table unknown or already free"})
	}
	if res.Completed != nil {
		publishSync(queue.EventOrderCompleted, *res.Completed)
	}
	if res.Reassigned != nil {
		publishSync(queue.EventOrderSeated, *res.Reassigned)
	}
	out := echo.Map{"ok": true, "table_number": res.TableNumber}
	if res.Completed != nil {
		out["completed_order"] = res.Completed.ID
	}
	if res.Reassigned != nil {
		out["reassigned_order"] = res.Reassigned.ID
	}
	return c.JSON(http.StatusOK, out)
}

// Stats handles GET /v1/stats.  Aggregate counts and cumulative revenue.
func (h *ManagerHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Engine.Statistics())
}
