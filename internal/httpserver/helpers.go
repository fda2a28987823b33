package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecomstack/order_service/internal/gateway"
	"github.com/ecomstack/order_service/internal/service"
	"github.com/ecomstack/order_service/internal/util"
)

func callerID(c echo.Context) (uint, error) {
	v := c.Get("user_id")
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errors.New("unauthorized")
	}
	return id, nil
}

func pageParams(c echo.Context) (page, offset, limit int) {
	page = util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit = util.Calculate(page, size)
	return page, offset, limit
}

func pageMeta(page, limit int, offset int, total int64) map[string]any {
	return map[string]any{
		"page":        page,
		"size":        limit,
		"total":       total,
		"total_pages": (total + int64(limit) - 1) / int64(limit),
		"has_prev":    page > 1,
		"has_next":    int64(offset+limit) < total,
	}
}

// serviceError maps the service error taxonomy onto the envelope: field
// validation → 422 with per-field errors, business rules → 422 with a message,
// missing/foreign rows → 404, everything else → 500 with the fallback message.
func serviceError(c echo.Context, l *slog.Logger, fallback string, err error) error {
	var fe service.FieldErrors
	switch {
	case errors.As(err, &fe):
		l.Warn("validation_failed", "status", 422, "error", err)
		return respondFieldErrors(c, http.StatusUnprocessableEntity, fe)

	case errors.Is(err, service.ErrOrderNotConfirmed),
		errors.Is(err, service.ErrOrderHasPayments):
		l.Warn("business_rule_violation", "status", 422, "error", err)
		return respondFail(c, http.StatusUnprocessableEntity, err.Error())

	case errors.Is(err, gateway.ErrUnknownGateway):
		l.Warn("business_rule_violation", "status", 422, "error", err)
		return respondFail(c, http.StatusUnprocessableEntity, err.Error())

	case errors.Is(err, service.ErrNotFound):
		l.Warn("not_found", "status", 404, "error", err)
		return respondFail(c, http.StatusNotFound, "resource not found")

	default:
		l.Error("internal_error", "status", 500, "error", err)
		return respondFault(c, http.StatusInternalServerError, fallback, err)
	}
}
