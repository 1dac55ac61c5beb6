package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/psalmos/web/internal/billing"
	"github.com/psalmos/web/internal/middleware"
	"github.com/psalmos/web/internal/view"
)

// BillingHandler handles the subscription action forms.
type BillingHandler struct {
	billing *billing.Service
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(svc *billing.Service) *BillingHandler {
	return &BillingHandler{billing: svc}
}

// Cancel handles POST /billing/cancel.
func (h *BillingHandler) Cancel(c echo.Context) error {
	sess := middleware.SessionFromContext(c)
	if !sess.Authenticated() {
		return c.Redirect(http.StatusSeeOther, "/billing")
	}

	if err := h.billing.Cancel(c.Request().Context(), sess.User); err != nil {
		middleware.FromContext(c.Request().Context()).Error("Failed to cancel subscription", "error", err)
		view.SetFlashError(c, "Could not cancel your subscription. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/billing")
	}

	view.SetFlashSuccess(c, "Your subscription will end at the close of the current billing period.")
	return c.Redirect(http.StatusSeeOther, "/billing")
}

// Reactivate handles POST /billing/reactivate.
func (h *BillingHandler) Reactivate(c echo.Context) error {
	sess := middleware.SessionFromContext(c)
	if !sess.Authenticated() {
		return c.Redirect(http.StatusSeeOther, "/billing")
	}

	if err := h.billing.Reactivate(c.Request().Context(), sess.User); err != nil {
		middleware.FromContext(c.Request().Context()).Error("Failed to reactivate subscription", "error", err)
		view.SetFlashError(c, "Could not reactivate your subscription. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/billing")
	}

	view.SetFlashSuccess(c, "Welcome back! Your subscription is active again.")
	return c.Redirect(http.StatusSeeOther, "/billing")
}
