package handler

import (
    "context"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-booking-web/internal/model"
)

type accountsData struct {
    Users []model.User
}

// AdminAccounts lists every account.
func (h *Handler) AdminAccounts(c echo.Context) error {
    users, err := h.client(c).ListUsers(c.Request().Context())
    if err != nil {
        if h.sessionLost(c, err) {
            return toLogin(c)
        }
        return h.render(c, statusFor(err), "admin_accounts", h.page(c, "Accounts", accountsData{}), err)
    }
    return h.render(c, http.StatusOK, "admin_accounts", h.page(c, "Accounts", accountsData{Users: users}), nil)
}

// LockAccount prevents an account from logging in.
func (h *Handler) LockAccount(c echo.Context) error {
    return h.setLock(c, "Account locked", func(ctx context.Context, id int64) error {
        _, err := h.client(c).LockUser(ctx, id)
        return err
    })
}

// UnlockAccount re-enables an account.
func (h *Handler) UnlockAccount(c echo.Context) error {
    return h.setLock(c, "Account unlocked", func(ctx context.Context, id int64) error {
        _, err := h.client(c).UnlockUser(ctx, id)
        return err
    })
}

func (h *Handler) setLock(c echo.Context, done string, call func(ctx context.Context, id int64) error) error {
    id, err := paramID(c)
    if err != nil {
        return err
    }
    if err := call(c.Request().Context(), id); err != nil {
        if h.sessionLost(c, err) {
            return toLogin(c)
        }
        return redirectErr(c, "/admin/accounts", err)
    }
    return redirect(c, "/admin/accounts", "notice", done)
}
