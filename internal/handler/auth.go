package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-booking-web/internal/apiclient"
    "github.com/iliyamo/hotel-booking-web/internal/apperror"
    "github.com/iliyamo/hotel-booking-web/internal/auth"
    "github.com/iliyamo/hotel-booking-web/internal/middleware"
    "github.com/iliyamo/hotel-booking-web/internal/model"
)

// ----- forms -----

type loginForm struct {
    Email    string `form:"email" validate:"required,email"`
    Password string `form:"password" validate:"required"`
    Next     string `form:"next"`
}

type registerForm struct {
    FullName    string `form:"fullName" validate:"required"`
    Email       string `form:"email" validate:"required,email"`
    Password    string `form:"password" validate:"required,min=6"`
    Phone       string `form:"phone"`
    DateOfBirth string `form:"dateOfBirth"`
}

// LoginPage shows the login form.
func (h *Handler) LoginPage(c echo.Context) error {
    if middleware.State(c).LoggedIn() {
        return c.Redirect(http.StatusSeeOther, "/")
    }
    data := loginForm{Next: safeNext(c.QueryParam("next"))}
    return h.render(c, http.StatusOK, "login", h.page(c, "Login", data), nil)
}

// Login authenticates against the backend with the unauthenticated client
// and persists the issued token and role for this browser session.
func (h *Handler) Login(c echo.Context) error {
    var f loginForm
    if err := c.Bind(&f); err != nil {
        return h.render(c, http.StatusBadRequest, "login", h.page(c, "Login", f), bindError(err))
    }
    f.Email = strings.ToLower(strings.TrimSpace(f.Email))
    f.Next = safeNext(f.Next)
    redisplay := loginForm{Email: f.Email, Next: f.Next}

    if err := validateForm(f); err != nil {
        return h.render(c, statusFor(err), "login", h.page(c, "Login", redisplay), err)
    }

    res, err := h.api.Login(c.Request().Context(), apiclient.LoginRequest{Email: f.Email, Password: f.Password})
    if err != nil {
        return h.render(c, statusFor(err), "login", h.page(c, "Login", redisplay), err)
    }
    if res.Token == "" {
        err := apperror.External("", nil)
        return h.render(c, statusFor(err), "login", h.page(c, "Login", redisplay), err)
    }
    if err := middleware.Store(c).Login(c.Request().Context(), auth.AuthState{Token: res.Token, Role: res.Role}); err != nil {
        return h.render(c, http.StatusInternalServerError, "login", h.page(c, "Login", redisplay), apperror.External("", err))
    }

    next := f.Next
    if next == "" {
        next = "/"
        if res.Role == model.RoleAdmin {
            next = "/admin/bookings"
        }
    }
    return redirect(c, next, "notice", "Welcome back")
}

// RegisterPage shows the registration form.
func (h *Handler) RegisterPage(c echo.Context) error {
    return h.render(c, http.StatusOK, "register", h.page(c, "Register", registerForm{}), nil)
}

// Register creates a customer account and sends the visitor to log in.
func (h *Handler) Register(c echo.Context) error {
    var f registerForm
    if err := c.Bind(&f); err != nil {
        return h.render(c, http.StatusBadRequest, "register", h.page(c, "Register", f), bindError(err))
    }
    f.Email = strings.ToLower(strings.TrimSpace(f.Email))
    f.FullName = strings.TrimSpace(f.FullName)
    redisplay := f
    redisplay.Password = ""

    if err := validateForm(f); err != nil {
        return h.render(c, statusFor(err), "register", h.page(c, "Register", redisplay), err)
    }
    req := apiclient.RegisterRequest{
        FullName: f.FullName,
        Email:    f.Email,
        Password: f.Password,
        Phone:    strings.TrimSpace(f.Phone),
    }
    if s := strings.TrimSpace(f.DateOfBirth); s != "" {
        dob, err := model.ParseDate(s)
        if err != nil {
            verr := apperror.Validation("dateOfBirth", fieldMessages["DateOfBirth"])
            return h.render(c, statusFor(verr), "register", h.page(c, "Register", redisplay), verr)
        }
        req.DateOfBirth = dob
    }

    if err := h.api.Register(c.Request().Context(), req); err != nil {
        return h.render(c, statusFor(err), "register", h.page(c, "Register", redisplay), err)
    }
    return redirect(c, "/login", "notice", "Registration successful, please log in")
}

// Logout clears the session's token and role. Listeners (navigation and
// workspaces) are notified synchronously before the redirect is written.
func (h *Handler) Logout(c echo.Context) error {
    if err := middleware.Store(c).Logout(c.Request().Context()); err != nil {
        return redirectErr(c, "/", apperror.External("", err))
    }
    return redirect(c, "/", "notice", "You have been logged out")
}
