package handler

import (
    "errors"

    "github.com/go-playground/validator/v10"
    "github.com/rs/zerolog/log"

    "github.com/iliyamo/hotel-booking-web/internal/apperror"
)

var validate = validator.New()

// fieldMessages maps a struct field to the banner shown when it fails
// validation.
var fieldMessages = map[string]string{
    "Email":       "Please enter a valid email address",
    "Password":    "Password must have at least 6 characters",
    "FullName":    "Full name is required",
    "Name":        "Name is required",
    "Location":    "Location is required",
    "StarRating":  "Star rating must be between 0 and 5",
    "HotelID":     "Please choose a hotel",
    "Type":        "Please choose a valid type",
    "Price":       "Price cannot be negative",
    "Capacity":    "Capacity must be at least 1",
    "Amount":      "Available rooms cannot be negative",
    "DateOfBirth": "Dates must use the YYYY-MM-DD format",
}

const msgInvalidForm = "Please check the highlighted fields"

// validateForm runs the validator tags of v and returns the first failure
// as a VALIDATION error.
func validateForm(v interface{}) error {
    err := validate.Struct(v)
    if err == nil {
        return nil
    }
    var ve validator.ValidationErrors
    if errors.As(err, &ve) && len(ve) > 0 {
        f := ve[0].Field()
        if msg, ok := fieldMessages[f]; ok {
            return apperror.Validation(f, msg)
        }
        return apperror.Validation(f, msgInvalidForm)
    }
    return apperror.Validation("", msgInvalidForm)
}

// bindError turns a binder failure (a non-numeric number field, usually)
// into a validation error.
func bindError(err error) error {
    log.Debug().Err(err).Msg("form bind failed")
    return apperror.Validation("", msgInvalidForm)
}
