package validator

import (
	"reflect"
	"strings"
	"time"

	"hospital-management-api/pkg/datetime"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
	location  *time.Location
	now       func() time.Time
}

func NewValidator(location *time.Location) *CustomValidator {
	if location == nil {
		location = time.Local
	}

	cv := &CustomValidator{
		validator: validator.New(),
		location:  location,
		now:       time.Now,
	}

	// Report JSON field names instead of Go field names
	cv.validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	cv.validator.RegisterValidation("datetime_iso", cv.isDateTime)
	cv.validator.RegisterValidation("future_time", cv.isFutureTime)

	return cv
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Location is the zone naive datetimes are read in
func (cv *CustomValidator) Location() *time.Location {
	return cv.location
}

func (cv *CustomValidator) isDateTime(fl validator.FieldLevel) bool {
	_, err := datetime.Parse(fl.Field().String(), cv.location)
	return err == nil
}

// isFutureTime requires the value to be strictly after the current time
func (cv *CustomValidator) isFutureTime(fl validator.FieldLevel) bool {
	t, err := datetime.Parse(fl.Field().String(), cv.location)
	if err != nil {
		return false
	}
	return t.After(cv.now())
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "oneof":
				errors[field] = field + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
			case "datetime":
				errors[field] = field + " must be a date in YYYY-MM-DD format"
			case "datetime_iso":
				errors[field] = field + " must be an ISO 8601 datetime"
			case "future_time":
				errors[field] = field + " must be in the future"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
