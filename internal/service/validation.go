package service

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/order_api/internal/models"
)

var (
	phonePattern = regexp.MustCompile(`^(\+\d{1,3}[- ]?)?\(?\d{1,4}?\)?[- ]?\d{1,4}[- ]?\d{1,9}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// messages maps Struct.Field to the text reported when any rule on that field fails.
var messages = map[string]string{
	"Article.Title":         "Provide a title",
	"Article.Price":         "Provide a valid Price",
	"Article.Inventory":     "Provide a valid inventory",
	"Customer.Phone":        "Provide a valid phone number",
	"Customer.Email":        "Provide a valid email address",
	"Payment.ID":            "Provide a valid payment id",
	"Payment.TransactionID": "Provide a valid TransactionId id",
	"Payment.Amount":        "Provide a valid Amount",
	"Payment.Status":        "Provide a valid Status",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	// decimals are compared as numbers by gt/gte/lt rules
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		if d, ok := f.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	mustRegister(v, "phone_number", matches(phonePattern))
	mustRegister(v, "email_address", matches(emailPattern))
	mustRegister(v, "payment_status", func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(models.PaymentStatus)
		return ok && s.Valid()
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// violations runs every rule on v and returns all failures keyed by json field name.
func violations(v any) map[string]string {
	fields := map[string]string{}
	err := validate.Struct(v)
	if err == nil {
		return fields
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		fields["body"] = err.Error()
		return fields
	}
	for _, fe := range ves {
		msg, ok := messages[fe.StructNamespace()]
		if !ok {
			msg = "failed " + fe.Tag() + " rule"
		}
		fields[fe.Field()] = msg
	}
	return fields
}
