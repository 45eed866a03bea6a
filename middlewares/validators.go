package middlewares

import (
	"reflect"
	"regexp"
	"strings"

	"nagaralert-be/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	npPhonePattern    = regexp.MustCompile(`^(\+977-?)?(98|97)\d{8}$`)
	digitsPattern     = regexp.MustCompile(`^\d+$`)
	employeeIDPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
)

// RegisterValidators adds the custom binding tags to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return registerValidators(v)
}

func registerValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(fieldName)
	rules := map[string]validator.Func{
		"objectid":      func(fl validator.FieldLevel) bool { return primitive.IsValidObjectID(fl.Field().String()) },
		"npphone":       matches(npPhonePattern),
		"digits":        matches(digitsPattern),
		"employeeid":    matches(employeeIDPattern),
		"department":    oneOfList(models.Departments),
		"designation":   oneOfList(models.Designations),
		"skill":         oneOfList(models.StaffSkills),
		"sponsortype":   oneOfList(models.SponsorTypes),
		"emergencyname": oneOfList(models.EmergencyServiceNames),
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func matches(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

func oneOfList(values []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return contains(values, fl.Field().String())
	}
}

// fieldName reports fields by their json name, then form name.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}
