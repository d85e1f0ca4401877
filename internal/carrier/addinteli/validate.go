package addinteli

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "github.com/mexared/carrier-gateway/internal/domain/errors"
	"github.com/mexared/carrier-gateway/internal/domain/values"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields under their wire names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("msisdn", validateMSISDN)
	v.RegisterValidation("imei", validateIMEI)
	v.RegisterValidation("plan", validatePlan)
	v.RegisterValidation("uuid_v4", validateUUID)
	v.RegisterValidation("contact_email", validateContactEmail)
	v.RegisterCustomTypeFunc(decimalValuer, decimal.Decimal{})
	v.RegisterValidation("amount", validateAmount)

	return v
}

// Validate checks a raw payload mapping against the closed schema pointed to
// by dest and fills dest with the normalized, type-coerced record. Every
// violated constraint and every unknown field is aggregated into a single
// ValidationError; a payload that fails here never reaches the network.
func Validate(payload map[string]interface{}, dest interface{}) error {
	var violations []string

	allowed := schemaFields(reflect.TypeOf(dest).Elem())
	var unknown []string
	for key := range payload {
		if _, ok := allowed[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		violations = append(violations, fmt.Sprintf("unknown field %q", key))
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return apperrors.NewValidationError("INVALID_PAYLOAD",
			fmt.Sprintf("invalid payload: unserializable value: %v", err))
	}
	if err := json.Unmarshal(data, dest); err != nil {
		violations = append(violations, fmt.Sprintf("malformed value: %v", err))
	}

	if err := validate.Struct(dest); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				violations = append(violations, constraintMessage(fe))
			}
		} else {
			violations = append(violations, err.Error())
		}
	}

	if len(violations) > 0 {
		return apperrors.NewValidationError("INVALID_PAYLOAD",
			"invalid payload: "+strings.Join(violations, "; ")).
			WithDetails(map[string]interface{}{"violations": violations})
	}
	return nil
}

// schemaFields collects the wire field names a schema accepts, descending
// into embedded structs.
func schemaFields(t reflect.Type) map[string]struct{} {
	fields := make(map[string]struct{})
	collectFields(t, fields)
	return fields
}

func collectFields(t reflect.Type, fields map[string]struct{}) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			collectFields(f.Type, fields)
			continue
		}
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		fields[name] = struct{}{}
	}
}

func constraintMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: field is required", field)
	case "msisdn":
		return fmt.Sprintf("%s: must be exactly 10 digits", field)
	case "imei":
		return fmt.Sprintf("%s: must be 14 or 15 digits", field)
	case "plan":
		return fmt.Sprintf("%s: not in the offer catalog", field)
	case "uuid_v4":
		return fmt.Sprintf("%s: must be a canonical UUID", field)
	case "contact_email":
		return fmt.Sprintf("%s: must be a valid email or \"no_email\"", field)
	case "amount":
		return fmt.Sprintf("%s: must be greater than zero", field)
	case "len":
		return fmt.Sprintf("%s: must be exactly %s characters", field, fe.Param())
	case "numeric":
		return fmt.Sprintf("%s: must contain only digits", field)
	case "alphanum":
		return fmt.Sprintf("%s: must be alphanumeric", field)
	default:
		return fmt.Sprintf("%s: failed %s validation", field, fe.Tag())
	}
}

// Custom validators

func validateMSISDN(fl validator.FieldLevel) bool {
	_, err := values.NewMSISDN(fl.Field().String())
	return err == nil
}

func validateIMEI(fl validator.FieldLevel) bool {
	_, err := values.NewIMEI(fl.Field().String())
	return err == nil
}

func validatePlan(fl validator.FieldLevel) bool {
	return values.IsCatalogPlan(fl.Field().String())
}

func validateUUID(fl validator.FieldLevel) bool {
	_, err := uuid.Parse(fl.Field().String())
	return err == nil
}

// validateContactEmail accepts the carrier's "no_email" sentinel or an
// address with exactly one @ and non-empty local and domain parts.
func validateContactEmail(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	if v == values.NoEmailSentinel {
		return true
	}
	parts := strings.Split(v, "@")
	return len(parts) == 2 && parts[0] != "" && parts[1] != ""
}

// decimalValuer exposes decimal fields to the validator as their string form.
func decimalValuer(field reflect.Value) interface{} {
	if dec, ok := field.Interface().(decimal.Decimal); ok {
		return dec.String()
	}
	return nil
}

func validateAmount(fl validator.FieldLevel) bool {
	_, err := values.NewAmountFromString(fl.Field().String())
	return err == nil
}
