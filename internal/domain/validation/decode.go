package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	return v
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// Decode fills dst from a decoded JSON object. dst must point to a struct whose
// fields are pointers tagged `validate:"required"`, so zero values still count as present.
// Fields are checked in declaration order: the first failed rule wins, then the
// first value of the wrong type. Keys match exactly and a null value counts as missing.
func Decode(entity string, data any, dst any) error {
	obj, ok := data.(map[string]any)
	if !ok {
		return MalformedBody(entity, "")
	}

	known := make(map[string]any, len(obj))
	for _, name := range fieldNames(dst) {
		if v, ok := obj[name]; ok {
			known[name] = v
		}
	}
	raw, err := json.Marshal(known)
	if err != nil {
		return MalformedBody(entity, "")
	}
	decodeErr := json.Unmarshal(raw, dst)

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return MalformedBody(entity, "")
		}
		first := fieldErrs[0]
		if first.Tag() == "required" {
			return MissingField(entity, first.Field())
		}
		return MalformedBody(entity, first.Field())
	}

	if decodeErr != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(decodeErr, &typeErr) {
			return MalformedBody(entity, typeErr.Field)
		}
		return MalformedBody(entity, "")
	}
	return nil
}

func fieldNames(dst any) []string {
	t := reflect.TypeOf(dst)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name := jsonName(t.Field(i)); name != "" {
			names = append(names, name)
		}
	}
	return names
}
