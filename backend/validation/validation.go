// Package validation holds the submit-time rules for every form. Request
// structs declare their rules in `validate` tags; the same structs are used
// by the service and by the operator client, so a rule lives in one place.
package validation

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Error)
	}
	return strings.Join(parts, "; ")
}

// Map returns the errors keyed by JSON field name.
func (e *ValidationError) Map() map[string]string {
	m := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		m[f.Field] = f.Error
	}
	return m
}

var (
	once       sync.Once
	validate   *validator.Validate
	translator ut.Translator
)

func setup() {
	validate = validator.New()

	english := en.New()
	translator, _ = ut.New(english, english).GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerTranslation("required", "{0} is required", true)
	registerTranslation("gtefield", "{0} must not be less than {1}", true)
}

func registerTranslation(tag, text string, override bool) {
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, override) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field(), jsonName(fe))
			return s
		},
	)
}

// jsonName turns the Go field named by a cross-field tag into its JSON
// name. Request structs keep the two in step (SalaryMin <-> salaryMin).
func jsonName(fe validator.FieldError) string {
	param := fe.Param()
	if param == "" {
		return ""
	}
	return strings.ToLower(param[:1]) + param[1:]
}

// Struct validates v and returns a *ValidationError listing every broken
// rule, or nil.
func Struct(v any) error {
	once.Do(setup)
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(errs))}
	for _, fe := range errs {
		out.Fields = append(out.Fields, FieldError{
			Field: fe.Field(),
			Error: fe.Translate(translator),
		})
	}
	sort.SliceStable(out.Fields, func(i, j int) bool { return out.Fields[i].Field < out.Fields[j].Field })
	return out
}
