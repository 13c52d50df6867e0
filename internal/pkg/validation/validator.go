package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"feature-feedback-board/internal/dto"
	"feature-feedback-board/internal/entity"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a json field name (title, description, status, votes) to a
// user-facing message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsFieldErrors unwraps err into FieldErrors when it carries them.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateRequest checks any dto against its validate tags.
func ValidateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, exists := fields[fe.Field()]; exists {
			continue
		}
		fields[fe.Field()] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	label := label(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", label, strings.Join(strings.Fields(fe.Param()), ", "))
	case "gte":
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	}
	return label + " is invalid"
}

func label(field string) string {
	if field == "" {
		return "Value"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

// ValidateFeature trims the raw form input, defaults an empty status to Open and
// validates the result. On failure the error is FieldErrors.
func ValidateFeature(rawTitle, rawDescription, rawStatus string) (dto.CreateFeatureRequest, error) {
	req := dto.CreateFeatureRequest{
		Title:       strings.TrimSpace(rawTitle),
		Description: strings.TrimSpace(rawDescription),
		Status:      normalizeStatus(rawStatus),
	}
	if err := ValidateRequest(req); err != nil {
		return dto.CreateFeatureRequest{}, err
	}
	return req, nil
}

// ValidateImport applies the same rules to a fixture record and also checks votes.
func ValidateImport(req dto.ImportFeatureRequest) (dto.ImportFeatureRequest, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Status = normalizeStatus(string(req.Status))
	if err := ValidateRequest(req); err != nil {
		return dto.ImportFeatureRequest{}, err
	}
	return req, nil
}

// ValidateStatus parses a status for a status change request.
func ValidateStatus(raw string) (entity.FeatureStatus, error) {
	status, err := entity.ParseFeatureStatus(raw)
	if err != nil {
		return "", FieldErrors{"status": "Status must be one of Open, Planned, Completed"}
	}
	return status, nil
}

func normalizeStatus(raw string) entity.FeatureStatus {
	if strings.TrimSpace(raw) == "" {
		return entity.FeatureStatusOpen
	}
	if status, err := entity.ParseFeatureStatus(raw); err == nil {
		return status
	}
	return entity.FeatureStatus(raw)
}
