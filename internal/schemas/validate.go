package schemas

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/qri-io/jsonschema"
)

//go:embed jsonschema/*.json
var schemaFiles embed.FS

// Kind names a payload shape; each kind has a JSON Schema under jsonschema/.
type Kind string

const (
	EngineerCreateKind   Kind = "engineer_create"
	EngineerUpdateKind   Kind = "engineer_update"
	ProjectCreateKind    Kind = "project_create"
	ProjectUpdateKind    Kind = "project_update"
	SalesStaffCreateKind Kind = "sales_staff_create"
	SalesStaffUpdateKind Kind = "sales_staff_update"
)

var kinds = []Kind{
	EngineerCreateKind, EngineerUpdateKind,
	ProjectCreateKind, ProjectUpdateKind,
	SalesStaffCreateKind, SalesStaffUpdateKind,
}

// FieldError describes one rejected attribute.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a payload does not match its shape.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		if fe.Field == "" {
			msgs = append(msgs, fe.Message)
			continue
		}
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func invalid(field, msg string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: msg}}}
}

// Validator holds the compiled schema of every Kind.
type Validator struct {
	schemas map[Kind]*jsonschema.Schema
}

func NewValidator() (*Validator, error) {
	v := &Validator{schemas: make(map[Kind]*jsonschema.Schema, len(kinds))}
	for _, k := range kinds {
		raw, err := schemaFiles.ReadFile("jsonschema/" + string(k) + ".json")
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", k, err)
		}
		rs := &jsonschema.Schema{}
		if err := json.Unmarshal(raw, rs); err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", k, err)
		}
		v.schemas[k] = rs
	}
	return v, nil
}

// Validate checks data against the schema of kind. A shape mismatch is
// reported as *ValidationError.
func (v *Validator) Validate(ctx context.Context, kind Kind, data []byte) error {
	rs, ok := v.schemas[kind]
	if !ok {
		return fmt.Errorf("unknown payload kind %q", kind)
	}
	if !json.Valid(data) {
		return invalid("", "request body is not valid JSON")
	}
	keyErrs, err := rs.ValidateBytes(ctx, data)
	if err != nil {
		return invalid("", err.Error())
	}
	if len(keyErrs) == 0 {
		return nil
	}
	ve := &ValidationError{Errors: make([]FieldError, 0, len(keyErrs))}
	for _, ke := range keyErrs {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   strings.TrimPrefix(ke.PropertyPath, "/"),
			Message: ke.Message,
		})
	}
	sort.Slice(ve.Errors, func(i, j int) bool {
		if ve.Errors[i].Field != ve.Errors[j].Field {
			return ve.Errors[i].Field < ve.Errors[j].Field
		}
		return ve.Errors[i].Message < ve.Errors[j].Message
	})
	return ve
}

// Decode validates data and then unmarshals it into dst.
func (v *Validator) Decode(ctx context.Context, kind Kind, data []byte, dst any) error {
	if err := v.Validate(ctx, kind, data); err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return invalid(typeErr.Field, "must be "+typeErr.Type.String())
		}
		return invalid("", err.Error())
	}
	return nil
}

var defaultValidator = mustValidator()

func mustValidator() *Validator {
	v, err := NewValidator()
	if err != nil {
		panic(err)
	}
	return v
}

// Decode uses the package validator built from the embedded schemas.
func Decode(ctx context.Context, kind Kind, data []byte, dst any) error {
	return defaultValidator.Decode(ctx, kind, data, dst)
}
