package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "orgbook-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// EmployeeRequest carries the editable employee fields for create and edit
type EmployeeRequest struct {
	Name       string `json:"name" validate:"required,max=200" example:"Jane Doe"`
	JobTitle   string `json:"jobTitle" validate:"max=200" example:"Software Engineer"`
	Department string `json:"department" validate:"max=200" example:"Platform"`
	ReportsTo  string `json:"reportsTo" validate:"max=200" example:"Sam Boss"`
}

// TopicRequest carries the editable topic fields for create and edit
type TopicRequest struct {
	Name        string `json:"name" validate:"required,max=200" example:"Kubernetes"`
	Description string `json:"description" validate:"max=2000"`
	Link        string `json:"link" validate:"max=2000"`
}

// TeamRequest carries the editable team fields for create and edit
type TeamRequest struct {
	Name        string `json:"name" validate:"required,max=200" example:"Core Platform"`
	Description string `json:"description" validate:"max=2000"`
	ChannelLink string `json:"teamsLink" validate:"max=2000"`
}

func (r *EmployeeRequest) trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.JobTitle = strings.TrimSpace(r.JobTitle)
	r.Department = strings.TrimSpace(r.Department)
	r.ReportsTo = strings.TrimSpace(r.ReportsTo)
}

func (r *TopicRequest) trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.Link = strings.TrimSpace(r.Link)
}

func (r *TeamRequest) trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.ChannelLink = strings.TrimSpace(r.ChannelLink)
}

// jsonFieldName reports validation failures under the JSON field name
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}

// validateRequest maps a failed "required" rule to MissingRequiredFieldError
// and every other rule to ValidationError.
func (s *DirectoryService) validateRequest(entity string, req interface{}) error {
	err := s.validator.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validation failed: %w", err)
	}

	fe := fieldErrs[0]
	if fe.Tag() == "required" {
		return apperrors.NewMissingRequiredFieldError(entity, fe.Field())
	}
	return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed %q rule", fe.Tag()))
}
