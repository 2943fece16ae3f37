package entities

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError aggregates every field-level violation found, not just the
// first. Handlers render Fields inline so form consumers can highlight each
// offending input.

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// OrNil returns nil when no violations were collected, so callers can write
// `return v.OrNil()` without a typed-nil-in-interface surprise.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func (c CustomerInfo) Validate() *ValidationError {
	v := &ValidationError{}
	if strings.TrimSpace(c.Name) == "" {
		v.Add("customer.name", "name is required")
	}
	if strings.TrimSpace(c.Email) == "" {
		v.Add("customer.email", "email is required")
	} else if !emailPattern.MatchString(c.Email) {
		v.Add("customer.email", "invalid email address")
	}
	if strings.TrimSpace(c.Phone) == "" {
		v.Add("customer.phone", "phone is required")
	}
	if strings.TrimSpace(c.Address) == "" {
		v.Add("customer.address", "address is required")
	}
	if len(v.Fields) == 0 {
		return nil
	}
	return v
}

// ValidateAt collects PartCost violations using the given field prefix
// (e.g. "part_costs[2]") so list positions stay identifiable.
func (p PartCost) ValidateAt(prefix string, v *ValidationError) {
	if strings.TrimSpace(p.PartName) == "" {
		v.Add(prefix+".part_name", "part name is required")
	}
	if p.Cost < 0 {
		v.Add(prefix+".cost", "cost must be non-negative")
	}
	if p.Quantity < 1 {
		v.Add(prefix+".quantity", "quantity must be at least 1")
	}
}

func ParseUrgency(s string) (Urgency, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return UrgencyLow, true
	case "medium":
		return UrgencyMedium, true
	case "high":
		return UrgencyHigh, true
	}
	return "", false
}

func (w WorkOrder) Validate() *ValidationError {
	v := &ValidationError{}
	if cv := w.CustomerDetails.Validate(); cv != nil {
		v.Fields = append(v.Fields, cv.Fields...)
	}
	if strings.TrimSpace(w.JobDescription) == "" {
		v.Add("job_description", "job description is required")
	}
	if strings.TrimSpace(w.Location) == "" {
		v.Add("location", "location is required")
	}
	switch w.Urgency {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
	default:
		v.Add("urgency", "urgency must be Low, Medium or High")
	}
	for i, p := range w.PartCosts {
		p.ValidateAt(fmt.Sprintf("part_costs[%d]", i), v)
	}
	if w.TaxRate != nil && (*w.TaxRate < 0 || *w.TaxRate > 1) {
		v.Add("tax_rate", "tax rate must be between 0 and 1")
	}
	if w.LaborEstimate != nil && *w.LaborEstimate < 0 {
		v.Add("labor_estimate", "labor estimate must be non-negative")
	}
	if len(v.Fields) == 0 {
		return nil
	}
	return v
}
