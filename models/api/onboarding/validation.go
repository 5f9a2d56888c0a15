package onboardingapimodels

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError - field level errors of a document form, field name -> message
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return strings.Join(parts, "; ")
}

// Has - reports whether the field failed validation
func (e *ValidationError) Has(field string) bool {
	if e == nil {
		return false
	}
	_, ok := e.Fields[field]
	return ok
}

type fieldErrors map[string]string

func (f fieldErrors) add(field, msg string) {
	if _, exist := f[field]; !exist {
		f[field] = msg
	}
}

func (f fieldErrors) required(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		f.add(field, "is required")
		return false
	}
	return true
}

func (f fieldErrors) check(field string, ok bool, msg string) {
	if !ok {
		f.add(field, msg)
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}
