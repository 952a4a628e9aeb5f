// Package allotment defines the core domain types for allot.
package allotment

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation errors.
var (
	ErrMissingField = errors.New("please fill all fields")
)

// Store errors.
var (
	ErrPositionOutOfRange = errors.New("position out of range")
)

// Record is one student seated in a room for a course.
// It has no identity of its own; the store addresses it by position.
type Record struct {
	Room      string
	Time      string
	Course    string
	Subject   string
	StudentID string
}

// Blank returns the copy used by "insert below": same room, time, course
// and subject with an empty student ID.
func (r Record) Blank() Record {
	r.StudentID = ""
	return r
}

// Draft holds raw form input before it becomes a Record.
type Draft struct {
	Room      string `label:"room" validate:"required"`
	Time      string `label:"time" validate:"required"`
	Course    string `label:"course" validate:"required"`
	Subject   string `label:"subject"`
	StudentID string `label:"student id" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})
	return v
}

// Normalize trims every field and upper-cases the student ID.
func (d Draft) Normalize() Draft {
	return Draft{
		Room:      strings.TrimSpace(d.Room),
		Time:      strings.TrimSpace(d.Time),
		Course:    strings.TrimSpace(d.Course),
		Subject:   strings.TrimSpace(d.Subject),
		StudentID: strings.ToUpper(strings.TrimSpace(d.StudentID)),
	}
}

// Record validates the draft and returns the normalized record.
// Missing required fields are reported together as ErrMissingField.
func (d Draft) Record() (Record, error) {
	d = d.Normalize()
	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Record{}, fmt.Errorf("validating record: %w", err)
		}
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return Record{}, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(fields, ", "))
	}

	return Record{
		Room:      d.Room,
		Time:      d.Time,
		Course:    d.Course,
		Subject:   d.Subject,
		StudentID: d.StudentID,
	}, nil
}
