package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/javiermolinar/allot/internal/allotment"
	"github.com/javiermolinar/allot/internal/tui/view"
)

// Form fields in focus order.
const (
	fieldRoom = iota
	fieldTime
	fieldCourse
	fieldSubject
	fieldStudentID
	fieldCount
)

var fieldLabels = [fieldCount]string{"Room", "Time", "Course", "Subject", "Student ID"}

var fieldPlaceholders = [fieldCount]string{"101", "09:30 AM", "CS101", "optional", "CS2024001"}

func newFormInputs(styles *Styles) []textinput.Model {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholders[i]
		ti.CharLimit = 64
		ti.Width = 32
		ti.Prompt = ""
		ti.PlaceholderStyle = styles.PlaceholderStyle
		ti.TextStyle = styles.InputTextStyle
		ti.Cursor.Style = styles.CursorStyle
		ti.Cursor.TextStyle = styles.InputTextStyle
		inputs[i] = ti
	}
	inputs[fieldRoom].Focus()
	return inputs
}

// draft collects the raw form values.
func (m Model) draft() allotment.Draft {
	return allotment.Draft{
		Room:      m.inputs[fieldRoom].Value(),
		Time:      m.inputs[fieldTime].Value(),
		Course:    m.inputs[fieldCourse].Value(),
		Subject:   m.inputs[fieldSubject].Value(),
		StudentID: m.inputs[fieldStudentID].Value(),
	}
}

// setFocus moves keyboard focus to field i, wrapping around.
func (m *Model) setFocus(i int) {
	i = ((i % fieldCount) + fieldCount) % fieldCount
	for idx := range m.inputs {
		if idx == i {
			m.inputs[idx].Focus()
		} else {
			m.inputs[idx].Blur()
		}
	}
	m.focus = i
}

// stepStudentID increments or decrements the student ID input.
func (m *Model) stepStudentID(up bool) bool {
	current := m.inputs[fieldStudentID].Value()
	var next string
	var ok bool
	if up {
		next, ok = allotment.NextID(current)
	} else {
		next, ok = allotment.PrevID(current)
	}
	if !ok {
		return false
	}
	m.inputs[fieldStudentID].SetValue(next)
	m.inputs[fieldStudentID].CursorEnd()
	return true
}

// advanceAfterAdd prepares the form for the next student in the same
// course: the ID moves to its successor or clears when it has no number.
func (m *Model) advanceAfterAdd(added allotment.Record) {
	next, ok := allotment.NextID(added.StudentID)
	if !ok {
		next = ""
	}
	m.inputs[fieldStudentID].SetValue(next)
	m.inputs[fieldStudentID].CursorEnd()
	m.setFocus(fieldStudentID)
}

func (m Model) formFields() []view.FormField {
	fields := make([]view.FormField, fieldCount)
	for i := range fields {
		fields[i] = view.FormField{
			Label:   fieldLabels[i],
			Input:   m.inputs[i].View(),
			Focused: m.mode == ModeForm && i == m.focus,
		}
	}
	return fields
}
