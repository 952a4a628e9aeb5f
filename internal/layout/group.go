// Package layout turns the flat record list into the room/course grid that
// both the terminal board and the exported spreadsheet render.
package layout

import "github.com/javiermolinar/allot/internal/allotment"

// Seat is a record together with its position in the store snapshot.
type Seat struct {
	Position int
	allotment.Record
}

// CourseGroup holds the seats of one course inside a room, in insertion order.
type CourseGroup struct {
	Course  string
	Time    string // from the first record of the course
	Subject string // from the first record of the course
	Seats   []Seat
}

// Count returns the number of seats, blank ones included. It is the same n
// that sizes the course's blocks.
func (c CourseGroup) Count() int {
	return len(c.Seats)
}

// RoomGroup holds the courses of one room in first-appearance order.
type RoomGroup struct {
	Room    string
	Courses []CourseGroup
}

// Count returns the number of seats across all courses.
func (r RoomGroup) Count() int {
	n := 0
	for _, c := range r.Courses {
		n += c.Count()
	}
	return n
}

// Group partitions records by room, then by course. Rooms and courses keep
// the order in which they first appear and seats keep their relative order.
// Nothing is sorted.
func Group(records []allotment.Record) []RoomGroup {
	var rooms []RoomGroup
	roomIdx := make(map[string]int)
	courseIdx := make([]map[string]int, 0)

	for pos, rec := range records {
		ri, ok := roomIdx[rec.Room]
		if !ok {
			ri = len(rooms)
			roomIdx[rec.Room] = ri
			rooms = append(rooms, RoomGroup{Room: rec.Room})
			courseIdx = append(courseIdx, make(map[string]int))
		}

		room := &rooms[ri]
		ci, ok := courseIdx[ri][rec.Course]
		if !ok {
			ci = len(room.Courses)
			courseIdx[ri][rec.Course] = ci
			room.Courses = append(room.Courses, CourseGroup{
				Course:  rec.Course,
				Time:    rec.Time,
				Subject: rec.Subject,
			})
		}

		course := &room.Courses[ci]
		course.Seats = append(course.Seats, Seat{Position: pos, Record: rec})
	}

	return rooms
}
