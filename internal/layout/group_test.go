package layout

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/javiermolinar/allot/internal/allotment"
)

// rec builds a record for tests.
func rec(room, course, id string) allotment.Record {
	return allotment.Record{Room: room, Time: "09:30", Course: course, Subject: "Subject " + course, StudentID: id}
}

// seatIDs returns the student IDs of a course group in order.
func seatIDs(c CourseGroup) []string {
	ids := make([]string, len(c.Seats))
	for i, s := range c.Seats {
		ids[i] = s.StudentID
	}
	return ids
}

func TestGroup_Empty(t *testing.T) {
	if got := Group(nil); len(got) != 0 {
		t.Fatalf("expected no rooms, got %d", len(got))
	}
}

func TestGroup_FirstAppearanceOrder(t *testing.T) {
	records := []allotment.Record{
		rec("205", "MA102", "S1"),
		rec("101", "CS101", "S2"),
		rec("205", "PH101", "S3"),
		rec("101", "CS101", "S4"),
		rec("205", "MA102", "S5"),
		rec("101", "AA100", "S6"),
	}

	rooms := Group(records)

	if len(rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(rooms))
	}
	if rooms[0].Room != "205" || rooms[1].Room != "101" {
		t.Errorf("room order = [%s %s], want [205 101]", rooms[0].Room, rooms[1].Room)
	}

	var courses []string
	for _, c := range rooms[1].Courses {
		courses = append(courses, c.Course)
	}
	if !reflect.DeepEqual(courses, []string{"CS101", "AA100"}) {
		t.Errorf("room 101 courses = %v, want [CS101 AA100] (no sorting)", courses)
	}

	if got := seatIDs(rooms[0].Courses[0]); !reflect.DeepEqual(got, []string{"S1", "S5"}) {
		t.Errorf("MA102 seats = %v, want [S1 S5]", got)
	}
	if got := rooms[0].Courses[0].Seats[1].Position; got != 4 {
		t.Errorf("S5 position = %d, want 4", got)
	}
}

func TestGroup_TimeAndSubjectFromFirstRecord(t *testing.T) {
	first := allotment.Record{Room: "101", Time: "09:30", Course: "CS101", Subject: "Algorithms", StudentID: "A1"}
	second := allotment.Record{Room: "101", Time: "14:00", Course: "CS101", Subject: "Other", StudentID: "A2"}

	rooms := Group([]allotment.Record{first, second})
	c := rooms[0].Courses[0]
	if c.Time != "09:30" || c.Subject != "Algorithms" {
		t.Errorf("got time=%q subject=%q, want first record's values", c.Time, c.Subject)
	}
}

func TestGroup_SameCourseInDifferentRooms(t *testing.T) {
	rooms := Group([]allotment.Record{
		rec("101", "CS101", "A1"),
		rec("102", "CS101", "A2"),
	})
	if len(rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(rooms))
	}
	for _, r := range rooms {
		if len(r.Courses) != 1 || len(r.Courses[0].Seats) != 1 {
			t.Errorf("room %s: expected one course with one seat", r.Room)
		}
	}
}

func TestGroup_Stable(t *testing.T) {
	var records []allotment.Record
	for i := 0; i < 40; i++ {
		records = append(records, rec(fmt.Sprintf("R%d", i%3), fmt.Sprintf("C%d", i%4), fmt.Sprintf("ID%02d", i)))
	}

	a := Group(records)
	b := Group(records)
	if !reflect.DeepEqual(a, b) {
		t.Error("grouping the same sequence twice produced different results")
	}
}

func TestGroup_DeleteKeepsRelativeOrder(t *testing.T) {
	var records []allotment.Record
	for i := 0; i < 25; i++ {
		records = append(records, rec(fmt.Sprintf("R%d", i%2), fmt.Sprintf("C%d", i%3), fmt.Sprintf("ID%02d", i)))
	}
	before := Group(records)

	for p := range records {
		remaining := append(append([]allotment.Record{}, records[:p]...), records[p+1:]...)
		after := Group(remaining)
		deleted := records[p].StudentID

		for _, room := range before {
			for _, course := range room.Courses {
				want := without(seatIDs(course), deleted)
				got := courseIDs(after, room.Room, course.Course)
				if len(want) == 0 && got == nil {
					continue
				}
				if !reflect.DeepEqual(got, want) {
					t.Fatalf("delete %d: %s/%s = %v, want %v", p, room.Room, course.Course, got, want)
				}
			}
		}
	}
}

func without(ids []string, drop string) []string {
	var out []string
	for _, id := range ids {
		if id != drop {
			out = append(out, id)
		}
	}
	return out
}

func courseIDs(rooms []RoomGroup, room, course string) []string {
	for _, r := range rooms {
		if r.Room != room {
			continue
		}
		for _, c := range r.Courses {
			if c.Course == course {
				return seatIDs(c)
			}
		}
	}
	return nil
}

func TestCount_IncludesBlankSeats(t *testing.T) {
	rooms := Group([]allotment.Record{
		rec("101", "CS101", "A1"),
		rec("101", "CS101", "A1").Blank(),
		rec("101", "MA101", "B1"),
	})
	if got := rooms[0].Courses[0].Count(); got != 2 {
		t.Errorf("CS101 count = %d, want 2", got)
	}
	if got := rooms[0].Count(); got != 3 {
		t.Errorf("room count = %d, want 3", got)
	}
}
