package tui

import (
	"github.com/javiermolinar/allot/internal/layout"
	"github.com/javiermolinar/allot/internal/tui/view"
)

// boardPanels groups the records the same way the export does and builds
// one colored panel per room.
func (m Model) boardPanels() []view.RoomPanel {
	rooms := layout.Group(m.records)
	sel, hasSel := m.selection()
	panels := make([]view.RoomPanel, 0, len(rooms))

	for ri, room := range rooms {
		colors := m.styles.RoomColors(ri)
		courses := make([]view.CourseTableState, 0, len(room.Courses))
		for _, c := range room.Courses {
			rows := make([]view.CourseRow, 0, len(c.Seats))
			for _, seat := range c.Seats {
				rows = append(rows, view.CourseRow{
					StudentID: seat.StudentID,
					Position:  seat.Position + 1,
					Selected:  hasSel && seat.Position == sel,
				})
			}
			courses = append(courses, view.CourseTableState{
				Title:       layout.CourseLabel(c.Course, c.Time),
				Subject:     c.Subject,
				Rows:        rows,
				Colors:      colors,
				TitleStyle:  m.styles.CourseTitleStyle,
				MutedStyle:  m.styles.MutedStyle,
				HeaderStyle: m.styles.TableHeaderStyle,
				CellStyle:   m.styles.TableCellStyle,
			})
		}
		panels = append(panels, view.RoomPanel{
			Room:    room.Room,
			Total:   room.Count(),
			Colors:  colors,
			Courses: courses,
		})
	}
	return panels
}
