// Package curriculum edits the nested outline of a course or internship:
// units hold chapters and projects, chapters hold lessons. Every node carries
// a generated id, so edits can address nodes by id as well as by position.
package curriculum

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrNodeNotFound   = errors.New("curriculum: node not found")
	ErrUnknownField   = errors.New("curriculum: unknown field")
	ErrInvalidValue   = errors.New("curriculum: invalid value")
	ErrUnknownMedia   = errors.New("curriculum: unknown media type")
	ErrUnknownOp      = errors.New("curriculum: unknown command")
	ErrSelectionEnded = errors.New("curriculum: media selection already finished")

	// errOutOfRange is returned when a position does not exist. Removals
	// treat it as a no-op; everything else reports it as not found.
	errOutOfRange = fmt.Errorf("%w: position out of range", ErrNodeNotFound)
)

type LiveClass struct {
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	MeetingLink string `json:"meetingLink"`
}

// Lesson is either recorded (video/notes/assignment) or live (LiveClass),
// depending on IsLiveClass. Flipping the flag keeps the other group's data.
type Lesson struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	IsLiveClass bool      `json:"isLiveClass"`
	Video       string    `json:"video"`
	Notes       string    `json:"notes"`
	Assignment  string    `json:"assignment"`
	LiveClass   LiveClass `json:"liveClass"`
}

type Chapter struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Lessons     []*Lesson `json:"lessons"`
}

type Project struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	InfoPDF   string    `json:"infoPdf"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
}

type Unit struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Chapters    []*Chapter `json:"chapters"`
	Projects    []*Project `json:"projects"`
}

// Outline is the whole curriculum document. Courses keep a single unit.
type Outline struct {
	Units []*Unit `json:"units"`
}

func NewLesson() *Lesson {
	return &Lesson{ID: uuid.New()}
}

func NewChapter() *Chapter {
	return &Chapter{ID: uuid.New(), Lessons: []*Lesson{}}
}

func NewProject() *Project {
	return &Project{ID: uuid.New()}
}

func NewUnit() *Unit {
	return &Unit{ID: uuid.New(), Chapters: []*Chapter{}, Projects: []*Project{}}
}

// NewOutline returns the skeleton used by create flows: one unit with one
// chapter holding one empty lesson.
func NewOutline() Outline {
	ch := NewChapter()
	ch.Lessons = append(ch.Lessons, NewLesson())
	u := NewUnit()
	u.Chapters = append(u.Chapters, ch)
	return Outline{Units: []*Unit{u}}
}

// Clone returns a deep copy. Nil nodes are left out.
func (o *Outline) Clone() *Outline {
	out := &Outline{Units: make([]*Unit, 0, len(o.Units))}
	for _, u := range o.Units {
		if u == nil {
			continue
		}
		cu := *u
		cu.Chapters = make([]*Chapter, 0, len(u.Chapters))
		for _, ch := range u.Chapters {
			if ch == nil {
				continue
			}
			cch := *ch
			cch.Lessons = make([]*Lesson, 0, len(ch.Lessons))
			for _, l := range ch.Lessons {
				if l == nil {
					continue
				}
				cl := *l
				cch.Lessons = append(cch.Lessons, &cl)
			}
			cu.Chapters = append(cu.Chapters, &cch)
		}
		cu.Projects = make([]*Project, 0, len(u.Projects))
		for _, p := range u.Projects {
			if p == nil {
				continue
			}
			cp := *p
			cu.Projects = append(cu.Projects, &cp)
		}
		out.Units = append(out.Units, &cu)
	}
	return out
}

// Normalize makes a submitted outline safe to edit: null nodes are dropped,
// missing lists become empty, and every node without an id, or with an id
// already used elsewhere in the outline, gets a fresh one.
func (o *Outline) Normalize() {
	seen := map[uuid.UUID]bool{uuid.Nil: true}
	fresh := func(id *uuid.UUID) {
		if seen[*id] {
			*id = uuid.New()
		}
		seen[*id] = true
	}

	o.Units = dropNil(o.Units)
	for _, u := range o.Units {
		fresh(&u.ID)
		u.Chapters = dropNil(u.Chapters)
		for _, ch := range u.Chapters {
			fresh(&ch.ID)
			ch.Lessons = dropNil(ch.Lessons)
			for _, l := range ch.Lessons {
				fresh(&l.ID)
			}
		}
		u.Projects = dropNil(u.Projects)
		for _, p := range u.Projects {
			fresh(&p.ID)
		}
	}
}

func dropNil[T any](items []*T) []*T {
	out := make([]*T, 0, len(items))
	for _, it := range items {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}

// LessonCount is used by list screens to show the curriculum size.
func (o *Outline) LessonCount() int {
	n := 0
	for _, u := range o.Units {
		for _, ch := range u.Chapters {
			n += len(ch.Lessons)
		}
	}
	return n
}

// FindLesson locates a lesson anywhere in the outline.
func (o *Outline) FindLesson(id uuid.UUID) (*Lesson, bool) {
	for _, u := range o.Units {
		for _, ch := range u.Chapters {
			for _, l := range ch.Lessons {
				if l.ID == id {
					return l, true
				}
			}
		}
	}
	return nil, false
}

// FindProject locates a project anywhere in the outline.
func (o *Outline) FindProject(id uuid.UUID) (*Project, bool) {
	for _, u := range o.Units {
		for _, p := range u.Projects {
			if p.ID == id {
				return p, true
			}
		}
	}
	return nil, false
}
