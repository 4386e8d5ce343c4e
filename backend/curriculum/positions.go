package curriculum

import "github.com/google/uuid"

// Target addresses one node. Ids win over positions; positions are resolved
// against the outline at the moment the edit is applied. When the outline has
// a single unit (a course) the unit may be left out.
type Target struct {
	UnitID    uuid.UUID `json:"unitId"`
	ChapterID uuid.UUID `json:"chapterId"`
	LessonID  uuid.UUID `json:"lessonId"`
	ProjectID uuid.UUID `json:"projectId"`

	Unit    *int `json:"unit,omitempty"`
	Chapter *int `json:"chapter,omitempty"`
	Lesson  *int `json:"lesson,omitempty"`
	Project *int `json:"project,omitempty"`
}

// At is a small helper for building positional targets.
func At(i int) *int { return &i }

// insertAfter puts item right after position after. A nil position appends,
// -1 inserts at the front, anything past the end appends.
func insertAfter[T any](items []T, after *int, item T) []T {
	if after == nil || *after >= len(items)-1 {
		return append(items, item)
	}
	i := *after + 1
	if i < 0 {
		i = 0
	}
	out := make([]T, 0, len(items)+1)
	out = append(out, items[:i]...)
	out = append(out, item)
	out = append(out, items[i:]...)
	return out
}

// removeAt drops position i into a fresh slice. Out-of-range is a no-op.
func removeAt[T any](items []T, i int) []T {
	if i < 0 || i >= len(items) {
		return items
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

type identified interface {
	*Unit | *Chapter | *Lesson | *Project
}

func idOf[T identified](v T) uuid.UUID {
	switch n := any(v).(type) {
	case *Unit:
		return n.ID
	case *Chapter:
		return n.ID
	case *Lesson:
		return n.ID
	case *Project:
		return n.ID
	}
	return uuid.Nil
}

// pick resolves a child by id or position.
func pick[T identified](items []T, id uuid.UUID, pos *int) (int, error) {
	if id != uuid.Nil {
		for i, it := range items {
			if idOf(it) == id {
				return i, nil
			}
		}
		return -1, ErrNodeNotFound
	}
	if pos == nil {
		return -1, ErrNodeNotFound
	}
	if *pos < 0 || *pos >= len(items) {
		return -1, errOutOfRange
	}
	return *pos, nil
}

// afterIndex converts an "insert after this sibling" id into a position.
func afterIndex[T identified](items []T, afterID uuid.UUID, after *int) (*int, error) {
	if afterID == uuid.Nil {
		return after, nil
	}
	i, err := pick(items, afterID, nil)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (o *Outline) unitIndex(t Target) (int, error) {
	if t.UnitID == uuid.Nil && t.Unit == nil {
		if len(o.Units) == 1 {
			return 0, nil
		}
		// Nested ids are unique, so a chapter, lesson or project id is
		// enough to find the owning unit.
		if i := o.unitOwning(t); i >= 0 {
			return i, nil
		}
		return -1, ErrNodeNotFound
	}
	return pick(o.Units, t.UnitID, t.Unit)
}

func (o *Outline) unitOwning(t Target) int {
	for i, u := range o.Units {
		for _, p := range u.Projects {
			if t.ProjectID != uuid.Nil && p.ID == t.ProjectID {
				return i
			}
		}
		for _, ch := range u.Chapters {
			if t.ChapterID != uuid.Nil && ch.ID == t.ChapterID {
				return i
			}
			for _, l := range ch.Lessons {
				if t.LessonID != uuid.Nil && l.ID == t.LessonID {
					return i
				}
			}
		}
	}
	return -1
}

func (o *Outline) unit(t Target) (*Unit, error) {
	i, err := o.unitIndex(t)
	if err != nil {
		return nil, err
	}
	return o.Units[i], nil
}

func (o *Outline) chapterIndex(t Target) (*Unit, int, error) {
	u, err := o.unit(t)
	if err != nil {
		return nil, -1, err
	}
	if t.ChapterID == uuid.Nil && t.Chapter == nil && t.LessonID != uuid.Nil {
		for i, ch := range u.Chapters {
			for _, l := range ch.Lessons {
				if l.ID == t.LessonID {
					return u, i, nil
				}
			}
		}
		return nil, -1, ErrNodeNotFound
	}
	i, err := pick(u.Chapters, t.ChapterID, t.Chapter)
	if err != nil {
		return nil, -1, err
	}
	return u, i, nil
}

func (o *Outline) chapter(t Target) (*Chapter, error) {
	u, i, err := o.chapterIndex(t)
	if err != nil {
		return nil, err
	}
	return u.Chapters[i], nil
}

func (o *Outline) lessonIndex(t Target) (*Chapter, int, error) {
	ch, err := o.chapter(t)
	if err != nil {
		return nil, -1, err
	}
	i, err := pick(ch.Lessons, t.LessonID, t.Lesson)
	if err != nil {
		return nil, -1, err
	}
	return ch, i, nil
}

func (o *Outline) lesson(t Target) (*Lesson, error) {
	ch, i, err := o.lessonIndex(t)
	if err != nil {
		return nil, err
	}
	return ch.Lessons[i], nil
}

func (o *Outline) projectIndex(t Target) (*Unit, int, error) {
	u, err := o.unit(t)
	if err != nil {
		return nil, -1, err
	}
	i, err := pick(u.Projects, t.ProjectID, t.Project)
	if err != nil {
		return nil, -1, err
	}
	return u, i, nil
}

func (o *Outline) project(t Target) (*Project, error) {
	u, i, err := o.projectIndex(t)
	if err != nil {
		return nil, err
	}
	return u.Projects[i], nil
}
