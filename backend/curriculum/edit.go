package curriculum

import "github.com/google/uuid"

// AddUnit inserts a default unit after position after (nil appends).
func (o *Outline) AddUnit(after *int) *Unit {
	u := NewUnit()
	o.Units = insertAfter(o.Units, after, u)
	return u
}

// AddUnitAfter inserts after the unit with the given id.
func (o *Outline) AddUnitAfter(afterID uuid.UUID) (*Unit, error) {
	after, err := afterIndex(o.Units, afterID, nil)
	if err != nil {
		return nil, err
	}
	return o.AddUnit(after), nil
}

// AddChapter inserts a default chapter into the unit addressed by t.
func (o *Outline) AddChapter(t Target, afterID uuid.UUID, after *int) (*Chapter, error) {
	u, err := o.unit(t)
	if err != nil {
		return nil, err
	}
	pos, err := afterIndex(u.Chapters, afterID, after)
	if err != nil {
		return nil, err
	}
	ch := NewChapter()
	u.Chapters = insertAfter(u.Chapters, pos, ch)
	return ch, nil
}

// AddLesson inserts a default lesson into the chapter addressed by t.
func (o *Outline) AddLesson(t Target, afterID uuid.UUID, after *int) (*Lesson, error) {
	ch, err := o.chapter(t)
	if err != nil {
		return nil, err
	}
	pos, err := afterIndex(ch.Lessons, afterID, after)
	if err != nil {
		return nil, err
	}
	l := NewLesson()
	ch.Lessons = insertAfter(ch.Lessons, pos, l)
	return l, nil
}

// AddProject inserts a default project into the unit addressed by t.
func (o *Outline) AddProject(t Target, afterID uuid.UUID, after *int) (*Project, error) {
	u, err := o.unit(t)
	if err != nil {
		return nil, err
	}
	pos, err := afterIndex(u.Projects, afterID, after)
	if err != nil {
		return nil, err
	}
	p := NewProject()
	u.Projects = insertAfter(u.Projects, pos, p)
	return p, nil
}

// RemoveUnit drops the addressed unit. Positions past the end are ignored.
func (o *Outline) RemoveUnit(t Target) error {
	if t.UnitID == uuid.Nil && t.Unit == nil {
		return ErrNodeNotFound
	}
	i, err := pick(o.Units, t.UnitID, t.Unit)
	if err == errOutOfRange {
		return nil
	}
	if err != nil {
		return err
	}
	o.Units = removeAt(o.Units, i)
	return nil
}

func (o *Outline) RemoveChapter(t Target) error {
	u, i, err := o.chapterIndex(t)
	if err == errOutOfRange {
		return nil
	}
	if err != nil {
		return err
	}
	u.Chapters = removeAt(u.Chapters, i)
	return nil
}

func (o *Outline) RemoveLesson(t Target) error {
	ch, i, err := o.lessonIndex(t)
	if err == errOutOfRange {
		return nil
	}
	if err != nil {
		return err
	}
	ch.Lessons = removeAt(ch.Lessons, i)
	return nil
}

func (o *Outline) RemoveProject(t Target) error {
	u, i, err := o.projectIndex(t)
	if err == errOutOfRange {
		return nil
	}
	if err != nil {
		return err
	}
	u.Projects = removeAt(u.Projects, i)
	return nil
}
