package curriculum

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeLessons(t *testing.T) (*Outline, *Chapter) {
	t.Helper()
	o := NewOutline()
	ch := o.Units[0].Chapters[0]
	_, err := o.AddLesson(Target{Chapter: At(0)}, uuid.Nil, nil)
	require.NoError(t, err)
	_, err = o.AddLesson(Target{Chapter: At(0)}, uuid.Nil, nil)
	require.NoError(t, err)
	require.Len(t, ch.Lessons, 3)
	return &o, ch
}

func TestNewOutlineSkeleton(t *testing.T) {
	o := NewOutline()
	require.Len(t, o.Units, 1)
	require.Len(t, o.Units[0].Chapters, 1)
	require.Len(t, o.Units[0].Chapters[0].Lessons, 1)

	l := o.Units[0].Chapters[0].Lessons[0]
	assert.NotEqual(t, uuid.Nil, l.ID)
	assert.Empty(t, l.Title)
	assert.Zero(t, l.Duration)
	assert.Equal(t, LiveClass{}, l.LiveClass)
	assert.Empty(t, o.Units[0].Projects)
}

func TestAddLessonInsertsAfterPosition(t *testing.T) {
	o, ch := threeLessons(t)
	before := append([]*Lesson(nil), ch.Lessons...)

	l, err := o.AddLesson(Target{Chapter: At(0)}, uuid.Nil, At(0))
	require.NoError(t, err)

	require.Len(t, ch.Lessons, 4)
	assert.Same(t, before[0], ch.Lessons[0])
	assert.Same(t, l, ch.Lessons[1])
	assert.Same(t, before[1], ch.Lessons[2])
	assert.Same(t, before[2], ch.Lessons[3])
}

func TestAddKeepsSiblingsForEveryPosition(t *testing.T) {
	for _, after := range []*int{nil, At(-1), At(0), At(1), At(2), At(10)} {
		o, ch := threeLessons(t)
		before := append([]*Lesson(nil), ch.Lessons...)

		added, err := o.AddLesson(Target{Chapter: At(0)}, uuid.Nil, after)
		require.NoError(t, err)
		require.Len(t, ch.Lessons, len(before)+1)

		var rest []*Lesson
		for _, l := range ch.Lessons {
			if l != added {
				rest = append(rest, l)
			}
		}
		assert.Equal(t, before, rest)
	}
}

func TestAddAfterID(t *testing.T) {
	o, ch := threeLessons(t)
	last := ch.Lessons[2]

	l, err := o.AddLesson(Target{ChapterID: ch.ID}, last.ID, nil)
	require.NoError(t, err)
	assert.Same(t, l, ch.Lessons[3])

	_, err = o.AddLesson(Target{ChapterID: ch.ID}, uuid.New(), nil)
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestRemoveLesson(t *testing.T) {
	o, ch := threeLessons(t)
	keep0, drop, keep2 := ch.Lessons[0], ch.Lessons[1], ch.Lessons[2]

	require.NoError(t, o.RemoveLesson(Target{Chapter: At(0), Lesson: At(1)}))
	assert.Equal(t, []*Lesson{keep0, keep2}, ch.Lessons)

	_, found := o.FindLesson(drop.ID)
	assert.False(t, found)
}

func TestRemoveOutOfRangeIsNoop(t *testing.T) {
	o, ch := threeLessons(t)
	before := append([]*Lesson(nil), ch.Lessons...)

	require.NoError(t, o.RemoveLesson(Target{Chapter: At(0), Lesson: At(3)}))
	require.NoError(t, o.RemoveLesson(Target{Chapter: At(0), Lesson: At(-1)}))
	require.NoError(t, o.RemoveChapter(Target{Chapter: At(7)}))
	require.NoError(t, o.RemoveUnit(Target{Unit: At(1)}))

	assert.Equal(t, before, ch.Lessons)
	assert.Len(t, o.Units, 1)
}

func TestRemoveUnknownIDFails(t *testing.T) {
	o, _ := threeLessons(t)
	err := o.RemoveLesson(Target{LessonID: uuid.New()})
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestUnitsAndProjects(t *testing.T) {
	o := NewOutline()
	second := o.AddUnit(nil)
	first := o.Units[0]

	// two units: the unit must now be named
	_, err := o.AddChapter(Target{}, uuid.Nil, nil)
	assert.ErrorIs(t, err, ErrNodeNotFound)

	p, err := o.AddProject(Target{UnitID: second.ID}, uuid.Nil, nil)
	require.NoError(t, err)
	assert.Same(t, p, second.Projects[0])

	// a project id alone finds its unit
	require.NoError(t, o.SetField(Target{ProjectID: p.ID}, FieldProjectTitle, "Capstone"))
	assert.Equal(t, "Capstone", p.Title)

	require.NoError(t, o.RemoveProject(Target{Unit: At(1), Project: At(0)}))
	assert.Empty(t, second.Projects)

	require.NoError(t, o.RemoveUnit(Target{UnitID: second.ID}))
	assert.Equal(t, []*Unit{first}, o.Units)
}

func TestCloneIsDeep(t *testing.T) {
	o := NewOutline()
	c := o.Clone()
	c.Units[0].Chapters[0].Lessons[0].Title = "changed"
	c.Units[0].Chapters = append(c.Units[0].Chapters, NewChapter())

	assert.Empty(t, o.Units[0].Chapters[0].Lessons[0].Title)
	assert.Len(t, o.Units[0].Chapters, 1)
	assert.Equal(t, 1, o.LessonCount())
}

func TestApplyIsAllOrNothing(t *testing.T) {
	o := NewOutline()
	raw := `[
		{"op":"add_lesson","chapter":0},
		{"op":"set_field","chapter":0,"lesson":1,"field":"lessonTitle","value":"Intro"},
		{"op":"set_field","chapter":0,"lesson":1,"field":"duration","value":"abc"}
	]`
	var cmds []Command
	require.NoError(t, json.Unmarshal([]byte(raw), &cmds))

	next, err := o.Apply(cmds)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Nil(t, next)
	assert.Equal(t, 1, o.LessonCount())

	next, err = o.Apply(cmds[:2])
	require.NoError(t, err)
	assert.Equal(t, 2, next.LessonCount())
	assert.Equal(t, "Intro", next.Units[0].Chapters[0].Lessons[1].Title)
	assert.Equal(t, 1, o.LessonCount())
}

func TestApplyUnknownOp(t *testing.T) {
	o := NewOutline()
	_, err := o.Apply([]Command{{Op: "shuffle"}})
	assert.ErrorIs(t, err, ErrUnknownOp)
}

func decode(t *testing.T, raw string) *Outline {
	t.Helper()
	var o Outline
	require.NoError(t, json.Unmarshal([]byte(raw), &o))
	return &o
}

func TestNormalizeAssignsMissingAndDuplicateIDs(t *testing.T) {
	dup := "6f1c1d0e-8a4b-4c1e-9d55-1a2b3c4d5e6f"
	o := decode(t, `{"units":[{"chapters":[{"lessons":[{"title":"l0"},{"id":"`+dup+`"},{"id":"`+dup+`"}]}]}]}`)
	o.Normalize()

	seen := map[uuid.UUID]bool{}
	u := o.Units[0]
	ids := []uuid.UUID{u.ID, u.Chapters[0].ID}
	for _, l := range u.Chapters[0].Lessons {
		ids = append(ids, l.ID)
	}
	for _, id := range ids {
		assert.NotEqual(t, uuid.Nil, id)
		assert.False(t, seen[id], "id %s used twice", id)
		seen[id] = true
	}
	assert.Equal(t, dup, u.Chapters[0].Lessons[1].ID.String(), "the first holder keeps its id")
	assert.NotNil(t, u.Projects)
}

func TestNormalizeDropsNullNodes(t *testing.T) {
	o := decode(t, `{"units":[null,{"chapters":[null,{"lessons":[null,{"title":"kept"}]}],"projects":[null]}]}`)
	o.Normalize()

	require.Len(t, o.Units, 1)
	require.Len(t, o.Units[0].Chapters, 1)
	require.Len(t, o.Units[0].Chapters[0].Lessons, 1)
	assert.Equal(t, "kept", o.Units[0].Chapters[0].Lessons[0].Title)
	assert.Empty(t, o.Units[0].Projects)
}

func TestApplyOnOutlineWithNullNodes(t *testing.T) {
	o := decode(t, `{"units":[{"chapters":[{"lessons":[null]}]}]}`)

	next, err := o.Apply([]Command{{Op: OpAddLesson, Target: Target{Chapter: At(0)}}})
	require.NoError(t, err)
	assert.Equal(t, 1, next.LessonCount())
}

func TestAttachMediaOnOutlineWithoutIDs(t *testing.T) {
	o := decode(t, `{"units":[{"chapters":[{"lessons":[{"title":"l0"},{"title":"l1"},{"title":"l2"}]}]}]}`)

	next, err := o.Apply([]Command{{
		Op:        OpAttachMedia,
		Target:    Target{Chapter: At(0), Lesson: At(2)},
		MediaType: MediaVideo,
		URL:       "https://v/2.mp4",
	}})
	require.NoError(t, err)

	lessons := next.Units[0].Chapters[0].Lessons
	assert.Empty(t, lessons[0].Video)
	assert.Empty(t, lessons[1].Video)
	assert.Equal(t, "https://v/2.mp4", lessons[2].Video)
}
