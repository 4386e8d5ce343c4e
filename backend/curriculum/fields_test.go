package curriculum

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetFieldDispatch(t *testing.T) {
	o := NewOutline()
	lt := Target{Chapter: At(0), Lesson: At(0)}

	require.NoError(t, o.SetField(Target{}, FieldUnitTitle, "Basics"))
	require.NoError(t, o.SetField(Target{Chapter: At(0)}, FieldChapterTitle, "Chapter 1"))
	require.NoError(t, o.SetField(lt, FieldLessonTitle, "Hello"))
	require.NoError(t, o.SetField(lt, FieldDuration, "45"))
	require.NoError(t, o.SetField(lt, FieldVideo, "https://cdn/v.mp4"))
	require.NoError(t, o.SetField(lt, FieldMeetingLink, "https://meet/x"))

	u := o.Units[0]
	l := u.Chapters[0].Lessons[0]
	assert.Equal(t, "Basics", u.Title)
	assert.Equal(t, "Chapter 1", u.Chapters[0].Title)
	assert.Equal(t, "Hello", l.Title)
	assert.Equal(t, 45, l.Duration)
	assert.Equal(t, "https://cdn/v.mp4", l.Video)
	assert.Equal(t, "https://meet/x", l.LiveClass.MeetingLink)
	assert.Empty(t, l.Notes)
}

func TestSetFieldDuration(t *testing.T) {
	o := NewOutline()
	lt := Target{Chapter: At(0), Lesson: At(0)}

	require.NoError(t, o.SetField(lt, FieldDuration, "30"))
	require.NoError(t, o.SetField(lt, FieldDuration, ""))
	assert.Zero(t, o.Units[0].Chapters[0].Lessons[0].Duration)

	assert.ErrorIs(t, o.SetField(lt, FieldDuration, "ten"), ErrInvalidValue)
	assert.ErrorIs(t, o.SetField(lt, FieldDuration, "-5"), ErrInvalidValue)
}

func TestSetFieldErrors(t *testing.T) {
	o := NewOutline()
	assert.ErrorIs(t, o.SetField(Target{}, "colour", "red"), ErrUnknownField)
	assert.ErrorIs(t, o.SetField(Target{Chapter: At(0), Lesson: At(5)}, FieldLessonTitle, "x"), ErrNodeNotFound)
	assert.ErrorIs(t, o.SetField(Target{LessonID: uuid.New()}, FieldLessonTitle, "x"), ErrNodeNotFound)
}

func TestDateFieldsRoundTrip(t *testing.T) {
	o := NewOutline()
	lt := Target{Chapter: At(0), Lesson: At(0)}

	require.NoError(t, o.SetField(lt, FieldLiveStartTime, "2025-01-01T10:00"))
	require.NoError(t, o.SetField(lt, FieldLiveEndTime, "2025-01-01T11:30:00+01:00"))

	live := o.Units[0].Chapters[0].Lessons[0].LiveClass
	assert.Equal(t, "2025-01-01T10:00:00Z", live.StartTime)
	assert.Equal(t, "2025-01-01T10:30:00Z", live.EndTime)
	assert.Equal(t, "2025-01-01T10:00", DisplayTime(live.StartTime))
	assert.Equal(t, "", DisplayTime("garbage"))

	assert.ErrorIs(t, o.SetField(lt, FieldLiveStartTime, "tomorrow"), ErrInvalidValue)

	require.NoError(t, o.SetField(lt, FieldLiveStartTime, ""))
	assert.Empty(t, o.Units[0].Chapters[0].Lessons[0].LiveClass.StartTime)
}

func TestToggleLiveKeepsRecordedFields(t *testing.T) {
	o := NewOutline()
	lt := Target{Chapter: At(0), Lesson: At(0)}
	require.NoError(t, o.SetField(lt, FieldNotes, "notes.pdf"))

	live, err := o.ToggleLive(lt)
	require.NoError(t, err)
	assert.True(t, live)
	assert.Equal(t, "notes.pdf", o.Units[0].Chapters[0].Lessons[0].Notes)

	live, err = o.ToggleLive(lt)
	require.NoError(t, err)
	assert.False(t, live)

	require.NoError(t, o.SetField(lt, FieldIsLiveClass, "true"))
	assert.True(t, o.Units[0].Chapters[0].Lessons[0].IsLiveClass)
}

func TestMediaSelectionBoundToNode(t *testing.T) {
	o := NewOutline()
	ch := o.Units[0].Chapters[0]
	target := ch.Lessons[0]

	sel, err := o.BeginMediaSelection(Target{Chapter: At(0), Lesson: At(0)}, MediaNotes)
	require.NoError(t, err)
	assert.Equal(t, target.ID, sel.NodeID())

	// a lesson inserted in front shifts positions but not the binding
	_, err = o.AddLesson(Target{Chapter: At(0)}, uuid.Nil, At(-1))
	require.NoError(t, err)
	require.Same(t, target, ch.Lessons[1])

	require.NoError(t, sel.Commit("https://cdn/notes.pdf"))
	assert.Equal(t, "https://cdn/notes.pdf", target.Notes)
	assert.Empty(t, ch.Lessons[0].Notes)

	assert.ErrorIs(t, sel.Commit("again"), ErrSelectionEnded)
}

func TestMediaSelectionTargetRemoved(t *testing.T) {
	o := NewOutline()
	p, err := o.AddProject(Target{}, uuid.Nil, nil)
	require.NoError(t, err)

	sel, err := o.BeginMediaSelection(Target{ProjectID: p.ID}, MediaProjectPDF)
	require.NoError(t, err)
	require.NoError(t, o.RemoveProject(Target{ProjectID: p.ID}))

	assert.ErrorIs(t, sel.Commit("https://cdn/brief.pdf"), ErrNodeNotFound)
}

func TestMediaSelectionCancelAndUnknown(t *testing.T) {
	o := NewOutline()
	_, err := o.BeginMediaSelection(Target{Chapter: At(0), Lesson: At(0)}, "audio")
	assert.ErrorIs(t, err, ErrUnknownMedia)

	sel, err := o.BeginMediaSelection(Target{Chapter: At(0), Lesson: At(0)}, MediaVideo)
	require.NoError(t, err)
	sel.Cancel()
	assert.ErrorIs(t, sel.Commit("x"), ErrSelectionEnded)
	assert.Empty(t, o.Units[0].Chapters[0].Lessons[0].Video)
}
