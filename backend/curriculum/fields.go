package curriculum

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DisplayLayout is the value format of a native datetime-local input.
const DisplayLayout = "2006-01-02T15:04"

// Leaf fields accepted by SetField. The field name picks the level of the
// target that gets resolved.
const (
	FieldUnitTitle          = "unitTitle"
	FieldUnitDescription    = "unitDescription"
	FieldChapterTitle       = "chapterTitle"
	FieldChapterDescription = "chapterDescription"
	FieldLessonTitle        = "lessonTitle"
	FieldLessonDescription  = "lessonDescription"
	FieldDuration           = "duration"
	FieldIsLiveClass        = "isLiveClass"
	FieldVideo              = "video"
	FieldNotes              = "notes"
	FieldAssignment         = "assignment"
	FieldLiveStartTime      = "liveStartTime"
	FieldLiveEndTime        = "liveEndTime"
	FieldMeetingLink        = "meetingLink"
	FieldProjectTitle       = "projectTitle"
	FieldProjectInfoPDF     = "projectInfoPdf"
	FieldProjectStartDate   = "projectStartDate"
	FieldProjectEndDate     = "projectEndDate"
)

// ParseDisplayTime accepts the display layout or RFC3339 and returns an
// RFC3339 string in UTC. Empty input clears the value.
func ParseDisplayTime(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", nil
	}
	t, err := time.ParseInLocation(DisplayLayout, v, time.UTC)
	if err != nil {
		t, err = time.Parse(time.RFC3339, v)
		if err != nil {
			return "", fmt.Errorf("%w: %q is not a date-time", ErrInvalidValue, v)
		}
	}
	return t.UTC().Format(time.RFC3339), nil
}

// DisplayTime renders a stored value back into the display layout.
func DisplayTime(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return ""
	}
	return t.UTC().Format(DisplayLayout)
}

// SetField writes one leaf value.
func (o *Outline) SetField(t Target, field, value string) error {
	switch field {
	case FieldUnitTitle, FieldUnitDescription:
		u, err := o.unit(t)
		if err != nil {
			return err
		}
		if field == FieldUnitTitle {
			u.Title = value
		} else {
			u.Description = value
		}
		return nil

	case FieldChapterTitle, FieldChapterDescription:
		ch, err := o.chapter(t)
		if err != nil {
			return err
		}
		if field == FieldChapterTitle {
			ch.Title = value
		} else {
			ch.Description = value
		}
		return nil

	case FieldLessonTitle, FieldLessonDescription, FieldDuration, FieldIsLiveClass,
		FieldVideo, FieldNotes, FieldAssignment,
		FieldLiveStartTime, FieldLiveEndTime, FieldMeetingLink:
		l, err := o.lesson(t)
		if err != nil {
			return err
		}
		return setLessonField(l, field, value)

	case FieldProjectTitle, FieldProjectInfoPDF, FieldProjectStartDate, FieldProjectEndDate:
		p, err := o.project(t)
		if err != nil {
			return err
		}
		return setProjectField(p, field, value)
	}
	return fmt.Errorf("%w: %q", ErrUnknownField, field)
}

func setLessonField(l *Lesson, field, value string) error {
	switch field {
	case FieldLessonTitle:
		l.Title = value
	case FieldLessonDescription:
		l.Description = value
	case FieldDuration:
		d, err := parseDuration(value)
		if err != nil {
			return err
		}
		l.Duration = d
	case FieldIsLiveClass:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, value)
		}
		l.IsLiveClass = b
	case FieldVideo:
		l.Video = value
	case FieldNotes:
		l.Notes = value
	case FieldAssignment:
		l.Assignment = value
	case FieldMeetingLink:
		l.LiveClass.MeetingLink = value
	case FieldLiveStartTime, FieldLiveEndTime:
		iso, err := ParseDisplayTime(value)
		if err != nil {
			return err
		}
		if field == FieldLiveStartTime {
			l.LiveClass.StartTime = iso
		} else {
			l.LiveClass.EndTime = iso
		}
	}
	return nil
}

func setProjectField(p *Project, field, value string) error {
	switch field {
	case FieldProjectTitle:
		p.Title = value
	case FieldProjectInfoPDF:
		p.InfoPDF = value
	case FieldProjectStartDate, FieldProjectEndDate:
		iso, err := ParseDisplayTime(value)
		if err != nil {
			return err
		}
		if field == FieldProjectStartDate {
			p.StartDate = iso
		} else {
			p.EndDate = iso
		}
	}
	return nil
}

// parseDuration coerces form input to minutes; an empty box means zero.
func parseDuration(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	d, err := strconv.Atoi(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: duration %q", ErrInvalidValue, v)
	}
	return d, nil
}

// ToggleLive flips IsLiveClass and returns the new value.
func (o *Outline) ToggleLive(t Target) (bool, error) {
	l, err := o.lesson(t)
	if err != nil {
		return false, err
	}
	l.IsLiveClass = !l.IsLiveClass
	return l.IsLiveClass, nil
}
