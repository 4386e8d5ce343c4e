package curriculum

import (
	"fmt"

	"github.com/google/uuid"
)

type Op string

const (
	OpAddUnit       Op = "add_unit"
	OpAddChapter    Op = "add_chapter"
	OpAddLesson     Op = "add_lesson"
	OpAddProject    Op = "add_project"
	OpRemoveUnit    Op = "remove_unit"
	OpRemoveChapter Op = "remove_chapter"
	OpRemoveLesson  Op = "remove_lesson"
	OpRemoveProject Op = "remove_project"
	OpSetField      Op = "set_field"
	OpToggleLive    Op = "toggle_live"
	OpAttachMedia   Op = "attach_media"
)

// Command is one builder edit as sent by the dashboard.
type Command struct {
	Op Op `json:"op"`
	Target

	// Insert position for add_* ops, relative to the new node's siblings.
	After   *int      `json:"after,omitempty"`
	AfterID uuid.UUID `json:"afterId"`

	Field     string    `json:"field,omitempty"`
	Value     string    `json:"value,omitempty"`
	MediaType MediaType `json:"mediaType,omitempty"`
	URL       string    `json:"url,omitempty"`
}

// Apply runs cmds in order against a normalized copy of o. Either every
// command applies and the new outline is returned, or o is left untouched.
func (o *Outline) Apply(cmds []Command) (*Outline, error) {
	next := o.Clone()
	next.Normalize()
	for i, cmd := range cmds {
		if err := next.apply(cmd); err != nil {
			return nil, fmt.Errorf("command %d (%s): %w", i, cmd.Op, err)
		}
	}
	return next, nil
}

func (o *Outline) apply(cmd Command) error {
	var err error
	switch cmd.Op {
	case OpAddUnit:
		if cmd.AfterID != uuid.Nil {
			_, err = o.AddUnitAfter(cmd.AfterID)
		} else {
			o.AddUnit(cmd.After)
		}
	case OpAddChapter:
		_, err = o.AddChapter(cmd.Target, cmd.AfterID, cmd.After)
	case OpAddLesson:
		_, err = o.AddLesson(cmd.Target, cmd.AfterID, cmd.After)
	case OpAddProject:
		_, err = o.AddProject(cmd.Target, cmd.AfterID, cmd.After)
	case OpRemoveUnit:
		err = o.RemoveUnit(cmd.Target)
	case OpRemoveChapter:
		err = o.RemoveChapter(cmd.Target)
	case OpRemoveLesson:
		err = o.RemoveLesson(cmd.Target)
	case OpRemoveProject:
		err = o.RemoveProject(cmd.Target)
	case OpSetField:
		err = o.SetField(cmd.Target, cmd.Field, cmd.Value)
	case OpToggleLive:
		_, err = o.ToggleLive(cmd.Target)
	case OpAttachMedia:
		var sel *MediaSelection
		sel, err = o.BeginMediaSelection(cmd.Target, cmd.MediaType)
		if err == nil {
			err = sel.Commit(cmd.URL)
		}
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownOp, cmd.Op)
	}
	return err
}
