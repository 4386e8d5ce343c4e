package curriculum

import (
	"fmt"

	"github.com/google/uuid"
)

type MediaType string

const (
	MediaVideo      MediaType = "video"
	MediaNotes      MediaType = "notes"
	MediaAssignment MediaType = "assignment"
	MediaProjectPDF MediaType = "project_infoPdf"
)

func (m MediaType) Valid() bool {
	switch m {
	case MediaVideo, MediaNotes, MediaAssignment, MediaProjectPDF:
		return true
	}
	return false
}

// MediaSelection is a pending pick from the media library. The destination
// node is bound when the selection starts, so whatever happens to the
// positions around it the URL lands on the same lesson or project.
type MediaSelection struct {
	outline *Outline
	nodeID  uuid.UUID
	kind    MediaType
	done    bool
}

// BeginMediaSelection binds a selection to the node addressed by t.
func (o *Outline) BeginMediaSelection(t Target, kind MediaType) (*MediaSelection, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMedia, kind)
	}
	var id uuid.UUID
	if kind == MediaProjectPDF {
		p, err := o.project(t)
		if err != nil {
			return nil, err
		}
		id = p.ID
	} else {
		l, err := o.lesson(t)
		if err != nil {
			return nil, err
		}
		id = l.ID
	}
	return &MediaSelection{outline: o, nodeID: id, kind: kind}, nil
}

func (s *MediaSelection) NodeID() uuid.UUID { return s.nodeID }
func (s *MediaSelection) Kind() MediaType   { return s.kind }

// Commit writes url into the bound node. It fails if the node has been
// removed since the selection started.
func (s *MediaSelection) Commit(url string) error {
	if s.done {
		return ErrSelectionEnded
	}
	if s.kind == MediaProjectPDF {
		p, ok := s.outline.FindProject(s.nodeID)
		if !ok {
			return ErrNodeNotFound
		}
		p.InfoPDF = url
		s.done = true
		return nil
	}

	l, ok := s.outline.FindLesson(s.nodeID)
	if !ok {
		return ErrNodeNotFound
	}
	switch s.kind {
	case MediaVideo:
		l.Video = url
	case MediaNotes:
		l.Notes = url
	case MediaAssignment:
		l.Assignment = url
	}
	s.done = true
	return nil
}

// Cancel drops the selection without touching the outline.
func (s *MediaSelection) Cancel() { s.done = true }
