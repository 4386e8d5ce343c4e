package views

import "context"

// Confirmer asks the operator a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Always answers yes, for non-interactive runs.
type Always struct{}

func (Always) Confirm(string) bool { return true }

// ConfirmDelete asks first and only then deletes. On success it toasts and
// runs refresh, if given. It reports whether the delete was sent.
func ConfirmDelete(ctx context.Context, c Confirmer, n Notifier, prompt string,
	del func(context.Context) error, refresh func(context.Context) error) (bool, error) {
	if !c.Confirm(prompt) {
		return false, nil
	}
	if err := del(ctx); err != nil {
		n.Error(Message(err))
		return true, err
	}
	n.Success("Deleted")
	if refresh != nil {
		return true, refresh(ctx)
	}
	return true, nil
}
