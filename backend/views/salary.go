package views

// SalaryRange is the min/max salary picker of the job forms. Zero To means
// no maximum chosen yet.
type SalaryRange struct {
	From int
	To   int

	notifier Notifier
}

func NewSalaryRange(n Notifier) *SalaryRange {
	return &SalaryRange{notifier: n}
}

// SetMin rejects a minimum above the chosen maximum.
func (s *SalaryRange) SetMin(v int) bool {
	if s.To > 0 && v > s.To {
		s.notifier.Error("Minimum salary cannot be more than maximum salary")
		return false
	}
	s.From = v
	return true
}

// SetMax rejects a maximum below the chosen minimum.
func (s *SalaryRange) SetMax(v int) bool {
	if v < s.From {
		s.notifier.Error("Maximum salary cannot be less than minimum salary")
		return false
	}
	s.To = v
	return true
}
