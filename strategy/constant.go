package strategy

// Constant always plays the same action.
type Constant struct {
	action int
}

func NewConstant(action int) *Constant { return &Constant{action: action} }

func (s *Constant) GetAction() int { return s.action }

func (s *Constant) Update(arm, reward int) {}

func (s *Constant) Name() string { return "Constant" }
