package phases

// TradingPhase is the session axis of the trading state machine.
type TradingPhase int8

const (
	PhaseOpen TradingPhase = iota
	PhaseClosed
)

func (p TradingPhase) String() string {
	if p == PhaseClosed {
		return "closed"
	}
	return "open"
}

// TradingStatus is the halt axis of the trading state machine.
type TradingStatus int8

const (
	StatusResume TradingStatus = iota
	StatusHalt
)

func (s TradingStatus) String() string {
	if s == StatusHalt {
		return "halt"
	}
	return "resume"
}

// Settings carries the options attached to an explicit halt.
type Settings struct {
	AllowCancels bool
}

func (s Settings) Clone() *Settings {
	cpy := s
	return &cpy
}

// Phase is the two axis trading state consulted by the order entry
// boundary before order acceptance and cancellation. The zero value is an
// open, resumed market.
type Phase struct {
	phase    TradingPhase
	status   TradingStatus
	settings *Settings
}

// New builds a Phase applying the state machine rules: a closed phase
// forces a halted status, and settings are retained only for an explicit
// halt, that is when the resulting status is halt and the resulting phase
// is not closed.
func New(phase TradingPhase, status TradingStatus, settings *Settings) Phase {
	if phase == PhaseClosed {
		status = StatusHalt
	}
	if status != StatusHalt || phase == PhaseClosed {
		settings = nil
	}
	if settings != nil {
		settings = settings.Clone()
	}
	return Phase{
		phase:    phase,
		status:   status,
		settings: settings,
	}
}

func (p Phase) Phase() TradingPhase {
	return p.phase
}

func (p Phase) Status() TradingStatus {
	return p.status
}

// Settings returns the halt settings, nil unless the phase is an
// explicit halt.
func (p Phase) Settings() *Settings {
	if p.settings == nil {
		return nil
	}
	return p.settings.Clone()
}

// AcceptsOrders reports whether new orders pass the gate.
func (p Phase) AcceptsOrders() bool {
	return p.status == StatusResume
}

// AcceptsCancels reports whether cancellations pass the gate. A halted
// market accepts cancels only when its halt settings allow them.
func (p Phase) AcceptsCancels() bool {
	if p.status == StatusResume {
		return true
	}
	return p.settings != nil && p.settings.AllowCancels
}

func (p Phase) String() string {
	return p.phase.String() + "/" + p.status.String()
}
