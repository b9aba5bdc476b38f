package bridge

// State is a lifecycle phase of the Service.
type State int32

const (
	Starting State = iota
	Connecting
	Active
	Closing
	Terminated
)

func (s State) String() string {
	switch s {
	case Starting:
		return "starting"
	case Connecting:
		return "connecting"
	case Active:
		return "active"
	case Closing:
		return "closing"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}
