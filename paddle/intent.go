package paddle

// Intent is the resolved direction a player wants a paddle to move,
// independent of whatever key or device produced it.
type Intent int

const (
	Neutral Intent = iota
	Up
	Down
)

func (i Intent) String() string {
	switch i {
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "neutral"
}

// Direction maps the intent onto the y axis: Up is +1, Down is -1.
func (i Intent) Direction() float64 {
	switch i {
	case Up:
		return 1
	case Down:
		return -1
	}
	return 0
}

// Combine resolves two held keys into one intent by summing their
// directions, so pressing both cancels out.
func Combine(up, down bool) Intent {
	sum := 0
	if up {
		sum++
	}
	if down {
		sum--
	}

	switch {
	case sum > 0:
		return Up
	case sum < 0:
		return Down
	}
	return Neutral
}

// Strategy decides what a paddle actually does with the intent requested for
// its side.
type Strategy interface {
	Decide(requested Intent) Intent
}

// PlayerControlled follows the requested intent.
type PlayerControlled struct{}

func (PlayerControlled) Decide(requested Intent) Intent { return requested }

// Stationary ignores input and never moves.
type Stationary struct{}

func (Stationary) Decide(Intent) Intent { return Neutral }

// ParseStrategy maps a config name onto a Strategy.
func ParseStrategy(name string) (Strategy, bool) {
	switch name {
	case "player", "":
		return PlayerControlled{}, true
	case "stationary":
		return Stationary{}, true
	}
	return nil, false
}
