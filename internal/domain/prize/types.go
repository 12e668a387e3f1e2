package prize

import "errors"

var (
	ErrInvalidType      = errors.New("invalid prize type")
	ErrInvalidStatus    = errors.New("invalid prize status")
	ErrStatusRegression = errors.New("prize status cannot move backwards")
)

// Type distinguishes how a prize's amount is resolved. Specific prizes are
// fixed at creation, Random prizes draw from the pool at redemption time,
// and Assigned marks a former Random prize whose amount is locked in.
type Type string

const (
	TypeSpecific Type = "Specific"
	TypeRandom   Type = "Random"
	TypeAssigned Type = "Assigned"
)

func NewType(s string) (Type, error) {
	switch Type(s) {
	case TypeSpecific, TypeRandom, TypeAssigned:
		return Type(s), nil
	}
	return "", ErrInvalidType
}

func (t Type) String() string {
	return string(t)
}

// Status is strictly forward-only: Available -> Redeemed -> Transferred.
type Status string

const (
	StatusAvailable   Status = "Available"
	StatusRedeemed    Status = "Redeemed"
	StatusTransferred Status = "Transferred"
)

var statusRank = map[Status]int{
	StatusAvailable:   1,
	StatusRedeemed:    2,
	StatusTransferred: 3,
}

func NewStatus(s string) (Status, error) {
	if _, ok := statusRank[Status(s)]; !ok {
		return "", ErrInvalidStatus
	}
	return Status(s), nil
}

func (s Status) String() string {
	return string(s)
}

// CanTransitionTo reports whether moving to next is a legal forward step.
func (s Status) CanTransitionTo(next Status) bool {
	from, ok := statusRank[s]
	to, ok2 := statusRank[next]
	return ok && ok2 && to == from+1
}
