package prize

import (
	"errors"
)

var (
	ErrEmptyCode      = errors.New("redemption code is required")
	ErrAmountRequired = errors.New("a positive amount is required for this prize type")
)

// Prize is one redeemable code and its payout state. The redemption code
// is the sole lookup key and never changes after creation.
type Prize struct {
	code   string
	typ    Type
	amount Amount
	status Status
}

// NewPrize validates a prize at creation time. Random prizes always start
// with a zero amount; the pool resolves it at redemption.
func NewPrize(code string, typ Type, amount Amount) (*Prize, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}
	if _, err := NewType(typ.String()); err != nil {
		return nil, err
	}
	switch typ {
	case TypeRandom:
		amount = ZeroAmount()
	default:
		if amount.IsZero() {
			return nil, ErrAmountRequired
		}
	}

	return &Prize{
		code:   code,
		typ:    typ,
		amount: amount,
		status: StatusAvailable,
	}, nil
}

// Redeem transitions an Available prize to Redeemed.
func (p *Prize) Redeem() error {
	if !p.status.CanTransitionTo(StatusRedeemed) {
		return ErrStatusRegression
	}
	p.status = StatusRedeemed
	return nil
}

// AssignFromPool locks in a pool denomination for a Random prize and
// redeems it in the same step.
func (p *Prize) AssignFromPool(amount Amount) error {
	if p.typ != TypeRandom {
		return ErrInvalidType
	}
	if err := p.Redeem(); err != nil {
		return err
	}
	p.typ = TypeAssigned
	p.amount = amount
	return nil
}

// Transfer transitions a Redeemed prize to Transferred.
func (p *Prize) Transfer() error {
	if !p.status.CanTransitionTo(StatusTransferred) {
		return ErrStatusRegression
	}
	p.status = StatusTransferred
	return nil
}

func (p *Prize) Code() string   { return p.code }
func (p *Prize) Type() Type     { return p.typ }
func (p *Prize) Amount() Amount { return p.amount }
func (p *Prize) Status() Status { return p.status }
