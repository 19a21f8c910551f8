package types

// Msg is a single requested state transition. ValidateBasic performs the
// stateless input checks; everything stateful is the keeper's job.
type Msg interface {
	Route() string
	Type() string
	ValidateBasic() Error
	GetSigners() []AccAddress
}

// Handler processes one Msg against the current state.
type Handler func(ctx Context, msg Msg) Result
