package types

// FuturesKind selects which class of futures note an operation mints.
type FuturesKind byte

const (
	FuturesVote FuturesKind = iota
	FuturesReward
)

func (k FuturesKind) IsValid() bool {
	return k == FuturesVote || k == FuturesReward
}

func (k FuturesKind) String() string {
	switch k {
	case FuturesVote:
		return "vote"
	case FuturesReward:
		return "reward"
	default:
		return "unknown"
	}
}

// ContractKind selects which external collaborator a SetContract call
// repoints.
type ContractKind byte

const (
	ContractLockGateway ContractKind = iota
	ContractFeeSplitter
	ContractVoteRegistry
	ContractRewardClaimer
	ContractCompoundVault
)

func (k ContractKind) IsValid() bool {
	return k <= ContractCompoundVault
}

func (k ContractKind) String() string {
	switch k {
	case ContractLockGateway:
		return "lock_gateway"
	case ContractFeeSplitter:
		return "fee_splitter"
	case ContractVoteRegistry:
		return "vote_registry"
	case ContractRewardClaimer:
		return "reward_claimer"
	case ContractCompoundVault:
		return "compound_vault"
	default:
		return "unknown"
	}
}

// FeeKind selects which fee parameter a SetFee call adjusts.
type FeeKind byte

const (
	FeeRedemptionMax FeeKind = iota
	FeeRedemptionMin
	FeeReward
)

func (k FeeKind) IsValid() bool {
	return k <= FeeReward
}

func (k FeeKind) String() string {
	switch k {
	case FeeRedemptionMax:
		return "redemption_max"
	case FeeRedemptionMin:
		return "redemption_min"
	case FeeReward:
		return "reward"
	default:
		return "unknown"
	}
}
