package types

import (
	"fmt"

	sdk "github.com/plexfi/plexlock/types"
)

// FeeDenominator scales every fee percentage: a value of 10_000 is 1%.
const FeeDenominator = 1000000

const (
	// DefaultEpochDuration is two weeks, matching the underlying locker's
	// reward cadence.
	DefaultEpochDuration int64 = 14 * 24 * 3600

	// DefaultMaxRedemptionTime is the longest possible wait until a fresh
	// lock entry expires: eight full epochs.
	DefaultMaxRedemptionTime int64 = 8 * DefaultEpochDuration

	DefaultRedemptionFeeMin uint64 = 30000 // 3%
	DefaultRedemptionFeeMax uint64 = 50000 // 5%
	DefaultRewardFeePercent uint64 = 0

	DefaultBaseSymbol    sdk.Symbol = "cvx"
	DefaultReceiptSymbol sdk.Symbol = "plcvx"

	DefaultDelegationSpace = "cvx.eth"
)

// Params defines the engine's configuration. Fee values are adjustable by
// the authority at runtime; the rest is fixed at genesis.
type Params struct {
	BaseSymbol        sdk.Symbol     `json:"base_symbol"`
	ReceiptSymbol     sdk.Symbol     `json:"receipt_symbol"`
	EpochDuration     int64          `json:"epoch_duration"`
	MaxRedemptionTime int64          `json:"max_redemption_time"`
	RedemptionFeeMin  uint64         `json:"redemption_fee_min"`
	RedemptionFeeMax  uint64         `json:"redemption_fee_max"`
	RewardFeePercent  uint64         `json:"reward_fee_percent"`
	DelegationSpace   string         `json:"delegation_space"`
	Authority         sdk.AccAddress `json:"authority"`
}

func DefaultParams() Params {
	return Params{
		BaseSymbol:        DefaultBaseSymbol,
		ReceiptSymbol:     DefaultReceiptSymbol,
		EpochDuration:     DefaultEpochDuration,
		MaxRedemptionTime: DefaultMaxRedemptionTime,
		RedemptionFeeMin:  DefaultRedemptionFeeMin,
		RedemptionFeeMax:  DefaultRedemptionFeeMax,
		RewardFeePercent:  DefaultRewardFeePercent,
		DelegationSpace:   DefaultDelegationSpace,
	}
}

func (p Params) Validate() error {
	if !p.BaseSymbol.IsValidTokenName() {
		return fmt.Errorf("invalid base symbol: %q", p.BaseSymbol)
	}
	if !p.ReceiptSymbol.IsValidTokenName() {
		return fmt.Errorf("invalid receipt symbol: %q", p.ReceiptSymbol)
	}
	if p.BaseSymbol == p.ReceiptSymbol {
		return fmt.Errorf("base and receipt symbol must differ")
	}
	if p.EpochDuration <= 0 {
		return fmt.Errorf("epoch duration must be positive, got %d", p.EpochDuration)
	}
	if p.MaxRedemptionTime < p.EpochDuration {
		return fmt.Errorf("max redemption time %d shorter than one epoch", p.MaxRedemptionTime)
	}
	if p.RedemptionFeeMax > FeeDenominator || p.RewardFeePercent > FeeDenominator {
		return fmt.Errorf("fee exceeds denominator")
	}
	if p.RedemptionFeeMin > p.RedemptionFeeMax {
		return fmt.Errorf("redemption fee min %d above max %d", p.RedemptionFeeMin, p.RedemptionFeeMax)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf(`Params:
  Base Symbol:         %s
  Receipt Symbol:      %s
  Epoch Duration:      %d
  Max Redemption Time: %d
  Redemption Fee Min:  %d
  Redemption Fee Max:  %d
  Reward Fee Percent:  %d
  Delegation Space:    %s
  Authority:           %s`,
		p.BaseSymbol, p.ReceiptSymbol, p.EpochDuration, p.MaxRedemptionTime,
		p.RedemptionFeeMin, p.RedemptionFeeMax, p.RewardFeePercent,
		p.DelegationSpace, p.Authority)
}
