// Package codec wraps go-amino behind the narrow surface the rest of the
// repo uses.
package codec

import (
	amino "github.com/tendermint/go-amino"
)

type Codec = amino.Codec

func New() *Codec {
	return amino.NewCodec()
}
