// Package consensus defines the interfaces between the chain index and the
// proof-of-work engines.
package consensus

import (
	"github.com/Action-Committee/Trinity/core/types"
	"github.com/Action-Committee/Trinity/params"
)

// ChainReader gives an engine read access to the header ancestry it
// retargets over. Implementations must present a consistent snapshot for
// the duration of a call; the engine itself never mutates the chain.
type ChainReader interface {
	// Config retrieves the chain's consensus parameters.
	Config() *params.ChainConfig

	// Parent returns the predecessor of a node, or nil for genesis.
	Parent(node *types.BlockNode) *types.BlockNode

	// LastNodeForAlgo returns the nearest ancestor of node, inclusive,
	// mined with the given algorithm, or nil when none exists.
	LastNodeForAlgo(node *types.BlockNode, algo params.Algo) *types.BlockNode
}

// Engine is the algorithm-agnostic face of a proof-of-work engine.
type Engine interface {
	// NextWorkRequired computes the compact difficulty a new block must
	// carry, given the current chain tip.
	NextWorkRequired(chain ChainReader, parent *types.BlockNode, header *types.Header) uint32

	// VerifyHeader checks a header's difficulty bits against the retarget
	// rules and its proof-of-work hash against the claimed target.
	VerifyHeader(chain ChainReader, parent *types.BlockNode, header *types.Header) error
}
