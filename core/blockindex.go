package core

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/Action-Committee/Trinity/common"
	"github.com/Action-Committee/Trinity/core/types"
	"github.com/Action-Committee/Trinity/params"
)

// algoAncestorCacheLimit bounds the memoization cache for per-algorithm
// ancestor lookups. Entries are two hashes and an int, so even the full
// cache stays small.
const algoAncestorCacheLimit = 65536

type ancestorKey struct {
	hash common.Hash
	algo params.Algo
}

// BlockIndex is an in-memory arena of accepted block headers, keyed by
// hash. Multiple tips may share ancestors; the index holds each node once
// and resolves predecessor links on demand. It implements
// consensus.ChainReader.
type BlockIndex struct {
	config *params.ChainConfig

	mu    sync.RWMutex
	nodes map[common.Hash]*types.BlockNode

	// algoCache memoizes LastNodeForAlgo results. Ancestry of an indexed
	// node never changes, even across reorgs, so entries stay valid for
	// the life of the index.
	algoCache *lru.Cache
}

// NewBlockIndex creates an empty header index for the given network.
func NewBlockIndex(config *params.ChainConfig) *BlockIndex {
	cache, _ := lru.New(algoAncestorCacheLimit)
	return &BlockIndex{
		config:    config,
		nodes:     make(map[common.Hash]*types.BlockNode),
		algoCache: cache,
	}
}

// Config returns the chain configuration the index was created with.
func (bi *BlockIndex) Config() *params.ChainConfig {
	return bi.config
}

// Insert adds a node to the index. Re-inserting an existing hash replaces
// the record.
func (bi *BlockIndex) Insert(node *types.BlockNode) {
	bi.mu.Lock()
	defer bi.mu.Unlock()
	bi.nodes[node.Hash] = node
}

// NodeByHash returns the indexed node with the given hash, or nil.
func (bi *BlockIndex) NodeByHash(hash common.Hash) *types.BlockNode {
	bi.mu.RLock()
	defer bi.mu.RUnlock()
	return bi.nodes[hash]
}

// Len returns the number of indexed nodes.
func (bi *BlockIndex) Len() int {
	bi.mu.RLock()
	defer bi.mu.RUnlock()
	return len(bi.nodes)
}

// Parent returns the predecessor of a node, or nil for the genesis block
// or a node whose parent is not indexed.
func (bi *BlockIndex) Parent(node *types.BlockNode) *types.BlockNode {
	if node == nil || node.ParentHash.IsZero() {
		return nil
	}
	return bi.NodeByHash(node.ParentHash)
}

// LastNodeForAlgo walks backward from node, inclusive, and returns the
// first block mined with the given algorithm, or nil when the chain runs
// out. The worst case is a full scan of the branch; results are memoized
// per (hash, algo).
func (bi *BlockIndex) LastNodeForAlgo(node *types.BlockNode, algo params.Algo) *types.BlockNode {
	if node == nil {
		return nil
	}
	key := ancestorKey{node.Hash, algo}
	if hit, ok := bi.algoCache.Get(key); ok {
		if h := hit.(common.Hash); !h.IsZero() {
			return bi.NodeByHash(h)
		}
		return nil
	}
	found := node
	for found != nil && found.Algo() != algo {
		found = bi.Parent(found)
	}
	if found != nil {
		bi.algoCache.Add(key, found.Hash)
	} else {
		bi.algoCache.Add(key, common.Hash{})
	}
	return found
}
