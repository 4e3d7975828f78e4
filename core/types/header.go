package types

import (
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/scrypt"
	"golang.org/x/crypto/sha3"

	"github.com/Action-Committee/Trinity/common"
	"github.com/Action-Committee/Trinity/params"
)

// HeaderSize is the serialized size of a block header in bytes.
const HeaderSize = 80

// Header is the 80 byte block header shared by all three proof-of-work
// algorithms. The algorithm id rides in the version word; everything else
// matches the classic layout.
type Header struct {
	Version    int32
	ParentHash common.Hash
	MerkleRoot common.Hash
	Time       uint32
	Bits       uint32
	Nonce      uint32
}

// Algo returns the proof-of-work algorithm encoded in the version word.
func (h *Header) Algo() params.Algo {
	return params.AlgoFromVersion(h.Version)
}

// Serialize encodes the header into its 80 byte wire form. Integers are
// little-endian and hashes are written in reversed (wire) byte order.
func (h *Header) Serialize() []byte {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(h.Version))
	copy(buf[4:36], common.ReverseBytes(h.ParentHash.Bytes()))
	copy(buf[36:68], common.ReverseBytes(h.MerkleRoot.Bytes()))
	binary.LittleEndian.PutUint32(buf[68:72], h.Time)
	binary.LittleEndian.PutUint32(buf[72:76], h.Bits)
	binary.LittleEndian.PutUint32(buf[76:80], h.Nonce)
	return buf
}

// Hash returns the double-sha256 block hash, byte-reversed into big-endian
// order so it can be compared against targets directly.
func (h *Header) Hash() common.Hash {
	first := sha256.Sum256(h.Serialize())
	second := sha256.Sum256(first[:])
	return common.BytesToHash(common.ReverseBytes(second[:]))
}

// PowHash returns the hash checked against the difficulty target, computed
// with the algorithm the header declares.
func (h *Header) PowHash() common.Hash {
	data := h.Serialize()
	switch h.Algo() {
	case params.AlgoScrypt:
		// scrypt-1024 over the raw header, salted with itself, as in the
		// scrypt coin family. Parameters are fixed so Key cannot fail.
		digest, _ := scrypt.Key(data, data, 1024, 1, 1, 32)
		return common.BytesToHash(common.ReverseBytes(digest))
	case params.AlgoKeccak:
		keccak := sha3.NewLegacyKeccak256()
		keccak.Write(data)
		return common.BytesToHash(common.ReverseBytes(keccak.Sum(nil)))
	default:
		return h.Hash()
	}
}

// BlockNode is the chain-index record of an accepted header: the fields the
// consensus engine reads plus the key of its predecessor. Predecessors are
// held as hashes rather than pointers so that competing tips can share
// ancestors without ownership cycles.
type BlockNode struct {
	Hash       common.Hash
	ParentHash common.Hash
	Height     int32
	Version    int32
	Time       int64
	Bits       uint32
}

// NewBlockNode builds the index record for a header accepted at the given
// height.
func NewBlockNode(header *Header, height int32) *BlockNode {
	return &BlockNode{
		Hash:       header.Hash(),
		ParentHash: header.ParentHash,
		Height:     height,
		Version:    header.Version,
		Time:       int64(header.Time),
		Bits:       header.Bits,
	}
}

// Algo returns the proof-of-work algorithm of the indexed block.
func (n *BlockNode) Algo() params.Algo {
	return params.AlgoFromVersion(n.Version)
}
