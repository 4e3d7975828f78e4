package types

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Action-Committee/Trinity/common"
	"github.com/Action-Committee/Trinity/params"
)

func testHeader(algo params.Algo) *Header {
	return &Header{
		Version:    params.VersionForAlgo(algo),
		ParentHash: common.HexToHash("0x00000c7a4ceed31ac0a8bd8e2b0e287f4f51e0431ca76ec20fa8e1c39d255a42"),
		MerkleRoot: common.HexToHash("0x4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"),
		Time:       1414776313,
		Bits:       0x1d00ffff,
		Nonce:      2083236893,
	}
}

func TestHeaderSerialize(t *testing.T) {
	h := testHeader(params.AlgoSHA256D)
	buf := h.Serialize()
	require.Len(t, buf, HeaderSize)

	require.Equal(t, uint32(h.Version), binary.LittleEndian.Uint32(buf[0:4]))
	require.Equal(t, h.Time, binary.LittleEndian.Uint32(buf[68:72]))
	require.Equal(t, h.Bits, binary.LittleEndian.Uint32(buf[72:76]))
	require.Equal(t, h.Nonce, binary.LittleEndian.Uint32(buf[76:80]))

	// Hashes are serialized in reversed byte order.
	require.Equal(t, h.ParentHash[31], buf[4])
	require.Equal(t, h.ParentHash[0], buf[35])
	require.Equal(t, h.MerkleRoot[31], buf[36])
}

func TestHeaderHash(t *testing.T) {
	h := testHeader(params.AlgoSHA256D)

	first := sha256.Sum256(h.Serialize())
	second := sha256.Sum256(first[:])
	want := common.BytesToHash(common.ReverseBytes(second[:]))
	require.Equal(t, want, h.Hash())

	// The hash covers every header field.
	h2 := testHeader(params.AlgoSHA256D)
	h2.Nonce++
	require.NotEqual(t, h.Hash(), h2.Hash())
}

func TestPowHashPerAlgo(t *testing.T) {
	sha := testHeader(params.AlgoSHA256D)
	scrypt := testHeader(params.AlgoScrypt)
	keccak := testHeader(params.AlgoKeccak)

	// sha256d blocks use the block hash itself as proof.
	require.Equal(t, sha.Hash(), sha.PowHash())

	// The other algorithms hash the same bytes differently. The headers
	// differ in their version word, so compare against the sha256d hash of
	// the same serialization instead of across headers.
	require.NotEqual(t, scrypt.Hash(), scrypt.PowHash())
	require.NotEqual(t, keccak.Hash(), keccak.PowHash())
	require.NotEqual(t, scrypt.PowHash(), keccak.PowHash())

	// Deterministic.
	require.Equal(t, scrypt.PowHash(), testHeader(params.AlgoScrypt).PowHash())
	require.Equal(t, keccak.PowHash(), testHeader(params.AlgoKeccak).PowHash())
}

func TestNewBlockNode(t *testing.T) {
	h := testHeader(params.AlgoScrypt)
	n := NewBlockNode(h, 42)

	require.Equal(t, h.Hash(), n.Hash)
	require.Equal(t, h.ParentHash, n.ParentHash)
	require.Equal(t, int32(42), n.Height)
	require.Equal(t, int64(h.Time), n.Time)
	require.Equal(t, h.Bits, n.Bits)
	require.Equal(t, params.AlgoScrypt, n.Algo())
}
