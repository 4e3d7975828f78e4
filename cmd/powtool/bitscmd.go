package main

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
	"gopkg.in/urfave/cli.v1"

	"github.com/Action-Committee/Trinity/common"
	"github.com/Action-Committee/Trinity/consensus/trinitypow"
	"github.com/Action-Committee/Trinity/core"
	"github.com/Action-Committee/Trinity/core/types"
	"github.com/Action-Committee/Trinity/params"
)

var (
	networkFlag = cli.StringFlag{
		Name:  "network",
		Usage: "Chain configuration to use (mainnet, testnet, regtest)",
		Value: "mainnet",
	}
	algoFlag = cli.StringFlag{
		Name:  "algo",
		Usage: "Proof-of-work algorithm (sha256d, scrypt, keccak)",
		Value: "sha256d",
	}

	decodeCommand = cli.Command{
		Name:      "decode",
		Usage:     "Expands compact difficulty bits into a 256-bit target",
		ArgsUsage: "<bits>",
		Action:    decodeBits,
	}
	encodeCommand = cli.Command{
		Name:      "encode",
		Usage:     "Packs a hex target into compact difficulty bits",
		ArgsUsage: "<target-hex>",
		Action:    encodeTarget,
	}
	workCommand = cli.Command{
		Name:      "work",
		Usage:     "Computes the work and weighted proof value of a block",
		ArgsUsage: "<bits>",
		Flags:     []cli.Flag{networkFlag, algoFlag},
		Action:    blockWork,
	}
	nextbitsCommand = cli.Command{
		Name:  "nextbits",
		Usage: "Simulates a retarget over a synthetic single-algorithm chain",
		Flags: []cli.Flag{
			networkFlag,
			algoFlag,
			cli.IntFlag{
				Name:  "blocks",
				Usage: "Number of blocks to simulate",
				Value: 32,
			},
			cli.Int64Flag{
				Name:  "spacing",
				Usage: "Seconds between simulated blocks",
				Value: 150,
			},
		},
		Action: nextBits,
	}
)

func decodeBits(ctx *cli.Context) error {
	bits, err := bitsArg(ctx)
	if err != nil {
		return err
	}
	target, negative, overflow := trinitypow.CompactToTarget(bits)
	fmt.Printf("bits:       %08x\n", bits)
	fmt.Printf("target:     %x\n", target.Bytes32())
	fmt.Printf("negative:   %v\n", negative)
	fmt.Printf("overflow:   %v\n", overflow)
	if !negative && !overflow {
		fmt.Printf("difficulty: %.8f\n", trinitypow.Difficulty(bits))
	}
	return nil
}

func encodeTarget(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("need a hex target as argument")
	}
	raw := common.FromHex(ctx.Args().First())
	if raw == nil || len(raw) > 32 {
		return fmt.Errorf("invalid target %q", ctx.Args().First())
	}
	target := new(uint256.Int).SetBytes(raw)
	bits := trinitypow.TargetToCompact(target)
	rounded, _, _ := trinitypow.CompactToTarget(bits)
	fmt.Printf("bits:    %08x\n", bits)
	fmt.Printf("rounded: %x\n", rounded.Bytes32())
	return nil
}

func blockWork(ctx *cli.Context) error {
	bits, err := bitsArg(ctx)
	if err != nil {
		return err
	}
	config, err := chainConfig(ctx)
	if err != nil {
		return err
	}
	algo, err := params.ParseAlgo(ctx.String(algoFlag.Name))
	if err != nil {
		return err
	}
	fmt.Printf("work:  %s\n", trinitypow.CalcBlockWork(bits))
	fmt.Printf("proof: %s (factor %d)\n",
		trinitypow.CalcBlockProof(config, bits, algo), config.AlgoWorkFactor(algo))
	return nil
}

func nextBits(ctx *cli.Context) error {
	config, err := chainConfig(ctx)
	if err != nil {
		return err
	}
	algo, err := params.ParseAlgo(ctx.String(algoFlag.Name))
	if err != nil {
		return err
	}
	blocks := ctx.Int("blocks")
	spacing := ctx.Int64("spacing")

	index := core.NewBlockIndex(config)
	bits := trinitypow.TargetToCompact(config.PowLimit(algo))

	var tip *types.BlockNode
	for i := 0; i < blocks; i++ {
		node := &types.BlockNode{
			Hash:    sequenceHash(uint64(i) + 1),
			Height:  int32(i),
			Version: params.VersionForAlgo(algo),
			Time:    1000000 + int64(i)*spacing,
			Bits:    bits,
		}
		if tip != nil {
			node.ParentHash = tip.Hash
		}
		index.Insert(node)
		tip = node

		header := &types.Header{
			Version: params.VersionForAlgo(algo),
			Time:    uint32(1000000 + int64(i+1)*spacing),
			Bits:    bits,
		}
		bits = trinitypow.NextWorkRequired(index, tip, header)
	}
	fmt.Printf("blocks:     %d at %ds spacing\n", blocks, spacing)
	fmt.Printf("next bits:  %08x\n", bits)
	fmt.Printf("difficulty: %.8f\n", trinitypow.Difficulty(bits))
	return nil
}

func bitsArg(ctx *cli.Context) (uint32, error) {
	if ctx.NArg() != 1 {
		return 0, fmt.Errorf("need compact bits as argument")
	}
	arg := strings.TrimPrefix(ctx.Args().First(), "0x")
	bits, err := strconv.ParseUint(arg, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid bits %q: %v", ctx.Args().First(), err)
	}
	return uint32(bits), nil
}

func chainConfig(ctx *cli.Context) (*params.ChainConfig, error) {
	switch name := ctx.String(networkFlag.Name); name {
	case "mainnet":
		return params.MainnetChainConfig, nil
	case "testnet":
		return params.TestnetChainConfig, nil
	case "regtest":
		return params.RegtestChainConfig, nil
	default:
		return nil, fmt.Errorf("unknown network %q", name)
	}
}

func sequenceHash(n uint64) common.Hash {
	var h common.Hash
	binary.BigEndian.PutUint64(h[24:], n)
	return h
}
