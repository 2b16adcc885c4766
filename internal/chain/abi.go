package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// Minimal ABI of the epoch reward contract.
const rewardABIJSON = `[
  {"type":"function","name":"userGenesisClaimStatus","stateMutability":"view",
   "inputs":[{"name":"user","type":"address"}],
   "outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"currentEpoch","stateMutability":"view",
   "inputs":[],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"userClaimStatus","stateMutability":"view",
   "inputs":[{"name":"user","type":"address"},{"name":"epochID","type":"uint256"}],
   "outputs":[{"name":"buffer","type":"uint256"},{"name":"claimStatus","type":"bool"}]},
  {"type":"function","name":"claimReward","stateMutability":"nonpayable",
   "inputs":[],"outputs":[]}
]`

const (
	methodGenesisClaimStatus = "userGenesisClaimStatus"
	methodCurrentEpoch       = "currentEpoch"
	methodClaimStatus        = "userClaimStatus"
	methodClaimReward        = "claimReward"
)

var rewardABI = mustParseABI(rewardABIJSON)

// keccak256("Transfer(address,address,uint256)")
var transferTopic = gethcrypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

func mustParseABI(s string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return parsed
}

// ClaimRewardData returns the calldata of claimReward() (selector 0xb88a802f).
func ClaimRewardData() []byte {
	data, err := rewardABI.Pack(methodClaimReward)
	if err != nil {
		panic(err)
	}
	return data
}

func addressTopic(a common.Address) common.Hash {
	return common.BytesToHash(a.Bytes())
}
