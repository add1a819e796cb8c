// Package blockchain wraps the chain RPC endpoint behind a Verifier
// interface so the payment flow never depends on a concrete chain client.
package blockchain

import (
	"context"
	"fmt"
	"log"
	"sync"

	"uniwise/internal/config"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Verifier checks that a crypto payment really happened on chain.
type Verifier interface {
	VerifyTransaction(ctx context.Context, txHash string, expectedAmount float64, buyerWalletID, sellerWalletID string) (bool, error)
}

type ethVerifier struct {
	rpcURL string

	dialOnce sync.Once
	client   *ethclient.Client
	dialErr  error
}

// NewVerifier builds a verifier talking to ETHEREUM_RPC_URL. The connection
// is established lazily on first use.
func NewVerifier() Verifier {
	return &ethVerifier{rpcURL: config.GetEnv("ETHEREUM_RPC_URL", "")}
}

func (v *ethVerifier) conn() (*ethclient.Client, error) {
	v.dialOnce.Do(func() {
		v.client, v.dialErr = ethclient.Dial(v.rpcURL)
	})
	if v.dialErr != nil {
		return nil, fmt.Errorf("blockchain rpc unreachable: %w", v.dialErr)
	}
	return v.client, nil
}

// VerifyTransaction fetches the transaction receipt and reports success.
//
// This is deliberately a trust-the-hash check for the pilot deployment: the
// amount, sender and recipient are accepted as-is once a successful receipt
// exists. A production verifier must additionally match expectedAmount and
// the two wallet identifiers against the receipt before returning true.
func (v *ethVerifier) VerifyTransaction(ctx context.Context, txHash string, expectedAmount float64, buyerWalletID, sellerWalletID string) (bool, error) {
	client, err := v.conn()
	if err != nil {
		return false, err
	}

	receipt, err := client.TransactionReceipt(ctx, common.HexToHash(txHash))
	if err != nil {
		log.Printf("blockchain verification error for %s: %v", txHash, err)
		return false, nil
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return false, nil
	}
	return true, nil
}
