package ethereum

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/whalewatch/internal/enrichment"
	"github.com/gabapcia/whalewatch/internal/pkg/types"
	"github.com/gabapcia/whalewatch/internal/pkg/validator"
)

// TransactionResponse is the subset of eth_getTransactionByHash we read.
type TransactionResponse struct {
	Hash        string    `json:"hash"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Value       types.Hex `json:"value"`
	Gas         types.Hex `json:"gas"`
	Nonce       types.Hex `json:"nonce"`
	Input       string    `json:"input"`
	BlockNumber types.Hex `json:"blockNumber"`
}

// toDetail converts the node response into the enrichment representation.
// Quantities are rendered in base 10.
func (t TransactionResponse) toDetail() enrichment.TransactionDetail {
	return enrichment.TransactionDetail{
		From:        t.From,
		To:          t.To,
		Value:       decimalString(t.Value),
		Gas:         decimalString(t.Gas),
		Nonce:       decimalString(t.Nonce),
		Input:       t.Input,
		BlockNumber: decimalString(t.BlockNumber),
	}
}

func decimalString(h types.Hex) string {
	v := h.Big()
	if v == nil {
		return ""
	}
	return v.String()
}

// FetchTransactionDetail loads a transaction by hash. Pending transactions
// come back without a block number.
func (c *client) FetchTransactionDetail(ctx context.Context, txHash string) (enrichment.TransactionDetail, error) {
	if err := validator.Var(txHash, "required,tx_hash"); err != nil {
		return enrichment.TransactionDetail{}, err
	}

	resp, err := c.conn.Fetch(ctx, "eth_getTransactionByHash", txHash)
	if err != nil {
		return enrichment.TransactionDetail{}, err
	}

	if len(resp) == 0 || string(resp) == "null" {
		return enrichment.TransactionDetail{}, fmt.Errorf("%w: %s", enrichment.ErrTransactionNotFound, txHash)
	}

	var tx TransactionResponse
	if err := json.Unmarshal(resp, &tx); err != nil {
		return enrichment.TransactionDetail{}, err
	}

	return tx.toDetail(), nil
}
