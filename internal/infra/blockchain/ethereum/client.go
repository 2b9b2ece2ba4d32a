// Package ethereum reads transaction detail from Ethereum-compatible nodes
// over JSON-RPC. It backs enrichment.TransactionFetcher for webhook payloads
// that only carry a transaction hash.
package ethereum

import (
	"github.com/gabapcia/whalewatch/internal/enrichment"
	"github.com/gabapcia/whalewatch/internal/pkg/transport/jsonrpc"
)

// client implements enrichment.TransactionFetcher for EVM networks.
type client struct {
	conn jsonrpc.Client // Underlying JSON-RPC client used to interact with the node
}

var _ enrichment.TransactionFetcher = (*client)(nil)

// NewClient creates a new Ethereum client using the provided JSON-RPC connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
