package torii

// Networks with well-known Torii endpoints.
const (
	NetworkLocal   = "local"
	NetworkTestnet = "testnet"
	NetworkMainnet = "mainnet"
)

// Status is the peer's view of itself and the network.
type Status struct {
	Peers                uint64 `json:"peers"`
	Blocks               uint64 `json:"blocks"`
	TransactionsAccepted uint64 `json:"txs_accepted"`
	TransactionsRejected uint64 `json:"txs_rejected"`
	UptimeSeconds        uint64 `json:"uptime"`
	ViewChanges          uint64 `json:"view_changes"`
}

// PendingTransaction is a queued transaction as reported by the peer.
type PendingTransaction struct {
	Hash           string `json:"hash"`
	AccountID      string `json:"account_id"`
	CreationTimeMs int64  `json:"creation_time"`
	Instructions   int    `json:"instructions"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type submitResponse struct {
	Hash string `json:"hash,omitempty"`
}

type pendingTransactionsResponse struct {
	Transactions []PendingTransaction `json:"transactions"`
}

type errorResponse struct {
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}
