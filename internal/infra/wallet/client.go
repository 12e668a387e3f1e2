package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dogecoinfoundation/doge-prize/internal/pkg/config"
	"github.com/dogecoinfoundation/doge-prize/internal/pkg/errs"
)

// TransactionResult is what the node returns for a broadcast send. It is
// ephemeral; only the txid is persisted, and only via the audit log.
type TransactionResult struct {
	TxID   string  `json:"txid"`
	Amount float64 `json:"amount,omitempty"`
	Fee    float64 `json:"fee,omitempty"`
	Change float64 `json:"change,omitempty"`
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// Client talks JSON-RPC 1.0 to a dogecoind node. Every call carries a
// bounded timeout; a timed-out send may still have broadcast, so callers
// must not retry sends.
type Client struct {
	url      string
	user     string
	password string
	http     *http.Client
}

func NewClient(cfg config.DogecoinConfig) *Client {
	return &Client{
		url:      cfg.URL(),
		user:     cfg.User,
		password: cfg.Password,
		http:     &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) call(ctx context.Context, method string, params []any, result any) error {
	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "1.0",
		ID:      time.Now().UnixNano(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode rpc request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build rpc request")
	}
	req.SetBasicAuth(c.user, c.password)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "dogecoin rpc unreachable")
	}
	defer resp.Body.Close()

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return errs.Wrap(err, fmt.Sprintf("failed to decode rpc response (http %d)", resp.StatusCode))
	}
	if rpcResp.Error != nil {
		return errs.New(fmt.Sprintf("dogecoin rpc: %s", rpcResp.Error.Message))
	}
	if result != nil {
		if err := json.Unmarshal(rpcResp.Result, result); err != nil {
			return errs.Wrap(err, "failed to decode rpc result")
		}
	}
	return nil
}

// Send broadcasts a payment. Irreversible once accepted by the node.
func (c *Client) Send(ctx context.Context, address string, amountDoge float64) (*TransactionResult, error) {
	var txid string
	if err := c.call(ctx, "sendtoaddress", []any{address, amountDoge}, &txid); err != nil {
		return nil, errs.Wrap(err, "send failed")
	}
	return &TransactionResult{TxID: txid}, nil
}

// Balance returns the wallet balance in DOGE at the given confirmation depth.
func (c *Client) Balance(ctx context.Context, minConfirmations int) (float64, error) {
	var balance float64
	if err := c.call(ctx, "getbalance", []any{"*", minConfirmations}, &balance); err != nil {
		return 0, err
	}
	return balance, nil
}

// Addresses lists the wallet's receiving addresses.
func (c *Client) Addresses(ctx context.Context) ([]string, error) {
	var addresses []string
	if err := c.call(ctx, "getaddressesbyaccount", []any{""}, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}
