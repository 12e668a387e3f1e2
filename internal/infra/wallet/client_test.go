//go:build unit

package wallet_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/dogecoinfoundation/doge-prize/internal/infra/wallet"
	"github.com/dogecoinfoundation/doge-prize/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcCall struct {
	Method string `json:"method"`
	Params []any  `json:"params"`
}

func newTestNode(t *testing.T, handler func(call rpcCall) (any, *map[string]any)) (*wallet.Client, *[]rpcCall) {
	t.Helper()

	var calls []rpcCall
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok, "missing basic auth")
		assert.Equal(t, "rpcuser", user)
		assert.Equal(t, "rpcpass", pass)

		var call rpcCall
		require.NoError(t, json.NewDecoder(r.Body).Decode(&call))
		calls = append(calls, call)

		result, rpcErr := handler(call)
		resp := map[string]any{"result": result, "error": nil}
		if rpcErr != nil {
			resp["result"] = nil
			resp["error"] = *rpcErr
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(ts.Close)

	parsed, err := url.Parse(ts.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(parsed.Port())
	require.NoError(t, err)

	client := wallet.NewClient(config.DogecoinConfig{
		Host:     parsed.Hostname(),
		Port:     port,
		User:     "rpcuser",
		Password: "rpcpass",
		Timeout:  5 * time.Second,
	})
	return client, &calls
}

func TestClientSend(t *testing.T) {
	t.Run("broadcasts and returns the txid", func(t *testing.T) {
		client, calls := newTestNode(t, func(call rpcCall) (any, *map[string]any) {
			return "deadbeefcafe", nil
		})

		result, err := client.Send(context.Background(), "DAddr123", 42.5)
		require.NoError(t, err)

		assert.Equal(t, "deadbeefcafe", result.TxID)
		require.Len(t, *calls, 1)
		assert.Equal(t, "sendtoaddress", (*calls)[0].Method)
		assert.Equal(t, "DAddr123", (*calls)[0].Params[0])
		assert.Equal(t, 42.5, (*calls)[0].Params[1])
	})

	t.Run("surfaces node errors", func(t *testing.T) {
		client, _ := newTestNode(t, func(call rpcCall) (any, *map[string]any) {
			return nil, &map[string]any{"code": -6, "message": "Insufficient funds"}
		})

		_, err := client.Send(context.Background(), "DAddr123", 42.5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Insufficient funds")
	})

	t.Run("unreachable node fails fast", func(t *testing.T) {
		client := wallet.NewClient(config.DogecoinConfig{
			Host:     "127.0.0.1",
			Port:     1, // nothing listens here
			User:     "rpcuser",
			Password: "rpcpass",
			Timeout:  time.Second,
		})

		_, err := client.Send(context.Background(), "DAddr123", 1)
		require.Error(t, err)
	})
}

func TestClientBalance(t *testing.T) {
	client, calls := newTestNode(t, func(call rpcCall) (any, *map[string]any) {
		return 123.456, nil
	})

	balance, err := client.Balance(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 123.456, balance)
	require.Len(t, *calls, 1)
	assert.Equal(t, "getbalance", (*calls)[0].Method)
	assert.Equal(t, "*", (*calls)[0].Params[0])
	assert.Equal(t, float64(1), (*calls)[0].Params[1])
}

func TestClientAddresses(t *testing.T) {
	client, _ := newTestNode(t, func(call rpcCall) (any, *map[string]any) {
		return []string{"DAddr1", "DAddr2"}, nil
	})

	addresses, err := client.Addresses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"DAddr1", "DAddr2"}, addresses)
}
