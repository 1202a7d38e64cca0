package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testToken  = "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"
	testWallet = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

// rpcStub serves canned JSON-RPC responses and records requests.
func rpcStub(t *testing.T, handler func(method string, params []interface{}) (string, *rpcError)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		result, rpcErr := handler(req.Method, req.Params)
		resp := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
		if rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestChainID(t *testing.T) {
	srv := rpcStub(t, func(method string, params []interface{}) (string, *rpcError) {
		require.Equal(t, "eth_chainId", method)
		return "0x2105", nil // 8453
	})
	defer srv.Close()

	id, err := NewEVMClient(srv.URL).ChainID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(8453), id)
}

func TestGetTokenBalance(t *testing.T) {
	var gotData string
	srv := rpcStub(t, func(method string, params []interface{}) (string, *rpcError) {
		require.Equal(t, "eth_call", method)
		call := params[0].(map[string]interface{})
		gotData = call["data"].(string)
		// 25 USDC in 6-decimal units.
		return fmt.Sprintf("0x%064x", 25_000_000), nil
	})
	defer srv.Close()

	bal, err := NewEVMClient(srv.URL).GetTokenBalance(context.Background(),
		common.HexToAddress(testToken), common.HexToAddress(testWallet), 6)
	require.NoError(t, err)

	assert.Equal(t, "25000000", bal.Raw.String())
	assert.Equal(t, 6, bal.Decimals)
	assert.True(t, strings.HasPrefix(bal.Formatted, "25.000000"))

	// balanceOf(address) selector plus the 32-byte padded wallet address.
	assert.True(t, strings.HasPrefix(gotData, "0x70a08231"), "data: %s", gotData)
	assert.True(t, strings.HasSuffix(strings.ToLower(gotData),
		strings.ToLower(strings.TrimPrefix(testWallet, "0x"))), "data: %s", gotData)
}

func TestTokenDecimals(t *testing.T) {
	srv := rpcStub(t, func(method string, params []interface{}) (string, *rpcError) {
		call := params[0].(map[string]interface{})
		// decimals() selector.
		require.Equal(t, "0x313ce567", call["data"])
		return fmt.Sprintf("0x%064x", 6), nil
	})
	defer srv.Close()

	d, err := NewEVMClient(srv.URL).TokenDecimals(context.Background(), common.HexToAddress(testToken))
	require.NoError(t, err)
	assert.Equal(t, 6, d)
}

func TestCallRPCError(t *testing.T) {
	srv := rpcStub(t, func(method string, params []interface{}) (string, *rpcError) {
		return "", &rpcError{Code: -32000, Message: "execution reverted"}
	})
	defer srv.Close()

	_, err := NewEVMClient(srv.URL).ChainID(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "execution reverted")
}

func TestCallHonorsContext(t *testing.T) {
	srv := rpcStub(t, func(method string, params []interface{}) (string, *rpcError) {
		return "0x1", nil
	})
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewEVMClient(srv.URL).ChainID(ctx)
	assert.Error(t, err)
}

func TestFormatToken(t *testing.T) {
	tests := []struct {
		raw      int64
		decimals int
		want     string
	}{
		{10_000_000, 6, "10.000000"},
		{9_999_999, 6, "9.999999"},
		{42, 0, "42"},
	}
	for _, tc := range tests {
		got := formatToken(big.NewInt(tc.raw), tc.decimals)
		assert.Equal(t, tc.want, got)
	}
}

func TestSelector(t *testing.T) {
	assert.Equal(t, "0x70a08231", selector("balanceOf(address)"))
	assert.Equal(t, "0x313ce567", selector("decimals()"))
}
