package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/mintpadhq/mintpad/internal/chain"
)

type stubDecimals struct {
	d   int
	err error
}

func (s stubDecimals) TokenDecimals(ctx context.Context, tokenAddr common.Address) (int, error) {
	return s.d, s.err
}

func TestCheckTokenDecimals(t *testing.T) {
	reg := chain.NewRegistry()
	base, err := reg.GetByName("base")
	assert.NoError(t, err)

	tests := []struct {
		name string
		src  stubDecimals
		warn bool
	}{
		{"agrees", stubDecimals{d: base.USDCDecimals}, false},
		{"disagrees", stubDecimals{d: 18}, true},
		{"unreachable", stubDecimals{err: errors.New("dial tcp: connection refused")}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			warn := checkTokenDecimals(context.Background(), tc.src, base)
			if tc.warn {
				assert.Contains(t, warn, "18")
				assert.Contains(t, warn, "6")
			} else {
				assert.Empty(t, warn)
			}
		})
	}
}
