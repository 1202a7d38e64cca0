package manifest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintpadhq/mintpad/internal/config"
)

func testCollection() config.Collection {
	return config.Collection{
		Name:        "Mintpad Genesis",
		Description: "Fixed-price genesis collection, payable in USDC.",
	}
}

func TestForCollection(t *testing.T) {
	m := ForCollection(testCollection())
	assert.Equal(t, "Mintpad Genesis", m.Name)
	assert.NotEmpty(t, m.IconURL)
	assert.NotEmpty(t, m.Category)
}

func TestManifestJSONRoundTrip(t *testing.T) {
	data, err := ForCollection(testCollection()).JSON()
	require.NoError(t, err)

	var got Manifest
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "Mintpad Genesis", got.Name)
}

func TestRouterServesWellKnownPath(t *testing.T) {
	srv := httptest.NewServer(Router(ForCollection(testCollection())))
	defer srv.Close()

	resp, err := http.Get(srv.URL + WellKnownPath)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var got Manifest
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "Mintpad Genesis", got.Name)
}

func TestRouterUnknownPath(t *testing.T) {
	srv := httptest.NewServer(Router(ForCollection(testCollection())))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
