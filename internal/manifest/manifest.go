package manifest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mintpadhq/mintpad/internal/config"
)

// WellKnownPath is where host platforms discover the mini-app descriptor.
const WellKnownPath = "/.well-known/mintpad.json"

// Manifest is the static mini-app descriptor. Pure configuration: host
// platforms read it for discovery, nothing in the mint flow depends on it.
type Manifest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IconURL     string `json:"iconUrl"`
	HomeURL     string `json:"homeUrl"`
	WebhookURL  string `json:"webhookUrl,omitempty"`
	Category    string `json:"category"`
}

// ForCollection builds the manifest for a collection.
func ForCollection(col config.Collection) Manifest {
	return Manifest{
		Name:        col.Name,
		Description: col.Description,
		IconURL:     "https://mintpad.example/icon.png",
		HomeURL:     "https://mintpad.example",
		WebhookURL:  "https://mintpad.example/api/webhook",
		Category:    "art-creativity",
	}
}

// JSON renders the manifest as indented JSON.
func (m Manifest) JSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// Router returns an HTTP router serving the manifest at the well-known path.
func Router(m Manifest) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get(WellKnownPath, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		data, err := m.JSON()
		if err != nil {
			http.Error(w, "manifest encoding failed", http.StatusInternalServerError)
			return
		}
		w.Write(data)
	})
	return r
}
