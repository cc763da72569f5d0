package notify_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vecino-backend-go/internal/models"
	"vecino-backend-go/internal/notify"
)

func TestNewHTTPNotifierDisabled(t *testing.T) {
	assert.Nil(t, notify.NewHTTPNotifier("", zap.NewNop()))
}

func TestNotifyAdminPostsPayload(t *testing.T) {
	received := make(chan models.AdminNotification, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload models.AdminNotification
		if err := json.NewDecoder(r.Body).Decode(&payload); err == nil {
			received <- payload
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	n := notify.NewHTTPNotifier(srv.URL, zap.NewNop())
	require.NotNil(t, n)
	n.NotifyAdmin("Nuevo negocio registrado", "detalle", map[string]string{"businessId": "uid-1"})

	select {
	case payload := <-received:
		assert.Equal(t, "Nuevo negocio registrado", payload.Subject)
		assert.Equal(t, "uid-1", payload.Meta["businessId"])
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never delivered")
	}
}

func TestNotifyAdminSwallowsDeliveryFailure(t *testing.T) {
	n := notify.NewHTTPNotifier("http://127.0.0.1:1", zap.NewNop())
	require.NotNil(t, n)
	// Must not panic or block the caller.
	n.NotifyAdmin("asunto", "cuerpo", nil)
}
