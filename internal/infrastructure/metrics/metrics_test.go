package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegister_Idempotent(t *testing.T) {
	Register()
	Register()

	WebhookDeliveriesTotal.WithLabelValues("accepted", "verified").Inc()
	if got := testutil.ToFloat64(WebhookDeliveriesTotal.WithLabelValues("accepted", "verified")); got < 1 {
		t.Fatalf("expected counter to be incremented, got %v", got)
	}
}
