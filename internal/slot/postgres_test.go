package slot_test

import (
	"context"
	"os/exec"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"taskboard/internal/slot"
)

// dockerAvailable reports whether the Docker daemon is reachable;
// testcontainers panics instead of erroring when it is not.
func dockerAvailable() bool {
	return exec.Command("docker", "info").Run() == nil
}

func TestPostgresSlot(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	if !dockerAvailable() {
		t.Skip("Docker not available, skipping postgres integration test")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("taskboard"),
		postgres.WithUsername("taskboard"),
		postgres.WithPassword("taskboard"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Skipf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}

	s, err := slot.Open(ctx, slot.Options{Backend: slot.BackendPostgres, DSN: dsn})
	if err != nil {
		t.Fatalf("open postgres slot: %v", err)
	}
	defer s.Close()

	exerciseSlot(t, s)
}
