package host_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/broadcast/core/host"
	"github.com/dmitrymomot/broadcast/core/receiver"
)

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	derived := "com.example.app" + receiver.NotExportedPermissionSuffix
	h := host.NewFromConfig(host.Config{
		PackageName:         "com.example.app",
		APILevel:            26,
		ManifestPermissions: []string{derived},
	})
	defer h.Close()

	assert.Equal(t, "com.example.app", h.PackageName())
	assert.Equal(t, 26, h.APILevel())
	assert.True(t, h.HasSelfPermission(context.Background(), derived))
}
