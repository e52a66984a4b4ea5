package receiver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/broadcast/core/receiver"
)

func TestFlagsNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		flags   receiver.Flags
		want    receiver.Flags
		wantErr error
	}{
		{
			name:  "exported only",
			flags: receiver.Exported,
			want:  receiver.Exported,
		},
		{
			name:  "not exported only",
			flags: receiver.NotExported,
			want:  receiver.NotExported,
		},
		{
			name:  "instant apps implies exported",
			flags: receiver.VisibleToInstantApps,
			want:  receiver.VisibleToInstantApps | receiver.Exported,
		},
		{
			name:  "instant apps with explicit exported",
			flags: receiver.VisibleToInstantApps | receiver.Exported,
			want:  receiver.VisibleToInstantApps | receiver.Exported,
		},
		{
			name:    "instant apps conflicts with not exported",
			flags:   receiver.VisibleToInstantApps | receiver.NotExported,
			wantErr: receiver.ErrConflictingFlags,
		},
		{
			name:    "exported conflicts with not exported",
			flags:   receiver.Exported | receiver.NotExported,
			wantErr: receiver.ErrConflictingFlags,
		},
		{
			name:    "no exposure flag",
			flags:   0,
			wantErr: receiver.ErrMissingExposure,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.flags.Normalize()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestFlagsNormalize_Idempotent verifies that normalizing an already
// normalized set is a no-op.
func TestFlagsNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	for _, flags := range []receiver.Flags{
		receiver.Exported,
		receiver.NotExported,
		receiver.VisibleToInstantApps,
	} {
		once, err := flags.Normalize()
		require.NoError(t, err)

		twice, err := once.Normalize()
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestFlagsHas(t *testing.T) {
	t.Parallel()

	flags := receiver.VisibleToInstantApps | receiver.Exported
	assert.True(t, flags.Has(receiver.Exported))
	assert.True(t, flags.Has(receiver.VisibleToInstantApps|receiver.Exported))
	assert.False(t, flags.Has(receiver.NotExported))
}
