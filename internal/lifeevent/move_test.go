package lifeevent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove(t *testing.T) {
	h := singleFiler()
	ev := &Move{NewState: "NY"}

	require.NoError(t, ev.Validate(h))
	after := ev.Apply(h)

	assert.Equal(t, "NY", after.State)
	assert.Equal(t, "CO", h.State)
	assert.Equal(t, h.Primary, after.Primary)
}

func TestMoveValidate(t *testing.T) {
	tests := []struct {
		name     string
		newState string
		wantErr  bool
	}{
		{name: "valid", newState: "CA"},
		{name: "same state", newState: "CO", wantErr: true},
		{name: "unrecognized state", newState: "XX", wantErr: true},
		{name: "lowercase rejected", newState: "ny", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Move{NewState: tt.newState}).Validate(singleFiler())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
