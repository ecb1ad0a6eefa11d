package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorsCommand_Execute(t *testing.T) {
	app, _, out := setupTestAppWithMockBusinessAPI(t)

	require.NoError(t, NewColorsCommand(app).Execute(context.Background()))

	assert.Contains(t, out.String(), "Id")
	assert.Contains(t, out.String(), "light_green")
	assert.Contains(t, out.String(), "Vert clair")
}
