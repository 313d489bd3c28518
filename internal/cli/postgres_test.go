//go:build integration

package cli

import (
	"encoding/json"
	"os"
	"testing"

	"orgbook-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

func TestPostgresDriver(t *testing.T) {
	base := testutils.SetupTestSuite(t)
	base.CleanTestDB()
	defer base.CleanTestDB()

	sheet := writeFile(t, t.TempDir(), "teams.csv", "Name,Description\nCore,Platform team\n")

	_, err := run(t, base.Config, "import", "teams", sheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"teams"}, base.StoredKeys())

	out, err := run(t, base.Config, "summary")
	require.NoError(t, err)

	var summary Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 1, summary.Teams)
}
