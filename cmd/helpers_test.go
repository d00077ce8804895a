package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"aeronib.com/pkg/navhdr/internal/domain"
	domainmocks "aeronib.com/pkg/navhdr/internal/domain/mocks"
)

// resetConfig gives a test a fresh viper with only the defaults and a log file
// inside the test directory.
func resetConfig(t *testing.T) {
	t.Helper()

	viper.Reset()
	setupConfig()
	viper.Set(logFilenameKey, filepath.Join(t.TempDir(), "navhdr.log"))

	t.Cleanup(func() {
		viper.Reset()
		setupConfig()
	})
}

func newTestRootCmd(t *testing.T, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	resetConfig(t)

	cmd := newRootCmd()
	cmd.AddCommand(
		newInitCmd(),
		newInjectCmd(),
		newListCmd(),
		newRenderCmd(),
		newGalleryCmd(),
		newVersionCmd(),
	)

	if args == nil {
		args = []string{}
	}

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	return cmd, out
}

func useMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mock := domainmocks.NewMockWorkflow(t)
	original := workflow
	workflow = mock

	t.Cleanup(func() { workflow = original })

	return mock
}

var _ domain.Workflow = (*domainmocks.MockWorkflow)(nil)
