package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"aeronib.com/pkg/navhdr/internal/domain"
	m "aeronib.com/pkg/navhdr/internal/model"
)

func builtinVariant(t *testing.T, name string) m.Variant {
	t.Helper()

	nav, err := domain.LoadNavigation()
	require.NoError(t, err)

	variant, err := nav.Variant(name)
	require.NoError(t, err)

	return variant
}

func TestRenderCmd(t *testing.T) {
	t.Run("derives the base path from the script source", func(t *testing.T) {
		cmd, out := newTestRootCmd(t, "render", "--src", "../header.js")
		require.NoError(t, cmd.Execute())

		assert.True(t, strings.HasPrefix(out.String(), `<header class="site-header">`))
		assert.Contains(t, out.String(), `<a href="../walkabout">Walkabout</a>`)
		assert.Contains(t, out.String(), `<a href="https://www.aeronib.com">My Other Work</a>`)
		assert.True(t, strings.HasSuffix(out.String(), "</header>\n"))
	})

	t.Run("same directory script", func(t *testing.T) {
		cmd, out := newTestRootCmd(t, "render", "--src", "header.js", "--variant", "b")
		require.NoError(t, cmd.Execute())

		assert.Contains(t, out.String(), `<img class="logo" src="logo.png" alt="Aeronib"/>`)
		assert.Contains(t, out.String(), `<a href="">Home</a>`)
		assert.NotContains(t, out.String(), "../")
	})

	t.Run("explicit base wins over the source", func(t *testing.T) {
		cmd, out := newTestRootCmd(t, "render", "--src", "header.js", "--base", "../")
		require.NoError(t, cmd.Execute())

		assert.Contains(t, out.String(), `<a href="../travel">Travel</a>`)
	})

	t.Run("invalid base", func(t *testing.T) {
		cmd, _ := newTestRootCmd(t, "render", "--base", "../../")
		require.ErrorIs(t, cmd.Execute(), domain.ErrInvalidBase)
	})

	t.Run("unknown variant", func(t *testing.T) {
		cmd, _ := newTestRootCmd(t, "render", "--variant", "c")
		require.ErrorIs(t, cmd.Execute(), domain.ErrUnknownVariant)
	})

	t.Run("variant from a navigation file", func(t *testing.T) {
		navPath := filepath.Join(t.TempDir(), "nav.yaml")
		require.NoError(t, os.WriteFile(navPath, []byte(`
variants:
  - name: gallery
    logo: {src: img/logo.svg, alt: Gallery}
    items:
      - {label: Photos, target: photos}
`), 0o644))

		cmd, out := newTestRootCmd(t, "render", "--navigation", navPath, "--variant", "gallery", "--src", "../header.js")
		require.NoError(t, cmd.Execute())

		assert.Equal(t,
			`<header class="site-header"><img class="logo" src="../img/logo.svg" alt="Gallery"/>`+
				`<nav class="menu"><a href="../photos">Photos</a></nav></header>`+"\n",
			out.String())
	})

	t.Run("missing navigation file", func(t *testing.T) {
		cmd, _ := newTestRootCmd(t, "render", "--navigation", filepath.Join(t.TempDir(), "none.yaml"))
		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read navigation file")
	})
}

func TestInjectCmd(t *testing.T) {
	t.Run("passes flags to the workflow", func(t *testing.T) {
		wf := useMockWorkflow(t)

		var got domain.InjectArgs
		wf.On("Inject", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			got = args.Get(1).(domain.InjectArgs)
		}).Return(nil).Once()

		cmd, _ := newTestRootCmd(t, "inject",
			"--variant", "b", "--base", "../", "--dry-run", "--dedupe",
			"-p", "2", "-x", "drafts/", "-o", "public", "site/...")
		require.NoError(t, cmd.Execute())

		base := m.ParentMarker
		assert.Equal(t, domain.InjectArgs{
			ListArgs: domain.ListArgs{
				Paths:      []m.Path{"site/..."},
				Exclude:    []string{"drafts/"},
				ScriptName: "header.js",
			},
			Root:    ".",
			Out:     "public",
			Threads: 2,
			DryRun:  true,
			Options: domain.RunOptions{
				Variant:     builtinVariant(t, "b"),
				Base:        &base,
				StripScript: true,
				Dedupe:      true,
			},
		}, got)
	})

	t.Run("defaults", func(t *testing.T) {
		wf := useMockWorkflow(t)

		var got domain.InjectArgs
		wf.On("Inject", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			got = args.Get(1).(domain.InjectArgs)
		}).Return(nil).Once()

		cmd, _ := newTestRootCmd(t, "inject", "--strip-script=false")
		require.NoError(t, cmd.Execute())

		assert.Equal(t, []m.Path{"./..."}, got.Paths)
		assert.Equal(t, 4, got.Threads)
		assert.False(t, got.DryRun)
		assert.Nil(t, got.Options.Base)
		assert.False(t, got.Options.StripScript)
		assert.False(t, got.Options.Dedupe)
		assert.Equal(t, "a", got.Options.Variant.Name)
	})

	t.Run("workflow error", func(t *testing.T) {
		wf := useMockWorkflow(t)
		wf.On("Inject", mock.Anything, mock.Anything).Return(errors.New("1 of 3 pages failed")).Once()

		cmd, _ := newTestRootCmd(t, "inject")
		require.EqualError(t, cmd.Execute(), "1 of 3 pages failed")
	})

	t.Run("invalid base stops before the workflow", func(t *testing.T) {
		useMockWorkflow(t)

		cmd, _ := newTestRootCmd(t, "inject", "--base", "/")
		require.ErrorIs(t, cmd.Execute(), domain.ErrInvalidBase)
	})
}

func TestListCmd(t *testing.T) {
	wf := useMockWorkflow(t)
	wf.On("List", mock.Anything, domain.ListArgs{
		Paths:      []m.Path{"./travel", "./nature/..."},
		Exclude:    []string{`\.draft\.html$`},
		ScriptName: "nav.js",
	}).Return(nil).Once()

	cmd, _ := newTestRootCmd(t, "list", "--script", "nav.js", "-x", `\.draft\.html$`, "./travel", "./nature/...")
	require.NoError(t, cmd.Execute())
}

func TestGalleryCmd(t *testing.T) {
	t.Run("thumbs", func(t *testing.T) {
		wf := useMockWorkflow(t)
		wf.On("Thumbnails", mock.Anything, domain.ThumbnailArgs{
			ImagesDir: "photos",
			ThumbsDir: "thumbs",
			Height:    120,
			Quality:   85,
			Threads:   4,
		}).Return(nil).Once()

		cmd, _ := newTestRootCmd(t, "gallery", "thumbs", "--images", "photos", "--height", "120")
		require.NoError(t, cmd.Execute())
	})

	t.Run("resize", func(t *testing.T) {
		wf := useMockWorkflow(t)
		wf.On("Resize", mock.Anything, domain.ResizeArgs{
			ImagesDir:    "images",
			BackupDir:    "originals",
			MaxDimension: 2048,
			Quality:      70,
			Threads:      1,
		}).Return(nil).Once()

		cmd, _ := newTestRootCmd(t, "gallery", "resize", "--backup", "originals", "--max", "2048", "--quality", "70", "-p", "1")
		require.NoError(t, cmd.Execute())
	})

	t.Run("resize error", func(t *testing.T) {
		wf := useMockWorkflow(t)
		wf.On("Resize", mock.Anything, mock.Anything).Return(domain.ErrImagesDirMissing).Once()

		cmd, _ := newTestRootCmd(t, "gallery", "resize")
		require.ErrorIs(t, cmd.Execute(), domain.ErrImagesDirMissing)
	})
}
