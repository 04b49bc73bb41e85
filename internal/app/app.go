package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/op/go-logging"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/CristovaoMNunes/tmpkeep/cmd/tmpkeep/utils"
	"github.com/CristovaoMNunes/tmpkeep/internal/helpers"
	"github.com/CristovaoMNunes/tmpkeep/internal/models"
	"github.com/CristovaoMNunes/tmpkeep/internal/ports"
	"github.com/CristovaoMNunes/tmpkeep/internal/tempres"
)

// stdinSource is the pseudo file name selecting standard input for staging.
const stdinSource = "-"

// Dependencies aggregates runtime collaborators required by App.
type Dependencies struct {
	FS          afero.Fs
	Registry    *tempres.Registry
	Globber     ports.Globber
	Checksummer ports.Checksummer
	Logger      *logging.Logger
	In          io.Reader
	Out         io.Writer
}

// App orchestrates the staging and purge workflows.
type App struct {
	cfg         Config
	fs          afero.Fs
	registry    *tempres.Registry
	globber     ports.Globber
	checksummer ports.Checksummer
	logger      *logging.Logger
	in          io.Reader
	out         io.Writer
}

// New constructs an App using the supplied configuration and dependencies.
func New(cfg Config, deps Dependencies) (*App, error) {
	if deps.FS == nil {
		deps.FS = afero.NewOsFs()
	}
	if deps.Registry == nil {
		return nil, errors.New("registry must be provided")
	}
	if deps.Globber == nil {
		deps.Globber = utils.CustomGlobber{}
	}
	if deps.Checksummer == nil {
		deps.Checksummer = utils.RealChecksummer{}
	}
	if deps.Logger == nil {
		return nil, errors.New("logger must be provided")
	}
	if deps.In == nil {
		deps.In = os.Stdin
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}

	return &App{
		cfg:         cfg,
		fs:          deps.FS,
		registry:    deps.Registry,
		globber:     deps.Globber,
		checksummer: deps.Checksummer,
		logger:      deps.Logger,
		in:          deps.In,
		out:         deps.Out,
	}, nil
}

// Run executes the staging workflow: it creates a workspace, copies every
// configured source into it, and emits a manifest describing the result.
// Transient workspaces are registered for removal at process exit; kept ones
// receive the manifest as a file and survive.
func (a *App) Run() error {
	if len(a.cfg.Sources) == 0 {
		return errors.New("no files to stage")
	}

	workspace, err := a.createWorkspace()
	if err != nil {
		return err
	}

	a.logger.Infof("===> Staging %d file(s) into [%s]", len(a.cfg.Sources), cyan(workspace))

	manifest := models.Manifest{
		Workspace: workspace,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	for _, source := range a.cfg.Sources {
		staged, err := a.stageSource(source, workspace)
		if err != nil {
			return err
		}
		manifest.Files = append(manifest.Files, staged)
	}

	return a.emitManifest(workspace, manifest)
}

// createWorkspace allocates the staging directory. Kept workspaces bypass the
// registry so nothing removes them later.
func (a *App) createWorkspace() (string, error) {
	if a.cfg.Keep {
		workspace, err := afero.TempDir(a.fs, a.cfg.TempRoot, a.cfg.Prefix)
		if err != nil {
			return "", fmt.Errorf("failed to create workspace: %w", err)
		}
		return workspace, nil
	}

	return a.registry.CreateTempDir()
}

// stageSource copies a single source into the workspace and describes it.
func (a *App) stageSource(source, workspace string) (models.StagedFile, error) {
	if source == stdinSource {
		return a.stageStdin(workspace)
	}

	name := filepath.Base(source)

	reader, err := a.fs.Open(source)
	if err != nil {
		return models.StagedFile{}, fmt.Errorf("failed to open source [%s]: %w", source, err)
	}
	defer func() {
		_ = reader.Close()
	}()

	return a.stageReader(name, reader, workspace)
}

// stageStdin spools standard input through a scoped temporary file so it can
// be staged like a regular source. The spool file's lifetime is exactly this
// call, so it uses a guard instead of the exit-time registry.
func (a *App) stageStdin(workspace string) (models.StagedFile, error) {
	guard, spool, err := tempres.NewScopedFile(a.fs, a.cfg.TempRoot, a.cfg.Prefix)
	if err != nil {
		return models.StagedFile{}, err
	}
	defer func() {
		if closeErr := guard.Close(); closeErr != nil {
			a.logger.Debugf("failed to remove stdin spool file: %v", closeErr)
		}
	}()

	if _, err = io.Copy(spool, a.in); err != nil {
		_ = spool.Close()
		return models.StagedFile{}, fmt.Errorf("failed to spool stdin: %w", err)
	}
	if err = spool.Close(); err != nil {
		return models.StagedFile{}, fmt.Errorf("failed to finalize stdin spool: %w", err)
	}

	reader, err := a.fs.Open(guard.Path())
	if err != nil {
		return models.StagedFile{}, fmt.Errorf("failed to reopen stdin spool: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	return a.stageReader("stdin", reader, workspace)
}

// stageReader writes the content into the workspace under name and records
// its size and checksum.
func (a *App) stageReader(name string, reader io.Reader, workspace string) (models.StagedFile, error) {
	target := filepath.Join(workspace, name)

	writer, err := a.fs.Create(target)
	if err != nil {
		return models.StagedFile{}, fmt.Errorf("failed to create staged file [%s]: %w", target, err)
	}

	if _, err = io.Copy(writer, reader); err != nil {
		_ = writer.Close()
		return models.StagedFile{}, fmt.Errorf("failed to stage [%s]: %w", name, err)
	}
	if err = writer.Close(); err != nil {
		return models.StagedFile{}, fmt.Errorf("failed to finalize staged file [%s]: %w", target, err)
	}

	sha256sum, err := a.checksummer.SHA256(target)
	if err != nil {
		return models.StagedFile{}, fmt.Errorf("failed to checksum [%s]: %w", target, err)
	}

	info, err := a.fs.Stat(target)
	if err != nil {
		return models.StagedFile{}, err
	}

	a.logger.Debugf("▶ staged [%s] (%d bytes)", name, info.Size())

	return models.StagedFile{Name: name, Size: info.Size(), SHA256: sha256sum}, nil
}

// emitManifest writes the manifest into kept workspaces or streams it to the
// output writer for transient ones, whose files are gone after process exit.
func (a *App) emitManifest(workspace string, manifest models.Manifest) error {
	payload, err := yaml.Marshal(manifest)
	if err != nil {
		return err
	}

	if a.cfg.Keep {
		target := filepath.Join(workspace, a.cfg.ManifestName)
		if err := helpers.WriteToFile(a.fs, target, payload); err != nil {
			return fmt.Errorf("failed to write manifest: %w", err)
		}
		a.logger.Infof("Workspace kept at [%s]", cyan(workspace))
		return nil
	}

	_, err = a.out.Write(payload)
	return err
}
