package assets

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"time"
)

// AssetResolver maps logical asset names (css/styles.css) to the fingerprinted
// files listed in manifest.json. Names missing from the manifest resolve to themselves.
type AssetResolver struct {
	mu           sync.RWMutex
	manifest     map[string]string
	manifestPath string
	diskPath     string
	fsys         fs.FS
	lastModTime  time.Time
	logger       *slog.Logger
}

// NewAssetResolverFromDisk creates a resolver that rereads the manifest whenever the file changes.
func NewAssetResolverFromDisk(manifestPath string) (*AssetResolver, error) {
	ar := &AssetResolver{manifestPath: manifestPath, diskPath: manifestPath, logger: slog.Default()}
	return ar, ar.Reload()
}

// NewAssetResolverFromFS creates a resolver over an embedded filesystem. The manifest is read once.
func NewAssetResolverFromFS(fsys fs.FS, manifestPath string) (*AssetResolver, error) {
	ar := &AssetResolver{manifestPath: manifestPath, fsys: fsys, logger: slog.Default()}
	return ar, ar.Reload()
}

// SetLogger updates the resolver's logger. If logger is nil, slog.Default() is used.
func (ar *AssetResolver) SetLogger(logger *slog.Logger) {
	ar.mu.Lock()
	defer ar.mu.Unlock()
	if logger == nil {
		logger = slog.Default()
	}
	ar.logger = logger
}

// Reload reads the manifest again. A missing manifest is not an error.
func (ar *AssetResolver) Reload() error {
	data, modTime, err := ar.read()
	ar.mu.Lock()
	defer ar.mu.Unlock()
	if err != nil {
		ar.manifest = nil
		return err
	}
	ar.lastModTime = modTime
	ar.manifest = nil
	if len(data) == 0 {
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	ar.manifest = m
	return nil
}

func (ar *AssetResolver) read() ([]byte, time.Time, error) {
	var (
		data []byte
		mod  time.Time
		err  error
	)
	switch {
	case ar.diskPath != "":
		data, err = os.ReadFile(ar.diskPath)
		if info, statErr := os.Stat(ar.diskPath); statErr == nil {
			mod = info.ModTime()
		}
	case ar.fsys != nil:
		data, err = fs.ReadFile(ar.fsys, ar.manifestPath)
	default:
		return nil, mod, errors.New("no manifest source configured")
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, mod, nil
	}
	return data, mod, err
}

// reloadIfChanged rereads a disk manifest when its modification time moved forward.
func (ar *AssetResolver) reloadIfChanged() {
	if ar.diskPath == "" {
		return
	}
	info, err := os.Stat(ar.diskPath)
	if err != nil {
		return
	}
	ar.mu.RLock()
	stale := info.ModTime().After(ar.lastModTime)
	logger := ar.logger
	ar.mu.RUnlock()
	if !stale {
		return
	}
	if err := ar.Reload(); err != nil {
		logger.Error("failed to reload asset manifest", slog.String("manifest", ar.manifestPath), slog.Any("error", err))
	}
}

// Resolve returns the public /static path for a logical asset name.
func (ar *AssetResolver) Resolve(logicalName string) string {
	ar.mu.RLock()
	defer ar.mu.RUnlock()
	if hashed, ok := ar.manifest[logicalName]; ok {
		return "/static/" + hashed
	}
	return "/static/" + logicalName
}

// ResolveAsset resolves logicalName through resolver, picking up manifest edits in dev mode.
func ResolveAsset(resolver *AssetResolver, logicalName string, devMode bool) string {
	if resolver == nil {
		return "/static/" + logicalName
	}
	if devMode {
		resolver.reloadIfChanged()
	}
	return resolver.Resolve(logicalName)
}
