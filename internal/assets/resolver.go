package assets

import "errors"

// AssetResolver tries a custom directory first and falls back to the
// embedded styles when a style is not found there.
type AssetResolver struct {
	custom   AssetLoader
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver. An empty basePath uses only
// the embedded styles; a non-empty one must be a readable directory.
func NewAssetResolver(basePath string) (*AssetResolver, error) {
	r := &AssetResolver{embedded: NewEmbeddedLoader()}
	if basePath != "" {
		fsLoader, err := NewFilesystemLoader(basePath)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}
	return r, nil
}

// LoadStyle loads a style. Only ErrStyleNotFound from the custom directory
// triggers the fallback; validation and read errors are returned as is.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}
	css, err := r.custom.LoadStyle(name)
	if err == nil {
		return css, nil
	}
	if !errors.Is(err, ErrStyleNotFound) {
		return "", err
	}
	return r.embedded.LoadStyle(name)
}

// HasCustomLoader reports whether a custom directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

var _ AssetLoader = (*AssetResolver)(nil)
