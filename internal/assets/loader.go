package assets

// AssetLoader loads stylesheets by name.
type AssetLoader interface {
	// LoadStyle returns the CSS for name (no .css extension).
	// Returns ErrStyleNotFound or ErrInvalidAssetName.
	LoadStyle(name string) (string, error)
}
