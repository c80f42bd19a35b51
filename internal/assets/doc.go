// Package assets provides the stylesheets used for HTML and PDF output.
//
//	AssetLoader (interface)
//	    ├── EmbeddedLoader    built-in styles compiled in with go:embed
//	    ├── FilesystemLoader  {basePath}/styles/{name}.css on disk
//	    └── AssetResolver     custom directory first, embedded fallback
//
// Style names are bare identifiers ("default", "legal", "safety"). Names
// with separators or dots are rejected, and FilesystemLoader resolves
// symlinks and refuses paths that leave its base directory.
package assets
