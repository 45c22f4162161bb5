// Package config manages the listbind user configuration file.
//
// The file stores defaults used when creating screen documents (status path,
// value path, cursor capacity), the preferred output format of the show
// command, and a small record of recently opened documents.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/listbind/config.yaml or $HOME/.config/listbind/config.yaml
//   - macOS: $HOME/.config/listbind/config.yaml
//   - Windows: %LOCALAPPDATA%\listbind\config.yaml
//
// LISTBIND_CONFIG overrides the location entirely.
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    return err
//	}
//	registry.TouchScreen("/home/me/people.yaml", 12)
//	if err := registry.Save(); err != nil {
//	    return err
//	}
//
// A missing file is not an error: LoadRegistry returns defaults.
//
// # Thread Safety
//
// Loads and saves are serialized by a package mutex, and saves replace the
// file atomically. A Registry value itself is not safe for concurrent use.
package config
