package geofun

const version = "0.0.7"

// Version returns the library version.
func Version() string {
	return version
}
