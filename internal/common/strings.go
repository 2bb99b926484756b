package common

// UnknownStr is returned by String methods for values outside their enum.
const UnknownStr = "unknown"

// EntityKey formats a "Type:Name" pair used in diagnostics and log fields.
func EntityKey(typ, name string) string {
	switch {
	case name == "":
		return typ
	case typ == "":
		return name
	}

	return typ + ":" + name
}
