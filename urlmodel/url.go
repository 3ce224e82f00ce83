// Package urlmodel implements the three URL flavors used throughout the
// analyzer and the package-relative URL resolution algorithm (C1).
package urlmodel

// PackageRelative is a URL string exactly as authored in an import, e.g.
// "./foo.html" or "polymer/polymer.html".
type PackageRelative string

// FileRelative is a URL string relative to a specific resolved document.
type FileRelative string

// Resolved is an absolute URL usable with a Loader, typically file:// or
// http(s)://.
type Resolved string

func (u Resolved) String() string { return string(u) }
