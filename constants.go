// constants.go - Application-wide constants
package main

import "time"

const (
	// appName prefixes exported files and the window title.
	appName = "followgo"

	// statusTTL is how long a status line message stays visible.
	statusTTL = 8 * time.Second

	// exportTimeLayout stamps exported file names.
	exportTimeLayout = "20060102-150405"
)

// Input limits
const (
	filterCharLimit   = 64
	usernameCharLimit = 32
	tokenCharLimit    = 512
)

// Layout
const (
	// chromeRows is title + stats + header + separator + status + footer + spacing.
	chromeRows = 7

	// minDescWidth keeps the description column readable on narrow terminals.
	minDescWidth = 12
)
