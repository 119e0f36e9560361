// Package processor reduces structured content to fingerprintable text.
package processor

import "github.com/ZaguanLabs/textkey"

// TextBlock is an alias to the main package type.
type TextBlock = textkey.TextBlock
