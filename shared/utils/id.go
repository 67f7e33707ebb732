package utils

import (
	"strings"

	"github.com/google/uuid"
)

const idLength = 16

// NewID returns kind followed by a dash and 16 random hex characters,
// e.g. "comment-9b1deb4d3b7d4bad".
func NewID(kind string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return kind + "-" + raw[:idLength]
}
