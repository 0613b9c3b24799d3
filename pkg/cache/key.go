package cache

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// Key builds a cache key from an operation name and its arguments. The
// arguments include credential material, so the key is hashed rather than
// concatenated into a loggable string.
func Key(op string, parts ...string) string {
	joined := op + "\x00" + strings.Join(parts, "\x00")
	sum := md5.Sum([]byte(joined))
	return fmt.Sprintf("%s#%x", op, sum)
}
