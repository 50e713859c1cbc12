package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const cursorPrefix = "after"

// EncodeCursor creates an opaque token that resumes a listing after the given id.
func EncodeCursor(afterID int) string {
	tokenStr := fmt.Sprintf("%s|%d", cursorPrefix, afterID)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeCursor parses a token produced by EncodeCursor. An empty token starts
// from the beginning and decodes to -1.
func DecodeCursor(token string) (int, error) {
	if token == "" {
		return -1, nil
	}
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[0] != cursorPrefix {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	afterID, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (id parse): %w", err)
	}
	if afterID < -1 {
		return 0, fmt.Errorf("invalid pagination token format (id out of range)")
	}
	return afterID, nil
}
