package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/pantrycycle/internal/api"
)

// RunIssueTokenCommand prints a signed access token for local testing.
func RunIssueTokenCommand(out io.Writer, secret string, rawUserID string, ttl time.Duration) error {
	userID, err := strconv.ParseUint(strings.TrimSpace(rawUserID), 10, 64)
	if err != nil || userID == 0 {
		return fmt.Errorf("invalid user id %q", rawUserID)
	}

	token, err := api.IssueToken(secret, uint(userID), ttl)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}
	fmt.Fprintln(out, token)
	return nil
}
