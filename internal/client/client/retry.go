package client

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
)

// WaitForServer pings until the server answers or attempts run out, backing
// off exponentially from base. Only ErrUnavailable is retried.
func WaitForServer(ctx context.Context, c Client, attempts uint64, base time.Duration) error {
	b := retry.WithMaxRetries(attempts, retry.NewExponential(base))
	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := c.Ping(ctx)
		if errors.Is(err, ErrUnavailable) {
			return retry.RetryableError(err)
		}
		return err
	})
}
