package gcsclient

import "time"

type Option func(c *GCSClient)

func ConnAttempts(attempts int) Option {
	return func(c *GCSClient) {
		c.connAttempts = attempts
	}
}

func ConnTimeout(timeout time.Duration) Option {
	return func(c *GCSClient) {
		c.connTimeout = timeout
	}
}
