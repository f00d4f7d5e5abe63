// Package redis connects to the Redis server used to share locale
// preferences between processes.
//
// Configuration is read from the environment through github.com/caarlos0/env:
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// Connect pings the server up to RetryAttempts times before giving up.
package redis
