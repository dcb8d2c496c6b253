// Package redis implements the template store on Redis for ephemeral
// drafts.
//
// Drafts are JSON-encoded templates under a configurable key prefix with a
// TTL, so abandoned editing sessions clean themselves up. The store is not
// meant for durable persistence; pair it with the postgres store when a
// draft is published.
//
// # Usage
//
//	client, err := redis.Open(ctx, os.Getenv("REDIS_URL"))
//	if err != nil {
//		return err
//	}
//	drafts := redis.NewDrafts(client, redis.WithTTL(24*time.Hour))
package redis
