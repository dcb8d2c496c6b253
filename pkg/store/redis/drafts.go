package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/maildraft/pkg/document"
	"github.com/dmitrymomot/maildraft/pkg/store"
)

// Option configures a Drafts store.
type Option func(*Drafts)

// WithPrefix sets the Redis key prefix. Default: "maildraft:templates".
func WithPrefix(prefix string) Option {
	return func(d *Drafts) {
		d.prefix = prefix
	}
}

// WithTTL sets the draft expiration. Zero means drafts never expire.
// Default: 24 hours.
func WithTTL(ttl time.Duration) Option {
	return func(d *Drafts) {
		d.ttl = ttl
	}
}

// Drafts implements store.Store on Redis. Every write refreshes the TTL, so
// an actively edited draft stays alive while abandoned ones expire.
type Drafts struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewDrafts creates a Drafts store. The client should come from Open; its
// lifecycle stays with the caller.
func NewDrafts(client redis.UniversalClient, opts ...Option) *Drafts {
	d := &Drafts{
		client: client,
		prefix: "maildraft:templates",
		ttl:    24 * time.Hour,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Drafts) Create(ctx context.Context, tmpl *document.Template) error {
	data, err := json.Marshal(tmpl)
	if err != nil {
		return err
	}
	ok, err := d.client.SetNX(ctx, d.key(tmpl.Key), data, d.ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return store.ErrDuplicateKey
	}
	return nil
}

func (d *Drafts) Update(ctx context.Context, key string, tmpl *document.Template) error {
	if tmpl.Key != key {
		return store.ErrKeyMismatch
	}
	data, err := json.Marshal(tmpl)
	if err != nil {
		return err
	}
	// SET XX only succeeds on existing keys, which gives the same
	// not-found semantics as the durable stores.
	ok, err := d.client.SetXX(ctx, d.key(key), data, d.ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return store.ErrNotFound
	}
	return nil
}

func (d *Drafts) Get(ctx context.Context, key string) (*document.Template, error) {
	data, err := d.client.Get(ctx, d.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	var tmpl document.Template
	if err := json.Unmarshal(data, &tmpl); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

func (d *Drafts) Delete(ctx context.Context, key string) error {
	n, err := d.client.Del(ctx, d.key(key)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (d *Drafts) List(ctx context.Context) ([]*document.Template, error) {
	var out []*document.Template

	iter := d.client.Scan(ctx, 0, d.prefix+":*", 100).Iterator()
	for iter.Next(ctx) {
		data, err := d.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue // expired between SCAN and GET
			}
			return nil, err
		}
		var tmpl document.Template
		if err := json.Unmarshal(data, &tmpl); err != nil {
			return nil, err
		}
		out = append(out, &tmpl)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (d *Drafts) key(k string) string {
	return d.prefix + ":" + k
}
