/*
Package redisset reads datasets from and writes datasets to Redis lists.

A dataset list holds the lines of the text representation of the
dataset: its header line first, then a line per example.
*/
package redisset

import (
	"context"
	"fmt"

	"github.com/pbanos/tdidt/dataset"
	"github.com/pbanos/tdidt/dataset/text"
	redis "gopkg.in/redis.v5"
)

/*
Read takes a context, a redis client, the key of a dataset list and the
labels of the dataset and returns the dataset stored on the list or an
error. If the context is done before redis answers its error is returned.
*/
func Read(ctx context.Context, rc *redis.Client, key string, labels dataset.Labels) (*dataset.Dataset, error) {
	var lines []string
	err := withContext(ctx, func() error {
		var err error
		lines, err = rc.LRange(key, 0, -1).Result()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("reading dataset list %q from redis: %w", key, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("reading dataset list %q from redis: %w", key, dataset.ErrEmptyDataset)
	}
	d, err := text.ReadLines(lines, labels)
	if err != nil {
		return nil, fmt.Errorf("parsing dataset list %q: %w", key, err)
	}
	return d, nil
}

/*
Write takes a context, a redis client, a key and a dataset and replaces
whatever is stored on the key with a list holding the dataset.
*/
func Write(ctx context.Context, rc *redis.Client, key string, d *dataset.Dataset) error {
	lines := text.Lines(d)
	values := make([]interface{}, len(lines))
	for i, l := range lines {
		values[i] = l
	}
	err := withContext(ctx, func() error {
		if err := rc.Del(key).Err(); err != nil {
			return err
		}
		return rc.RPush(key, values...).Err()
	})
	if err != nil {
		return fmt.Errorf("writing dataset list %q on redis: %w", key, err)
	}
	return nil
}

/*
withContext runs f, which blocks on redis, and returns its error or the
context error if the context is done first. The redis.v5 client takes no
context, so an abandoned call finishes on its own, bounded by the client
timeouts.
*/
func withContext(ctx context.Context, f func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan error, 1)
	go func() {
		done <- f()
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
