package backend

import (
	"context"
	"fmt"
)

// resource is the generic entity client: every backend collection exposes
// the same five operations, differing only in path and entity shape.
type resource[T any] struct {
	client *Client
	path   string
}

func (r resource[T]) GetAll(ctx context.Context) ([]*T, error) {
	var out []*T

	if err := r.client.get(ctx, r.path, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (r resource[T]) GetById(ctx context.Context, id int64) (*T, error) {
	var out T

	if err := r.client.get(ctx, fmt.Sprintf("%s/%d", r.path, id), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (r resource[T]) Create(ctx context.Context, entity *T) (*T, error) {
	var out T

	if err := r.client.post(ctx, r.path, entity, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (r resource[T]) Update(ctx context.Context, id int64, entity *T) (*T, error) {
	var out T

	if err := r.client.put(ctx, fmt.Sprintf("%s/%d", r.path, id), entity, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (r resource[T]) Delete(ctx context.Context, id int64) error {
	return r.client.delete(ctx, fmt.Sprintf("%s/%d", r.path, id))
}
