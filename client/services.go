package client

import (
	"encoding/json"
	"fmt"
)

// ListResult pairs a decoded collection with its pagination block.
type ListResult[T any] struct {
	Items      []T
	Pagination *Pagination
}

func decodeItem[T any](env *Envelope) (*T, error) {
	item := new(T)
	if err := json.Unmarshal(env.Data, item); err != nil {
		return nil, fmt.Errorf("decode entity: %w", err)
	}
	return item, nil
}

func decodeList[T any](env *Envelope) (*ListResult[T], error) {
	var items []T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return nil, fmt.Errorf("decode collection: %w", err)
		}
	}
	return &ListResult[T]{Items: items, Pagination: env.Pagination}, nil
}
