package builder

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp-forge/soundboard/pkg/rest"
)

// execute submits req once and decodes the response into a fresh T.
func execute[T any](ctx context.Context, op string, s rest.Submitter, req *rest.Request) (*T, error) {
	body, err := s.Submit(ctx, req)
	if err != nil {
		return nil, Wrap(op, err)
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &Error{
			Op:   op,
			Kind: KindTransportFailure,
			Err:  fmt.Errorf("failed to decode response: %w", err),
		}
	}
	return &result, nil
}

// executeNoContent submits req once and discards the response body.
func executeNoContent(ctx context.Context, op string, s rest.Submitter, req *rest.Request) error {
	if _, err := s.Submit(ctx, req); err != nil {
		return Wrap(op, err)
	}
	return nil
}
