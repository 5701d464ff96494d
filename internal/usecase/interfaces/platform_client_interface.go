package interfaces

import (
	"context"

	"afdian_adapter/internal/domain/afdian"
)

// IPlatformClient issues signed open API calls.
//
// It reports transport failures as errors and hands back any HTTP answer,
// whatever its status, so that callers can classify error bodies too.
type IPlatformClient interface {
	Do(ctx context.Context, req afdian.SignedRequest) (afdian.RawResponse, error)
}
