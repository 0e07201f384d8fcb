package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-recipe-accounts/internal/apperrors"
)

// asStorageError keeps already classified store errors and reports
// anything else, including deadlines, as ErrStorageUnavailable.
func asStorageError(err error) error {
	if errors.Is(err, apperrors.ErrStorageUnavailable) || errors.Is(err, apperrors.ErrConflict) {
		return err
	}
	return fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
}

// withTimeout bounds store calls. A zero timeout leaves ctx unchanged.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
