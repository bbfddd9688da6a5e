package docker

import (
	"errors"
	"fmt"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/client"
)

// Sentinel errors for the failure modes callers are expected to branch on.
// Unreachable and permission errors are fatal; not-found during a deletion is
// a soft skip (the resource is already gone).
var (
	ErrDaemonUnreachable = errors.New("cannot connect to the Docker daemon. Is Docker running?")
	ErrPermissionDenied  = errors.New("permission denied talking to the Docker daemon")
	ErrNotFound          = errors.New("resource not found")
)

func wrapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case client.IsErrConnectionFailed(err):
		return fmt.Errorf("%w: %v", ErrDaemonUnreachable, err)
	case cerrdefs.IsNotFound(err):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case cerrdefs.IsPermissionDenied(err) || cerrdefs.IsUnauthorized(err):
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	default:
		return err
	}
}
