package cleaner

import (
	"context"
	"fmt"

	"dockerase/pkg/docker"
	"dockerase/pkg/report"
)

// PurgePlan builds the safe cleanup set: stopped containers, dangling images,
// unused volumes, unused networks and dangling build cache. Nothing in the
// plan touches a resource that is still in use.
func PurgePlan(ctx context.Context, eng docker.Engine, u docker.Usage) ([]Task, error) {
	var tasks []Task

	if u.Containers.Inactive() > 0 || u.Containers.Reclaimable > 0 {
		tasks = append(tasks, Task{
			Label: fmt.Sprintf("%d stopped containers (%s)", u.Containers.Inactive(), report.FormatBytes(u.Containers.Reclaimable)),
			Bytes: u.Containers.Reclaimable,
			Run: func(ctx context.Context) error {
				_, err := eng.PruneContainers(ctx)
				return err
			},
		})
	}

	if u.Images.Inactive() > 0 || u.Images.Reclaimable > 0 {
		tasks = append(tasks, Task{
			Label: fmt.Sprintf("%d dangling images (%s)", u.Images.Inactive(), report.FormatBytes(u.Images.Reclaimable)),
			Bytes: u.Images.Reclaimable,
			Run: func(ctx context.Context) error {
				_, err := eng.PruneImages(ctx, false)
				return err
			},
		})
	}

	if u.Volumes.Inactive() > 0 || u.Volumes.Reclaimable > 0 {
		tasks = append(tasks, Task{
			Label: fmt.Sprintf("%d unused volumes (%s)", u.Volumes.Inactive(), report.FormatBytes(u.Volumes.Reclaimable)),
			Bytes: u.Volumes.Reclaimable,
			Run: func(ctx context.Context) error {
				_, err := eng.PruneVolumes(ctx)
				return err
			},
		})
	}

	networks, err := eng.CustomNetworks(ctx)
	if err != nil {
		return nil, err
	}
	if len(networks) > 0 {
		tasks = append(tasks, Task{
			Label: fmt.Sprintf("%d unused networks", len(networks)),
			Run: func(ctx context.Context) error {
				_, err := eng.PruneNetworks(ctx)
				return err
			},
		})
	}

	if u.BuildCache.Reclaimable > 0 {
		tasks = append(tasks, Task{
			Label: fmt.Sprintf("Build cache (%s)", report.FormatBytes(u.BuildCache.Reclaimable)),
			Bytes: u.BuildCache.Reclaimable,
			Run: func(ctx context.Context) error {
				_, err := eng.PruneBuildCache(ctx, false)
				return err
			},
		})
	}

	return tasks, nil
}
