package cleaner

import (
	"context"
	"errors"
	"fmt"

	"dockerase/pkg/docker"
	"dockerase/pkg/ui"
)

// NuclearPlan builds the full-wipe set: every container (stopped first),
// every image, every volume, every custom network and the whole build cache.
// Task sizes come from u so the confirmation can state the total to free.
func NuclearPlan(ctx context.Context, eng docker.Engine, u docker.Usage) ([]Task, error) {
	containers, err := eng.Containers(ctx, true)
	if err != nil {
		return nil, err
	}
	images, err := eng.Images(ctx, false)
	if err != nil {
		return nil, err
	}
	volumes, err := eng.Volumes(ctx, false)
	if err != nil {
		return nil, err
	}
	networks, err := eng.CustomNetworks(ctx)
	if err != nil {
		return nil, err
	}

	running := 0
	for _, c := range containers {
		if c.State == "running" {
			running++
		}
	}

	var tasks []Task

	if running > 0 {
		ids := make([]string, 0, running)
		for _, c := range containers {
			if c.State == "running" {
				ids = append(ids, c.ID)
			}
		}
		tasks = append(tasks, Task{
			Label: fmt.Sprintf("Stop %d running containers", running),
			Run:   forEach(ids, eng.StopContainer),
		})
	}

	if len(containers) > 0 {
		ids := make([]string, 0, len(containers))
		for _, c := range containers {
			ids = append(ids, c.ID)
		}
		tasks = append(tasks, Task{
			Label: fmt.Sprintf("Remove %d containers", len(containers)),
			Bytes: u.Containers.Size,
			Run:   forEach(ids, eng.RemoveContainer),
		})
	}

	if len(images) > 0 {
		ids := make([]string, 0, len(images))
		for _, img := range images {
			ids = append(ids, img.ID)
		}
		tasks = append(tasks, Task{
			Label: fmt.Sprintf("Remove %d images", len(images)),
			Bytes: u.Images.Size,
			Run:   forEach(ids, eng.RemoveImage),
		})
	}

	if len(volumes) > 0 {
		names := make([]string, 0, len(volumes))
		for _, v := range volumes {
			names = append(names, v.Name)
		}
		tasks = append(tasks, Task{
			Label: fmt.Sprintf("Remove %d volumes", len(volumes)),
			Bytes: u.Volumes.Size,
			Run:   forEach(names, eng.RemoveVolume),
		})
	}

	if len(networks) > 0 {
		ids := make([]string, 0, len(networks))
		for _, n := range networks {
			ids = append(ids, n.ID)
		}
		tasks = append(tasks, Task{
			Label: fmt.Sprintf("Remove %d custom networks", len(networks)),
			Run:   forEach(ids, eng.RemoveNetwork),
		})
	}

	tasks = append(tasks, Task{
		Label: "Clear all build cache",
		Bytes: u.BuildCache.Size,
		Run: func(ctx context.Context) error {
			_, err := eng.PruneBuildCache(ctx, true)
			return err
		},
	})

	return tasks, nil
}

// forEach applies remove to each id, skipping resources that vanished in the
// meantime and collecting the rest of the failures.
func forEach(ids []string, remove func(context.Context, string) error) func(context.Context) error {
	return func(ctx context.Context) error {
		failed := 0
		for _, id := range ids {
			err := remove(ctx, id)
			switch {
			case errors.Is(err, docker.ErrNotFound):
				ui.Warn.Println(shortID(id) + " already gone, skipped")
			case err != nil:
				ui.Error.Println(fmt.Sprintf("%s: %v", shortID(id), err))
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d removals failed", failed, len(ids))
		}
		return nil
	}
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
