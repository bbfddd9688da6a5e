package cleaner

import (
	"context"
	"fmt"

	"dockerase/pkg/docker"
	"dockerase/pkg/report"
)

type category int

const (
	catContainers category = iota
	catImages
	catAllImages
	catVolumes
	catAllVolumes
	catNetworks
	catBuildCache
)

// Candidate is one toggleable entry in the select checklist.
type Candidate struct {
	Label string
	Bytes int64
	cat   category
	run   func(ctx context.Context) error
}

// SelectCandidates gathers everything the select flow can offer, including
// the aggressive ALL-images / ALL-volumes entries.
func SelectCandidates(ctx context.Context, eng docker.Engine, u docker.Usage) ([]Candidate, error) {
	var items []Candidate

	stopped, err := eng.Containers(ctx, false)
	if err != nil {
		return nil, err
	}
	if len(stopped) > 0 {
		items = append(items, Candidate{
			Label: fmt.Sprintf("Stopped containers (%d containers, %s)", len(stopped), report.FormatBytes(u.Containers.Reclaimable)),
			Bytes: u.Containers.Reclaimable,
			cat:   catContainers,
			run: func(ctx context.Context) error {
				_, err := eng.PruneContainers(ctx)
				return err
			},
		})
	}

	if u.Images.Inactive() > 0 || u.Images.Reclaimable > 0 {
		items = append(items, Candidate{
			Label: fmt.Sprintf("Dangling images (%d images, %s)", u.Images.Inactive(), report.FormatBytes(u.Images.Reclaimable)),
			Bytes: u.Images.Reclaimable,
			cat:   catImages,
			run: func(ctx context.Context) error {
				_, err := eng.PruneImages(ctx, false)
				return err
			},
		})
	}

	images, err := eng.Images(ctx, false)
	if err != nil {
		return nil, err
	}
	if len(images) > 0 {
		items = append(items, Candidate{
			Label: fmt.Sprintf("ALL images (%d images, %s)", len(images), report.FormatBytes(u.Images.Size)),
			Bytes: u.Images.Size,
			cat:   catAllImages,
			run: func(ctx context.Context) error {
				_, err := eng.PruneImages(ctx, true)
				return err
			},
		})
	}

	if u.Volumes.Inactive() > 0 || u.Volumes.Reclaimable > 0 {
		items = append(items, Candidate{
			Label: fmt.Sprintf("Unused volumes (%d volumes, %s)", u.Volumes.Inactive(), report.FormatBytes(u.Volumes.Reclaimable)),
			Bytes: u.Volumes.Reclaimable,
			cat:   catVolumes,
			run: func(ctx context.Context) error {
				_, err := eng.PruneVolumes(ctx)
				return err
			},
		})
	}

	volumes, err := eng.Volumes(ctx, false)
	if err != nil {
		return nil, err
	}
	if len(volumes) > 0 {
		names := make([]string, 0, len(volumes))
		for _, v := range volumes {
			names = append(names, v.Name)
		}
		items = append(items, Candidate{
			Label: fmt.Sprintf("ALL volumes (%d volumes, %s)", len(volumes), report.FormatBytes(u.Volumes.Size)),
			Bytes: u.Volumes.Size,
			cat:   catAllVolumes,
			run:   forEach(names, eng.RemoveVolume),
		})
	}

	networks, err := eng.CustomNetworks(ctx)
	if err != nil {
		return nil, err
	}
	if len(networks) > 0 {
		items = append(items, Candidate{
			Label: fmt.Sprintf("Custom networks (%d networks)", len(networks)),
			cat:   catNetworks,
			run: func(ctx context.Context) error {
				_, err := eng.PruneNetworks(ctx)
				return err
			},
		})
	}

	if u.BuildCache.Size > 0 {
		items = append(items, Candidate{
			Label: fmt.Sprintf("Build cache (%s)", report.FormatBytes(u.BuildCache.Size)),
			Bytes: u.BuildCache.Size,
			cat:   catBuildCache,
			run: func(ctx context.Context) error {
				_, err := eng.PruneBuildCache(ctx, true)
				return err
			},
		})
	}

	return items, nil
}

// Narrow turns the selected subset of candidates into tasks. When both the
// "dangling" and "ALL" variants of a category are selected, ALL wins and the
// narrower one is dropped. Indexes outside the candidate set are ignored, so
// the result is always a subset of what was collected.
func Narrow(items []Candidate, selected []int) []Task {
	chosen := make(map[category]Candidate)
	for _, idx := range selected {
		if idx < 0 || idx >= len(items) {
			continue
		}
		c := items[idx]
		chosen[c.cat] = c
	}
	if _, ok := chosen[catAllImages]; ok {
		delete(chosen, catImages)
	}
	if _, ok := chosen[catAllVolumes]; ok {
		delete(chosen, catVolumes)
	}

	// Preserve collection order.
	var tasks []Task
	for _, c := range items {
		if picked, ok := chosen[c.cat]; ok && picked.Label == c.Label {
			tasks = append(tasks, Task{Label: c.Label, Bytes: c.Bytes, Run: c.run})
		}
	}
	return tasks
}

// Labels returns the checklist labels for the candidates.
func Labels(items []Candidate) []string {
	labels := make([]string, len(items))
	for i, c := range items {
		labels[i] = c.Label
	}
	return labels
}

// AllIndexes selects every candidate (the --force behaviour of select mode).
func AllIndexes(items []Candidate) []int {
	idx := make([]int, len(items))
	for i := range items {
		idx[i] = i
	}
	return idx
}
