package docker

import "github.com/docker/docker/api/types"

// CategoryUsage holds the per-category totals shown in the overview table.
type CategoryUsage struct {
	Size        int64
	Reclaimable int64
	Count       int
	Active      int
}

// Inactive returns the number of objects in the category with no active user
// (dangling images, stopped containers, unreferenced volumes).
func (c CategoryUsage) Inactive() int {
	if c.Count < c.Active {
		return 0
	}
	return c.Count - c.Active
}

// Usage is the aggregated /system/df response.
type Usage struct {
	Images     CategoryUsage
	Containers CategoryUsage
	Volumes    CategoryUsage
	BuildCache CategoryUsage
}

func (u Usage) TotalSize() int64 {
	return u.Images.Size + u.Containers.Size + u.Volumes.Size + u.BuildCache.Size
}

func (u Usage) TotalReclaimable() int64 {
	return u.Images.Reclaimable + u.Containers.Reclaimable + u.Volumes.Reclaimable + u.BuildCache.Reclaimable
}

// aggregate folds the daemon's raw object listing into per-category totals,
// the same way `docker system df` does: an image is reclaimable when no
// container uses it, a container when it is not running, a volume when its
// reference count is zero, build cache when it is not in use.
func aggregate(du types.DiskUsage) Usage {
	var u Usage

	u.Images.Size = du.LayersSize
	for _, img := range du.Images {
		u.Images.Count++
		if img.Containers > 0 {
			u.Images.Active++
		} else {
			u.Images.Reclaimable += img.Size - img.SharedSize
		}
	}

	for _, ctr := range du.Containers {
		u.Containers.Count++
		u.Containers.Size += ctr.SizeRw
		if ctr.State == "running" {
			u.Containers.Active++
		} else {
			u.Containers.Reclaimable += ctr.SizeRw
		}
	}

	for _, vol := range du.Volumes {
		u.Volumes.Count++
		if vol.UsageData == nil {
			continue
		}
		if vol.UsageData.Size > 0 {
			u.Volumes.Size += vol.UsageData.Size
		}
		if vol.UsageData.RefCount > 0 {
			u.Volumes.Active++
		} else if vol.UsageData.Size > 0 {
			u.Volumes.Reclaimable += vol.UsageData.Size
		}
	}

	for _, bc := range du.BuildCache {
		u.BuildCache.Count++
		if bc.Shared {
			continue
		}
		u.BuildCache.Size += bc.Size
		if bc.InUse {
			u.BuildCache.Active++
		} else {
			u.BuildCache.Reclaimable += bc.Size
		}
	}

	return u
}
