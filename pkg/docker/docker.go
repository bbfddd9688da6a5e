// Package docker wraps the slice of the Docker Engine API that dockerase
// needs: disk-usage accounting, candidate listing, and prune/remove calls.
// The daemon's own accounting is authoritative; nothing here second-guesses it.
package docker

import (
	"context"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/volume"
	"github.com/docker/docker/client"
)

const pingTimeout = 5 * time.Second

// defaultNetworks are created by the daemon and cannot be removed.
var defaultNetworks = map[string]bool{"bridge": true, "host": true, "none": true}

// PruneResult summarises a daemon-side bulk deletion.
type PruneResult struct {
	Deleted        int
	SpaceReclaimed uint64
}

// Engine is the narrow daemon surface the flows operate against.
type Engine interface {
	Ping(ctx context.Context) error
	Usage(ctx context.Context) (Usage, error)

	Containers(ctx context.Context, all bool) ([]container.Summary, error)
	Images(ctx context.Context, danglingOnly bool) ([]image.Summary, error)
	Volumes(ctx context.Context, unusedOnly bool) ([]*volume.Volume, error)
	CustomNetworks(ctx context.Context) ([]network.Summary, error)

	PruneContainers(ctx context.Context) (PruneResult, error)
	PruneImages(ctx context.Context, all bool) (PruneResult, error)
	PruneVolumes(ctx context.Context) (PruneResult, error)
	PruneNetworks(ctx context.Context) (PruneResult, error)
	PruneBuildCache(ctx context.Context, all bool) (PruneResult, error)

	StopContainer(ctx context.Context, id string) error
	RemoveContainer(ctx context.Context, id string) error
	RemoveImage(ctx context.Context, id string) error
	RemoveVolume(ctx context.Context, name string) error
	RemoveNetwork(ctx context.Context, id string) error

	Close() error
}

// Client implements Engine on top of the Engine API client.
type Client struct {
	api client.APIClient
}

// Connect creates a client from the ambient Docker environment
// (DOCKER_HOST, DOCKER_CONTEXT, ...) with API version negotiation enabled.
func Connect() (*Client, error) {
	api, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, wrapErr(err)
	}
	return &Client{api: api}, nil
}

// NewClient wraps an existing API client. Used by tests.
func NewClient(api client.APIClient) *Client {
	return &Client{api: api}
}

// Ping validates connectivity with the daemon within a short timeout window.
func (c *Client) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if _, err := c.api.Ping(pingCtx); err != nil {
		return wrapErr(err)
	}
	return nil
}

// Usage fetches /system/df and aggregates it into per-category totals.
func (c *Client) Usage(ctx context.Context) (Usage, error) {
	du, err := c.api.DiskUsage(ctx, types.DiskUsageOptions{})
	if err != nil {
		return Usage{}, wrapErr(err)
	}
	return aggregate(du), nil
}

// Containers lists containers; all includes stopped ones, otherwise only
// non-running containers are returned.
func (c *Client) Containers(ctx context.Context, all bool) ([]container.Summary, error) {
	opts := container.ListOptions{All: true, Size: true}
	if !all {
		opts.Filters = filters.NewArgs(
			filters.Arg("status", "created"),
			filters.Arg("status", "exited"),
			filters.Arg("status", "dead"),
		)
	}
	list, err := c.api.ContainerList(ctx, opts)
	if err != nil {
		return nil, wrapErr(err)
	}
	return list, nil
}

// Images lists images, optionally restricted to dangling ones.
func (c *Client) Images(ctx context.Context, danglingOnly bool) ([]image.Summary, error) {
	opts := image.ListOptions{All: true}
	if danglingOnly {
		opts.Filters = filters.NewArgs(filters.Arg("dangling", "true"))
	}
	list, err := c.api.ImageList(ctx, opts)
	if err != nil {
		return nil, wrapErr(err)
	}
	return list, nil
}

// Volumes lists volumes, optionally restricted to ones not referenced by any
// container.
func (c *Client) Volumes(ctx context.Context, unusedOnly bool) ([]*volume.Volume, error) {
	opts := volume.ListOptions{}
	if unusedOnly {
		opts.Filters = filters.NewArgs(filters.Arg("dangling", "true"))
	}
	resp, err := c.api.VolumeList(ctx, opts)
	if err != nil {
		return nil, wrapErr(err)
	}
	return resp.Volumes, nil
}

// CustomNetworks lists user-created networks (everything except bridge, host
// and none).
func (c *Client) CustomNetworks(ctx context.Context) ([]network.Summary, error) {
	list, err := c.api.NetworkList(ctx, network.ListOptions{})
	if err != nil {
		return nil, wrapErr(err)
	}
	custom := make([]network.Summary, 0, len(list))
	for _, n := range list {
		if !defaultNetworks[n.Name] {
			custom = append(custom, n)
		}
	}
	return custom, nil
}

func (c *Client) PruneContainers(ctx context.Context) (PruneResult, error) {
	report, err := c.api.ContainersPrune(ctx, filters.NewArgs())
	if err != nil {
		return PruneResult{}, wrapErr(err)
	}
	return PruneResult{Deleted: len(report.ContainersDeleted), SpaceReclaimed: report.SpaceReclaimed}, nil
}

func (c *Client) PruneImages(ctx context.Context, all bool) (PruneResult, error) {
	pruneFilters := filters.NewArgs(filters.Arg("dangling", "true"))
	if all {
		pruneFilters = filters.NewArgs(filters.Arg("dangling", "false"))
	}
	report, err := c.api.ImagesPrune(ctx, pruneFilters)
	if err != nil {
		return PruneResult{}, wrapErr(err)
	}
	return PruneResult{Deleted: len(report.ImagesDeleted), SpaceReclaimed: report.SpaceReclaimed}, nil
}

func (c *Client) PruneVolumes(ctx context.Context) (PruneResult, error) {
	report, err := c.api.VolumesPrune(ctx, filters.NewArgs())
	if err != nil {
		return PruneResult{}, wrapErr(err)
	}
	return PruneResult{Deleted: len(report.VolumesDeleted), SpaceReclaimed: report.SpaceReclaimed}, nil
}

func (c *Client) PruneNetworks(ctx context.Context) (PruneResult, error) {
	report, err := c.api.NetworksPrune(ctx, filters.NewArgs())
	if err != nil {
		return PruneResult{}, wrapErr(err)
	}
	return PruneResult{Deleted: len(report.NetworksDeleted)}, nil
}

func (c *Client) PruneBuildCache(ctx context.Context, all bool) (PruneResult, error) {
	report, err := c.api.BuildCachePrune(ctx, build.CachePruneOptions{All: all})
	if err != nil {
		return PruneResult{}, wrapErr(err)
	}
	return PruneResult{Deleted: len(report.CachesDeleted), SpaceReclaimed: report.SpaceReclaimed}, nil
}

func (c *Client) StopContainer(ctx context.Context, id string) error {
	return wrapErr(c.api.ContainerStop(ctx, id, container.StopOptions{}))
}

func (c *Client) RemoveContainer(ctx context.Context, id string) error {
	return wrapErr(c.api.ContainerRemove(ctx, id, container.RemoveOptions{Force: true}))
}

func (c *Client) RemoveImage(ctx context.Context, id string) error {
	_, err := c.api.ImageRemove(ctx, id, image.RemoveOptions{Force: true, PruneChildren: true})
	return wrapErr(err)
}

func (c *Client) RemoveVolume(ctx context.Context, name string) error {
	return wrapErr(c.api.VolumeRemove(ctx, name, true))
}

func (c *Client) RemoveNetwork(ctx context.Context, id string) error {
	return wrapErr(c.api.NetworkRemove(ctx, id))
}

func (c *Client) Close() error {
	return c.api.Close()
}
