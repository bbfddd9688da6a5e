package mocks

import (
	"context"

	"dockerase/pkg/docker"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/volume"
	"github.com/stretchr/testify/mock"
)

// MockEngine is a testify mock for docker.Engine.
type MockEngine struct {
	mock.Mock
}

func (m *MockEngine) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEngine) Usage(ctx context.Context) (docker.Usage, error) {
	args := m.Called(ctx)
	return args.Get(0).(docker.Usage), args.Error(1)
}

func (m *MockEngine) Containers(ctx context.Context, all bool) ([]container.Summary, error) {
	args := m.Called(ctx, all)
	return args.Get(0).([]container.Summary), args.Error(1)
}

func (m *MockEngine) Images(ctx context.Context, danglingOnly bool) ([]image.Summary, error) {
	args := m.Called(ctx, danglingOnly)
	return args.Get(0).([]image.Summary), args.Error(1)
}

func (m *MockEngine) Volumes(ctx context.Context, unusedOnly bool) ([]*volume.Volume, error) {
	args := m.Called(ctx, unusedOnly)
	return args.Get(0).([]*volume.Volume), args.Error(1)
}

func (m *MockEngine) CustomNetworks(ctx context.Context) ([]network.Summary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]network.Summary), args.Error(1)
}

func (m *MockEngine) PruneContainers(ctx context.Context) (docker.PruneResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(docker.PruneResult), args.Error(1)
}

func (m *MockEngine) PruneImages(ctx context.Context, all bool) (docker.PruneResult, error) {
	args := m.Called(ctx, all)
	return args.Get(0).(docker.PruneResult), args.Error(1)
}

func (m *MockEngine) PruneVolumes(ctx context.Context) (docker.PruneResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(docker.PruneResult), args.Error(1)
}

func (m *MockEngine) PruneNetworks(ctx context.Context) (docker.PruneResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(docker.PruneResult), args.Error(1)
}

func (m *MockEngine) PruneBuildCache(ctx context.Context, all bool) (docker.PruneResult, error) {
	args := m.Called(ctx, all)
	return args.Get(0).(docker.PruneResult), args.Error(1)
}

func (m *MockEngine) StopContainer(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEngine) RemoveContainer(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEngine) RemoveImage(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEngine) RemoveVolume(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockEngine) RemoveNetwork(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEngine) Close() error {
	args := m.Called()
	return args.Error(0)
}
