package report

import (
	"bytes"
	"testing"

	"dockerase/pkg/docker"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func init() {
	pterm.DisableColor()
}

func TestRenderTotalReclaimableIsSumOfCategories(t *testing.T) {
	u := docker.Usage{
		Images:     docker.CategoryUsage{Size: 8_500_000_000, Reclaimable: 3_200_000_000, Count: 10, Active: 4},
		Containers: docker.CategoryUsage{Size: 400_000_000, Reclaimable: 245_000_000, Count: 5, Active: 2},
		Volumes:    docker.CategoryUsage{Size: 1_200_000_000, Reclaimable: 890_000_000, Count: 4, Active: 1},
		BuildCache: docker.CategoryUsage{Size: 2_100_000_000, Reclaimable: 2_100_000_000},
	}

	var buf bytes.Buffer
	Render(&buf, u)
	out := buf.String()

	sum := int64(3_200_000_000 + 245_000_000 + 890_000_000 + 2_100_000_000)
	assert.Equal(t, sum, u.TotalReclaimable())
	assert.Contains(t, out, "Total Reclaimable:")
	assert.Contains(t, out, FormatBytes(sum))
}

func TestRenderListsEveryCategory(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, docker.Usage{})
	out := buf.String()

	assert.Contains(t, out, "Images")
	assert.Contains(t, out, "Containers")
	assert.Contains(t, out, "Volumes")
	assert.Contains(t, out, "Build Cache")
	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, "RECLAIMABLE")
}

func TestRenderCounts(t *testing.T) {
	u := docker.Usage{
		Images:     docker.CategoryUsage{Count: 12, Active: 4},
		Containers: docker.CategoryUsage{Count: 6, Active: 1},
		Volumes:    docker.CategoryUsage{Count: 3, Active: 3},
	}

	var buf bytes.Buffer
	Render(&buf, u)
	out := buf.String()

	assert.Contains(t, out, "(8 unused)")
	assert.Contains(t, out, "(5 stopped)")
	assert.Contains(t, out, "(0 unused)")
}

func TestFormatBytesHumanReadable(t *testing.T) {
	assert.Equal(t, "0B", FormatBytes(0))
	assert.NotContains(t, FormatBytes(1_000_000_000), "1000000000")
	assert.Contains(t, FormatBytes(5_000_000), "MB")
	assert.Contains(t, FormatBytes(5_000_000_000), "GB")
}

func TestRenderSpaceSaved(t *testing.T) {
	var buf bytes.Buffer
	RenderSpaceSaved(&buf, 10_000_000_000, 4_000_000_000)
	out := buf.String()

	assert.Contains(t, out, "Space freed:")
	assert.Contains(t, out, FormatBytes(6_000_000_000))
}

func TestRenderSpaceSavedNothingFreed(t *testing.T) {
	var buf bytes.Buffer
	RenderSpaceSaved(&buf, 1000, 1000)
	assert.Empty(t, buf.String())

	RenderSpaceSaved(&buf, 1000, 2000)
	assert.Empty(t, buf.String())
}
