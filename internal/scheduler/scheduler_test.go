package scheduler_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/orgball2608/socialhub/internal/scheduler"
	mock_story "github.com/orgball2608/socialhub/internal/story/mocks"
	"github.com/orgball2608/socialhub/pkg/config"
	"github.com/orgball2608/socialhub/pkg/logger"
)

func newReport(t *testing.T, stories *mock_story.MockService, buf *bytes.Buffer) *scheduler.StoriesReport {
	cfg := &config.Config{}
	cfg.Stories.ReportInterval = time.Minute

	r, err := scheduler.New(scheduler.Opts{
		Config:  cfg,
		Clock:   clockwork.NewFakeClock(),
		Stories: stories,
		Logger:  logger.New(logger.Opts{Env: "production", Writer: buf}),
	})
	require.NoError(t, err)
	return r
}

func TestReportLogsCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	stories := mock_story.NewMockService(ctrl)
	stories.EXPECT().Count(gomock.Any()).Return(4, 5, nil)

	var buf bytes.Buffer
	r := newReport(t, stories, &buf)

	require.NoError(t, r.Report(context.Background()))
	assert.Contains(t, buf.String(), `"active":4`)
	assert.Contains(t, buf.String(), `"expired":1`)
	assert.Contains(t, buf.String(), `"total":5`)
}

func TestReportPropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	stories := mock_story.NewMockService(ctrl)
	stories.EXPECT().Count(gomock.Any()).Return(0, 0, context.Canceled)

	var buf bytes.Buffer
	r := newReport(t, stories, &buf)

	err := r.Report(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStartAndShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	stories := mock_story.NewMockService(ctrl)
	stories.EXPECT().Count(gomock.Any()).Return(0, 0, nil).AnyTimes()

	var buf bytes.Buffer
	r := newReport(t, stories, &buf)

	r.Start()
	assert.NoError(t, r.Shutdown())
}
