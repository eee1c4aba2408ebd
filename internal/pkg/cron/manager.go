package cron

import (
	log "log/slog"

	"github.com/Baktyiar1/Netflix144p/internal/job"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine          *cron.Cron
	cleanupSpec     string
	mediaCleanupJob *job.MediaCleanupJob
}

// NewCronManager spec 使用带秒字段的 cron 表达式
func NewCronManager(cleanupSpec string, mediaCleanupJob *job.MediaCleanupJob) *Manager {
	return &Manager{
		engine:          cron.New(cron.WithSeconds()),
		cleanupSpec:     cleanupSpec,
		mediaCleanupJob: mediaCleanupJob,
	}
}

// RegisterJobs 注册定时任务，spec 为空时跳过
func (s *Manager) RegisterJobs() error {
	if s.cleanupSpec == "" {
		return nil
	}
	if _, err := s.engine.AddJob(s.cleanupSpec, s.mediaCleanupJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
