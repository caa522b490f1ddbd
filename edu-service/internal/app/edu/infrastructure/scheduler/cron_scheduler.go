package scheduler

import (
	"aussieedu/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Sweeper - хранилище, из которого периодически удаляются истекшие записи
type Sweeper interface {
	Sweep() int
}

// CronScheduler запускает фоновую очистку окон in-memory лимитера
type CronScheduler struct {
	cron    *cron.Cron
	sweeper Sweeper
}

// NewCronScheduler создает планировщик очистки окон лимитера
func NewCronScheduler(sweeper Sweeper) *CronScheduler {
	return &CronScheduler{
		cron:    cron.New(),
		sweeper: sweeper,
	}
}

// Start регистрирует задачу очистки по расписанию (например "@every 1h")
func (s *CronScheduler) Start(schedule string) error {
	_, err := s.cron.AddFunc(schedule, s.sweep)
	if err != nil {
		return err
	}

	s.cron.Start()
	logger.Info().Str("schedule", schedule).Msg("Cron scheduler started")
	return nil
}

func (s *CronScheduler) sweep() {
	removed := s.sweeper.Sweep()
	logger.Debug().Int("removed", removed).Msg("Rate limit windows swept")
}

// Stop ждет завершения запущенных задач
func (s *CronScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info().Msg("Cron scheduler stopped")
}

func (s *CronScheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}
