package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pennyplan/backend/internal/config"
	"github.com/pennyplan/backend/internal/reminder"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errAMQPNotConfigured = errors.New("AMQP_URL must be set to send reminders")

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Publish reminders for upcoming occurrences",
	Long: `Publish a reminder for every income, expense, subscription and
installment payment that occurs REMINDER_LOOKAHEAD_DAYS days from now.

Without --once, reminders are published every REMINDER_INTERVAL until
the process is stopped.`,
	RunE: runRemind,
}

func init() {
	rootCmd.AddCommand(remindCmd)
	remindCmd.Flags().Bool("once", false, "Publish the reminders once and exit")
}

func runRemind(cmd *cobra.Command, _ []string) error {
	once, _ := cmd.Flags().GetBool("once")

	cfg, err := setup()
	if err != nil {
		return err
	}

	if cfg.AMQPURL == "" {
		return errAMQPNotConfigured
	}

	if err := connect(cfg); err != nil {
		log.Error().Err(err).Msg("database connection failed")
		return err
	}
	defer disconnect()

	publisher, err := reminder.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		return err
	}
	defer publisher.Close()

	job := reminder.Job{
		Resolver:  cfg.Resolver(),
		Publisher: publisher,
		Lookahead: cfg.ReminderLookahead,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if once {
		_, err := job.Run(ctx, time.Now())
		return err
	}

	return remindPeriodically(ctx, job, cfg)
}

// remindPeriodically runs the job right away and then every ReminderInterval
// until ctx is cancelled.
func remindPeriodically(ctx context.Context, job reminder.Job, cfg config.Config) error {
	log.Info().Dur("interval", cfg.ReminderInterval).Int("lookahead_days", cfg.ReminderLookahead).Msg("starting reminders")

	if _, err := job.Run(ctx, time.Now()); err != nil {
		log.Error().Err(err).Msg("reminder run failed")
	}

	ticker := time.NewTicker(cfg.ReminderInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("stopping reminders")
			return nil
		case now := <-ticker.C:
			if _, err := job.Run(ctx, now); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("reminder run failed")
			}
		}
	}
}
