package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Satya20249/ai-channel-automation/config"
	"github.com/Satya20249/ai-channel-automation/worker"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var (
	scheduleSpec  string
	scheduleNames string
	scheduleAddr  string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run manifest generation on a cron schedule",
	Long: `schedule runs the same single-job pipeline on a cron schedule, rotating
through a comma-separated list of seed tool names. Jobs run one at a time. A
small HTTP endpoint reports liveness.`,
	RunE: runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleSpec, "cron", "@daily", "cron spec for job runs (robfig/cron syntax)")
	scheduleCmd.Flags().StringVar(&scheduleNames, "names", "", "comma-separated seed tool names, rotated per run")
	scheduleCmd.Flags().StringVar(&scheduleAddr, "addr", ":8080", "listen address for the health endpoint")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	names := splitNames(scheduleNames)
	if len(names) == 0 {
		return fmt.Errorf("--names requires at least one tool name")
	}

	cfg := config.Load()
	if err := cfg.EnsureDirs(); err != nil {
		return err
	}
	runner := worker.NewRunner(cfg)

	// Skip a tick rather than run two jobs at once; the pipeline assumes
	// single-invocation-at-a-time use of the history log.
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	next := 0
	_, err := c.AddFunc(scheduleSpec, func() {
		name := names[next%len(names)]
		next++

		path, err := runner.Run(context.Background(), name)
		if err != nil {
			log.Printf("Scheduled job for %q failed: %v", name, err)
			return
		}
		log.Printf("WROTE %s", path)
	})
	if err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", scheduleSpec, err)
	}
	c.Start()
	defer c.Stop()

	router := gin.Default()
	router.GET("/health", func(gc *gin.Context) {
		gc.JSON(200, gin.H{
			"status":    "healthy",
			"seed_pool": len(names),
		})
	})

	log.Printf("Scheduler started with spec %q over %d seed names", scheduleSpec, len(names))
	return router.Run(scheduleAddr)
}

func splitNames(raw string) []string {
	var names []string
	for _, n := range strings.Split(raw, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}
